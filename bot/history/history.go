// Package history persists finished search results so users can replay them
// with the /history command.
package history

import (
	"context"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/m3rciful/staybot/core/logger"
)

// Record is one saved search result row joined with its owner.
type Record struct {
	ID        int64     `db:"id"`
	ChatID    int64     `db:"chat_id"`
	Command   string    `db:"command"`
	Result    string    `db:"result"`
	CreatedAt time.Time `db:"created_at"`
}

// Repo provides access to the users and searches tables.
type Repo struct {
	db *sqlx.DB
}

// NewRepo wraps the shared database handle.
func NewRepo(db *sqlx.DB) *Repo {
	return &Repo{db: db}
}

// EnsureUser registers the chat on first contact. Repeated calls are no-ops.
func (r *Repo) EnsureUser(ctx context.Context, chatID int64) error {
	const q = `INSERT INTO users (chat_id) VALUES ($1) ON CONFLICT (chat_id) DO NOTHING`
	if _, err := r.db.ExecContext(ctx, q, chatID); err != nil {
		logger.Error(ctx, "service.history", "user.ensure_failed",
			slog.Int64("chat_id", chatID),
			slog.String("err", err.Error()),
		)
		return err
	}
	return nil
}

// Append stores one rendered search result for the chat.
func (r *Repo) Append(ctx context.Context, chatID int64, command, result string) error {
	const q = `
		INSERT INTO searches (user_id, command, result)
		SELECT id, $2, $3 FROM users WHERE chat_id = $1`
	if _, err := r.db.ExecContext(ctx, q, chatID, command, result); err != nil {
		logger.Error(ctx, "service.history", "search.append_failed",
			slog.Int64("chat_id", chatID),
			slog.String("command", command),
			slog.String("err", err.Error()),
		)
		return err
	}
	return nil
}

// ListByChat returns the chat's saved results, oldest first. An empty
// history is a normal outcome and yields an empty slice.
func (r *Repo) ListByChat(ctx context.Context, chatID int64) ([]Record, error) {
	const q = `
		SELECT s.id, u.chat_id, s.command, s.result, s.created_at
		FROM searches s
		JOIN users u ON u.id = s.user_id
		WHERE u.chat_id = $1
		ORDER BY s.created_at, s.id`
	var records []Record
	if err := r.db.SelectContext(ctx, &records, q, chatID); err != nil {
		logger.Error(ctx, "service.history", "search.list_failed",
			slog.Int64("chat_id", chatID),
			slog.String("err", err.Error()),
		)
		return nil, err
	}
	logger.Info(ctx, "service.history", "search.listed",
		slog.Int64("chat_id", chatID),
		slog.Int("records", len(records)),
	)
	return records, nil
}
