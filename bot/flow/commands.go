package flow

import (
	"fmt"
	"log/slog"
	"strings"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/staybot/bot/session"
	"github.com/m3rciful/staybot/core/logger"
	tghelpers "github.com/m3rciful/staybot/core/telegram/helpers"
)

func (f *Flow) cmdStart(c tele.Context) error {
	sess := f.sessions.GetOrCreate(c.Sender().ID)
	f.rememberName(c, sess)

	ctx := tghelpers.BuildContext(c)
	if err := f.history.EnsureUser(ctx, c.Chat().ID); err != nil {
		// Greeting still goes out; history just will not work yet.
		logger.Warn(ctx, "bot.flow", "start.user_register_failed",
			slog.String("err", err.Error()),
		)
	}
	return f.greet(c, sess)
}

func (f *Flow) cmdHelp(c tele.Context) error {
	return tghelpers.SendMD(c, textHelp)
}

func (f *Flow) cmdCancel(c tele.Context) error {
	sess := f.sessions.GetOrCreate(c.Sender().ID)
	f.clearPrompt(c, sess)
	f.sessions.Reset(c.Sender().ID)
	return tghelpers.SendText(c, textCancelled)
}

// searchCommand returns the handler that starts a new search for the given
// ranking command. Any previous search state is discarded.
func (f *Flow) searchCommand(cmd session.Command) tele.HandlerFunc {
	return func(c tele.Context) error {
		return f.beginSearch(c, cmd)
	}
}

func (f *Flow) beginSearch(c tele.Context, cmd session.Command) error {
	old := f.sessions.GetOrCreate(c.Sender().ID)
	f.rememberName(c, old)
	f.clearPrompt(c, old)

	sess := f.sessions.Reset(c.Sender().ID)
	sess.Command = cmd
	sess.Phase = session.PhaseAwaitingCity

	ctx := tghelpers.BuildContext(c)
	logger.Info(ctx, "bot.flow", "search.started",
		slog.String("command", string(cmd)),
	)
	return tghelpers.SendText(c, textAskCity)
}

func (f *Flow) cmdHistory(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	records, err := f.history.ListByChat(ctx, c.Chat().ID)
	if err != nil {
		return tghelpers.SendText(c, textUnavailable)
	}
	if len(records) == 0 {
		return tghelpers.SendText(c, textHistoryEmpty)
	}

	if err := tghelpers.SendMD(c, textHistoryHeader); err != nil {
		return err
	}
	for _, rec := range records {
		header := fmt.Sprintf("_%s • %s_\n", strings.TrimPrefix(rec.Command, "/"),
			rec.CreatedAt.Format("2006-01-02 15:04"))
		if err := tghelpers.SendMD(c, header+rec.Result); err != nil {
			return err
		}
	}
	return nil
}
