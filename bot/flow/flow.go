// Package flow drives the multi-step hotel search conversation. Every user
// has a single session with exactly one active phase; free-text messages are
// routed here while a search is in progress, and inline keyboards advance
// the phases that expect a choice rather than text.
package flow

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/staybot/bot/history"
	"github.com/m3rciful/staybot/bot/hotels"
	"github.com/m3rciful/staybot/bot/session"
	coreconfig "github.com/m3rciful/staybot/core/config"
	"github.com/m3rciful/staybot/core/logger"
	tg "github.com/m3rciful/staybot/core/telegram"
	"github.com/m3rciful/staybot/core/telegram/commands"
	tghelpers "github.com/m3rciful/staybot/core/telegram/helpers"
)

// Flow wires the session store, the provider client and the history
// repository into the conversation handlers.
type Flow struct {
	cfg      *coreconfig.Config
	sessions *session.Store
	client   *hotels.Client
	history  *history.Repo
}

// New builds the conversation flow with its collaborators injected.
func New(cfg *coreconfig.Config, store *session.Store, client *hotels.Client, repo *history.Repo) *Flow {
	return &Flow{
		cfg:      cfg,
		sessions: store,
		client:   client,
		history:  repo,
	}
}

// InProgress reports whether free text from the user belongs to an active
// search. Part of the router's FSM contract.
func (f *Flow) InProgress(userID int64) bool {
	return f.sessions.InProgress(userID)
}

// ManagerHandler routes a free-text message to the handler of the session's
// current phase.
func (f *Flow) ManagerHandler(c tele.Context) error {
	sess := f.sessions.GetOrCreate(c.Sender().ID)
	f.rememberName(c, sess)

	ctx := tghelpers.BuildContext(c)
	logger.Debug(ctx, "bot.flow", "phase.input",
		slog.String("phase", string(sess.Phase)),
	)

	switch sess.Phase {
	case session.PhaseAwaitingCity:
		return f.handleCity(c, sess)
	case session.PhaseAwaitingCheckIn:
		return f.handleCheckIn(c, sess)
	case session.PhaseAwaitingCheckOut:
		return f.handleCheckOut(c, sess)
	case session.PhaseAwaitingAdults:
		return f.handleAdults(c, sess)
	case session.PhaseAwaitingHotelCount:
		return f.handleHotelCount(c, sess)
	case session.PhaseAwaitingPriceRange:
		return f.handlePriceRange(c, sess)
	case session.PhaseAwaitingDistanceRange:
		return f.handleDistanceRange(c, sess)
	case session.PhaseAwaitingPhotoCount:
		return f.handlePhotoCount(c, sess)
	case session.PhaseAwaitingCitySelection,
		session.PhaseAwaitingCommand,
		session.PhaseAwaitingPhotoChoice,
		session.PhaseAwaitingContinuation:
		return tghelpers.SendText(c, textUseKeyboard)
	default:
		return f.showMenu(c)
	}
}

// Register wires commands, callbacks and the text fallback into the
// registry.
func (f *Flow) Register(reg *tg.Registry) {
	reg.RegisterCommand("/start", commands.Command{
		Handler:     f.cmdStart,
		Description: "Greet and open the menu",
	})
	reg.RegisterCommand("/help", commands.Command{
		Handler:     f.cmdHelp,
		Description: "Show what the bot can do",
	})
	reg.RegisterCommand("/lowprice", commands.Command{
		Handler:     f.searchCommand(session.CommandLowPrice),
		Description: "Cheapest hotels in a city",
	})
	reg.RegisterCommand("/highprice", commands.Command{
		Handler:     f.searchCommand(session.CommandHighPrice),
		Description: "Most expensive hotels in a city",
	})
	reg.RegisterCommand("/bestdeal", commands.Command{
		Handler:     f.searchCommand(session.CommandBestDeal),
		Description: "Hotels matching price and distance ranges",
	})
	reg.RegisterCommand("/history", commands.Command{
		Handler:     f.cmdHistory,
		Description: "Previous search results",
	})
	reg.RegisterCommand("/cancel", commands.Command{
		Handler:     f.cmdCancel,
		Description: "Abandon the current search",
		Hidden:      true,
	})

	_ = reg.RegisterCallback(cbSearchCmd, f.cbPickCommand)
	_ = reg.RegisterCallback(cbCity, f.cbPickCity)
	_ = reg.RegisterCallback(cbPhotos, f.cbPhotoChoice)
	_ = reg.RegisterCallback(cbMore, f.cbMoreResults)
	_ = reg.RegisterCallback(cbNewSearch, f.cbNewSearch)
	_ = reg.RegisterCallback(cbEndSearch, f.cbEndSearch)
	_ = reg.RegisterCallback(cbHistory, func(c tele.Context) error { return f.cmdHistory(c) })

	reg.SetTextFallback(f.textFallback)
}

// textFallback handles free text outside an active search: the menu button,
// greetings and everything else.
func (f *Flow) textFallback(c tele.Context) error {
	sess := f.sessions.GetOrCreate(c.Sender().ID)
	f.rememberName(c, sess)

	text := strings.ToLower(strings.TrimSpace(c.Text()))
	switch text {
	case strings.ToLower(menuButtonText), "menu":
		return f.showMenu(c)
	case "hello", "hi", "hey", "привет":
		return f.greet(c, sess)
	default:
		return tghelpers.SendText(c, textMenuHint)
	}
}

// RateLimited answers updates rejected by the rate limiter.
func (f *Flow) RateLimited(c tele.Context) error {
	return c.Send(textRateLimited)
}

func (f *Flow) showMenu(c tele.Context) error {
	return tghelpers.SendMD(c, textMenuTitle, commandKeyboard())
}

func (f *Flow) greet(c tele.Context, sess *session.Session) error {
	if sess.Name != "" {
		return tghelpers.SendText(c, fmt.Sprintf(textGreeting, sess.Name),
			&tele.SendOptions{ReplyMarkup: menuReplyKeyboard()})
	}
	return tghelpers.SendText(c, textGreetingAnon,
		&tele.SendOptions{ReplyMarkup: menuReplyKeyboard()})
}

func (f *Flow) rememberName(c tele.Context, sess *session.Session) {
	if sess.Name != "" {
		return
	}
	if u := c.Sender(); u != nil {
		if u.FirstName != "" {
			sess.Name = u.FirstName
		} else if u.Username != "" {
			sess.Name = u.Username
		}
	}
}

// sendPrompt delivers a question synchronously so the message ID can be
// remembered and the prompt deleted once it is answered or superseded.
func (f *Flow) sendPrompt(c tele.Context, sess *session.Session, text string, markup *tele.ReplyMarkup) error {
	f.clearPrompt(c, sess)
	msg, err := c.Bot().Send(c.Recipient(), text,
		&tele.SendOptions{ParseMode: tele.ModeMarkdown, ReplyMarkup: markup})
	if err != nil {
		return err
	}
	if markup != nil && len(markup.InlineKeyboard) > 0 {
		sess.PendingPromptID = msg.ID
		sess.PendingChatID = msg.Chat.ID
	}
	return nil
}

// clearPrompt removes a superseded inline prompt so stale keyboards cannot
// be clicked later.
func (f *Flow) clearPrompt(c tele.Context, sess *session.Session) {
	if sess.PendingPromptID == 0 {
		return
	}
	stored := tele.StoredMessage{
		MessageID: strconv.Itoa(sess.PendingPromptID),
		ChatID:    sess.PendingChatID,
	}
	if err := c.Bot().Delete(stored); err != nil {
		ctx := tghelpers.BuildContext(c)
		logger.Debug(ctx, "bot.flow", "prompt.delete_failed",
			slog.String("err", err.Error()),
		)
	}
	sess.PendingPromptID = 0
	sess.PendingChatID = 0
}
