package flow

import (
	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/staybot/bot/session"
	"github.com/m3rciful/staybot/core/telegram/callbacks"
	tghelpers "github.com/m3rciful/staybot/core/telegram/helpers"
)

// cbPickCommand handles a ranking command chosen from an inline keyboard.
// From the menu it starts a fresh search; mid-flow it fills the command the
// session is waiting for and moves on to dates.
func (f *Flow) cbPickCommand(c tele.Context) error {
	cmd := session.Command(callbacks.CallbackPayload(c))
	switch cmd {
	case session.CommandLowPrice, session.CommandHighPrice, session.CommandBestDeal:
	default:
		return nil
	}

	sess := f.sessions.GetOrCreate(c.Sender().ID)
	if sess.Phase == session.PhaseAwaitingCommand {
		f.clearPrompt(c, sess)
		sess.Command = cmd
		sess.Phase = session.PhaseAwaitingCheckIn
		return tghelpers.SendText(c, textAskCheckIn)
	}
	return f.beginSearch(c, cmd)
}

// cbPickCity resolves a destination candidate chosen from the lookup
// keyboard. The payload is the candidate's index in the session.
func (f *Flow) cbPickCity(c tele.Context) error {
	sess := f.sessions.GetOrCreate(c.Sender().ID)
	if sess.Phase != session.PhaseAwaitingCitySelection {
		return nil
	}
	idx, err := callbacks.PayloadInt(c)
	if err != nil || idx < 0 || idx >= len(sess.Locations) {
		return nil
	}
	loc := sess.Locations[idx]
	f.clearPrompt(c, sess)

	sess.Criteria.City = loc.Name
	sess.Criteria.DestinationID = loc.DestinationID
	sess.Locations = nil

	if sess.Command == "" {
		sess.Phase = session.PhaseAwaitingCommand
		return f.sendPrompt(c, sess, textPickCommand, commandKeyboard())
	}
	sess.Phase = session.PhaseAwaitingCheckIn
	return tghelpers.SendText(c, textAskCheckIn)
}

func (f *Flow) cbPhotoChoice(c tele.Context) error {
	sess := f.sessions.GetOrCreate(c.Sender().ID)
	if sess.Phase != session.PhaseAwaitingPhotoChoice {
		return nil
	}
	f.clearPrompt(c, sess)

	if callbacks.CallbackPayload(c) == "yes" {
		sess.Criteria.WithPhotos = true
		sess.Phase = session.PhaseAwaitingPhotoCount
		return tghelpers.SendText(c, textAskPhotoCount)
	}
	sess.Criteria.WithPhotos = false
	sess.Criteria.PhotoCount = 0
	return f.runSearch(c, sess)
}

func (f *Flow) cbMoreResults(c tele.Context) error {
	sess := f.sessions.GetOrCreate(c.Sender().ID)
	if sess.Phase != session.PhaseAwaitingContinuation {
		return nil
	}
	f.clearPrompt(c, sess)
	return f.loadMore(c, sess)
}

func (f *Flow) cbNewSearch(c tele.Context) error {
	sess := f.sessions.GetOrCreate(c.Sender().ID)
	f.clearPrompt(c, sess)
	f.sessions.Reset(c.Sender().ID)
	return f.showMenu(c)
}

func (f *Flow) cbEndSearch(c tele.Context) error {
	sess := f.sessions.GetOrCreate(c.Sender().ID)
	f.clearPrompt(c, sess)
	f.sessions.Reset(c.Sender().ID)
	return tghelpers.SendText(c, textFinished)
}
