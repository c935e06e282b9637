package flow

import (
	"sort"
	"strconv"
	"strings"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/staybot/bot/session"
	tghelpers "github.com/m3rciful/staybot/core/telegram/helpers"
)

const (
	maxAdults     = 10
	maxHotelCount = 25
	maxPhotoCount = 10
)

func (f *Flow) handleCity(c tele.Context, sess *session.Session) error {
	city := strings.TrimSpace(c.Text())
	if city == "" {
		return tghelpers.SendText(c, textAskCity)
	}
	sess.Criteria.City = city
	return f.lookupCity(c, sess)
}

func (f *Flow) handleCheckIn(c tele.Context, sess *session.Session) error {
	date, ok := tghelpers.ParseFlexibleDate(c.Text())
	if !ok {
		return tghelpers.SendText(c, textBadDate)
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if date.Before(today) {
		return tghelpers.SendText(c, textDateInPast)
	}
	sess.Criteria.CheckIn = date
	sess.Phase = session.PhaseAwaitingCheckOut
	return tghelpers.SendText(c, textAskCheckOut)
}

func (f *Flow) handleCheckOut(c tele.Context, sess *session.Session) error {
	date, ok := tghelpers.ParseFlexibleDate(c.Text())
	if !ok {
		return tghelpers.SendText(c, textBadDate)
	}
	if !date.After(sess.Criteria.CheckIn) {
		return tghelpers.SendText(c, textCheckOutTooEarly)
	}
	sess.Criteria.CheckOut = date
	sess.Phase = session.PhaseAwaitingAdults
	return tghelpers.SendText(c, textAskAdults)
}

func (f *Flow) handleAdults(c tele.Context, sess *session.Session) error {
	n, ok := parseBoundedInt(c.Text(), 1, maxAdults)
	if !ok {
		return tghelpers.SendText(c, textBadAdults)
	}
	sess.Criteria.Adults = n
	sess.Phase = session.PhaseAwaitingHotelCount
	return tghelpers.SendText(c, textAskHotelCount)
}

func (f *Flow) handleHotelCount(c tele.Context, sess *session.Session) error {
	n, ok := parseBoundedInt(c.Text(), 1, maxHotelCount)
	if !ok {
		return tghelpers.SendText(c, textBadHotelCount)
	}
	sess.Criteria.HotelCount = n
	if sess.Command == session.CommandBestDeal {
		sess.Phase = session.PhaseAwaitingPriceRange
		return tghelpers.SendMD(c, textAskPriceRange)
	}
	sess.Phase = session.PhaseAwaitingPhotoChoice
	return f.sendPrompt(c, sess, textAskPhotos, photoChoiceKeyboard())
}

func (f *Flow) handlePriceRange(c tele.Context, sess *session.Session) error {
	lo, hi, ok := parseRange(c.Text())
	if !ok {
		return tghelpers.SendMD(c, textBadPriceRange)
	}
	sess.Criteria.MinPrice = lo
	sess.Criteria.MaxPrice = hi
	sess.Phase = session.PhaseAwaitingDistanceRange
	return tghelpers.SendMD(c, textAskDistanceRange)
}

func (f *Flow) handleDistanceRange(c tele.Context, sess *session.Session) error {
	lo, hi, ok := parseRange(c.Text())
	if !ok {
		return tghelpers.SendMD(c, textBadDistanceRange)
	}
	sess.Criteria.MinDistance = lo
	sess.Criteria.MaxDistance = hi
	sess.Phase = session.PhaseAwaitingPhotoChoice
	return f.sendPrompt(c, sess, textAskPhotos, photoChoiceKeyboard())
}

func (f *Flow) handlePhotoCount(c tele.Context, sess *session.Session) error {
	n, ok := parseBoundedInt(c.Text(), 1, maxPhotoCount)
	if !ok {
		return tghelpers.SendText(c, textBadPhotoCount)
	}
	sess.Criteria.PhotoCount = n
	return f.runSearch(c, sess)
}

func parseBoundedInt(input string, lo, hi int) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < lo || n > hi {
		return 0, false
	}
	return n, true
}

// parseRange reads two numbers from the message. The order does not matter;
// the smaller value becomes the lower bound.
func parseRange(input string) (float64, float64, bool) {
	fields := strings.Fields(input)
	if len(fields) != 2 {
		return 0, 0, false
	}
	vals := make([]float64, 0, 2)
	for _, fld := range fields {
		v, err := strconv.ParseFloat(strings.ReplaceAll(fld, ",", "."), 64)
		if err != nil || v < 0 {
			return 0, 0, false
		}
		vals = append(vals, v)
	}
	sort.Float64s(vals)
	return vals[0], vals[1], true
}
