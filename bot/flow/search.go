package flow

import (
	"errors"
	"fmt"
	"log/slog"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/staybot/bot/hotels"
	"github.com/m3rciful/staybot/bot/rank"
	"github.com/m3rciful/staybot/bot/render"
	"github.com/m3rciful/staybot/bot/session"
	"github.com/m3rciful/staybot/core/logger"
	tghelpers "github.com/m3rciful/staybot/core/telegram/helpers"
)

const maxCityCandidates = 8

// notifier forwards provider retry notices into the chat so the user knows
// the bot has not stalled.
func notifier(c tele.Context) hotels.Notifier {
	return func(n hotels.Notice) {
		switch n {
		case hotels.NoticeRetrying:
			_ = tghelpers.SendText(c, textRetryStatus)
		default:
			_ = tghelpers.SendText(c, textRetryNetwork)
		}
	}
}

// lookupCity resolves the typed city into destination candidates and asks
// the user to pick one.
func (f *Flow) lookupCity(c tele.Context, sess *session.Session) error {
	ctx := tghelpers.BuildContext(c)
	locations, err := f.client.SearchLocations(ctx, sess.Criteria, notifier(c))
	if err != nil {
		if errors.Is(err, hotels.ErrUnavailable) || errors.Is(err, hotels.ErrMalformedPayload) {
			// City stays unresolved; the user can retry the same phase.
			return tghelpers.SendText(c, textUnavailable)
		}
		return err
	}
	if len(locations) == 0 {
		return tghelpers.SendText(c, textCityNotFound)
	}
	if len(locations) > maxCityCandidates {
		locations = locations[:maxCityCandidates]
	}
	sess.Locations = locations
	sess.Phase = session.PhaseAwaitingCitySelection
	return f.sendPrompt(c, sess, textPickCity, cityKeyboard(locations))
}

// runSearch executes the listing search once all criteria are collected,
// ranks the result and presents the first page.
func (f *Flow) runSearch(c tele.Context, sess *session.Session) error {
	ctx := tghelpers.BuildContext(c)
	_ = tghelpers.SendText(c, textSearching)

	listings, err := f.client.SearchListings(ctx, sess.Criteria, notifier(c))
	if err != nil {
		if errors.Is(err, hotels.ErrUnavailable) || errors.Is(err, hotels.ErrMalformedPayload) {
			// Criteria survive so answering the prompt retries the search.
			_ = tghelpers.SendText(c, textUnavailable)
			sess.Phase = session.PhaseAwaitingPhotoChoice
			return f.sendPrompt(c, sess, textAskPhotos, photoChoiceKeyboard())
		}
		return err
	}
	if len(listings) == 0 {
		_ = tghelpers.SendText(c, textNoHotels)
		sess.Criteria.City = ""
		sess.Criteria.DestinationID = ""
		sess.Phase = session.PhaseAwaitingCity
		return tghelpers.SendText(c, textAskCity)
	}

	rank.Apply(sess.Command, listings, sess.Criteria)
	sess.Buffer = session.NewBuffer(listings)
	return f.presentPage(c, sess)
}

// presentPage renders the next page from the buffer: detail enrichment, one
// message (or album) per hotel, history persistence, then the continuation
// offer. Shown listings leave the buffer so a later page starts after them.
func (f *Flow) presentPage(c tele.Context, sess *session.Session) error {
	ctx := tghelpers.BuildContext(c)
	page := render.NextPage(sess.Buffer, sess.Criteria.HotelCount)

	shown := make([]string, 0, len(page.Listings))
	for i, l := range page.Listings {
		sess.Cursor = i
		if !l.Detailed {
			detail, err := f.client.FetchDetail(ctx, l.ID, notifier(c))
			if err != nil {
				// Summary data alone is still worth showing.
				logger.Warn(ctx, "bot.flow", "detail.fetch_failed",
					slog.String("hotel_id", l.ID),
					slog.String("err", err.Error()),
				)
			} else {
				detail.Merge(l)
			}
		}

		text := render.ListingText(l, sess.Criteria)
		url := render.WebsiteURL(l.ID)
		if err := f.deliverListing(c, sess, l, text, url); err != nil {
			return err
		}

		shown = append(shown, l.ID)
		_ = f.history.Append(ctx, c.Chat().ID, string(sess.Command), text+"\n"+url)
	}
	sess.Buffer.Remove(shown)
	// Shown listings are gone, so the next page starts at the front again.
	sess.Cursor = 0

	logger.Info(ctx, "bot.flow", "page.presented",
		slog.String("command", string(sess.Command)),
		slog.Int("listings", len(page.Listings)),
		slog.Int("page_size", sess.Criteria.HotelCount),
	)

	sess.Phase = session.PhaseAwaitingContinuation
	switch {
	case page.Short:
		sess.HasMore = false
		return f.sendPrompt(c, sess, textFewerFound, exhaustedKeyboard())
	case sess.Buffer.Len() == 0:
		sess.HasMore = false
		return f.sendPrompt(c, sess, textNoMoreResults, exhaustedKeyboard())
	default:
		sess.HasMore = true
		return f.sendPrompt(c, sess, textMoreResults, continuationKeyboard())
	}
}

// loadMore continues an exhausted-or-not buffer after the user asked for
// another page.
func (f *Flow) loadMore(c tele.Context, sess *session.Session) error {
	if sess.Buffer.Len() == 0 {
		sess.HasMore = false
		return f.sendPrompt(c, sess, textNoMoreResults, exhaustedKeyboard())
	}
	return f.presentPage(c, sess)
}

// deliverListing sends one hotel as either a photo album with a caption or
// a plain text message with a website button.
func (f *Flow) deliverListing(c tele.Context, sess *session.Session, l *session.Listing, text, url string) error {
	if sess.Criteria.WithPhotos {
		photos, truncated := render.PhotoBatch(l, sess.Criteria.PhotoCount)
		if len(photos) > 0 {
			caption := text + "\n" + url
			if truncated {
				caption += "\n" + fmt.Sprintf(textFewPhotos, len(photos))
			}
			album := make(tele.Album, len(photos))
			for j, photoURL := range photos {
				p := &tele.Photo{File: tele.FromURL(photoURL)}
				if j == 0 {
					p.Caption = caption
				}
				album[j] = p
			}
			return tghelpers.SendAlbum(c, album, &tele.SendOptions{ParseMode: tele.ModeMarkdown})
		}
	}
	return tghelpers.SendMD(c, text, websiteKeyboard(url))
}
