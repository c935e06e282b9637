package flow

// User-facing texts. Markdown V1 is used throughout, matching the send
// helpers.

const (
	textGreeting = "Hello, %s! I can find you a hotel almost anywhere.\n" +
		"Open the menu below or use /help to see what I can do."
	textGreetingAnon = "Hello! I can find you a hotel almost anywhere.\n" +
		"Open the menu below or use /help to see what I can do."

	textHelp = "*What I can do:*\n" +
		"/lowprice — cheapest hotels in a city\n" +
		"/highprice — most expensive hotels in a city\n" +
		"/bestdeal — hotels matching your price and distance ranges\n" +
		"/history — your previous search results\n" +
		"/cancel — abandon the current search"

	textMenuTitle    = "What are we looking for?"
	textMenuHint     = "I did not catch that. Open the menu below or use /help."
	textUseKeyboard  = "Please use the buttons above to continue."
	textCancelled    = "Search cancelled. Come back any time!"
	textFinished     = "Happy travels! Come back when you need another hotel."
	textRateLimited  = "Easy there! One step at a time, please."

	textAskCity          = "Which city should I search in?"
	textCityNotFound     = "I could not find that city. Try a different spelling?"
	textPickCity         = "Here is what I found. Pick the right one:"
	textPickCommand      = "Got it. How should I rank the hotels?"
	textAskCheckIn       = "When do you check in? (for example 2026-09-12)"
	textAskCheckOut      = "And when do you check out?"
	textBadDate          = "That does not look like a date I understand. Try 2026-09-12."
	textDateInPast       = "That date is already gone. Pick a future one."
	textCheckOutTooEarly = "Check-out must be after check-in. Try again."
	textAskAdults        = "How many adults are travelling? (1-10)"
	textBadAdults        = "Please send a number of adults between 1 and 10."
	textAskHotelCount    = "How many hotels should I show per round? (1-25)"
	textBadHotelCount    = "Please send a number between 1 and 25."
	textAskPriceRange    = "Send your price range per stay, like `40 120`."
	textBadPriceRange    = "Two numbers, please, like `40 120`."
	textAskDistanceRange = "And the distance range from the centre in miles, like `0 5`."
	textBadDistanceRange = "Two numbers, please, like `0 5`."
	textAskPhotos        = "Want photos of the hotels?"
	textAskPhotoCount    = "How many photos per hotel? (1-10)"
	textBadPhotoCount    = "Please send a number between 1 and 10."

	textSearching      = "Searching... this can take a few seconds."
	textRetryStatus    = "The hotel service hiccuped, retrying..."
	textRetryNetwork   = "Connection trouble, retrying..."
	textUnavailable    = "The hotel service is not responding right now. Please try again later."
	textNoHotels       = "No hotels matched your search. Try different dates or a different city."
	textFewerFound     = "I found fewer hotels than you asked for. Here is everything I have."
	textFewPhotos      = "(only %d photos available)"
	textMoreResults    = "Want more?"
	textNoMoreResults  = "That is everything for this search."
	textHistoryEmpty   = "Your history is empty so far. Run a search first!"
	textHistoryHeader  = "*Your previous results:*"
	textWebsiteButton  = "Open on hotels.com"
)
