package session

import "time"

// Phase identifies the single active step of a user's search conversation.
// Exactly one phase is active at a time; transitions happen only in response
// to chat events.
type Phase string

const (
	// PhaseIdle indicates there is no active search for the user.
	PhaseIdle Phase = "idle"
	// PhaseAwaitingCity waits for a free-text city name.
	PhaseAwaitingCity Phase = "awaiting_city"
	// PhaseAwaitingCitySelection waits for the user to pick one of the
	// suggested destinations from the inline keyboard.
	PhaseAwaitingCitySelection Phase = "awaiting_city_selection"
	// PhaseAwaitingCommand waits for a search command selection.
	PhaseAwaitingCommand Phase = "awaiting_command"
	// PhaseAwaitingCheckIn waits for the check-in date.
	PhaseAwaitingCheckIn Phase = "awaiting_check_in"
	// PhaseAwaitingCheckOut waits for the check-out date.
	PhaseAwaitingCheckOut Phase = "awaiting_check_out"
	// PhaseAwaitingAdults waits for the guest count.
	PhaseAwaitingAdults Phase = "awaiting_adults"
	// PhaseAwaitingHotelCount waits for the page size (hotels per round).
	PhaseAwaitingHotelCount Phase = "awaiting_hotel_count"
	// PhaseAwaitingPriceRange waits for the bestdeal price range.
	PhaseAwaitingPriceRange Phase = "awaiting_price_range"
	// PhaseAwaitingDistanceRange waits for the bestdeal distance range.
	PhaseAwaitingDistanceRange Phase = "awaiting_distance_range"
	// PhaseAwaitingPhotoChoice waits for the yes/no answer about photos.
	PhaseAwaitingPhotoChoice Phase = "awaiting_photo_choice"
	// PhaseAwaitingPhotoCount waits for the number of photos per hotel.
	PhaseAwaitingPhotoCount Phase = "awaiting_photo_count"
	// PhaseAwaitingContinuation waits for the load-more / new / end choice
	// after a page of results has been shown.
	PhaseAwaitingContinuation Phase = "awaiting_continuation"
)

// Command identifies which search command initiated the session. It selects
// the ranking policy applied to fetched listings.
type Command string

const (
	// CommandLowPrice shows the cheapest hotels (provider order as-is).
	CommandLowPrice Command = "/lowprice"
	// CommandHighPrice shows the most expensive hotels first.
	CommandHighPrice Command = "/highprice"
	// CommandBestDeal prefers hotels within the user's price and distance ranges.
	CommandBestDeal Command = "/bestdeal"
)

// Criteria carries the user-entered search parameters. Which fields are
// valid depends on the session phase.
type Criteria struct {
	City          string
	DestinationID string
	CheckIn       time.Time
	CheckOut      time.Time
	Adults        int
	HotelCount    int
	WithPhotos    bool
	PhotoCount    int
	MinPrice      float64
	MaxPrice      float64
	MinDistance   float64
	MaxDistance   float64
}

// Location is one destination candidate returned by the provider's
// location lookup.
type Location struct {
	Name          string
	DestinationID string
}

// Listing is one hotel search result. Summary fields come from the listing
// search; address, rating and images are merged in by the detail fetch.
// Has* flags mark fields the provider actually supplied, since nested keys
// may be absent in the payload.
type Listing struct {
	ID          string
	Name        string
	Price       float64
	HasPrice    bool
	Distance    float64
	HasDistance bool

	Address   string
	Rating    float64
	HasRating bool
	Images    []string
	Detailed  bool
}

// Session is the per-user mutable conversation state. It lives for the
// process lifetime: created lazily on first contact, reset (not destroyed)
// on explicit end-of-search.
type Session struct {
	UserID int64
	// Name is the user's display name; it survives Reset.
	Name string

	Phase    Phase
	Command  Command
	Criteria Criteria

	// Locations holds destination candidates while the user picks a city.
	Locations []Location
	// Buffer holds ranked hotel listings; iteration order is display order.
	Buffer *Buffer
	// Cursor is the index of the listing currently being rendered within
	// the current page. Invariant: Cursor <= Buffer.Len().
	Cursor int
	// HasMore reports whether listings remain beyond the rendered page.
	HasMore bool

	// PendingPromptID references the last inline prompt sent, so it can be
	// deleted once it is superseded. Zero means nothing to clean up.
	PendingPromptID int
	PendingChatID   int64
}

// InProgress reports whether the session has an active search.
func (s *Session) InProgress() bool {
	return s != nil && s.Phase != PhaseIdle
}
