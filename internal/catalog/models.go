package catalog

// Provider is a listed service vendor. Immutable once fetched, apart from
// categoryId normalization done at the API boundary.
type Provider struct {
	ID              int64
	Name            string
	CategoryID      int64
	Rating          float64
	PricePerHour    float64
	ExperienceYears int
	Description     string
	Image           string
	Gallery         []string
	Location        Location
}

// Location is the provider's advertised service location.
type Location struct {
	Lat  float64
	Lng  float64
	City string
}

// Category is a classification tag used to group and filter providers.
type Category struct {
	ID   int64
	Name string
	Icon string
}

// BookingStatus is the lifecycle state assigned by the server.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking ties a user to a provider for a number of hours at a date/time.
// ID is zero on a client-built draft; the server assigns it on confirmation.
type Booking struct {
	ID         int64
	ProviderID int64
	UserID     int64
	Date       string // YYYY-MM-DD
	Time       string // HH:mm, 24-hour
	Hours      int
	TotalCost  float64
	Status     BookingStatus
}
