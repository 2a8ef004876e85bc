package widget

import "bitbucket.org/crgw/booking-hub/internal/schema"

// SearchForm holds the values of the widget's search form.
type SearchForm struct {
	PickupDate     schema.Date
	DropoffDate    schema.Date
	NumberOfPeople int
	Transmission   *schema.Transmission
	VehicleType    *schema.VehicleType
}

// GuestForm holds the guest details collected on the booking screen.
type GuestForm struct {
	Name           string
	Email          string
	Phone          *string
	NumberOfPeople int
}

// State is the widget's current screen. Exactly one concrete state type is
// active at a time; transitions happen only through Controller methods.
type State interface {
	stateName() string
}

// SearchState shows the search form.
type SearchState struct {
	Form SearchForm
}

// ResultsState shows the vehicles matching the last search.
type ResultsState struct {
	Query    SearchForm
	Vehicles []schema.VehicleSearchResult
}

// BookingState shows the guest detail form for a selected vehicle.
type BookingState struct {
	Query    SearchForm
	Vehicles []schema.VehicleSearchResult
	Selected schema.VehicleSearchResult
}

// ConfirmedState shows the reference of a created booking.
type ConfirmedState struct {
	Booking schema.Booking
}

// UnavailableState is shown when the API cannot be reached at startup.
type UnavailableState struct{}

func (SearchState) stateName() string      { return "search" }
func (ResultsState) stateName() string     { return "results" }
func (BookingState) stateName() string     { return "booking" }
func (ConfirmedState) stateName() string   { return "confirmed" }
func (UnavailableState) stateName() string { return "unavailable" }
