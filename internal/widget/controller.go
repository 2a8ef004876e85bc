package widget

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bitbucket.org/crgw/booking-hub/internal/rental"
	"bitbucket.org/crgw/booking-hub/internal/schema"
	"github.com/rs/zerolog"
)

// ErrUnavailable is returned by Init when the API does not come up within
// the probe window.
var ErrUnavailable = errors.New("booking service unavailable")

const (
	defaultProbeAttempts = 3
	defaultProbeDelay    = 2 * time.Second
)

// Controller drives the widget through its screens. It owns the current
// State and is the only place transitions happen.
type Controller struct {
	api           *Client
	log           *zerolog.Logger
	clientConfig  *schema.ClientConfig
	state         State
	probeAttempts int
	probeDelay    time.Duration
}

func NewController(api *Client, log *zerolog.Logger) *Controller {
	return &Controller{
		api:           api,
		log:           log,
		probeAttempts: defaultProbeAttempts,
		probeDelay:    defaultProbeDelay,
	}
}

// State returns the active screen, or nil before Init has run.
func (c *Controller) State() State {
	return c.state
}

// ClientConfig returns the branding fetched during Init, or nil when the
// config request failed and the widget fell back to defaults.
func (c *Controller) ClientConfig() *schema.ClientConfig {
	return c.clientConfig
}

// Init probes the API until it answers, fetches the client branding and
// lands on the search screen. When the API never answers the widget parks
// on the unavailable screen and ErrUnavailable is returned.
func (c *Controller) Init(ctx context.Context) error {
	if err := c.waitForAPI(ctx); err != nil {
		c.state = UnavailableState{}
		return err
	}

	config, err := c.api.FetchConfig(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("Failed to fetch client config, using default theme")
	} else {
		c.clientConfig = &config
	}

	c.state = SearchState{}

	return nil
}

func (c *Controller) waitForAPI(ctx context.Context) error {
	for attempt := 1; attempt <= c.probeAttempts; attempt++ {
		err := c.api.Health(ctx)
		if err == nil {
			return nil
		}

		c.log.Warn().
			Err(err).
			Int("attempt", attempt).
			Msg("Booking API not reachable yet")

		if attempt == c.probeAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.probeDelay):
		}
	}

	return ErrUnavailable
}

// SubmitSearch runs a search and moves to the results screen. The quote
// tracking call is best effort and never blocks the search.
func (c *Controller) SubmitSearch(ctx context.Context, form SearchForm) error {
	err := rental.ValidateStay(form.PickupDate.Time, form.DropoffDate.Time)
	if err != nil {
		return err
	}

	if trackErr := c.api.TrackQuote(ctx, form); trackErr != nil {
		c.log.Warn().Err(trackErr).Msg("Failed to track quote")
	}

	vehicles, err := c.api.Search(ctx, form)
	if err != nil {
		return err
	}

	c.state = ResultsState{Query: form, Vehicles: vehicles}

	return nil
}

// SelectVehicle moves from the results screen to the guest detail form.
func (c *Controller) SelectVehicle(vehicleId string) error {
	results, ok := c.state.(ResultsState)
	if !ok {
		return fmt.Errorf("cannot select a vehicle from the %s screen", c.state.stateName())
	}

	for _, vehicle := range results.Vehicles {
		if vehicle.Id == vehicleId {
			c.state = BookingState{
				Query:    results.Query,
				Vehicles: results.Vehicles,
				Selected: vehicle,
			}

			return nil
		}
	}

	return fmt.Errorf("vehicle %s is not part of the current results", vehicleId)
}

// SubmitBooking creates the booking for the selected vehicle and moves to
// the confirmation screen.
func (c *Controller) SubmitBooking(ctx context.Context, guest GuestForm, pickupDepotId, dropoffDepotId string) error {
	booking, ok := c.state.(BookingState)
	if !ok {
		return fmt.Errorf("cannot book from the %s screen", c.state.stateName())
	}

	clientId := ""
	if c.clientConfig != nil {
		clientId = c.clientConfig.Id
	}

	created, err := c.api.CreateBooking(ctx, schema.BookingRequestParams{
		ClientId:       clientId,
		VehicleId:      booking.Selected.Id,
		PickupDepotId:  pickupDepotId,
		DropoffDepotId: dropoffDepotId,
		PickupDate:     booking.Query.PickupDate,
		DropoffDate:    booking.Query.DropoffDate,
		GuestName:      guest.Name,
		GuestEmail:     guest.Email,
		GuestPhone:     guest.Phone,
		NumberOfPeople: guest.NumberOfPeople,
	})
	if err != nil {
		return err
	}

	c.state = ConfirmedState{Booking: created}

	return nil
}

// BackToResults returns from the guest form to the result list without
// losing the search.
func (c *Controller) BackToResults() error {
	booking, ok := c.state.(BookingState)
	if !ok {
		return fmt.Errorf("cannot go back to results from the %s screen", c.state.stateName())
	}

	c.state = ResultsState{Query: booking.Query, Vehicles: booking.Vehicles}

	return nil
}

// BackToSearch resets the widget to a fresh search form.
func (c *Controller) BackToSearch() {
	c.state = SearchState{}
}
