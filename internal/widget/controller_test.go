package widget_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"bitbucket.org/crgw/booking-hub/internal/rental"
	"bitbucket.org/crgw/booking-hub/internal/schema"
	"bitbucket.org/crgw/booking-hub/internal/widget"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAPI struct {
	mux           *http.ServeMux
	healthFails   bool
	quoteFails    bool
	configFails   bool
	healthCalls   atomic.Int32
	quoteCalls    atomic.Int32
	bookingBodies []schema.BookingRequestParams
}

func newStubAPI() *stubAPI {
	stub := &stubAPI{mux: http.NewServeMux()}

	stub.mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		stub.healthCalls.Add(1)

		if stub.healthFails {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]any{"status": "error", "database": "disconnected"})
			return
		}

		json.NewEncoder(w).Encode(map[string]any{"status": "ok", "database": "connected"})
	})

	stub.mux.HandleFunc("/api/clients/", func(w http.ResponseWriter, r *http.Request) {
		if stub.configFails {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "Failed to get client config"})
			return
		}

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"config": schema.ClientConfig{
				Id:   "client-1",
				Name: "Roadtrippers",
				Theme: schema.Theme{
					PrimaryColor:   "#ff6b35",
					SecondaryColor: "#004e89",
				},
			},
		})
	})

	stub.mux.HandleFunc("/api/vehicles/search", func(w http.ResponseWriter, r *http.Request) {
		vehicles := []schema.VehicleSearchResult{
			searchResult("vehicle-1", "Compact Camper", 95, 3),
			searchResult("vehicle-2", "Family Motorhome", 180, 3),
		}

		json.NewEncoder(w).Encode(map[string]any{
			"success":  true,
			"count":    len(vehicles),
			"vehicles": vehicles,
		})
	})

	stub.mux.HandleFunc("/api/quotes", func(w http.ResponseWriter, r *http.Request) {
		stub.quoteCalls.Add(1)

		if stub.quoteFails {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "Failed to track quote"})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"success": true, "quote": schema.Quote{Id: "quote-1"}})
	})

	stub.mux.HandleFunc("/api/bookings", func(w http.ResponseWriter, r *http.Request) {
		var params schema.BookingRequestParams
		json.NewDecoder(r.Body).Decode(&params)
		stub.bookingBodies = append(stub.bookingBodies, params)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"booking": schema.Booking{
				Id:          "booking-1",
				VehicleId:   params.VehicleId,
				GuestName:   params.GuestName,
				TotalPrice:  285,
				Status:      schema.BookingStatusPending,
				PickupDate:  params.PickupDate,
				DropoffDate: params.DropoffDate,
			},
		})
	})

	return stub
}

func searchResult(id, name string, pricePerDay float64, days int) schema.VehicleSearchResult {
	result := schema.VehicleSearchResult{
		TotalPrice: schema.RoundedFloat(pricePerDay * float64(days)),
		Days:       days,
	}
	result.Id = id
	result.Name = name
	result.PricePerDay = pricePerDay
	result.OperatorName = "Sunset Campers"

	return result
}

func newTestController(t *testing.T, stub *stubAPI) (*widget.Controller, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(stub.mux)
	t.Cleanup(server.Close)

	log := zerolog.Nop()
	api := widget.NewClient(widget.Config{APIURL: server.URL, ClientID: "client-1"}, &log)

	controller := widget.NewController(api, &log)
	controller.SetProbe(3, time.Millisecond)

	return controller, server
}

func defaultForm() widget.SearchForm {
	return widget.SearchForm{
		PickupDate:     schema.NewDate(2024, 6, 1),
		DropoffDate:    schema.NewDate(2024, 6, 4),
		NumberOfPeople: 2,
	}
}

func TestControllerFlow(t *testing.T) {
	stub := newStubAPI()
	controller, _ := newTestController(t, stub)

	require.NoError(t, controller.Init(context.Background()))
	assert.IsType(t, widget.SearchState{}, controller.State())

	require.NotNil(t, controller.ClientConfig())
	assert.Equal(t, "#ff6b35", controller.ClientConfig().Theme.PrimaryColor)

	require.NoError(t, controller.SubmitSearch(context.Background(), defaultForm()))

	results, ok := controller.State().(widget.ResultsState)
	require.True(t, ok)
	require.Len(t, results.Vehicles, 2)
	assert.Equal(t, int32(1), stub.quoteCalls.Load())

	require.NoError(t, controller.SelectVehicle("vehicle-2"))

	booking, ok := controller.State().(widget.BookingState)
	require.True(t, ok)
	assert.Equal(t, "Family Motorhome", booking.Selected.Name)

	phone := "+358401234567"
	require.NoError(t, controller.SubmitBooking(context.Background(), widget.GuestForm{
		Name:           "Maija Meikäläinen",
		Email:          "maija@example.com",
		Phone:          &phone,
		NumberOfPeople: 2,
	}, "depot-1", "depot-2"))

	confirmed, ok := controller.State().(widget.ConfirmedState)
	require.True(t, ok)
	assert.Equal(t, "booking-1", confirmed.Booking.Id)
	assert.Equal(t, schema.BookingStatusPending, confirmed.Booking.Status)

	require.Len(t, stub.bookingBodies, 1)
	assert.Equal(t, "vehicle-2", stub.bookingBodies[0].VehicleId)
	assert.Equal(t, "client-1", stub.bookingBodies[0].ClientId)

	controller.BackToSearch()
	assert.IsType(t, widget.SearchState{}, controller.State())
}

func TestControllerBackToResults(t *testing.T) {
	stub := newStubAPI()
	controller, _ := newTestController(t, stub)

	require.NoError(t, controller.Init(context.Background()))
	require.NoError(t, controller.SubmitSearch(context.Background(), defaultForm()))
	require.NoError(t, controller.SelectVehicle("vehicle-1"))

	require.NoError(t, controller.BackToResults())

	results, ok := controller.State().(widget.ResultsState)
	require.True(t, ok)
	assert.Len(t, results.Vehicles, 2)
}

func TestControllerSearchSurvivesQuoteFailure(t *testing.T) {
	stub := newStubAPI()
	stub.quoteFails = true
	controller, _ := newTestController(t, stub)

	require.NoError(t, controller.Init(context.Background()))
	require.NoError(t, controller.SubmitSearch(context.Background(), defaultForm()))

	assert.IsType(t, widget.ResultsState{}, controller.State())
	assert.Equal(t, int32(1), stub.quoteCalls.Load())
}

func TestControllerRejectsInvalidStay(t *testing.T) {
	stub := newStubAPI()
	controller, _ := newTestController(t, stub)

	require.NoError(t, controller.Init(context.Background()))

	form := defaultForm()
	form.DropoffDate = form.PickupDate

	err := controller.SubmitSearch(context.Background(), form)

	var validationErr *rental.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.IsType(t, widget.SearchState{}, controller.State())
	assert.Equal(t, int32(0), stub.quoteCalls.Load())
}

func TestControllerUnavailableAfterProbes(t *testing.T) {
	stub := newStubAPI()
	stub.healthFails = true
	controller, _ := newTestController(t, stub)

	err := controller.Init(context.Background())

	require.ErrorIs(t, err, widget.ErrUnavailable)
	assert.IsType(t, widget.UnavailableState{}, controller.State())
	assert.Equal(t, int32(3), stub.healthCalls.Load())
}

func TestControllerDefaultsWhenConfigFails(t *testing.T) {
	stub := newStubAPI()
	stub.configFails = true
	controller, _ := newTestController(t, stub)

	require.NoError(t, controller.Init(context.Background()))

	assert.Nil(t, controller.ClientConfig())
	assert.IsType(t, widget.SearchState{}, controller.State())
}

func TestControllerSelectUnknownVehicle(t *testing.T) {
	stub := newStubAPI()
	controller, _ := newTestController(t, stub)

	require.NoError(t, controller.Init(context.Background()))
	require.NoError(t, controller.SubmitSearch(context.Background(), defaultForm()))

	err := controller.SelectVehicle("no-such-vehicle")

	require.Error(t, err)
	assert.IsType(t, widget.ResultsState{}, controller.State())
}
