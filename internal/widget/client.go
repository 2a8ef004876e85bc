package widget

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"bitbucket.org/crgw/booking-hub/internal/schema"
	"bitbucket.org/crgw/booking-hub/internal/tools/requesting"
	"github.com/google/go-querystring/query"
	"github.com/rs/zerolog"
)

type Config struct {
	APIURL   string
	ClientID string
}

// Client is the widget's typed view of the booking API.
type Client struct {
	config Config
	http   *http.Client
	log    *zerolog.Logger
}

func NewClient(config Config, log *zerolog.Logger) *Client {
	return &Client{
		config: config,
		log:    log,
		http: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &requesting.InterceptorTransport{
				Transport: http.DefaultTransport,
				Middlewares: []requesting.TransportMiddleware{
					requesting.NewLoggingTransportMiddleware(log),
				},
			},
		},
	}
}

type searchQuery struct {
	PickupDate     string  `url:"pickup_date"`
	DropoffDate    string  `url:"dropoff_date"`
	NumberOfPeople int     `url:"number_of_people"`
	Transmission   *string `url:"transmission,omitempty"`
	VehicleType    *string `url:"vehicle_type,omitempty"`
}

func (c *Client) get(ctx context.Context, path string, destination any) error {
	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.APIURL+path, http.NoBody)
	if err != nil {
		return err
	}

	return c.do(httpRequest, destination)
}

func (c *Client) post(ctx context.Context, path string, body any, destination any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return err
	}

	httpRequest, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.config.APIURL+path,
		bytes.NewReader(encoded),
	)
	if err != nil {
		return err
	}
	httpRequest.Header.Set("Content-Type", "application/json")

	return c.do(httpRequest, destination)
}

func (c *Client) do(httpRequest *http.Request, destination any) error {
	response, err := requesting.CheckResponse(c.http.Do(httpRequest))
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if destination == nil {
		return nil
	}

	bodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	return json.Unmarshal(bodyBytes, destination)
}

func (c *Client) Health(ctx context.Context) error {
	return c.get(ctx, "/health", nil)
}

func (c *Client) FetchConfig(ctx context.Context) (schema.ClientConfig, error) {
	var payload struct {
		Success bool                `json:"success"`
		Config  schema.ClientConfig `json:"config"`
		Error   string              `json:"error"`
	}

	err := c.get(ctx, "/api/clients/"+c.config.ClientID+"/config", &payload)
	if err != nil {
		return schema.ClientConfig{}, err
	}

	if !payload.Success {
		return schema.ClientConfig{}, fmt.Errorf("config request rejected: %s", payload.Error)
	}

	return payload.Config, nil
}

func (c *Client) Search(ctx context.Context, form SearchForm) ([]schema.VehicleSearchResult, error) {
	values, err := query.Values(searchQuery{
		PickupDate:     form.PickupDate.Format(schema.DateFormat),
		DropoffDate:    form.DropoffDate.Format(schema.DateFormat),
		NumberOfPeople: form.NumberOfPeople,
		Transmission:   (*string)(form.Transmission),
		VehicleType:    (*string)(form.VehicleType),
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Success  bool                         `json:"success"`
		Count    int                          `json:"count"`
		Vehicles []schema.VehicleSearchResult `json:"vehicles"`
		Error    string                       `json:"error"`
	}

	err = c.get(ctx, "/api/vehicles/search?"+values.Encode(), &payload)
	if err != nil {
		return nil, err
	}

	if !payload.Success {
		return nil, fmt.Errorf("search rejected: %s", payload.Error)
	}

	return payload.Vehicles, nil
}

// TrackQuote records the search for analytics. Callers treat failures as
// non-fatal.
func (c *Client) TrackQuote(ctx context.Context, form SearchForm) error {
	return c.post(ctx, "/api/quotes", schema.QuoteRequestParams{
		ClientId:       c.config.ClientID,
		PickupDate:     form.PickupDate,
		DropoffDate:    form.DropoffDate,
		NumberOfPeople: &form.NumberOfPeople,
	}, nil)
}

func (c *Client) CreateBooking(ctx context.Context, params schema.BookingRequestParams) (schema.Booking, error) {
	var payload struct {
		Success bool           `json:"success"`
		Booking schema.Booking `json:"booking"`
		Error   string         `json:"error"`
	}

	err := c.post(ctx, "/api/bookings", params, &payload)
	if err != nil {
		return schema.Booking{}, err
	}

	if !payload.Success {
		return schema.Booking{}, fmt.Errorf("booking rejected: %s", payload.Error)
	}

	return payload.Booking, nil
}
