package schema

// SearchRequestParams carries the dates as raw strings because gin's form
// binding has no hook for custom scalar types; Stay parses them.
type SearchRequestParams struct {
	PickupDate     string        `form:"pickup_date"`
	DropoffDate    string        `form:"dropoff_date"`
	NumberOfPeople int           `form:"number_of_people"`
	Transmission   *Transmission `form:"transmission"`
	MinSleeps      *int          `form:"min_sleeps"`
	HasToilet      *bool         `form:"has_toilet"`
	HasShower      *bool         `form:"has_shower"`
	VehicleType    *VehicleType  `form:"vehicle_type"`
	MaxPrice       *float64      `form:"max_price"`
}

// Stay parses the date strings of a search query. Empty values yield zero
// Dates so the stay validator reports them as missing rather than malformed.
func (p SearchRequestParams) Stay() (Date, Date, error) {
	pickup, err := parseOptionalDate(p.PickupDate)
	if err != nil {
		return Date{}, Date{}, err
	}

	dropoff, err := parseOptionalDate(p.DropoffDate)
	if err != nil {
		return Date{}, Date{}, err
	}

	return pickup, dropoff, nil
}

func parseOptionalDate(value string) (Date, error) {
	if value == "" {
		return Date{}, nil
	}

	return ParseDate(value)
}

type BookingRequestParams struct {
	ClientId       string  `json:"client_id" binding:"required"`
	VehicleId      string  `json:"vehicle_id" binding:"required"`
	PickupDepotId  string  `json:"pickup_depot_id" binding:"required"`
	DropoffDepotId string  `json:"dropoff_depot_id" binding:"required"`
	PickupDate     Date    `json:"pickup_date"`
	DropoffDate    Date    `json:"dropoff_date"`
	GuestName      string  `json:"guest_name" binding:"required"`
	GuestEmail     string  `json:"guest_email" binding:"required,email"`
	GuestPhone     *string `json:"guest_phone"`
	NumberOfPeople int     `json:"number_of_people" binding:"required,gt=0"`
}

type QuoteRequestParams struct {
	ClientId        string  `json:"client_id" binding:"required"`
	PickupLocation  *string `json:"pickup_location"`
	DropoffLocation *string `json:"dropoff_location"`
	PickupDate      Date    `json:"pickup_date"`
	DropoffDate     Date    `json:"dropoff_date"`
	NumberOfPeople  *int    `json:"number_of_people"`
}
