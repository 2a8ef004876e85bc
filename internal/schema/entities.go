package schema

import "time"

type VehicleType string

const (
	VehicleTypeCampervan VehicleType = "campervan"
	VehicleTypeMotorhome VehicleType = "motorhome"
)

type Transmission string

const (
	TransmissionAutomatic Transmission = "automatic"
	TransmissionManual    Transmission = "manual"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Operator struct {
	Id        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Code      string    `db:"code" json:"code"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Client struct {
	Id                  string    `db:"id" json:"id"`
	Name                string    `db:"name" json:"name"`
	Domain              string    `db:"domain" json:"domain"`
	ThemePrimaryColor   string    `db:"theme_primary_color" json:"theme_primary_color"`
	ThemeSecondaryColor string    `db:"theme_secondary_color" json:"theme_secondary_color"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
}

type Theme struct {
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
}

// ClientConfig is the white-label theming payload consumed by the widget.
type ClientConfig struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Theme Theme  `json:"theme"`
}

type Depot struct {
	Id         string    `db:"id" json:"id"`
	OperatorId string    `db:"operator_id" json:"operator_id"`
	Name       string    `db:"name" json:"name"`
	City       string    `db:"city" json:"city"`
	Country    string    `db:"country" json:"country"`
	Latitude   float64   `db:"latitude" json:"latitude"`
	Longitude  float64   `db:"longitude" json:"longitude"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

type DepotWithOperator struct {
	Depot
	OperatorName string `db:"operator_name" json:"operator_name"`
}

type Vehicle struct {
	Id           string       `db:"id" json:"id"`
	OperatorId   string       `db:"operator_id" json:"operator_id"`
	Name         string       `db:"name" json:"name"`
	Type         VehicleType  `db:"type" json:"type"`
	Transmission Transmission `db:"transmission" json:"transmission"`
	Sleeps       int          `db:"sleeps" json:"sleeps"`
	HasToilet    bool         `db:"has_toilet" json:"has_toilet"`
	HasShower    bool         `db:"has_shower" json:"has_shower"`
	HasKitchen   bool         `db:"has_kitchen" json:"has_kitchen"`
	PricePerDay  float64      `db:"price_per_day" json:"price_per_day"`
	ImageUrl     *string      `db:"image_url" json:"image_url"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
}

type VehicleWithOperator struct {
	Vehicle
	OperatorName string `db:"operator_name" json:"operator_name"`
	OperatorCode string `db:"operator_code" json:"operator_code"`
}

// VehicleSearchResult annotates a candidate vehicle with the price of the
// requested stay.
type VehicleSearchResult struct {
	VehicleWithOperator
	TotalPrice RoundedFloat `json:"total_price"`
	Days       int          `json:"days"`
}

type Booking struct {
	Id             string        `db:"id" json:"id"`
	ClientId       string        `db:"client_id" json:"client_id"`
	VehicleId      string        `db:"vehicle_id" json:"vehicle_id"`
	OperatorId     string        `db:"operator_id" json:"operator_id"`
	PickupDepotId  string        `db:"pickup_depot_id" json:"pickup_depot_id"`
	DropoffDepotId string        `db:"dropoff_depot_id" json:"dropoff_depot_id"`
	PickupDate     Date          `db:"pickup_date" json:"pickup_date"`
	DropoffDate    Date          `db:"dropoff_date" json:"dropoff_date"`
	GuestName      string        `db:"guest_name" json:"guest_name"`
	GuestEmail     string        `db:"guest_email" json:"guest_email"`
	GuestPhone     *string       `db:"guest_phone" json:"guest_phone"`
	NumberOfPeople int           `db:"number_of_people" json:"number_of_people"`
	TotalPrice     float64       `db:"total_price" json:"total_price"`
	Status         BookingStatus `db:"status" json:"status"`
	CreatedAt      time.Time     `db:"created_at" json:"created_at"`
}

// BookingDetails is a booking joined with the human-readable names the
// confirmation views need.
type BookingDetails struct {
	Booking
	VehicleName      string `db:"vehicle_name" json:"vehicle_name"`
	OperatorName     string `db:"operator_name" json:"operator_name"`
	PickupDepotName  string `db:"pickup_depot_name" json:"pickup_depot_name"`
	DropoffDepotName string `db:"dropoff_depot_name" json:"dropoff_depot_name"`
}

type Quote struct {
	Id              string    `db:"id" json:"id"`
	ClientId        string    `db:"client_id" json:"client_id"`
	PickupLocation  string    `db:"pickup_location" json:"pickup_location"`
	DropoffLocation string    `db:"dropoff_location" json:"dropoff_location"`
	PickupDate      Date      `db:"pickup_date" json:"pickup_date"`
	DropoffDate     Date      `db:"dropoff_date" json:"dropoff_date"`
	NumberOfPeople  *int      `db:"number_of_people" json:"number_of_people"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

type QuoteWithClient struct {
	Quote
	ClientName string `db:"client_name" json:"client_name"`
}
