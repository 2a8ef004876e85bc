package widget

import (
	"fmt"
	"html/template"
	"io"

	"bitbucket.org/crgw/booking-hub/internal/schema"
)

const (
	defaultPrimaryColor   = "#2563eb"
	defaultSecondaryColor = "#1e40af"
)

var screenTemplate = template.Must(template.New("widget").Parse(`
{{define "frame"}}<div class="booking-widget" style="--primary: {{.Theme.PrimaryColor}}; --secondary: {{.Theme.SecondaryColor}}">
{{if .ClientName}}<div class="widget-header">{{.ClientName}}</div>{{end}}
{{template "screen" .}}
</div>{{end}}

{{define "loading"}}<div class="widget-loading">Loading…</div>{{end}}

{{define "search"}}<form class="widget-search">
<label>Pickup date <input type="date" name="pickup_date" value="{{.Form.PickupDate}}"></label>
<label>Dropoff date <input type="date" name="dropoff_date" value="{{.Form.DropoffDate}}"></label>
<label>Travellers <input type="number" name="number_of_people" min="1" value="{{.Form.NumberOfPeople}}"></label>
<button type="submit">Search vehicles</button>
</form>{{end}}

{{define "results"}}<div class="widget-results">
{{if .Vehicles}}<ul>
{{range .Vehicles}}<li class="widget-vehicle" data-vehicle-id="{{.Id}}">
<span class="vehicle-name">{{.Name}}</span>
<span class="vehicle-operator">{{.OperatorName}}</span>
<span class="vehicle-price">{{printf "%.2f" .PricePerDay}} / day · {{printf "%.2f" .TotalPrice}} total for {{.Days}} days</span>
<button data-select="{{.Id}}">Select</button>
</li>{{end}}
</ul>{{else}}<p class="widget-empty">No vehicles available for these dates.</p>{{end}}
</div>{{end}}

{{define "booking"}}<form class="widget-booking" data-vehicle-id="{{.Selected.Id}}">
<div class="booking-summary">{{.Selected.Name}} · {{printf "%.2f" .Selected.TotalPrice}} for {{.Selected.Days}} days</div>
<label>Name <input type="text" name="guest_name" required></label>
<label>Email <input type="email" name="guest_email" required></label>
<label>Phone <input type="tel" name="guest_phone"></label>
<button type="submit">Confirm booking</button>
<button type="button" data-back="results">Back</button>
</form>{{end}}

{{define "confirmed"}}<div class="widget-confirmed">
<p>Booking confirmed!</p>
<p class="booking-reference">Reference: {{.Booking.Id}}</p>
<p>Total: {{printf "%.2f" .Booking.TotalPrice}}</p>
<button data-back="search">New search</button>
</div>{{end}}

{{define "unavailable"}}<div class="widget-unavailable">
<p>The booking service is currently unavailable. Please try again later.</p>
</div>{{end}}
`))

type frameData struct {
	Theme      schema.Theme
	ClientName string
	State      State
}

func (c *Controller) theme() schema.Theme {
	if c.clientConfig != nil {
		return c.clientConfig.Theme
	}

	return schema.Theme{
		PrimaryColor:   defaultPrimaryColor,
		SecondaryColor: defaultSecondaryColor,
	}
}

// Render writes the HTML for the active screen, wrapped in the themed
// widget frame.
func (c *Controller) Render(w io.Writer) error {
	data := frameData{Theme: c.theme(), State: c.state}
	if c.clientConfig != nil {
		data.ClientName = c.clientConfig.Name
	}

	screen := "loading"
	if c.state != nil {
		screen = c.state.stateName()
	}

	frame, err := screenTemplate.Clone()
	if err != nil {
		return err
	}

	_, err = frame.New("screen").Parse(fmt.Sprintf(`{{template %q .State}}`, screen))
	if err != nil {
		return err
	}

	return frame.ExecuteTemplate(w, "frame", data)
}
