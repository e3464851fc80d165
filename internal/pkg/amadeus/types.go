package amadeus

// Raw payload shapes of the flight-offers search API. Decoding into these
// types is the only place the nested provider document is interpreted;
// everything downstream works on structured values.

type Offer struct {
	ID                     string      `json:"id"`
	Itineraries            []Itinerary `json:"itineraries"`
	ValidatingAirlineCodes []string    `json:"validatingAirlineCodes"`
	Price                  Price       `json:"price"`
	NumberOfBookableSeats  int         `json:"numberOfBookableSeats"`
}

type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

type Segment struct {
	Departure   FlightPoint `json:"departure"`
	Arrival     FlightPoint `json:"arrival"`
	Duration    string      `json:"duration"`
	CarrierCode string      `json:"carrierCode"`
	Number      string      `json:"number"`
}

type FlightPoint struct {
	IATACode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"`
}

// Price totals are decimal strings on the wire and stay strings in memory.
// Parsing them to floats would introduce rounding drift and no component
// does arithmetic on them.
type Price struct {
	Currency   string `json:"currency"`
	Total      string `json:"total,omitempty"`
	GrandTotal string `json:"grandTotal"`
}

type Airline struct {
	IATACode     string `json:"iataCode"`
	ICAOCode     string `json:"icaoCode,omitempty"`
	BusinessName string `json:"businessName,omitempty"`
	CommonName   string `json:"commonName"`
}

type searchOffersResponse struct {
	Data []Offer `json:"data"`
}

type airlinesResponse struct {
	Data []Airline `json:"data"`
}
