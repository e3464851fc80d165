package itinerary

// RecordKind discriminates the two display record variants.
type RecordKind string

const (
	KindSummary RecordKind = "summary"
	KindLeg     RecordKind = "leg"
)

// Record is one row of the flattened display sequence, either a
// SummaryRecord or a LegRecord. Records are plain values owned by the
// caller; the engine keeps no state between calls.
type Record interface {
	Kind() RecordKind
}

// SummaryRecord is the one-per-offer overview row. Departure comes from the
// itinerary's first segment, arrival from its last.
type SummaryRecord struct {
	OfferID           string
	Stops             int
	DepartureAirport  string
	DepartureTime     string
	ArrivalAirport    string
	ArrivalTime       string
	Duration          string
	ValidatingCarrier string
	Price             string
	Currency          string
	BookableSeats     int
}

func (SummaryRecord) Kind() RecordKind { return KindSummary }

// LegRecord is one row per flight segment, ordinal counted from 1 in
// chronological order.
type LegRecord struct {
	Leg              int
	DepartureAirport string
	DepartureTime    string
	ArrivalAirport   string
	ArrivalTime      string
	Duration         string
	CarrierCode      string
	FlightNumber     string
}

func (LegRecord) Kind() RecordKind { return KindLeg }
