package types

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// Code types understood by the schedule API path
const (
	CodeTypeIATA = "iata"
	CodeTypeICAO = "icao"
)

// DateLayout is the calendar date format used for prompts, request paths and keys
const DateLayout = "2006-01-02"

// WindowDays is the number of calendar days covered by one run
const WindowDays = 7

// HalfDay is one of the two sub-windows a day is split into
type HalfDay struct {
	Label string
	From  string
	To    string
}

// HalfDays lists the sub-windows in request order
var HalfDays = []HalfDay{
	{Label: "am", From: "00:00", To: "11:59"},
	{Label: "pm", From: "12:00", To: "23:59"},
}

// CodeTypeFor returns the code type for an airport code: iata for 3 characters, icao otherwise
func CodeTypeFor(code string) string {
	if len(code) == 3 {
		return CodeTypeIATA
	}
	return CodeTypeICAO
}

// HomeICAO returns the airport's own ICAO code, or "" when it was given as IATA
func HomeICAO(code string) string {
	if CodeTypeFor(code) == CodeTypeICAO {
		return code
	}
	return ""
}

// WindowEnd returns the last day of the window starting at start
func WindowEnd(start time.Time) time.Time {
	return start.AddDate(0, 0, WindowDays-1)
}

// ValidWindow reports whether the whole window starting at start lies before today.
// Only the calendar dates are compared.
func ValidWindow(start, today time.Time) bool {
	return dateOnly(WindowEnd(start)).Before(dateOnly(today))
}

// WindowDates returns the days of the window starting at start
func WindowDates(start time.Time) []time.Time {
	days := make([]time.Time, 0, WindowDays)
	for i := 0; i < WindowDays; i++ {
		days = append(days, start.AddDate(0, 0, i))
	}
	return days
}

// WindowKey builds the combined schedule key for a day and half-day label
func WindowKey(day time.Time, label string) string {
	return fmt.Sprintf("%s_%s", day.Format(DateLayout), label)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CombinedSchedule holds the raw fetch result for every window key
type CombinedSchedule map[string]json.RawMessage

// ErrorMarker is stored in place of a payload when a window fetch fails
type ErrorMarker struct {
	Error      string        `json:"_error"`
	Departures []interface{} `json:"departures"`
	Arrivals   []interface{} `json:"arrivals"`
}

// NewErrorMarker returns the marker document for a failed window
func NewErrorMarker(msg string) json.RawMessage {
	data, _ := json.Marshal(ErrorMarker{
		Error:      msg,
		Departures: []interface{}{},
		Arrivals:   []interface{}{},
	})
	return data
}

// MarkerError returns the error text of a marker document, if raw is one
func MarkerError(raw json.RawMessage) (string, bool) {
	var probe struct {
		Error *string `json:"_error"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil || probe.Error == nil {
		return "", false
	}
	return *probe.Error, true
}

// WindowPayload is the part of a window payload the route extractor reads
type WindowPayload struct {
	Departures []json.RawMessage `json:"departures"`
	Arrivals   []json.RawMessage `json:"arrivals"`
}

// The leg types decode only the fields route extraction reads. Anything else
// in a leg is left undecoded so an odd value there cannot reject the leg.

// Airport is the airport reference inside a leg movement
type Airport struct {
	ICAO string `json:"icao"`
}

// Movement is the departure or arrival side of a leg
type Movement struct {
	Airport Airport `json:"airport"`
}

// Airline identifies the carrier of a leg
type Airline struct {
	ICAO string `json:"icao"`
}

// Aircraft describes the equipment flown on a leg
type Aircraft struct {
	Model string `json:"model"`
}

// FlightLeg is a single departure or arrival record
type FlightLeg struct {
	CodeshareStatus string   `json:"codeshareStatus"`
	Airline         Airline  `json:"airline"`
	Departure       Movement `json:"departure"`
	Arrival         Movement `json:"arrival"`
	Aircraft        Aircraft `json:"aircraft"`
}

// Family is an aircraft family code with its numeric identifier
type Family struct {
	Code string `json:"code"`
	ID   int    `json:"id"`
}

// String renders the family as CODE.ID
func (f Family) String() string {
	return fmt.Sprintf("%s.%d", f.Code, f.ID)
}

// RouteKey identifies a route by operating airline and destination airport
type RouteKey struct {
	Airline     string `json:"airline"`
	Destination string `json:"destination"`
}

// RouteTable maps each route to the set of aircraft families seen on it
type RouteTable map[RouteKey]map[Family]struct{}

// Add records a family for the route
func (rt RouteTable) Add(key RouteKey, fam Family) {
	set, ok := rt[key]
	if !ok {
		set = make(map[Family]struct{})
		rt[key] = set
	}
	set[fam] = struct{}{}
}

// Keys returns the routes sorted by airline, then destination
func (rt RouteTable) Keys() []RouteKey {
	keys := make([]RouteKey, 0, len(rt))
	for k := range rt {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Airline != keys[j].Airline {
			return keys[i].Airline < keys[j].Airline
		}
		return keys[i].Destination < keys[j].Destination
	})
	return keys
}

// Families returns the families of a route sorted by code, then id
func (rt RouteTable) Families(key RouteKey) []Family {
	fams := make([]Family, 0, len(rt[key]))
	for f := range rt[key] {
		fams = append(fams, f)
	}
	sort.Slice(fams, func(i, j int) bool {
		if fams[i].Code != fams[j].Code {
			return fams[i].Code < fams[j].Code
		}
		return fams[i].ID < fams[j].ID
	})
	return fams
}

// RouteTableMessage is the published form of a finished route table
type RouteTableMessage struct {
	RunID       string    `json:"run_id"`
	Airport     string    `json:"airport"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	GeneratedAt time.Time `json:"generated_at"`
	Routes      []string  `json:"routes"`
}
