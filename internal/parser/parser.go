package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/saviobatista/route-builder/internal/types"
)

// Direction is the side of the schedule a leg was listed under
type Direction int

const (
	// Schedule directions
	DirectionDeparture Direction = iota
	DirectionArrival
)

// Directions lists the sides in the order they are scanned
var Directions = []Direction{DirectionDeparture, DirectionArrival}

// String returns the payload field name for the direction
func (d Direction) String() string {
	switch d {
	case DirectionDeparture:
		return "departures"
	case DirectionArrival:
		return "arrivals"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParsePayload decodes a raw window payload. Only JSON objects are accepted.
func ParsePayload(raw json.RawMessage) (*types.WindowPayload, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("invalid payload: expected JSON object")
	}

	var payload types.WindowPayload
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return nil, fmt.Errorf("invalid payload: %w", err)
	}

	return &payload, nil
}

// Legs returns the raw legs listed under a direction
func Legs(payload *types.WindowPayload, dir Direction) []json.RawMessage {
	switch dir {
	case DirectionDeparture:
		return payload.Departures
	case DirectionArrival:
		return payload.Arrivals
	default:
		return nil
	}
}

// ParseLeg decodes a single flight leg
func ParseLeg(raw json.RawMessage) (*types.FlightLeg, error) {
	var leg types.FlightLeg
	if err := json.Unmarshal(raw, &leg); err != nil {
		return nil, fmt.Errorf("invalid leg: %w", err)
	}
	return &leg, nil
}

// Counterpart returns the uppercased ICAO code of the airport at the other
// end of the leg: the arrival airport for departures, the departure airport
// for arrivals.
func Counterpart(leg *types.FlightLeg, dir Direction) string {
	if dir == DirectionDeparture {
		return strings.ToUpper(leg.Arrival.Airport.ICAO)
	}
	return strings.ToUpper(leg.Departure.Airport.ICAO)
}
