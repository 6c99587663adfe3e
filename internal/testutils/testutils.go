package testutils

import (
	"encoding/json"
	"fmt"
)

// MockLeg creates a raw flight leg in the schedule API shape for testing
func MockLeg(codeshareStatus, airline, departure, arrival, model string) json.RawMessage {
	leg := map[string]interface{}{
		"number":          fmt.Sprintf("%s 100", airline),
		"codeshareStatus": codeshareStatus,
		"airline":         map[string]interface{}{"name": "Test Airline", "icao": airline},
		"departure":       map[string]interface{}{"airport": map[string]interface{}{"icao": departure}},
		"arrival":         map[string]interface{}{"airport": map[string]interface{}{"icao": arrival}},
		"aircraft":        map[string]interface{}{"model": model},
	}
	data, _ := json.Marshal(leg)
	return data
}

// MockPayload creates a raw window payload from departure and arrival legs
func MockPayload(departures, arrivals []json.RawMessage) json.RawMessage {
	if departures == nil {
		departures = []json.RawMessage{}
	}
	if arrivals == nil {
		arrivals = []json.RawMessage{}
	}
	data, _ := json.Marshal(map[string]interface{}{
		"departures": departures,
		"arrivals":   arrivals,
	})
	return data
}
