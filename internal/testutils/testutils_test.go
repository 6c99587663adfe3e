package testutils

import (
	"encoding/json"
	"testing"
)

func TestMockLeg(t *testing.T) {
	raw := MockLeg("IsOperator", "QFA", "YBBN", "YSSY", "Boeing 737-800")

	var leg struct {
		CodeshareStatus string `json:"codeshareStatus"`
		Airline         struct {
			ICAO string `json:"icao"`
		} `json:"airline"`
		Departure struct {
			Airport struct {
				ICAO string `json:"icao"`
			} `json:"airport"`
		} `json:"departure"`
		Arrival struct {
			Airport struct {
				ICAO string `json:"icao"`
			} `json:"airport"`
		} `json:"arrival"`
		Aircraft struct {
			Model string `json:"model"`
		} `json:"aircraft"`
	}
	if err := json.Unmarshal(raw, &leg); err != nil {
		t.Fatalf("MockLeg() produced invalid JSON: %v", err)
	}

	if leg.CodeshareStatus != "IsOperator" {
		t.Errorf("Expected codeshareStatus IsOperator, got %s", leg.CodeshareStatus)
	}
	if leg.Airline.ICAO != "QFA" {
		t.Errorf("Expected airline QFA, got %s", leg.Airline.ICAO)
	}
	if leg.Departure.Airport.ICAO != "YBBN" || leg.Arrival.Airport.ICAO != "YSSY" {
		t.Errorf("Unexpected airports %s -> %s", leg.Departure.Airport.ICAO, leg.Arrival.Airport.ICAO)
	}
	if leg.Aircraft.Model != "Boeing 737-800" {
		t.Errorf("Expected model Boeing 737-800, got %s", leg.Aircraft.Model)
	}
}

func TestMockPayload(t *testing.T) {
	raw := MockPayload([]json.RawMessage{MockLeg("IsOperator", "QFA", "YBBN", "YSSY", "A330")}, nil)

	var payload map[string][]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("MockPayload() produced invalid JSON: %v", err)
	}
	if len(payload["departures"]) != 1 {
		t.Errorf("Expected 1 departure, got %d", len(payload["departures"]))
	}
	arrivals, ok := payload["arrivals"]
	if !ok || arrivals == nil || len(arrivals) != 0 {
		t.Errorf("Expected empty arrivals list, got %v", arrivals)
	}
}
