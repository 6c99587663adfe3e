// Package routes derives the deduplicated airline/destination route table
// from a combined schedule.
package routes

import (
	"sort"
	"strings"

	"github.com/saviobatista/route-builder/internal/aircraft"
	"github.com/saviobatista/route-builder/internal/parser"
	"github.com/saviobatista/route-builder/internal/types"
)

// operatorStatus marks legs listed under the operating carrier
const operatorStatus = "isoperator"

// Extract builds the route table from every leg in the combined schedule.
// homeICAO, when non-empty, drops legs whose counterpart is the airport itself.
// Legs that fail any filter are skipped without being reported.
func Extract(combined types.CombinedSchedule, homeICAO string) types.RouteTable {
	table := types.RouteTable{}

	keys := make([]string, 0, len(combined))
	for k := range combined {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		payload, err := parser.ParsePayload(combined[key])
		if err != nil {
			continue
		}
		for _, dir := range parser.Directions {
			for _, raw := range parser.Legs(payload, dir) {
				leg, err := parser.ParseLeg(raw)
				if err != nil {
					continue
				}
				if rk, fam, ok := routeFor(leg, dir, homeICAO); ok {
					table.Add(rk, fam)
				}
			}
		}
	}

	return table
}

// routeFor applies the leg filters and returns the route and family the leg contributes
func routeFor(leg *types.FlightLeg, dir parser.Direction, homeICAO string) (types.RouteKey, types.Family, bool) {
	if !strings.EqualFold(leg.CodeshareStatus, operatorStatus) {
		return types.RouteKey{}, types.Family{}, false
	}

	airline := strings.ToUpper(leg.Airline.ICAO)
	if len(airline) != 3 {
		return types.RouteKey{}, types.Family{}, false
	}

	dest := parser.Counterpart(leg, dir)
	if dest == "" || dest == homeICAO {
		return types.RouteKey{}, types.Family{}, false
	}

	fam, ok := aircraft.Resolve(leg.Aircraft.Model)
	if !ok {
		return types.RouteKey{}, types.Family{}, false
	}

	return types.RouteKey{Airline: airline, Destination: dest}, fam, true
}

// LegCount returns the number of legs listed across all decodable payloads
func LegCount(combined types.CombinedSchedule) int {
	n := 0
	for _, raw := range combined {
		payload, err := parser.ParsePayload(raw)
		if err != nil {
			continue
		}
		for _, dir := range parser.Directions {
			n += len(parser.Legs(payload, dir))
		}
	}
	return n
}
