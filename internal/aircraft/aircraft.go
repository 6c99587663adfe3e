// Package aircraft maps free-text aircraft model strings onto a fixed set of
// family codes, each with a stable numeric identifier.
package aircraft

import (
	"regexp"
	"strings"

	"github.com/saviobatista/route-builder/internal/types"
)

const (
	// FallbackPropCode is used for prop-like models no rule or token could name
	FallbackPropCode = "GA"
	// FallbackFamilyID is the identifier given to guessed prop codes
	FallbackFamilyID = 1
)

// rule maps model text to a family when match returns true
type rule struct {
	match  func(m string) bool
	family func(m string) string
}

func containsAny(needles ...string) func(string) bool {
	return func(m string) bool {
		for _, n := range needles {
			if strings.Contains(m, n) {
				return true
			}
		}
		return false
	}
}

func fixed(code string) func(string) string {
	return func(string) string { return code }
}

// crjVariant picks the CRJ length variant from the digits in the model text
func crjVariant(m string) string {
	switch {
	case strings.Contains(m, "1000"):
		return "CRJ1"
	case strings.Contains(m, "900"):
		return "CRJ9"
	case strings.Contains(m, "700"):
		return "CRJ7"
	case strings.Contains(m, "200"), strings.Contains(m, "100"):
		return "CRJ2"
	}
	return "CRJ7"
}

// rules is evaluated top to bottom. Narrower codes sit above the broader
// ones they overlap with (A321 before the combined A320/A319 case).
var rules = []rule{
	// Boeing
	{containsAny("737"), fixed("B737")},
	{containsAny("787"), fixed("B787")},
	{containsAny("777"), fixed("B777")},
	{containsAny("747"), fixed("B747")},
	{containsAny("757"), fixed("B757")},

	// Airbus
	{containsAny("A380"), fixed("A380")},
	{containsAny("A350"), fixed("A350")},
	{containsAny("A340"), fixed("A340")},
	{containsAny("A330"), fixed("A330")},
	{containsAny("A321"), fixed("A321")},
	{containsAny("A320", "A319"), fixed("A320")},
	{containsAny("A310"), fixed("A310")},
	{containsAny("A300"), fixed("A300")},

	// A220 and E-jets
	{containsAny("A220"), fixed("A220")},
	{containsAny("E195"), fixed("E195")},
	{containsAny("E190"), fixed("E190")},
	{containsAny("E175", "E170"), fixed("E175")},
	{containsAny("E145"), fixed("E145")},

	// CRJ, including the common "CRG" typo
	{containsAny("CRJ", "CRG"), crjVariant},

	// Props
	{containsAny("Q400", "DHC"), fixed("DH8D")},
	{containsAny("ATR72", "ATR-72", "ATR 72"), fixed("AT72")},
	{containsAny("ATR42", "ATR-42", "ATR 42"), fixed("AT42")},

	// Fokker
	{containsAny("F100", "FOKKER 100"), fixed("F100")},
	{containsAny("F70", "FOKKER 70"), fixed("F100")},

	// Misc
	{containsAny("C208", "CARAVAN"), fixed("C208")},
	{containsAny("B190", "BEECH 1900"), fixed("B190")},
}

// Normalize returns the family code for a model string, or false when the
// model is not recognized as one of the known families.
func Normalize(model string) (string, bool) {
	if model == "" {
		return "", false
	}
	m := strings.ToUpper(model)
	for _, r := range rules {
		if r.match(m) {
			return r.family(m), true
		}
	}
	return "", false
}

var propKeywords = []string{
	"CESSNA", "PIPER", "BEECH", "KING AIR", "TURBOPROP",
	"DHC", "DASH", "ATR", "SAAB", "CARAVAN", "PC12",
}

// IsPropLike reports whether text names a propeller or turboprop maker or class
func IsPropLike(text string) bool {
	return containsAny(propKeywords...)(strings.ToUpper(text))
}

var propDirect = []struct {
	needle string
	code   string
}{
	{"PC12", "PC12"},
	{"C208", "C208"},
	{"CARAVAN", "C208"},
	{"C172", "C172"},
	{"BE200", "BE20"},
	{"KING AIR", "BE20"},
	{"PA31", "PA31"},
	{"PA34", "PA34"},
}

var propToken = regexp.MustCompile(`\b[A-Z]{1,2}\d{2,3}\b`)

// GuessPropCode extracts a best-effort short code from a prop-like model.
// It returns false when neither a known keyword nor a type-like token is found.
func GuessPropCode(model string) (string, bool) {
	s := strings.ToUpper(model)
	for _, d := range propDirect {
		if strings.Contains(s, d.needle) {
			return d.code, true
		}
	}
	if tok := propToken.FindString(s); tok != "" {
		return tok, true
	}
	return "", false
}

// Resolve applies the full family policy to a model string. Known families
// get their table identifier and prop-like models get a guessed code with
// the fallback identifier. Anything else is rejected.
func Resolve(model string) (types.Family, bool) {
	if code, ok := Normalize(model); ok {
		return types.Family{Code: code, ID: FamilyIDOrFallback(code)}, true
	}
	if IsPropLike(model) {
		code, ok := GuessPropCode(model)
		if !ok {
			code = FallbackPropCode
		}
		return types.Family{Code: code, ID: FallbackFamilyID}, true
	}
	return types.Family{}, false
}
