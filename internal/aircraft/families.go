package aircraft

var familyIDs = map[string]int{
	"AT42": 3, "AT72": 3, "DH8D": 4,
	"CRJ7": 5, "CRJ9": 5, "CRJ1": 5, "CRJ2": 24,
	"ARJ21": 5, "MD80": 5, "MD90": 5, "B717": 5,
	"A220": 6, "E295": 6, "E195": 6, "E190": 25, "E175": 25, "E170": 25, "E145": 24,
	"A321": 7, "A320": 7, "A319": 7, "A300": 7, "A310": 7,
	"A350": 8, "A380": 9, "B737": 10, "B787": 11, "B747": 12,
	"B757": 13, "A340": 14, "B777": 15, "A330": 16, "B767": 17,
	"C208": 22, "B190": 23, "F100": 26,
	"TU204": 18, "AN12": 19, "AN124": 20, "MD11": 21,
	"IL18": 27, "IL62": 28, "IL96": 29, "TU154": 30, "B462": 31, "J328": 32,
}

// FamilyID returns the numeric identifier for a family code
func FamilyID(code string) (int, bool) {
	id, ok := familyIDs[code]
	return id, ok
}

// FamilyIDOrFallback returns the identifier for code, or FallbackFamilyID when the code is not in the table
func FamilyIDOrFallback(code string) int {
	if id, ok := FamilyID(code); ok {
		return id
	}
	return FallbackFamilyID
}
