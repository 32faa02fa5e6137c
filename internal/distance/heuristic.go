package distance

import "hash/fnv"

// mileBand is an inclusive range of plausible distances for an area.
type mileBand struct {
	min float64
	max float64
}

type namedBand struct {
	match string
	band  mileBand
}

// Known towns around the kitchen, nearest first, mapped to how far
// out they sit. This is a stand-in for real geocoding: good enough
// to quote a delivery fee, stable enough to quote it twice. Order
// matters: the first match wins, so "123 Troy Rd, Albany" reads as
// Troy consistently.
var townBands = []namedBand{
	{"troy", mileBand{1, 4}},
	{"watervliet", mileBand{2, 5}},
	{"cohoes", mileBand{4, 8}},
	{"latham", mileBand{6, 10}},
	{"albany", mileBand{8, 14}},
	{"schenectady", mileBand{12, 18}},
	{"saratoga", mileBand{18, 26}},
	{"bennington", mileBand{22, 30}},
}

// ZIP prefixes cover addresses that spell a code but no town name.
var zipBands = []namedBand{
	{"121", mileBand{1, 6}},
	{"120", mileBand{4, 12}},
	{"122", mileBand{8, 16}},
	{"123", mileBand{12, 20}},
	{"128", mileBand{18, 28}},
}

// fallback band for addresses matching nothing we recognize.
var unknownBand = mileBand{15, 35}

// Heuristic is the production Estimator: pattern-match the address
// against local towns and ZIP prefixes to pick a mileage band, then
// take a hash-seeded offset inside the band so distinct addresses in
// the same town spread out while each address stays fixed.
type Heuristic struct{}

func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

func (h *Heuristic) Estimate(address string) float64 {
	addr := normalize(address)
	if addr == "" {
		return 0
	}

	band := bandFor(addr)

	// deterministic tenth-of-a-mile offset within the band
	span := int64((band.max - band.min) * 10)
	if span <= 0 {
		return band.min
	}

	hasher := fnv.New64a()
	hasher.Write([]byte(addr))
	offset := float64(hasher.Sum64()%uint64(span+1)) / 10

	return band.min + offset
}

func bandFor(addr string) mileBand {
	for _, t := range townBands {
		if containsWord(addr, t.match) {
			return t.band
		}
	}

	for _, z := range zipBands {
		if hasZipPrefix(addr, z.match) {
			return z.band
		}
	}

	return unknownBand
}

// containsWord reports whether needle appears in addr bounded by
// non-alphanumeric characters, so "troy" does not match "destroyer".
func containsWord(addr, needle string) bool {
	for i := 0; i+len(needle) <= len(addr); i++ {
		if addr[i:i+len(needle)] != needle {
			continue
		}
		if i > 0 && isAlnum(addr[i-1]) {
			continue
		}
		if end := i + len(needle); end < len(addr) && isAlnum(addr[end]) {
			continue
		}
		return true
	}
	return false
}

// hasZipPrefix matches a 5-digit run starting with prefix.
func hasZipPrefix(addr, prefix string) bool {
	for i := 0; i+5 <= len(addr); i++ {
		if i > 0 && isDigit(addr[i-1]) {
			continue
		}
		run := addr[i : i+5]
		if !allDigits(run) {
			continue
		}
		if run[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}

func isAlnum(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
