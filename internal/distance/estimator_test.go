package distance

import "testing"

func TestEstimateDeterministic(t *testing.T) {
	h := NewHeuristic()
	addr := "451 Fulton St, Troy NY 12180"

	first := h.Estimate(addr)
	for i := 0; i < 50; i++ {
		if got := h.Estimate(addr); got != first {
			t.Fatalf("estimate changed between calls: %v then %v", first, got)
		}
	}
}

func TestEstimateNormalization(t *testing.T) {
	h := NewHeuristic()

	a := h.Estimate("451 Fulton St, Troy NY")
	b := h.Estimate("  451 FULTON ST, TROY NY  ")
	if a != b {
		t.Fatalf("case/whitespace variants differ: %v vs %v", a, b)
	}
}

func TestEstimateTownBands(t *testing.T) {
	h := NewHeuristic()

	cases := []struct {
		addr string
		min  float64
		max  float64
	}{
		{"12 Main St, Troy NY", 1, 4},
		{"88 State St, Albany NY", 8, 14},
		{"5 Broadway, Saratoga Springs", 18, 26},
	}

	for _, c := range cases {
		got := h.Estimate(c.addr)
		if got < c.min || got > c.max {
			t.Fatalf("%q: expected %v..%v miles, got %v", c.addr, c.min, c.max, got)
		}
	}
}

func TestEstimateZipPrefix(t *testing.T) {
	h := NewHeuristic()

	got := h.Estimate("14 Oak Ave 12304")
	if got < 12 || got > 20 {
		t.Fatalf("123xx zip should land in the 12..20 band, got %v", got)
	}
}

func TestEstimateUnknownAddressIsFar(t *testing.T) {
	h := NewHeuristic()

	got := h.Estimate("1 Infinite Loop, Cupertino CA")
	if got < 15 || got > 35 {
		t.Fatalf("unknown address should fall in the far band, got %v", got)
	}
}

func TestEstimateEmptyAddress(t *testing.T) {
	if got := NewHeuristic().Estimate("   "); got != 0 {
		t.Fatalf("blank address should estimate 0 miles, got %v", got)
	}
}

func TestEstimateWordBoundary(t *testing.T) {
	h := NewHeuristic()

	// "destroyer" must not match the troy band
	got := h.Estimate("USS Destroyer Museum Pier, Somewhere")
	if got >= 1 && got <= 4 {
		t.Fatalf("substring match leaked through a word boundary: %v", got)
	}
}

func TestCheckRadiusBoundary(t *testing.T) {
	on := CheckRadius(30, 30)
	if !on.IsWithinRadius {
		t.Fatal("distance exactly on the radius must be serviceable")
	}

	past := CheckRadius(30.1, 30)
	if past.IsWithinRadius {
		t.Fatal("distance past the radius must be rejected")
	}
	if past.MaxRadiusMiles != 30 {
		t.Fatalf("expected max radius 30, got %v", past.MaxRadiusMiles)
	}
}

func TestCheckRadiusRoundsToTenths(t *testing.T) {
	res := CheckRadius(10.449, 30)
	if res.DistanceMiles != 10.4 {
		t.Fatalf("expected 10.4, got %v", res.DistanceMiles)
	}
}

func TestTravelMinutesLinear(t *testing.T) {
	near := CheckRadius(2, 30).EstimatedTravelMinutes
	far := CheckRadius(25, 30).EstimatedTravelMinutes

	if near <= 0 {
		t.Fatalf("travel estimate should include load-out time, got %d", near)
	}
	if far <= near {
		t.Fatalf("farther address should take longer: %d vs %d", near, far)
	}
}
