package suit

import "testing"

func TestNormalizeVariants(t *testing.T) {
	cases := []struct {
		in   string
		want Suit
	}{
		{"♠", Spade},
		{"♥", Heart},
		{"♦", Diamond},
		{"♣", Club},
		{"♠️", Spade},
		{"♥️", Heart},
		{"♦️", Diamond},
		{"♣️", Club},
		{"❤️", Heart},
		{"❤", Heart},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeUnrecognizedPassthrough(t *testing.T) {
	if got := Normalize("x"); got != Suit("x") {
		t.Errorf("Normalize(%q) = %q, want passthrough", "x", got)
	}
}

func TestPredictTables(t *testing.T) {
	// Even rounds: ♠→♣, ♣→♠, ♦→♥, ♥→♦
	even := map[Suit]Suit{Spade: Club, Club: Spade, Diamond: Heart, Heart: Diamond}
	// Odd rounds: ♠→♥, ♣→♦, ♦→♣, ♥→♠
	odd := map[Suit]Suit{Spade: Heart, Club: Diamond, Diamond: Club, Heart: Spade}

	for base, want := range even {
		if got := Predict(base, 1220); got != want {
			t.Errorf("Predict(%q, even) = %q, want %q", base, got, want)
		}
	}
	for base, want := range odd {
		if got := Predict(base, 1219); got != want {
			t.Errorf("Predict(%q, odd) = %q, want %q", base, got, want)
		}
	}
}

func TestPredictNoFixedPoints(t *testing.T) {
	for _, round := range []int{1219, 1220} {
		for _, s := range All {
			if got := Predict(s, round); got == s {
				t.Errorf("Predict(%q, %d) returned its input", s, round)
			}
		}
	}
}

func TestPredictNormalizesInput(t *testing.T) {
	// A variation-selector suit goes through normalization first.
	if got := Predict(Suit("♥️"), 1219); got != Spade {
		t.Errorf("Predict(♥️, odd) = %q, want %q", got, Spade)
	}
}

func TestPredictUnrecognizedPassthrough(t *testing.T) {
	if got := Predict(Suit("x"), 1219); got != Suit("x") {
		t.Errorf("Predict(x, odd) = %q, want passthrough", got)
	}
}

func TestDisplay(t *testing.T) {
	cases := []struct {
		in   Suit
		want string
	}{
		{Spade, "♠️"},
		{Heart, "❤️"},
		{Diamond, "♦️"},
		{Club, "♣️"},
		{Suit("x"), "x"},
	}
	for _, c := range cases {
		if got := Display(c.in); got != c.want {
			t.Errorf("Display(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
