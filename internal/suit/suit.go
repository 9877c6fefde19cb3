// Package suit defines the four canonical card suits, normalization of
// their textual variants, and the parity transform used to derive the
// next round's predicted suit.
package suit

// Suit is one of the four canonical suit glyphs.
type Suit string

const (
	Spade   Suit = "♠"
	Heart   Suit = "♥"
	Diamond Suit = "♦"
	Club    Suit = "♣"
)

// All lists the canonical suits.
var All = []Suit{Heart, Spade, Diamond, Club}

// normalizeTable maps the accepted textual variants of a suit to its
// canonical form: the bare glyph, the glyph with the emoji variation
// selector, and the heavy-heart alias.
var normalizeTable = map[string]Suit{
	"♠":  Spade,
	"♥":  Heart,
	"♦":  Diamond,
	"♣":  Club,
	"♠️": Spade,
	"♥️": Heart,
	"♦️": Diamond,
	"♣️": Club,
	"❤️": Heart,
	"❤":  Heart,
}

// displayTable maps a canonical suit to its outbound display form.
// Hearts display as the red heavy heart.
var displayTable = map[Suit]string{
	Spade:   "♠️",
	Heart:   "❤️",
	Diamond: "♦️",
	Club:    "♣️",
}

// evenTable and oddTable are the two fixed parity transforms. Each is a
// bijection over the four suits with no fixed points.
var evenTable = map[Suit]Suit{
	Spade:   Club,
	Club:    Spade,
	Diamond: Heart,
	Heart:   Diamond,
}

var oddTable = map[Suit]Suit{
	Spade:   Heart,
	Club:    Diamond,
	Diamond: Club,
	Heart:   Spade,
}

// Normalize maps any accepted variant of a suit to its canonical form.
// Unrecognized input is returned unchanged.
func Normalize(raw string) Suit {
	if s, ok := normalizeTable[raw]; ok {
		return s
	}
	return Suit(raw)
}

// Display returns the outbound display form of a suit. Unrecognized
// input is returned unchanged.
func Display(s Suit) string {
	if d, ok := displayTable[s]; ok {
		return d
	}
	return string(s)
}

// Predict maps a base suit to the suit forecast for the following round,
// selecting the transform table by the parity of the base round number.
// An unrecognized suit is returned unchanged; upstream normalization
// makes that case unreachable in practice.
func Predict(base Suit, baseRound int) Suit {
	normalized := Normalize(string(base))

	var table map[Suit]Suit
	if baseRound%2 != 0 {
		table = oddTable
	} else {
		table = evenTable
	}

	if p, ok := table[normalized]; ok {
		return p
	}
	return normalized
}
