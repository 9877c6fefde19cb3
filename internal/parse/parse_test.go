package parse

import (
	"reflect"
	"testing"

	"github.com/tdiallo/suitoracle/internal/suit"
)

func TestRoundNumber(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int
		ok   bool
	}{
		{"plain", "Résultat #N1219 (Banker ♠)", 1219, true},
		{"trailing period", "#N1219. suite", 1219, true},
		{"space after marker", "#N 42", 42, true},
		{"lowercase marker", "#n1219", 1219, true},
		{"first match wins", "#N10 then #N20", 10, true},
		{"absent", "no round here", 0, false},
		{"hash without digits", "#N suite", 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := RoundNumber(c.text)
			if ok != c.ok || got != c.want {
				t.Errorf("RoundNumber(%q) = (%d, %v), want (%d, %v)", c.text, got, ok, c.want, c.ok)
			}
		})
	}
}

func TestGroups(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []string
	}{
		{"two groups", "#N1 (Banker ♠) (Player ♥️)", []string{"Banker ♠", "Player ♥️"}},
		{"empty group kept in position", "(a) () (c)", []string{"a", "", "c"}},
		{"none", "no parens", []string{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Groups(c.text); !reflect.DeepEqual(got, c.want) {
				t.Errorf("Groups(%q) = %v, want %v", c.text, got, c.want)
			}
		})
	}
}

func TestFirstSuit(t *testing.T) {
	cases := []struct {
		name string
		text string
		want suit.Suit
		ok   bool
	}{
		{"bare glyph", "Banker ♠ K", suit.Spade, true},
		{"variation selector", "Player ♥️ 10", suit.Heart, true},
		{"heavy heart alias", "Player ❤️", suit.Heart, true},
		{"first of several", "♦ then ♣", suit.Diamond, true},
		{"absent", "Banker 10 J Q", "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := FirstSuit(c.text)
			if ok != c.ok || got != c.want {
				t.Errorf("FirstSuit(%q) = (%q, %v), want (%q, %v)", c.text, got, ok, c.want, c.ok)
			}
		})
	}
}

func TestContainsSuit(t *testing.T) {
	cases := []struct {
		name   string
		group  string
		target suit.Suit
		want   bool
	}{
		{"present first", "Banker ♠ ♦", suit.Spade, true},
		{"present later", "Banker ♦ ♠", suit.Spade, true},
		{"absent", "Banker ♦ ♥", suit.Spade, false},
		{"emoji variant in group", "Banker ♥️", suit.Heart, true},
		{"emoji variant as target", "Banker ♠", suit.Suit("♠️"), true},
		{"empty group", "", suit.Spade, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ContainsSuit(c.group, c.target); got != c.want {
				t.Errorf("ContainsSuit(%q, %q) = %v, want %v", c.group, c.target, got, c.want)
			}
		})
	}
}

func TestIsFinalized(t *testing.T) {
	cases := []struct {
		name string
		text string
		want bool
	}{
		{"check mark", "#N1220 ✅ (Banker ♠)", true},
		{"alternate marker", "#N1220 🔰 (Banker ♠)", true},
		{"still pending", "#N1220 ⏰ (Banker ♠)", false},
		{"pending wins over done", "#N1220 ✅ ⏰ (Banker ♠)", false},
		{"no marker at all", "#N1220 (Banker ♠)", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := IsFinalized(c.text); got != c.want {
				t.Errorf("IsFinalized(%q) = %v, want %v", c.text, got, c.want)
			}
		})
	}
}
