// Package parse extracts the structured parts of a round announcement:
// the round number, the parenthesized card groups, and the finalization
// state of the result text.
package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tdiallo/suitoracle/internal/suit"
)

// roundRe matches the round marker: "#N" followed by digits, with an
// optional trailing period. Case-insensitive.
var roundRe = regexp.MustCompile(`(?i)#N\s*(\d+)\.?`)

// groupRe matches non-nested parenthesized spans, including empty ones.
var groupRe = regexp.MustCompile(`\(([^)]*)\)`)

// suitRe matches any accepted suit token. Variation-selector and emoji
// forms come first so they win over the bare glyph at the same position.
var suitRe = regexp.MustCompile(`♠️|♥️|♦️|♣️|❤️|❤|[♠♥♦♣]`)

const (
	pendingMarker = "⏰"
	doneMarker    = "✅"
	altDoneMarker = "🔰"
)

// RoundNumber returns the round number from the first "#N<digits>"
// marker in text. ok is false when the text carries no marker, which
// means it is not a round announcement.
func RoundNumber(text string) (int, bool) {
	m := roundRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Groups returns the contents of every parenthesized span in text, in
// appearance order. Empty parentheses yield an empty string element;
// position matters for group indexing.
func Groups(text string) []string {
	matches := groupRe.FindAllStringSubmatch(text, -1)
	groups := make([]string, 0, len(matches))
	for _, m := range matches {
		groups = append(groups, m[1])
	}
	return groups
}

// FirstSuit returns the first suit token in the group, normalized.
// ok is false when the group contains no suit token.
func FirstSuit(group string) (suit.Suit, bool) {
	m := suitRe.FindString(group)
	if m == "" {
		return "", false
	}
	return suit.Normalize(m), true
}

// ContainsSuit reports whether any suit token in the group normalizes
// to target. All occurrences are checked, not just the first.
func ContainsSuit(group string, target suit.Suit) bool {
	normalized := suit.Normalize(string(target))
	for _, m := range suitRe.FindAllString(group, -1) {
		if suit.Normalize(m) == normalized {
			return true
		}
	}
	return false
}

// IsFinalized reports whether text is a finalized round result. A
// pending marker anywhere forces false regardless of other content;
// otherwise either completion marker counts.
func IsFinalized(text string) bool {
	if strings.Contains(text, pendingMarker) {
		return false
	}
	return strings.Contains(text, doneMarker) || strings.Contains(text, altDoneMarker)
}
