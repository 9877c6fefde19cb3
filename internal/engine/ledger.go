package engine

import (
	"fmt"
	"sort"
)

// ledgerCap bounds both dedup ledgers. Exceeding it triggers trimming
// for rounds and a full clear for fingerprints.
const ledgerCap = 500

// ledgerTrim is how many entries a round-ledger trim removes.
const ledgerTrim = 250

// fingerprintPrefixLen is how many characters of the result text go
// into a verification fingerprint.
const fingerprintPrefixLen = 80

// roundLedger records round numbers whose immediate path has already
// run. When it grows past ledgerCap, the numerically smallest entries
// are removed: a rolling window by value, not by arrival order.
type roundLedger struct {
	rounds map[int]struct{}
}

func newRoundLedger() *roundLedger {
	return &roundLedger{rounds: make(map[int]struct{})}
}

// Seen reports whether round has already been recorded.
func (l *roundLedger) Seen(round int) bool {
	_, ok := l.rounds[round]
	return ok
}

// Record adds round and trims the ledger if it grew past the cap.
func (l *roundLedger) Record(round int) {
	l.rounds[round] = struct{}{}
	if len(l.rounds) <= ledgerCap {
		return
	}

	sorted := make([]int, 0, len(l.rounds))
	for r := range l.rounds {
		sorted = append(sorted, r)
	}
	sort.Ints(sorted)
	for _, r := range sorted[:ledgerTrim] {
		delete(l.rounds, r)
	}
}

// Len returns the number of recorded rounds.
func (l *roundLedger) Len() int {
	return len(l.rounds)
}

// Clear removes every entry.
func (l *roundLedger) Clear() {
	l.rounds = make(map[int]struct{})
}

// fingerprintLedger records composite keys of finalized result messages
// already verified. Past the cap it is cleared entirely: a coarser
// policy than the round ledger's trim, intentionally cheaper.
type fingerprintLedger struct {
	seen map[string]struct{}
}

func newFingerprintLedger() *fingerprintLedger {
	return &fingerprintLedger{seen: make(map[string]struct{})}
}

// fingerprint builds the dedup key for a finalized message: the round
// number plus the first fingerprintPrefixLen characters of the text.
func fingerprint(round int, text string) string {
	runes := []rune(text)
	if len(runes) > fingerprintPrefixLen {
		runes = runes[:fingerprintPrefixLen]
	}
	return fmt.Sprintf("%d_%s", round, string(runes))
}

// Seen reports whether fp has already been recorded.
func (l *fingerprintLedger) Seen(fp string) bool {
	_, ok := l.seen[fp]
	return ok
}

// Record adds fp and clears the whole ledger if it grew past the cap.
func (l *fingerprintLedger) Record(fp string) {
	l.seen[fp] = struct{}{}
	if len(l.seen) > ledgerCap {
		l.seen = make(map[string]struct{})
	}
}

// Len returns the number of recorded fingerprints.
func (l *fingerprintLedger) Len() int {
	return len(l.seen)
}

// Clear removes every entry.
func (l *fingerprintLedger) Clear() {
	l.seen = make(map[string]struct{})
}
