package engine

import (
	"fmt"
	"testing"
)

func TestRoundLedgerTrimsSmallest(t *testing.T) {
	l := newRoundLedger()
	for n := 1; n <= ledgerCap+1; n++ {
		l.Record(n)
	}

	// The insert that crossed the cap trims the 250 numerically
	// smallest entries, leaving 251.
	if got := l.Len(); got != ledgerCap+1-ledgerTrim {
		t.Fatalf("len = %d, want %d", got, ledgerCap+1-ledgerTrim)
	}
	if l.Seen(ledgerTrim) {
		t.Errorf("round %d should have been trimmed", ledgerTrim)
	}
	if !l.Seen(ledgerTrim + 1) {
		t.Errorf("round %d should have survived the trim", ledgerTrim+1)
	}
	if !l.Seen(ledgerCap + 1) {
		t.Errorf("round %d should have survived the trim", ledgerCap+1)
	}
}

func TestRoundLedgerTrimsByValueNotArrival(t *testing.T) {
	l := newRoundLedger()
	// Insert high rounds first, then a late-arriving small one.
	for n := 1000; n < 1000+ledgerCap; n++ {
		l.Record(n)
	}
	l.Record(7)

	// 7 is numerically smallest, so it is evicted even though it was
	// the most recent arrival.
	if l.Seen(7) {
		t.Error("late small round should have been trimmed by value")
	}
	if !l.Seen(1000 + ledgerCap - 1) {
		t.Error("largest round should have survived")
	}
}

func TestRoundLedgerClear(t *testing.T) {
	l := newRoundLedger()
	l.Record(1)
	l.Clear()
	if l.Len() != 0 || l.Seen(1) {
		t.Error("clear left entries behind")
	}
}

func TestFingerprintLedgerClearsWhenFull(t *testing.T) {
	l := newFingerprintLedger()
	for n := 0; n < ledgerCap; n++ {
		l.Record(fingerprint(n, "text"))
	}
	if got := l.Len(); got != ledgerCap {
		t.Fatalf("len = %d, want %d", got, ledgerCap)
	}

	// Crossing the cap wipes everything, including the new entry.
	l.Record(fingerprint(ledgerCap, "text"))
	if got := l.Len(); got != 0 {
		t.Errorf("len after overflow = %d, want 0", got)
	}
}

func TestFingerprintBoundedPrefix(t *testing.T) {
	long := ""
	for i := 0; i < 200; i++ {
		long += "é" // multi-byte, exercises rune slicing
	}
	short := long[:len("é")*fingerprintPrefixLen]

	if fingerprint(1, long) != fingerprint(1, short+"different tail") {
		t.Error("fingerprints should agree on the first 80 characters only")
	}
	if fingerprint(1, long) == fingerprint(2, long) {
		t.Error("fingerprints must include the round number")
	}
	if got, want := fingerprint(3, "abc"), fmt.Sprintf("%d_%s", 3, "abc"); got != want {
		t.Errorf("fingerprint(3, abc) = %q, want %q", got, want)
	}
}
