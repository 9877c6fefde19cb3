package engine

import (
	"testing"

	"github.com/tdiallo/suitoracle/internal/suit"
)

func TestPendingText(t *testing.T) {
	if got, want := PendingText(1220, suit.Spade), "📲Game:1220:♠️ statut :⏳"; got != want {
		t.Errorf("PendingText = %q, want %q", got, want)
	}
	if got, want := PendingText(1221, suit.Heart), "📲Game:1221:❤️ statut :⏳"; got != want {
		t.Errorf("PendingText = %q, want %q", got, want)
	}
}

func TestResolvedTextConfirmedOddBase(t *testing.T) {
	p := Prediction{
		TargetRound: 1220,
		Suit:        suit.Spade,
		BaseRound:   1219,
		BaseSuit:    suit.Heart,
		Status:      StatusConfirmed,
	}
	want := "📲Game:1220:♠️ statut :✅\n" +
		"⚜🟩validé   premier enseigne du Banquier : ❤️ numero du jeu precedent Impaire\n" +
		"❤️=♠️"
	if got := ResolvedText(p); got != want {
		t.Errorf("ResolvedText = %q, want %q", got, want)
	}
}

func TestResolvedTextConfirmedEvenBase(t *testing.T) {
	p := Prediction{
		TargetRound: 1221,
		Suit:        suit.Heart,
		BaseRound:   1220,
		BaseSuit:    suit.Diamond,
		Status:      StatusConfirmed,
	}
	want := "📲Game:1221:❤️ statut :✅\n" +
		"⚜🟩validé   premier enseigne du Banquier : ♦️ numero du jeu precedent Paire\n" +
		"♦️=❤️"
	if got := ResolvedText(p); got != want {
		t.Errorf("ResolvedText = %q, want %q", got, want)
	}
}

func TestResolvedTextRefuted(t *testing.T) {
	p := Prediction{
		TargetRound: 1220,
		Suit:        suit.Club,
		BaseRound:   1219,
		BaseSuit:    suit.Diamond,
		Status:      StatusRefuted,
	}
	if got, want := ResolvedText(p), "📲Game:1220:♣️ statut :❌"; got != want {
		t.Errorf("ResolvedText = %q, want %q", got, want)
	}
}
