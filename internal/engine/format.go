package engine

import (
	"fmt"

	"github.com/tdiallo/suitoracle/internal/suit"
)

// Outbound message formats. Downstream consumers parse these, so the
// wording must not change.

// PendingText is the message published when a forecast opens.
func PendingText(target int, s suit.Suit) string {
	return fmt.Sprintf("📲Game:%d:%s statut :⏳", target, suit.Display(s))
}

// ResolvedText is the message a published forecast is edited to once
// verified. Confirmed forecasts get the multi-line validation wording
// with the base round's parity label; anything else reuses the
// single-line template with the new status glyph.
func ResolvedText(p Prediction) string {
	display := suit.Display(p.Suit)
	if p.Status == StatusConfirmed {
		baseDisplay := suit.Display(p.BaseSuit)
		return fmt.Sprintf("📲Game:%d:%s statut :%s\n⚜🟩validé   premier enseigne du Banquier : %s numero du jeu precedent %s\n%s=%s",
			p.TargetRound, display, p.Status,
			baseDisplay, parityLabel(p.BaseRound),
			baseDisplay, display)
	}
	return fmt.Sprintf("📲Game:%d:%s statut :%s", p.TargetRound, display, p.Status)
}

// parityLabel returns the French parity label for a round number.
func parityLabel(round int) string {
	if round%2 != 0 {
		return "Impaire"
	}
	return "Paire"
}
