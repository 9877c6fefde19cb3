package telegram

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/tdiallo/suitoracle/internal/config"
	"github.com/tdiallo/suitoracle/internal/engine"
	"github.com/tdiallo/suitoracle/internal/suit"
)

const startText = "🤖 **Bot de Prédiction Baccarat**\n\nCommandes: `/status`, `/help`, `/debug`, `/reset`"

const helpText = `📖 **Aide - Bot de Prédiction Baccarat**

**Règles de prédiction:**
Le bot lit le 2ème groupe du message source et prend la 1ère carte (couleur).
La prédiction est envoyée IMMÉDIATEMENT (n'attend pas la finalisation).

**Vérification:**
Attend que le message soit finalisé (✅ ou 🔰).
Vérifie si le costume prédit est dans le PREMIER groupe.

**Transformation selon parité du jeu:**
• Jeux PAIRS (ex: #1220):
  ♠️→♣️, ♣️→♠️, ♦️→❤️, ❤️→♦️

• Jeux IMPAIRS (ex: #1219):
  ♠️→❤️, ♣️→♦️, ♦️→♣️, ❤️→♠️

**Prédiction:** Toujours pour le jeu N+1

**Reset automatique:**
• Toutes les 2 heures
• Quotidien à 00h59 WAT

**Commandes:**
• /start - Démarrer le bot
• /status - Voir les prédictions actives
• /debug - Informations système
• /reset - Reset manuel des prédictions
• /transfert - Activer le transfert des messages
• /stoptransfert - Désactiver le transfert
• /help - Cette aide`

const notAdminText = "Commande réservée à l'administrateur"

// handleMessage serves the private command surface. Commands are only
// accepted in private chats; all but /start and /help are admin-only.
func (l *Listener) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.Chat == nil || !msg.Chat.IsPrivate() || !msg.IsCommand() {
		return
	}

	switch msg.Command() {
	case "start":
		l.client.reply(msg.Chat.ID, startText)
	case "help":
		l.client.reply(msg.Chat.ID, helpText)
	case "status":
		if !l.requireAdmin(msg) {
			return
		}
		l.client.reply(msg.Chat.ID, formatStatus(l.engine.Snapshot()))
	case "reset":
		if !l.requireAdmin(msg) {
			return
		}
		l.engine.Reset()
		l.client.reply(msg.Chat.ID, "🔄 **Reset manuel effectué!**\n\nToutes les prédictions ont été effacées.")
	case "debug":
		if !l.requireAdmin(msg) {
			return
		}
		sourceOK, predictionOK := l.client.ChannelAccess()
		l.client.reply(msg.Chat.ID, formatDebug(l.client.cfg, sourceOK, predictionOK, l.engine.Snapshot()))
	case "transfert", "activetransfert":
		if !l.requireAdmin(msg) {
			return
		}
		l.client.SetForwarding(true)
		l.client.reply(msg.Chat.ID, "✅ Transfert des messages activé!")
	case "stoptransfert":
		if !l.requireAdmin(msg) {
			return
		}
		l.client.SetForwarding(false)
		l.client.reply(msg.Chat.ID, "⛔ Transfert des messages désactivé.")
	}
}

// requireAdmin replies with a refusal and returns false when the sender
// is not the configured admin.
func (l *Listener) requireAdmin(msg *tgbotapi.Message) bool {
	if isAdmin(l.client.cfg.AdminID, msg.From) {
		return true
	}
	l.client.reply(msg.Chat.ID, notAdminText)
	return false
}

func isAdmin(adminID int64, from *tgbotapi.User) bool {
	return adminID != 0 && from != nil && from.ID == adminID
}

// formatStatus renders the /status reply: the current round and every
// pending prediction with its suit and status.
func formatStatus(snap engine.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 **État des prédictions:**\n\n🎮 Jeu actuel: #%d\n\n", snap.CurrentRound)

	if len(snap.Pending) == 0 {
		b.WriteString("**🔮 Aucune prédiction active**\n")
		return b.String()
	}

	fmt.Fprintf(&b, "**🔮 Actives (%d):**\n", len(snap.Pending))
	for _, p := range snap.Pending {
		fmt.Fprintf(&b, "• Jeu #%d: %s - Statut: %s\n", p.TargetRound, suit.Display(p.Suit), p.Status)
	}
	return b.String()
}

// formatDebug renders the /debug reply: configuration, channel access
// flags, state counters, and the transform tables.
func formatDebug(cfg *config.Config, sourceOK, predictionOK bool, snap engine.Snapshot) string {
	return fmt.Sprintf(`🔍 **Informations de débogage:**

**Configuration:**
• Source Channel: %d
• Prediction Channel: %d
• Admin ID: %d

**Accès aux canaux:**
• Canal source: %s
• Canal prédiction: %s

**État:**
• Jeu actuel: #%d
• Prédictions actives: %d

**Règles de transformation:**
• Jeux PAIRS: ♠️→♣️, ♣️→♠️, ♦️→❤️, ❤️→♦️
• Jeux IMPAIRS: ♠️→❤️, ♣️→♦️, ♦️→♣️, ❤️→♠️

**Reset automatique:**
• Toutes les 2 heures
• Quotidien à 00h59 WAT`,
		cfg.SourceChannelID, cfg.PredictionChannelID, cfg.AdminID,
		accessLabel(sourceOK), accessLabel(predictionOK),
		snap.CurrentRound, len(snap.Pending))
}

func accessLabel(ok bool) string {
	if ok {
		return "✅ OK"
	}
	return "❌ Non accessible"
}
