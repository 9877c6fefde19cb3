// Package telegram is the transport layer: it receives source-channel
// updates, publishes and edits predictions in the output channel, and
// serves the private admin command surface.
package telegram

import (
	"context"
	"fmt"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"

	"github.com/tdiallo/suitoracle/internal/config"
	"github.com/tdiallo/suitoracle/internal/logging"
)

// sendInterval paces outbound API calls. The Bot API throttles floods
// server-side; staying under ~1 msg/s per chat avoids 429s entirely.
const sendInterval = 1050 * time.Millisecond

// Client wraps the Bot API connection plus the runtime flags the admin
// commands can flip.
type Client struct {
	bot     *tgbotapi.BotAPI
	cfg     *config.Config
	limiter *rate.Limiter

	mu           sync.Mutex
	sourceOK     bool
	predictionOK bool
	forwarding   bool
}

// New connects to the Bot API with the configured token.
func New(cfg *config.Config) (*Client, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to bot API: %w", err)
	}
	logging.Info("connected to Telegram", "username", bot.Self.UserName)

	return &Client{
		bot:        bot,
		cfg:        cfg,
		limiter:    rate.NewLimiter(rate.Every(sendInterval), 1),
		forwarding: true,
	}, nil
}

// VerifyChannels resolves both configured channels and records whether
// they are accessible. Inaccessible channels are not fatal: the bot
// runs degraded and skips publishes.
func (c *Client) VerifyChannels(ctx context.Context) {
	sourceOK := c.resolveChannel(ctx, "source", c.cfg.SourceChannelID)
	predictionOK := c.resolveChannel(ctx, "prediction", c.cfg.PredictionChannelID)

	c.mu.Lock()
	c.sourceOK = sourceOK
	c.predictionOK = predictionOK
	c.mu.Unlock()
}

func (c *Client) resolveChannel(ctx context.Context, role string, id int64) bool {
	if id == 0 {
		return false
	}
	if err := ctx.Err(); err != nil {
		return false
	}

	chat, err := c.bot.GetChat(tgbotapi.ChatInfoConfig{
		ChatConfig: tgbotapi.ChatConfig{ChatID: id},
	})
	if err != nil {
		logging.Error("channel not accessible", "role", role, "id", id, "err", err)
		return false
	}

	logging.Info("channel accessible", "role", role, "title", chat.Title)
	return true
}

// SendPrediction publishes text to the prediction channel and returns
// the created message ID for later editing.
func (c *Client) SendPrediction(ctx context.Context, text string) (int, error) {
	c.mu.Lock()
	ok := c.predictionOK
	c.mu.Unlock()

	if c.cfg.PredictionChannelID == 0 || !ok {
		return 0, fmt.Errorf("prediction channel not accessible")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	sent, err := c.bot.Send(tgbotapi.NewMessage(c.cfg.PredictionChannelID, text))
	if err != nil {
		return 0, fmt.Errorf("failed to send prediction: %w", err)
	}
	return sent.MessageID, nil
}

// EditPrediction replaces the text of a previously published message.
func (c *Client) EditPrediction(ctx context.Context, ref int, text string) error {
	c.mu.Lock()
	ok := c.predictionOK
	c.mu.Unlock()

	if c.cfg.PredictionChannelID == 0 || !ok {
		return fmt.Errorf("prediction channel not accessible")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	if _, err := c.bot.Send(tgbotapi.NewEditMessageText(c.cfg.PredictionChannelID, ref, text)); err != nil {
		return fmt.Errorf("failed to edit prediction: %w", err)
	}
	return nil
}

// NotifyAdmin sends text to the configured admin. Best effort; a zero
// admin ID disables notifications.
func (c *Client) NotifyAdmin(ctx context.Context, text string) error {
	if c.cfg.AdminID == 0 {
		return nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(c.cfg.AdminID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := c.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to notify admin: %w", err)
	}
	return nil
}

// ForwardToAdmin passes a source message through to the admin when
// forwarding is enabled. Failures are logged only.
func (c *Client) ForwardToAdmin(ctx context.Context, text string) {
	c.mu.Lock()
	enabled := c.forwarding
	c.mu.Unlock()

	if !enabled || c.cfg.AdminID == 0 {
		return
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return
	}

	if _, err := c.bot.Send(tgbotapi.NewMessage(c.cfg.AdminID, "📨 Message:\n\n"+text)); err != nil {
		logging.Error("failed to forward message to admin", "err", err)
	}
}

// SetForwarding toggles passthrough forwarding of source messages.
func (c *Client) SetForwarding(enabled bool) {
	c.mu.Lock()
	c.forwarding = enabled
	c.mu.Unlock()
}

// Forwarding reports whether passthrough forwarding is enabled.
func (c *Client) Forwarding() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.forwarding
}

// ChannelAccess reports the access flags recorded by VerifyChannels.
func (c *Client) ChannelAccess() (source, prediction bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sourceOK, c.predictionOK
}

// reply answers a private message, logging failures.
func (c *Client) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := c.bot.Send(msg); err != nil {
		logging.Error("failed to reply", "chat", chatID, "err", err)
	}
}
