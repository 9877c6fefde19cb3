package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/tdiallo/suitoracle/internal/engine"
)

// updateTimeout is the long-poll timeout in seconds.
const updateTimeout = 30

// Listener consumes Bot API updates and dispatches them: source-channel
// posts feed the engine, private messages feed the command handler.
type Listener struct {
	client *Client
	engine *engine.Engine
}

// NewListener creates a Listener feeding eng from client's updates.
func NewListener(client *Client, eng *engine.Engine) *Listener {
	return &Listener{client: client, engine: eng}
}

// Run blocks consuming updates until ctx is cancelled.
func (l *Listener) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = updateTimeout
	u.AllowedUpdates = []string{"message", "channel_post", "edited_channel_post"}

	updates := l.client.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			l.client.bot.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			l.dispatch(ctx, update)
		}
	}
}

func (l *Listener) dispatch(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.ChannelPost != nil:
		l.handleChannelPost(ctx, update.ChannelPost, false)
	case update.EditedChannelPost != nil:
		l.handleChannelPost(ctx, update.EditedChannelPost, true)
	case update.Message != nil:
		l.handleMessage(ctx, update.Message)
	}
}

// handleChannelPost routes source-channel posts into the engine. New
// posts run both paths; edits only feed verification.
func (l *Listener) handleChannelPost(ctx context.Context, msg *tgbotapi.Message, edited bool) {
	if msg.Chat == nil || msg.Chat.ID != l.client.cfg.SourceChannelID {
		return
	}

	if edited {
		l.engine.HandleEdited(ctx, msg.Text)
		return
	}

	l.client.ForwardToAdmin(ctx, msg.Text)
	l.engine.HandleNew(ctx, msg.Text)
}
