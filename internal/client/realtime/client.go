package realtime

import (
	"fmt"
	"time"

	"github.com/lib/pq"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/dialog-service/internal/config"
	"github.com/s21platform/dialog-service/internal/model"
)

const (
	MessagesFeed = "dialog_messages_feed"
	TypingFeed   = "dialog_typing_feed"

	minReconnectInterval = 2 * time.Second
	maxReconnectInterval = 30 * time.Second
)

type Client struct {
	conninfo string
	logger   logger_lib.LoggerInterface
}

func New(cfg *config.Config, logger logger_lib.LoggerInterface) *Client {
	conninfo := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	return &Client{
		conninfo: conninfo,
		logger:   logger,
	}
}

// Subscribe opens a LISTEN session on the given feed channel and starts
// delivering decoded change events in the order the store emits them.
func (c *Client) Subscribe(channel string) (*Subscription, error) {
	listener := pq.NewListener(c.conninfo, minReconnectInterval, maxReconnectInterval, func(event pq.ListenerEventType, err error) {
		if err != nil {
			c.logger.Error(fmt.Sprintf("listener event %d on channel %s: %v", event, channel, err))
		}
	})

	if err := listener.Listen(channel); err != nil {
		_ = listener.Close()
		return nil, fmt.Errorf("failed to listen on channel %s: %v", channel, err)
	}

	sub := &Subscription{
		listener: listener,
		events:   make(chan model.ChangeEvent, 64),
		done:     make(chan struct{}),
		logger:   c.logger,
	}
	go sub.pump()

	return sub, nil
}
