package broker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
)

// readRetryDelay is the pause after a failed read before the next attempt.
const readRetryDelay = time.Second

// Handler processes one message of a topic.
type Handler func(ctx context.Context, msg kafka.Message) error

type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

type Consumer struct {
	l          *slog.Logger
	r          messageReader
	wg         *sync.WaitGroup
	handlers   map[string]Handler
	retryDelay time.Duration
}

func NewConsumer(brokers []string, groupID string, topics ...string) *Consumer {
	l := slog.Default().WithGroup("kafka").With("group_id", groupID)

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     brokers,
		GroupID:     groupID,
		GroupTopics: topics,
		Logger:      kafka.LoggerFunc(kafkaLog(l, slog.LevelDebug)),
		ErrorLogger: kafka.LoggerFunc(kafkaLog(l, slog.LevelError)),
	})

	return newConsumer(l, r, readRetryDelay)
}

func newConsumer(l *slog.Logger, r messageReader, retryDelay time.Duration) *Consumer {
	return &Consumer{
		l:          l,
		r:          r,
		wg:         &sync.WaitGroup{},
		handlers:   make(map[string]Handler),
		retryDelay: retryDelay,
	}
}

func (c *Consumer) Handle(topic string, h Handler) *Consumer {
	c.handlers[topic] = h
	return c
}

// Consume reads messages in the background until ctx is done or the reader is closed.
// A failing handler is logged and the message is committed anyway.
func (c *Consumer) Consume(ctx context.Context) *Consumer {
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		for {
			m, err := c.r.ReadMessage(ctx)
			if err != nil {
				if errors.Is(err, io.EOF) || ctx.Err() != nil {
					c.l.InfoContext(ctx, "consumer stopped")
					return
				}

				c.l.ErrorContext(ctx, "read kafka message", "error", err, "retry_in", c.retryDelay.String())

				select {
				case <-ctx.Done():
					c.l.InfoContext(ctx, "consumer stopped")
					return
				case <-time.After(c.retryDelay):
				}

				continue
			}

			c.dispatch(ctx, m)
		}
	}()

	return c
}

func (c *Consumer) dispatch(ctx context.Context, m kafka.Message) {
	h, ok := c.handlers[m.Topic]
	if !ok {
		c.l.WarnContext(ctx, "kafka handler not found", "topic", m.Topic)
		return
	}

	err := h(ctx, m)
	if err != nil {
		c.l.ErrorContext(ctx, "handle kafka message", "error", err, "topic", m.Topic, "offset", m.Offset)
	}
}

// Close stops the reader and waits for Consume to return.
func (c *Consumer) Close() {
	err := c.r.Close()
	if err != nil {
		c.l.Error("close kafka reader", "error", err)
	}

	c.wg.Wait()
}

func kafkaLog(l *slog.Logger, level slog.Level) func(string, ...any) {
	return func(format string, v ...any) {
		l.Log(context.Background(), level, fmt.Sprintf(format, v...))
	}
}
