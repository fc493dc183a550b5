// Package publisher announces produced articles on RabbitMQ.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"article_pipeline/internal/domain"
)

const (
	ActionGenerated = "generated"
	ActionCached    = "cached"
)

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type RabbitMQ struct {
	conn       *amqp.Connection
	channel    publishChannel
	exchange   string
	routingKey string
	now        func() time.Time
	logger     *slog.Logger
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declareTopology(ch, cfg); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	pub := newRabbitMQ(ch, cfg, logger)
	pub.conn = conn
	return pub, nil
}

func newRabbitMQ(ch publishChannel, cfg Config, logger *slog.Logger) *RabbitMQ {
	return &RabbitMQ{
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		now:        time.Now,
		logger:     logger.With("component", "publisher"),
	}
}

// declareTopology sets up a durable direct exchange with one bound queue.
func declareTopology(ch *amqp.Channel, cfg Config) error {
	if err := ch.ExchangeDeclare(cfg.Exchange, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(cfg.QueueName, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, cfg.RoutingKey, cfg.Exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

type ArticleMessage struct {
	Action      string                  `json:"action"`
	Fingerprint string                  `json:"fingerprint"`
	Article     domain.GeneratedArticle `json:"article"`
	Timestamp   time.Time               `json:"timestamp"`
}

// Publish sends one persistent JSON message per produced article. cached
// marks articles served from the cache.
func (r *RabbitMQ) Publish(ctx context.Context, fingerprint string, article *domain.GeneratedArticle, cached bool) error {
	action := ActionGenerated
	if cached {
		action = ActionCached
	}

	now := r.now()
	msg := ArticleMessage{
		Action:      action,
		Fingerprint: fingerprint,
		Article:     *article,
		Timestamp:   now.UTC(),
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    article.ID,
			Body:         body,
			Timestamp:    now,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	r.logger.Debug("published article",
		"article_id", article.ID,
		"fingerprint", fingerprint,
		"action", action,
	)

	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
