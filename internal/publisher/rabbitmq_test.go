package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"article_pipeline/internal/domain"
)

type publishCall struct {
	exchange, key string
	msg           amqp.Publishing
}

type fakeChannel struct {
	calls  []publishCall
	err    error
	closed bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	f.calls = append(f.calls, publishCall{exchange: exchange, key: key, msg: msg})
	return f.err
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func newTestPublisher(ch *fakeChannel) *RabbitMQ {
	pub := newRabbitMQ(ch, Config{Exchange: "ex", RoutingKey: "rk"}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	pub.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return pub
}

func TestPublish_Actions(t *testing.T) {
	tests := []struct {
		cached bool
		want   string
	}{
		{cached: false, want: ActionGenerated},
		{cached: true, want: ActionCached},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			ch := &fakeChannel{}
			article := &domain.GeneratedArticle{ID: "a-1", Title: "标题", TopicID: "t-1"}

			require.NoError(t, newTestPublisher(ch).Publish(context.Background(), "t-1_800_x", article, tt.cached))
			require.Len(t, ch.calls, 1)

			call := ch.calls[0]
			assert.Equal(t, "ex", call.exchange)
			assert.Equal(t, "rk", call.key)
			assert.Equal(t, "application/json", call.msg.ContentType)
			assert.Equal(t, uint8(amqp.Persistent), call.msg.DeliveryMode)
			assert.Equal(t, "a-1", call.msg.MessageId)

			var received ArticleMessage
			require.NoError(t, json.Unmarshal(call.msg.Body, &received))
			assert.Equal(t, tt.want, received.Action)
			assert.Equal(t, "t-1_800_x", received.Fingerprint)
			assert.Equal(t, "标题", received.Article.Title)
			assert.Equal(t, 2026, received.Timestamp.Year())
		})
	}
}

func TestPublish_ChannelError(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel closed")}
	err := newTestPublisher(ch).Publish(context.Background(), "fp", &domain.GeneratedArticle{}, false)
	assert.ErrorContains(t, err, "publish message")
}

func TestClose(t *testing.T) {
	ch := &fakeChannel{}
	assert.NoError(t, newTestPublisher(ch).Close())
	assert.True(t, ch.closed)
}
