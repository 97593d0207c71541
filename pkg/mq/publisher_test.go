package mq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	sent   []published
	err    error
	closed bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}

	f.sent = append(f.sent, published{exchange: exchange, key: key, msg: msg})

	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true

	return nil
}

func TestAMQPPublisher_PublishJSON(t *testing.T) {
	ch := &fakeChannel{}
	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	p := &AMQPPublisher{ch: ch, exchange: "booking.exchange", now: func() time.Time { return at }}

	err := p.PublishJSON(context.Background(), "booking.created", map[string]any{"id": 1})
	require.NoError(t, err)
	require.Len(t, ch.sent, 1)

	got := ch.sent[0]
	assert.Equal(t, "booking.exchange", got.exchange)
	assert.Equal(t, "booking.created", got.key)
	assert.Equal(t, "application/json", got.msg.ContentType)
	assert.Equal(t, amqp.Persistent, got.msg.DeliveryMode)
	assert.Equal(t, at, got.msg.Timestamp)

	var body map[string]any
	require.NoError(t, json.Unmarshal(got.msg.Body, &body))
	assert.EqualValues(t, 1, body["id"])
}

func TestAMQPPublisher_PublishError(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel closed")}
	p := &AMQPPublisher{ch: ch, exchange: "booking.exchange", now: time.Now}

	err := p.PublishJSON(context.Background(), "booking.deleted", map[string]any{"id": 1})
	assert.ErrorContains(t, err, "booking.deleted")
}

func TestAMQPPublisher_MarshalError(t *testing.T) {
	ch := &fakeChannel{}
	p := &AMQPPublisher{ch: ch, exchange: "booking.exchange", now: time.Now}

	err := p.PublishJSON(context.Background(), "booking.created", make(chan int))
	assert.Error(t, err)
	assert.Empty(t, ch.sent)
}

func TestAMQPPublisher_Close(t *testing.T) {
	ch := &fakeChannel{}
	p := &AMQPPublisher{ch: ch}

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

func TestNoopPublisher(t *testing.T) {
	p := NewNoopPublisher()

	assert.NoError(t, p.PublishJSON(context.Background(), "booking.created", nil))
	assert.NoError(t, p.Close())
}
