package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/sharedlists/internal/common"
	amqp "github.com/rabbitmq/amqp091-go"
)

// DefaultExchange is the durable topic exchange events are published to.
const DefaultExchange = "sharedlists.events"

const (
	defaultDialTimeout = 2 * time.Second
	redialBackoff      = 5 * time.Second
)

// AMQPPublisher publishes persistent JSON messages to a topic exchange. The
// connection is opened lazily and re-opened after a failed publish. A dial is
// bounded by the dial timeout and the caller's deadline, and after a failed
// dial publishing fails fast until the backoff has passed.
type AMQPPublisher struct {
	url         string
	exchange    string
	dialTimeout time.Duration
	now         func() time.Time
	dial        func(url string, cfg amqp.Config) (*amqp.Connection, error)

	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	dialErr  error
	nextDial time.Time
}

func NewAMQPPublisher(url, exchange string) *AMQPPublisher {
	if exchange == "" {
		exchange = DefaultExchange
	}
	return &AMQPPublisher{
		url:         url,
		exchange:    exchange,
		dialTimeout: defaultDialTimeout,
		now:         time.Now,
		dial:        amqp.DialConfig,
	}
}

func (p *AMQPPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	body, err := json.Marshal(Envelope{Type: routingKey, OccurredAt: p.now().UTC(), Payload: payload})
	if err != nil {
		return fmt.Errorf("error marshaling event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel(ctx)
	if err != nil {
		return fmt.Errorf("%w: amqp channel: %v", common.ErrUnavailable, err)
	}

	err = ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    p.now().UTC(),
		Body:         body,
	})
	if err != nil {
		p.reset()
		return fmt.Errorf("%w: amqp publish: %v", common.ErrUnavailable, err)
	}
	return nil
}

// channel returns an open channel, dialing and declaring the exchange if
// needed. Caller holds p.mu.
func (p *AMQPPublisher) channel(ctx context.Context) (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	p.reset()

	if p.dialErr != nil && p.now().Before(p.nextDial) {
		return nil, fmt.Errorf("broker down, retrying after %s: %w", p.nextDial.Format(time.RFC3339), p.dialErr)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	timeout := p.dialTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}

	conn, err := p.dial(p.url, amqp.Config{
		Dial:      amqp.DefaultDial(timeout),
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
	})
	if err != nil {
		p.dialErr, p.nextDial = err, p.now().Add(redialBackoff)
		return nil, err
	}
	p.dialErr = nil
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	if err := ch.ExchangeDeclare(p.exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	p.conn, p.ch = conn, ch
	return ch, nil
}

func (p *AMQPPublisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

// Close releases the broker connection.
func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
	return nil
}
