package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"tourism-reservation/config"
	"tourism-reservation/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// ErrBrokerUnavailable is returned while another publish is dialling or a
// recent dial failed.
var ErrBrokerUnavailable = errors.New("broker unavailable")

const (
	defaultDialTimeout   = 2 * time.Second
	defaultRedialBackoff = 10 * time.Second
)

// AMQPPublisher publishes reservation events to a durable RabbitMQ queue.
// The connection is opened lazily and re-dialled after a failure. p.mu is
// never held while dialling, so a slow broker costs one request at most
// DialTimeout and the rest fail fast.
type AMQPPublisher struct {
	url           string
	queue         string
	dialTimeout   time.Duration
	redialBackoff time.Duration

	// dial opens the connection and channel and declares the queue.
	dial func() (*amqp.Connection, *amqp.Channel, error)

	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	dialing  bool
	nextDial time.Time
}

func NewAMQPPublisher(cfg config.BrokerConfig) Publisher {
	return newAMQPPublisher(cfg)
}

func newAMQPPublisher(cfg config.BrokerConfig) *AMQPPublisher {
	p := &AMQPPublisher{
		url:           cfg.URL,
		queue:         cfg.QueueName,
		dialTimeout:   cfg.DialTimeout,
		redialBackoff: cfg.RedialBackoff,
	}
	if p.dialTimeout <= 0 {
		p.dialTimeout = defaultDialTimeout
	}
	if p.redialBackoff <= 0 {
		p.redialBackoff = defaultRedialBackoff
	}
	p.dial = p.dialBroker
	return p
}

func (p *AMQPPublisher) PublishReservation(ctx context.Context, event ReservationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ch, err := p.channel()
	if err != nil {
		return err
	}

	err = ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    event.ID,
			Type:         string(event.Type),
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		p.drop(ch)
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}
	return nil
}

// channel returns the open channel or dials a new one. Only one caller dials
// at a time; the others get ErrBrokerUnavailable instead of waiting.
func (p *AMQPPublisher) channel() (*amqp.Channel, error) {
	p.mu.Lock()
	if p.ch != nil && !p.ch.IsClosed() {
		ch := p.ch
		p.mu.Unlock()
		return ch, nil
	}
	if p.dialing || time.Now().Before(p.nextDial) {
		p.mu.Unlock()
		return nil, ErrBrokerUnavailable
	}
	p.dialing = true
	p.resetLocked()
	p.mu.Unlock()

	conn, ch, err := p.dial()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.dialing = false
	if err != nil {
		p.nextDial = time.Now().Add(p.redialBackoff)
		return nil, err
	}
	logger.WithComponent("notify").Info("Connected to broker", zap.String("queue", p.queue))
	p.conn, p.ch = conn, ch
	return ch, nil
}

func (p *AMQPPublisher) dialBroker() (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.DialConfig(p.url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(p.dialTimeout),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("rabbitmq dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("rabbitmq channel: %w", err)
	}
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, fmt.Errorf("rabbitmq queue declare: %w", err)
	}
	return conn, ch, nil
}

// drop closes the connection behind ch unless a newer one replaced it.
func (p *AMQPPublisher) drop(ch *amqp.Channel) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch == ch {
		p.resetLocked()
	}
}

func (p *AMQPPublisher) resetLocked() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
	p.conn, p.ch = nil, nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resetLocked()
	return nil
}
