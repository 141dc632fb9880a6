package notify

import (
	"context"
	"errors"
	"net"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"tourism-reservation/config"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent() ReservationEvent {
	return ReservationEvent{ID: "evt-1", Type: ReservationCreated, OccurredAt: time.Now().UTC()}
}

// silentBroker accepts TCP connections and never answers the AMQP handshake.
func silentBroker(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	var (
		mu    sync.Mutex
		conns []net.Conn
	)
	go func() {
		for {
			c, err := ln.Accept()
			if err != nil {
				return
			}
			mu.Lock()
			conns = append(conns, c)
			mu.Unlock()
		}
	}()
	t.Cleanup(func() {
		_ = ln.Close()
		mu.Lock()
		defer mu.Unlock()
		for _, c := range conns {
			_ = c.Close()
		}
	})
	return "amqp://guest:guest@" + ln.Addr().String() + "/"
}

func TestAMQPPublisher_DialIsBounded(t *testing.T) {
	p := newAMQPPublisher(config.BrokerConfig{
		URL:         silentBroker(t),
		QueueName:   "reservation.events",
		DialTimeout: 200 * time.Millisecond,
	})
	defer p.Close()

	start := time.Now()
	err := p.PublishReservation(context.Background(), testEvent())

	require.Error(t, err)
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestAMQPPublisher_FailsFastWhileDialling(t *testing.T) {
	p := newAMQPPublisher(config.BrokerConfig{QueueName: "reservation.events"})
	release := make(chan struct{})
	var dials atomic.Int32
	p.dial = func() (*amqp.Connection, *amqp.Channel, error) {
		dials.Add(1)
		<-release
		return nil, nil, errors.New("connection timed out")
	}

	first := make(chan error, 1)
	go func() { first <- p.PublishReservation(context.Background(), testEvent()) }()
	require.Eventually(t, func() bool { return dials.Load() == 1 }, time.Second, 5*time.Millisecond)

	start := time.Now()
	err := p.PublishReservation(context.Background(), testEvent())
	assert.ErrorIs(t, err, ErrBrokerUnavailable)
	assert.Less(t, time.Since(start), 100*time.Millisecond, "second publish must not wait for the dial")

	close(release)
	assert.Error(t, <-first)
	assert.Equal(t, int32(1), dials.Load())
}

func TestAMQPPublisher_BacksOffAfterFailedDial(t *testing.T) {
	p := newAMQPPublisher(config.BrokerConfig{
		QueueName:     "reservation.events",
		RedialBackoff: 100 * time.Millisecond,
	})
	var dials atomic.Int32
	p.dial = func() (*amqp.Connection, *amqp.Channel, error) {
		dials.Add(1)
		return nil, nil, errors.New("connection refused")
	}

	assert.Error(t, p.PublishReservation(context.Background(), testEvent()))
	assert.ErrorIs(t, p.PublishReservation(context.Background(), testEvent()), ErrBrokerUnavailable)
	assert.Equal(t, int32(1), dials.Load())

	time.Sleep(150 * time.Millisecond)
	assert.Error(t, p.PublishReservation(context.Background(), testEvent()))
	assert.Equal(t, int32(2), dials.Load())
}

func TestNewAMQPPublisher_Defaults(t *testing.T) {
	p := newAMQPPublisher(config.BrokerConfig{URL: "amqp://localhost/", QueueName: "q"})

	assert.Equal(t, defaultDialTimeout, p.dialTimeout)
	assert.Equal(t, defaultRedialBackoff, p.redialBackoff)
}
