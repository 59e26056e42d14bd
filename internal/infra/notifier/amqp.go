package notifier

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hotel-block-service/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPSender publishes persistent messages to a durable queue on the default exchange.
// The connection is dialed lazily and redialed after the broker drops it.
type AMQPSender struct {
	url   string
	queue string

	mu   sync.Mutex
	conn *amqp.Connection
}

func NewAMQPSender(url, queue string) *AMQPSender {
	return &AMQPSender{url: url, queue: queue}
}

func (s *AMQPSender) connection() (*amqp.Connection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn != nil && !s.conn.IsClosed() {
		return s.conn, nil
	}
	conn, err := amqp.Dial(s.url)
	if err != nil {
		return nil, errs.Wrap(err, "rabbitmq: dial failed")
	}
	s.conn = conn
	return conn, nil
}

func (s *AMQPSender) Send(ctx context.Context, payload []byte) error {
	conn, err := s.connection()
	if err != nil {
		return err
	}

	ch, err := conn.Channel()
	if err != nil {
		return errs.Wrap(err, "rabbitmq: channel open failed")
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		s.queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		return errs.Wrap(err, "rabbitmq: queue declare failed")
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         payload,
	}
	if err := ch.PublishWithContext(ctx, "", s.queue, false, false, pub); err != nil {
		return errs.Wrap(err, "rabbitmq: publish failed")
	}
	return nil
}

func (s *AMQPSender) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil || s.conn.IsClosed() {
		return nil
	}
	if err := s.conn.Close(); err != nil {
		slog.Warn("rabbitmq: close failed", "error", err.Error())
		return err
	}
	return nil
}
