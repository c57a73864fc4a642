package notify

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// RabbitQueue cola durable en RabbitMQ. Los mensajes sobreviven a reinicios del proceso.
type RabbitQueue struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
	log   zerolog.Logger
}

// NewRabbitQueue conecta y declara la cola durable.
func NewRabbitQueue(url, queue string, log zerolog.Logger) (*RabbitQueue, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq: conectar: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq: abrir canal: %w", err)
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("rabbitmq: declarar cola %s: %w", queue, err)
	}
	return &RabbitQueue{conn: conn, ch: ch, queue: queue, log: log}, nil
}

// Enqueue publica el trabajo como JSON persistente.
func (q *RabbitQueue) Enqueue(ctx context.Context, job EmailJob) error {
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("rabbitmq: serializar trabajo: %w", err)
	}
	err = q.ch.PublishWithContext(ctx, "", q.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("rabbitmq: publicar: %w", err)
	}
	return nil
}

// Deliveries consume con ack manual. Los mensajes ilegibles se descartan con Nack sin reencolar.
func (q *RabbitQueue) Deliveries(ctx context.Context) (<-chan Delivery, error) {
	msgs, err := q.ch.ConsumeWithContext(ctx, q.queue, "", false, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq: consumir %s: %w", q.queue, err)
	}

	out := make(chan Delivery)
	go func() {
		defer close(out)
		for m := range msgs {
			var job EmailJob
			if err := json.Unmarshal(m.Body, &job); err != nil {
				q.log.Error().Err(err).Msg("rabbitmq: mensaje ilegible descartado")
				_ = m.Nack(false, false)
				continue
			}
			msg := m
			select {
			case out <- Delivery{Job: job, Ack: func() { _ = msg.Ack(false) }}:
			case <-ctx.Done():
				_ = msg.Nack(false, true)
				return
			}
		}
	}()
	return out, nil
}

// Close cierra canal y conexión.
func (q *RabbitQueue) Close() error {
	if err := q.ch.Close(); err != nil {
		q.conn.Close()
		return err
	}
	return q.conn.Close()
}
