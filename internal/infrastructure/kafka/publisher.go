// Package kafka publica los eventos de dominio en un tópico de Kafka.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	skafka "github.com/segmentio/kafka-go"

	"github.com/jhoicas/securepass-api/internal/application/ports"
)

// Writer subconjunto de kafka.Writer; permite inyectar uno de prueba.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// Publisher implementa ports.EventPublisher. La clave del mensaje es el CompanyID
// (o el SubjectID si no hay empresa) para conservar el orden por tenant.
type Publisher struct {
	writer Writer
	now    func() time.Time
}

var _ ports.EventPublisher = (*Publisher)(nil)

// NewPublisher escribe en broker/topic.
func NewPublisher(broker, topic string) *Publisher {
	return NewPublisherWithWriter(&skafka.Writer{
		Addr:                   skafka.TCP(broker),
		Topic:                  topic,
		Balancer:               &skafka.Hash{},
		AllowAutoTopicCreation: true,
	})
}

// NewPublisherWithWriter usa el writer dado.
func NewPublisherWithWriter(w Writer) *Publisher {
	return &Publisher{writer: w, now: time.Now}
}

type envelope struct {
	ports.DomainEvent
	OccurredAt time.Time `json:"occurred_at"`
}

// Publish serializa el evento como JSON.
func (p *Publisher) Publish(ctx context.Context, ev ports.DomainEvent) error {
	b, err := json.Marshal(envelope{DomainEvent: ev, OccurredAt: p.now().UTC()})
	if err != nil {
		return fmt.Errorf("kafka: serializar %s: %w", ev.Name, err)
	}
	key := ev.CompanyID
	if key == "" {
		key = ev.SubjectID
	}
	msg := skafka.Message{
		Key:     []byte(key),
		Value:   b,
		Headers: []skafka.Header{{Key: "event", Value: []byte(ev.Name)}},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka: publicar %s: %w", ev.Name, err)
	}
	return nil
}

// Close cierra el writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
