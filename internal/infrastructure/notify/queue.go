package notify

import (
	"context"
	"errors"
	"sync"
)

// ErrQueueFull la cola en memoria no admite más trabajos.
var (
	ErrQueueFull   = errors.New("notify: cola llena")
	ErrQueueClosed = errors.New("notify: cola cerrada")
)

// Delivery trabajo recibido de la cola. Ack confirma que ya no debe reentregarse.
type Delivery struct {
	Job EmailJob
	Ack func()
}

// Queue transporte de EmailJob entre los casos de uso y los workers.
type Queue interface {
	Enqueue(ctx context.Context, job EmailJob) error
	Deliveries(ctx context.Context) (<-chan Delivery, error)
	Close() error
}

// MemoryQueue cola en proceso sobre un canal con buffer. Los trabajos pendientes se pierden al reiniciar.
type MemoryQueue struct {
	mu     sync.RWMutex
	closed bool
	jobs   chan Delivery
}

// NewMemoryQueue construye la cola con capacidad size.
func NewMemoryQueue(size int) *MemoryQueue {
	if size < 1 {
		size = 1
	}
	return &MemoryQueue{jobs: make(chan Delivery, size)}
}

// Enqueue no bloquea: si el buffer está lleno devuelve ErrQueueFull.
func (q *MemoryQueue) Enqueue(_ context.Context, job EmailJob) error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return ErrQueueClosed
	}
	select {
	case q.jobs <- Delivery{Job: job, Ack: func() {}}:
		return nil
	default:
		return ErrQueueFull
	}
}

// Deliveries devuelve el canal de trabajos.
func (q *MemoryQueue) Deliveries(context.Context) (<-chan Delivery, error) {
	return q.jobs, nil
}

// Close cierra el canal; los workers terminan al vaciarlo.
func (q *MemoryQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
	return nil
}
