package notify

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Backoff espera antes del intento n (n >= 2).
type Backoff func(attempt int) time.Duration

// ExponentialBackoff 500ms, 1s, 2s... con tope de 30s.
func ExponentialBackoff(attempt int) time.Duration {
	if attempt < 2 {
		return 0
	}
	d := 500 * time.Millisecond
	for i := 2; i < attempt; i++ {
		d *= 2
		if d >= 30*time.Second {
			return 30 * time.Second
		}
	}
	return d
}

// Pool consume la cola con N workers y entrega cada trabajo vía Mailer.
type Pool struct {
	queue       Queue
	composer    *Composer
	mailer      Mailer
	workers     int
	maxAttempts int
	backoff     Backoff
	log         zerolog.Logger
}

// PoolOption configura el Pool.
type PoolOption func(*Pool)

// WithBackoff reemplaza la política de espera entre reintentos.
func WithBackoff(b Backoff) PoolOption {
	return func(p *Pool) { p.backoff = b }
}

// NewPool construye el pool. workers y maxAttempts menores a 1 se ajustan a 1.
func NewPool(q Queue, c *Composer, m Mailer, workers, maxAttempts int, log zerolog.Logger, opts ...PoolOption) *Pool {
	if workers < 1 {
		workers = 1
	}
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	p := &Pool{
		queue: q, composer: c, mailer: m,
		workers: workers, maxAttempts: maxAttempts,
		backoff: ExponentialBackoff,
		log:     log,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Run bloquea hasta que ctx se cancela o la cola se cierra y todos los workers terminan.
func (p *Pool) Run(ctx context.Context) error {
	deliveries, err := p.queue.Deliveries(ctx)
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case d, ok := <-deliveries:
					if !ok {
						return
					}
					p.handle(ctx, id, d)
				}
			}
		}(i)
	}
	wg.Wait()
	return nil
}

func (p *Pool) handle(ctx context.Context, worker int, d Delivery) {
	defer d.Ack()
	log := p.log.With().Int("worker", worker).Str("kind", d.Job.Kind).Str("to", d.Job.Recipient()).Logger()

	msg, err := p.composer.Compose(d.Job)
	if err != nil {
		log.Error().Err(err).Msg("trabajo de correo descartado")
		return
	}

	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-time.After(p.backoff(attempt)):
			case <-ctx.Done():
				log.Warn().Int("attempt", attempt).Msg("envío interrumpido por apagado")
				return
			}
		}
		if err = p.mailer.Send(ctx, msg); err == nil {
			log.Info().Int("attempt", attempt).Msg("correo enviado")
			return
		}
		log.Warn().Err(err).Int("attempt", attempt).Msg("fallo al enviar correo")
	}
	log.Error().Err(err).Int("attempts", p.maxAttempts).Msg("correo abandonado tras agotar reintentos")
}
