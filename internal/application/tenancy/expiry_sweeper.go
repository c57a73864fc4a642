package tenancy

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/securepass-api/internal/domain/repository"
)

// ExpirySweeper desactiva periódicamente las empresas cuyo periodo contratado ya venció.
type ExpirySweeper struct {
	companies repository.CompanyRepository
	interval  time.Duration
	log       zerolog.Logger
	now       func() time.Time
}

// NewExpirySweeper construye el barrido. interval <= 0 lo desactiva.
func NewExpirySweeper(companies repository.CompanyRepository, interval time.Duration, log zerolog.Logger) *ExpirySweeper {
	return &ExpirySweeper{companies: companies, interval: interval, log: log, now: time.Now}
}

// Start bloquea hasta que ctx se cancela, ejecutando un barrido inmediato y luego uno por intervalo.
func (s *ExpirySweeper) Start(ctx context.Context) {
	if s.interval <= 0 {
		return
	}
	s.log.Info().Dur("interval", s.interval).Msg("barrido de suscripciones iniciado")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.SweepOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("barrido de suscripciones detenido")
			return
		case <-ticker.C:
			s.SweepOnce(ctx)
		}
	}
}

// SweepOnce marca como inactive las empresas vencidas. Devuelve cuántas cambiaron.
func (s *ExpirySweeper) SweepOnce(ctx context.Context) int64 {
	n, err := s.companies.DeactivateExpired(ctx, s.now())
	if err != nil {
		s.log.Error().Err(err).Msg("barrido de suscripciones falló")
		return 0
	}
	if n > 0 {
		s.log.Info().Int64("companies", n).Msg("empresas vencidas desactivadas")
	}
	return n
}
