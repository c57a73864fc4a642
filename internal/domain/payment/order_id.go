package payment

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// MaxOrderIDAttempts intentos de generación antes de rendirse.
const MaxOrderIDAttempts = 5

// SuffixSource produce el sufijo aleatorio de 3 dígitos (100..999).
type SuffixSource func() int

// DefaultSuffix sufijo pseudoaleatorio en [100, 999].
func DefaultSuffix() int {
	return 100 + rand.IntN(900)
}

// NewOrderID construye un ID de 16 dígitos: milisegundos Unix (13 dígitos) + sufijo de 3 dígitos.
func NewOrderID(now time.Time, suffix SuffixSource) string {
	return fmt.Sprintf("%013d%03d", now.UnixMilli(), suffix())
}
