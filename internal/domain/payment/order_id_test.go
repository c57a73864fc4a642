package payment_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/securepass-api/internal/domain/payment"
)

func TestNewOrderID(t *testing.T) {
	now := time.UnixMilli(1712345678901)

	id := payment.NewOrderID(now, func() int { return 123 })
	assert.Equal(t, "1712345678901123", id)
}

func TestDefaultSuffixRange(t *testing.T) {
	re := regexp.MustCompile(`^\d{16}$`)
	for i := 0; i < 200; i++ {
		s := payment.DefaultSuffix()
		assert.GreaterOrEqual(t, s, 100)
		assert.LessOrEqual(t, s, 999)
		assert.Regexp(t, re, payment.NewOrderID(time.Now(), func() int { return s }))
	}
}
