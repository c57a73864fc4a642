package dto_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/securepass-api/internal/application/dto"
)

func TestDefaultPage(t *testing.T) {
	tests := []struct {
		name      string
		in        dto.PageRequest
		wantPage  int
		wantLimit int
	}{
		{"ceros", dto.PageRequest{}, 1, 10},
		{"negativos", dto.PageRequest{Page: -3, Limit: -1}, 1, 10},
		{"límite alto", dto.PageRequest{Page: 2, Limit: 500}, 2, 100},
		{"página enorme", dto.PageRequest{Page: math.MaxInt, Limit: 100}, dto.MaxPage, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.in
			p.DefaultPage()
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
			assert.GreaterOrEqual(t, p.Offset(), 0)
		})
	}
}

func TestPrincipalCanAccessCompany(t *testing.T) {
	admin := dto.Principal{ID: "a", CompanyID: "c1", Role: "Admin"}
	assert.True(t, admin.CanAccessCompany("c1"))
	assert.False(t, admin.CanAccessCompany("c2"))
	assert.False(t, dto.Principal{Role: "Admin"}.CanAccessCompany(""))
	assert.True(t, dto.Principal{Role: "SuperAdmin"}.CanAccessCompany("c2"))
}
