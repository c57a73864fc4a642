// Package memory implementa los repositorios sobre mapas en memoria.
// Se usa con STORE_BACKEND=memory y como doble de prueba de los casos de uso.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/jhoicas/securepass-api/internal/domain/entity"
	"github.com/jhoicas/securepass-api/internal/domain/repository"
)

// table conserva el orden de inserción para listar del más reciente al más antiguo.
type table[T any] struct {
	rows  map[string]T
	order []string
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]T)}
}

func (t *table[T]) get(id string) (T, bool) {
	v, ok := t.rows[id]
	return v, ok
}

func (t *table[T]) put(id string, v T) {
	if _, ok := t.rows[id]; !ok {
		t.order = append(t.order, id)
	}
	t.rows[id] = v
}

func (t *table[T]) del(id string) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	t.order = slices.DeleteFunc(t.order, func(v string) bool { return v == id })
	return true
}

// newest recorre las filas del más reciente al más antiguo hasta que fn devuelva false.
func (t *table[T]) newest(fn func(T) bool) {
	for i := len(t.order) - 1; i >= 0; i-- {
		if !fn(t.rows[t.order[i]]) {
			return
		}
	}
}

func (t *table[T]) clone(cp func(T) T) *table[T] {
	out := &table[T]{rows: make(map[string]T, len(t.rows)), order: slices.Clone(t.order)}
	for k, v := range t.rows {
		out.rows[k] = cp(v)
	}
	return out
}

type data struct {
	companies       *table[*entity.Company]
	companyRequests *table[*entity.CompanyRequest]
	trials          *table[*entity.TrialRequest]
	admins          *table[*entity.AdminUser]
	users           *table[*entity.User]
	doors           *table[*entity.Door]
	permissions     *table[*entity.PermissionRequest]
	accessEvents    *table[*entity.AccessEvent]
	payments        *table[*entity.Payment]
	audit           *table[*entity.AuditEvent]
}

func newData() *data {
	return &data{
		companies:       newTable[*entity.Company](),
		companyRequests: newTable[*entity.CompanyRequest](),
		trials:          newTable[*entity.TrialRequest](),
		admins:          newTable[*entity.AdminUser](),
		users:           newTable[*entity.User](),
		doors:           newTable[*entity.Door](),
		permissions:     newTable[*entity.PermissionRequest](),
		accessEvents:    newTable[*entity.AccessEvent](),
		payments:        newTable[*entity.Payment](),
		audit:           newTable[*entity.AuditEvent](),
	}
}

func (d *data) clone() *data {
	return &data{
		companies:       d.companies.clone(cloneCompany),
		companyRequests: d.companyRequests.clone(cloneCompanyRequest),
		trials:          d.trials.clone(cloneTrial),
		admins:          d.admins.clone(cloneAdmin),
		users:           d.users.clone(cloneUser),
		doors:           d.doors.clone(cloneDoor),
		permissions:     d.permissions.clone(clonePermission),
		accessEvents:    d.accessEvents.clone(cloneAccessEvent),
		payments:        d.payments.clone(clonePayment),
		audit:           d.audit.clone(cloneAudit),
	}
}

// Store estado compartido de todos los repositorios en memoria.
type Store struct {
	mu   sync.RWMutex
	data *data
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{data: newData()}
}

// Repositories devuelve los repositorios que operan directamente sobre el store.
func (s *Store) Repositories() repository.Repositories {
	return bind(&view{store: s})
}

// Run ejecuta fn sobre una copia del estado y la publica solo si fn no devuelve error.
// Las transacciones se serializan y excluyen a los escritores fuera de transacción.
func (s *Store) Run(ctx context.Context, fn func(repos repository.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.data.clone()
	if err := fn(bind(&view{tx: work})); err != nil {
		return err
	}
	s.data = work
	return nil
}

// view resuelve el estado sobre el que opera un repositorio: el store con sus locks,
// o la copia de trabajo de una transacción (ya protegida por Run).
type view struct {
	store *Store
	tx    *data
}

func (v *view) read(ctx context.Context, fn func(d *data) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if v.tx != nil {
		return fn(v.tx)
	}
	v.store.mu.RLock()
	defer v.store.mu.RUnlock()
	return fn(v.store.data)
}

func (v *view) write(ctx context.Context, fn func(d *data) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if v.tx != nil {
		return fn(v.tx)
	}
	v.store.mu.Lock()
	defer v.store.mu.Unlock()
	return fn(v.store.data)
}

func bind(v *view) repository.Repositories {
	return repository.Repositories{
		Companies:          &companyRepo{v},
		CompanyRequests:    &companyRequestRepo{v},
		TrialRequests:      &trialRequestRepo{v},
		AdminUsers:         &adminUserRepo{v},
		Users:              &userRepo{v},
		Doors:              &doorRepo{v},
		PermissionRequests: &permissionRequestRepo{v},
		AccessEvents:       &accessEventRepo{v},
		Payments:           &paymentRepo{v},
		Audit:              &auditRepo{v},
		Metrics:            &metricsRepo{v},
	}
}
