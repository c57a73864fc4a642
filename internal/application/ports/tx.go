package ports

import (
	"context"

	"github.com/jhoicas/securepass-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repositorios atados a ella.
// Si fn retorna error se hace Rollback de todas las escrituras; si no, Commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos repository.Repositories) error) error
}
