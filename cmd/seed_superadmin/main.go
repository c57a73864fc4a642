// seed_superadmin crea el SuperAdmin inicial de la plataforma en PostgreSQL.
//
// Uso: go run ./cmd/seed_superadmin <email> <contraseña> [nombre] [apellido]
// Lee la conexión a la base de datos de las mismas variables que cmd/api (DB_*).
// Si el email ya existe no modifica nada.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/securepass-api/internal/application/auth"
	"github.com/jhoicas/securepass-api/internal/domain"
	"github.com/jhoicas/securepass-api/internal/domain/entity"
	"github.com/jhoicas/securepass-api/internal/infrastructure/postgres"
	"github.com/jhoicas/securepass-api/pkg/config"
	"github.com/jhoicas/securepass-api/pkg/logger"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "uso: seed_superadmin <email> <contraseña> [nombre] [apellido]")
		os.Exit(2)
	}
	email := strings.ToLower(strings.TrimSpace(os.Args[1]))
	password := os.Args[2]
	first, last := "Super", "Admin"
	if len(os.Args) > 3 {
		first = os.Args[3]
	}
	if len(os.Args) > 4 {
		last = os.Args[4]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	if err := postgres.Migrate(ctx, pool, log.Component("migrate")); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	admins := postgres.NewAdminUserRepository(pool)
	users := postgres.NewUserRepository(pool)
	if u, err := users.GetByEmail(ctx, email); err != nil {
		log.Fatal().Err(err).Msg("buscar usuario")
	} else if u != nil {
		log.Fatal().Str("email", email).Msg("el email pertenece a un usuario final")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de contraseña")
	}
	now := time.Now().UTC()
	admin := &entity.AdminUser{
		ID:           uuid.NewString(),
		FirstName:    first,
		LastName:     last,
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleSuperAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := admins.Create(ctx, admin); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			log.Info().Str("email", email).Msg("SuperAdmin ya existe, sin cambios")
			return
		}
		log.Fatal().Err(err).Msg("crear SuperAdmin")
	}
	log.Info().Str("id", admin.ID).Str("email", email).Msg("SuperAdmin creado")
}
