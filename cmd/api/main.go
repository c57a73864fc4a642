// @title           SecurePass API
// @version         1.0
// @description     Control de acceso físico multiempresa: empresas, administradores, usuarios, puertas y permisos.
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/securepass-api/docs"
	"github.com/jhoicas/securepass-api/internal/application/access"
	"github.com/jhoicas/securepass-api/internal/application/analytics"
	"github.com/jhoicas/securepass-api/internal/application/auth"
	"github.com/jhoicas/securepass-api/internal/application/billing"
	"github.com/jhoicas/securepass-api/internal/application/ports"
	"github.com/jhoicas/securepass-api/internal/application/provisioning"
	"github.com/jhoicas/securepass-api/internal/application/tenancy"
	"github.com/jhoicas/securepass-api/internal/domain/repository"
	infrakafka "github.com/jhoicas/securepass-api/internal/infrastructure/kafka"
	"github.com/jhoicas/securepass-api/internal/infrastructure/memory"
	"github.com/jhoicas/securepass-api/internal/infrastructure/notify"
	infrapdf "github.com/jhoicas/securepass-api/internal/infrastructure/pdf"
	"github.com/jhoicas/securepass-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/securepass-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/securepass-api/internal/interfaces/http"
	"github.com/jhoicas/securepass-api/pkg/config"
	"github.com/jhoicas/securepass-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Backend).
		Str("notify", cfg.Notify.Backend).
		Msg("iniciando aplicación")
	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// ── Persistencia ──────────────────────────────────────────────────────────
	var (
		repos    repository.Repositories
		txRunner ports.TxRunner
	)
	switch cfg.Store.Backend {
	case config.StoreBackendMemory:
		store := memory.NewStore()
		repos, txRunner = store.Repositories(), store
		log.Warn().Msg("store en memoria: los datos se pierden al reiniciar")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool, log.Component("migrate")); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		repos, txRunner = postgres.NewRepositories(pool), postgres.NewTxRunner(pool)
	}

	// ── Notificaciones por correo ─────────────────────────────────────────────
	var queue notify.Queue
	switch cfg.Notify.Backend {
	case config.NotifyBackendRabbitMQ:
		rq, err := notify.NewRabbitQueue(cfg.Notify.RabbitMQURL, cfg.Notify.Queue, log.Component("rabbitmq"))
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a RabbitMQ")
		}
		queue = rq
	default:
		queue = notify.NewMemoryQueue(256)
	}

	var mailer notify.Mailer = notify.NewLogMailer(log.Component("mailer"))
	if cfg.SMTP.Enabled() {
		mailer = notify.NewSMTPMailer(cfg.SMTP)
	}
	pdfGenerator := infrapdf.NewMarotoGenerator(cfg.App.PortalURL)
	mailPool := notify.NewPool(queue, notify.NewComposer(pdfGenerator), mailer,
		cfg.Notify.Workers, cfg.Notify.MaxAttempts, log.Component("notify"))

	mailDone := make(chan struct{})
	go func() {
		defer close(mailDone)
		if err := mailPool.Run(ctx); err != nil {
			log.Error().Err(err).Msg("pool de correo finalizado")
		}
	}()

	effects := ports.Effects{Notifier: notify.NewNotifier(queue), Log: log.Component("effects")}

	// ── Eventos de dominio (opcional) ─────────────────────────────────────────
	if cfg.Kafka.Broker != "" {
		publisher := infrakafka.NewPublisher(cfg.Kafka.Broker, cfg.Kafka.Topic)
		defer publisher.Close()
		effects.Events = publisher
	}

	// ── Reserva de orderId (opcional) ─────────────────────────────────────────
	var reserver billing.OrderIDReserver
	if cfg.Redis.Addr != "" {
		client, err := infraredis.Connect(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer client.Close()
		reserver = infraredis.NewOrderIDReserver(client)
	}

	// ── Casos de uso ──────────────────────────────────────────────────────────
	authUC := auth.NewAuthUseCase(repos, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := tenancy.NewCompanyUseCase(repos, txRunner, log.Component("tenancy"))
	companyRequestUC := tenancy.NewCompanyRequestUseCase(repos, txRunner, effects, log.Component("tenancy"))
	trialRequestUC := tenancy.NewTrialRequestUseCase(repos.TrialRequests)
	adminUC := provisioning.NewAdminUseCase(txRunner, effects)
	userUC := provisioning.NewUserUseCase(repos, txRunner, effects)
	doorUC := access.NewDoorUseCase(repos)
	permissionUC := access.NewPermissionUseCase(repos, txRunner, effects, log.Component("access"))
	accessLogUC := access.NewAccessLogUseCase(repos, pdfGenerator)
	paymentUC := billing.NewPaymentUseCase(repos, txRunner, effects, reserver, log.Component("billing"))
	dashboardUC := analytics.NewDashboardUseCase(repos.Metrics)
	directoryUC := analytics.NewDirectoryUseCase(repos)

	sweeper := tenancy.NewExpirySweeper(repos.Companies, cfg.Schedule.ExpirySweepInterval(), log.Component("sweeper"))
	var background sync.WaitGroup
	background.Add(1)
	go func() {
		defer background.Done()
		sweeper.Start(ctx)
	}()

	// ── HTTP ──────────────────────────────────────────────────────────────────
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log.Component("http")),
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.HTTP.CORSOrigins}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    docs.SwaggerInfo.Title,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		CompanyUC:        companyUC,
		CompanyRequestUC: companyRequestUC,
		TrialRequestUC:   trialRequestUC,
		AdminUC:          adminUC,
		UserUC:           userUC,
		DoorUC:           doorUC,
		PermissionUC:     permissionUC,
		AccessLogUC:      accessLogUC,
		PaymentUC:        paymentUC,
		DashboardUC:      dashboardUC,
		DirectoryUC:      directoryUC,
		JWTSecret:        cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	// Sin peticiones en curso ya no se encolan correos: cerrar la cola deja a los workers vaciarla.
	if err := queue.Close(); err != nil {
		log.Error().Err(err).Msg("cierre de la cola de correo")
	}
	select {
	case <-mailDone:
	case <-shutdownCtx.Done():
		log.Warn().Msg("correos pendientes sin enviar al apagar")
	}
	stop()
	background.Wait()

	log.Info().Msg("aplicación detenida")
}
