package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/tienda-ledger/internal/application/analytics"
	"github.com/jhoicas/tienda-ledger/internal/application/b2b"
	"github.com/jhoicas/tienda-ledger/internal/application/billing"
	"github.com/jhoicas/tienda-ledger/internal/application/inventory"
	"github.com/jhoicas/tienda-ledger/internal/application/session"
	"github.com/jhoicas/tienda-ledger/internal/domain/repository"
	"github.com/jhoicas/tienda-ledger/internal/infrastructure/memory"
	"github.com/jhoicas/tienda-ledger/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/tienda-ledger/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/tienda-ledger/internal/interfaces/http"
	"github.com/jhoicas/tienda-ledger/pkg/config"
	"github.com/jhoicas/tienda-ledger/pkg/logger"
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
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("store", cfg.Store.Driver).Msg("conexión al almacén de colecciones")
	}
	defer closeStore()

	// Sesiones por tenant: guardado diferido y recarga periódica.
	manager := session.NewManager(store, session.Options{
		Debounce:        cfg.Sync.Debounce,
		RefetchInterval: cfg.Sync.RefetchInterval,
		Timeout:         cfg.Sync.Timeout,
	}, log)
	if err := manager.Start(); err != nil {
		log.Fatal().Err(err).Msg("programar recarga periódica")
	}

	inventoryUC := inventory.NewInventoryUseCase(manager)
	replenishmentUC := inventory.NewReplenishmentUseCase(manager)
	saleUC := billing.NewSaleUseCase(manager)
	orderUC := billing.NewOrderUseCase(manager)
	cashUC := billing.NewCashUseCase(manager)
	customerUC := billing.NewCustomerUseCase(manager)
	b2bUC := b2b.NewB2BUseCase(manager, session.NewRemoteOrders(store, cfg.Sync.Timeout))
	dashboardUC := analytics.NewDashboardUseCase(manager)
	marginsUC := analytics.NewMarginsUseCase(manager)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		InventoryUC:     inventoryUC,
		ReplenishmentUC: replenishmentUC,
		SaleUC:          saleUC,
		OrderUC:         orderUC,
		CashUC:          cashUC,
		CustomerUC:      customerUC,
		B2BUC:           b2bUC,
		DashboardUC:     dashboardUC,
		MarginsUC:       marginsUC,
		Sessions:        manager,
		JWTSecret:       cfg.JWT.Secret,
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
	// Guardar lo que quede pendiente antes de soltar el almacén.
	if err := manager.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("guardado final de sesiones")
	}

	log.Info().Msg("aplicación detenida")
}

// openStore construye el almacén de colecciones según STORE_DRIVER.
func openStore(ctx context.Context, cfg *config.Config) (repository.CollectionStore, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewCollectionRepository(pool, postgres.NewTxRunner(pool)), pool.Close, nil
	case config.StoreDriverRedis:
		client, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return infraredis.NewCollectionStore(client, cfg.Redis.KeyPrefix), func() { _ = client.Close() }, nil
	case config.StoreDriverMemory:
		return memory.NewCollectionStore(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("store driver desconocido: %q", cfg.Store.Driver)
	}
}
