package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/restaurant-ops/internal/application/analytics"
	"github.com/jhoicas/restaurant-ops/internal/application/export"
	"github.com/jhoicas/restaurant-ops/internal/application/inventory"
	"github.com/jhoicas/restaurant-ops/internal/application/state"
	"github.com/jhoicas/restaurant-ops/internal/application/usecase"
	"github.com/jhoicas/restaurant-ops/internal/domain/repository"
	infrapdf "github.com/jhoicas/restaurant-ops/internal/infrastructure/pdf"
	"github.com/jhoicas/restaurant-ops/internal/infrastructure/postgres"
	"github.com/jhoicas/restaurant-ops/internal/infrastructure/sqlite"
	httpRouter "github.com/jhoicas/restaurant-ops/internal/interfaces/http"
	"github.com/jhoicas/restaurant-ops/pkg/config"
	"github.com/jhoicas/restaurant-ops/pkg/logger"
	"github.com/jhoicas/restaurant-ops/pkg/money"
)

// backend repositorios del almacenamiento configurado.
type backend struct {
	ingredients repository.IngredientRepository
	suppliers   repository.SupplierRepository
	menuItems   repository.MenuItemRepository
	wastage     repository.WastageRepository
	tx          repository.StateTxRunner
	ping        func(ctx context.Context) error
	close       func()
}

func openBackend(ctx context.Context, cfg *config.Config) (*backend, error) {
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &backend{
			ingredients: postgres.NewIngredientRepository(pool),
			suppliers:   postgres.NewSupplierRepository(pool),
			menuItems:   postgres.NewMenuItemRepository(pool),
			wastage:     postgres.NewWastageRepository(pool),
			tx:          postgres.NewTxRunner(pool),
			ping:        pool.Ping,
			close:       pool.Close,
		}, nil
	case config.StorageSQLite:
		store, err := sqlite.Open(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &backend{
			ingredients: sqlite.NewIngredientRepository(store),
			suppliers:   sqlite.NewSupplierRepository(store),
			menuItems:   sqlite.NewMenuItemRepository(store),
			wastage:     sqlite.NewWastageRepository(store),
			tx:          store,
			ping:        store.Ping,
			close:       func() { _ = store.Close() },
		}, nil
	}
	return nil, fmt.Errorf("driver de almacenamiento desconocido: %q", cfg.Storage.Driver)
}

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
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := openBackend(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("apertura del almacenamiento")
	}
	defer store.close()

	zl := log.Zerolog()
	stateUC := state.NewUseCase(store.ingredients, store.suppliers, store.menuItems, store.tx,
		log.Component("state").Zerolog())
	if cfg.Seed.Demo {
		if _, err := stateUC.SeedIfEmpty(ctx); err != nil {
			log.Error().Err(err).Msg("sembrado de datos de demostración")
		}
	}

	format := money.NewFormatter(cfg.Dashboard.CurrencySymbol, cfg.Dashboard.Locale)
	dashboardUC := appanalytics.NewDashboardUseCase(
		store.ingredients, store.suppliers, store.menuItems, store.wastage,
		format,
		appanalytics.Options{
			TopItems:     cfg.Dashboard.TopItems,
			RecipeCards:  cfg.Dashboard.RecipeCards,
			ExpiryWindow: time.Duration(cfg.Dashboard.ExpiryWindowDays) * 24 * time.Hour,
		},
		log.Component("dashboard").Zerolog(),
	)

	// PDF: reporte de inventario
	reportGenerator := infrapdf.NewMarotoReportGenerator(format, cfg.App.Name)
	exportUC := export.NewUseCase(
		store.ingredients, store.suppliers, store.menuItems, store.wastage,
		dashboardUC, reportGenerator, log.Component("export").Zerolog(),
	)

	usecaseLog := log.Component("usecase").Zerolog()
	ingredientUC := usecase.NewIngredientUseCase(store.ingredients, usecaseLog)
	supplierUC := usecase.NewSupplierUseCase(store.suppliers, usecaseLog)
	recipeUC := usecase.NewRecipeUseCase(store.menuItems, store.ingredients, usecaseLog)
	wastageUC := usecase.NewWastageUseCase(store.wastage, store.ingredients, usecaseLog)
	replenishmentUC := inventory.NewReplenishmentUseCase(store.ingredients, store.suppliers, store.menuItems,
		log.Component("inventory").Zerolog())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(httpRouter.RequestLogger(zl))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Restaurant Ops API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		DashboardUC:     dashboardUC,
		IngredientUC:    ingredientUC,
		SupplierUC:      supplierUC,
		RecipeUC:        recipeUC,
		WastageUC:       wastageUC,
		ReplenishmentUC: replenishmentUC,
		ExportUC:        exportUC,
		StateUC:         stateUC,
		ServiceName:     cfg.App.Name,
		Ping:            store.ping,
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

	log.Info().Msg("aplicación detenida")
}
