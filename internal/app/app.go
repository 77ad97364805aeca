package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fyyur/config"
	"fyyur/database"
	"fyyur/internal/api/artists"
	"fyyur/internal/api/shows"
	"fyyur/internal/api/venues"
	routes "fyyur/internal/app/http"
	"fyyur/internal/app/http/middleware"
	"fyyur/internal/repository"
	"fyyur/internal/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App owns the HTTP server and the database it serves.
type App struct {
	config *config.Config
	logger *zap.Logger
	db     *gorm.DB
	server *http.Server
}

func NewApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	db, err := database.Open(cfg, logger)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		_ = database.Close(db)
		return nil, err
	}
	if cfg.SeedDemo {
		seeded, err := database.SeedDemo(db)
		if err != nil {
			_ = database.Close(db)
			return nil, err
		}
		logger.Info("demo data", zap.Bool("seeded", seeded))
	}

	engine, err := NewEngine(cfg, logger, db)
	if err != nil {
		_ = database.Close(db)
		return nil, err
	}

	return &App{
		config: cfg,
		logger: logger,
		db:     db,
		server: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// NewEngine builds the gin engine with every page, middleware and the
// health and metrics endpoints.
func NewEngine(cfg *config.Config, logger *zap.Logger, db *gorm.DB) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if err := web.Install(r); err != nil {
		return nil, err
	}

	r.Use(middleware.RequestLogger(logger), middleware.Metrics())
	r.Use(web.Sessions([]byte(cfg.SessionSecret)))
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic serving request", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		web.ServerError(c)
		c.Abort()
	}))
	if cfg.CORSOrigin != "" {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{cfg.CORSOrigin},
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	store := repository.NewStore(db)
	routes.RegisterRoutes(r, routes.Handlers{
		Venues:  venues.NewHandler(store, logger),
		Artists: artists.NewHandler(store, logger),
		Shows:   shows.NewHandler(store, logger),
		Ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	})
	return r, nil
}

func (app *App) start() {
	app.logger.Info("starting server", zap.String("port", app.config.Port), zap.String("env", app.config.Environment))

	go func() {
		if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.logger.Fatal("server failed to start", zap.Error(err))
		}
	}()
}

func (app *App) stop() error {
	app.logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := app.server.Shutdown(shutdownCtx)
	if err != nil {
		app.logger.Error("server forced to shutdown", zap.Error(err))
	}
	if cerr := database.Close(app.db); cerr != nil {
		app.logger.Error("closing database", zap.Error(cerr))
		err = errors.Join(err, cerr)
	}
	if err == nil {
		app.logger.Info("server exited gracefully")
	}
	return err
}

// Run serves until SIGINT or SIGTERM, then drains in-flight requests.
func (app *App) Run() error {
	app.start()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	return app.stop()
}
