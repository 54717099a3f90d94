package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/storeops-api/internal/application/assistant"
	"github.com/jhoicas/storeops-api/internal/application/auth"
	"github.com/jhoicas/storeops-api/internal/application/requests"
	"github.com/jhoicas/storeops-api/internal/application/schedule"
	"github.com/jhoicas/storeops-api/internal/application/tasks"
	"github.com/jhoicas/storeops-api/internal/application/usecase"
	"github.com/jhoicas/storeops-api/internal/domain/repository"
	infraai "github.com/jhoicas/storeops-api/internal/infrastructure/ai"
	"github.com/jhoicas/storeops-api/internal/infrastructure/memory"
	"github.com/jhoicas/storeops-api/internal/infrastructure/notify"
	"github.com/jhoicas/storeops-api/internal/infrastructure/redisstore"
	"github.com/jhoicas/storeops-api/internal/infrastructure/seed"
	httpRouter "github.com/jhoicas/storeops-api/internal/interfaces/http"
	"github.com/jhoicas/storeops-api/pkg/config"
	"github.com/jhoicas/storeops-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Data de referencia: embebida por defecto, SEED_PATH la reemplaza.
	var data *seed.Data
	if cfg.Seed.Path != "" {
		data, err = seed.LoadFile(cfg.Seed.Path)
	} else {
		data, err = seed.Load()
	}
	if err != nil {
		log.Fatal().Err(err).Msg("cargar seed")
	}

	deptRepo := memory.NewDepartmentRepository(data.Departments)
	userRepo := memory.NewUserRepository(data.Users)
	taskRepo := memory.NewTaskRepository()
	timeOffRepo := memory.NewTimeOffRepository()
	reorderRepo := memory.NewReorderRepository()
	shiftRepo := memory.NewShiftRepository()
	productRepo := memory.NewProductRepository(data.Products)

	// Slots de settings: Redis cuando está configurado, memoria si no.
	var settingsRepo repository.SettingsRepository
	if cfg.Redis.Addr != "" {
		rs := redisstore.NewSettingsRepository(redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, cfg.App.Name)
		if err := rs.Ping(ctx); err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rs.Close()
		settingsRepo = rs
		log.Info().Str("addr", cfg.Redis.Addr).Msg("settings en Redis")
	} else {
		settingsRepo = memory.NewSettingsRepository()
		log.Info().Msg("settings en memoria (no sobreviven reinicios)")
	}

	notifier := notify.NewLogNotifier(log, 500*time.Millisecond)
	geminiSvc := infraai.NewGeminiService(cfg.AI.GeminiModel)

	userUC := usecase.NewUserUseCase(userRepo, deptRepo)
	deptUC := usecase.NewDepartmentUseCase(deptRepo)
	catalogUC := usecase.NewCatalogUseCase(productRepo)
	taskUC := tasks.NewTaskUseCase(taskRepo, deptRepo)
	generator := tasks.NewGenerator(data.Templates, taskRepo, settingsRepo, notifier, log, tasks.GeneratorConfig{
		WeekStart:     cfg.Tasks.ParseWeekStart(),
		DueHour:       cfg.Tasks.DueHour,
		OperatorEmail: cfg.Notify.ManagerEmail,
	})
	timeOffUC := requests.NewTimeOffUseCase(timeOffRepo, userRepo, notifier, log, requests.TimeOffConfig{
		ManagerEmail: cfg.Notify.ManagerEmail,
	})
	reorderUC := requests.NewReorderUseCase(reorderRepo, notifier, log, requests.ReorderConfig{
		OwnerAddress: cfg.Notify.OwnerAddress,
	})
	scheduleUC := schedule.NewScheduleUseCase(shiftRepo)
	contextProvider := assistant.NewKeywordContextProvider(deptRepo, productRepo)
	assistantUC := assistant.NewAssistantUseCase(geminiSvc, contextProvider, settingsRepo, cfg.AI.GeminiAPIKey)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Corrida inicial del generador más un tick horario. El gate por día vive
	// en el generador: los ticks del mismo día son no-op.
	if _, err := generator.Run(ctx, time.Now()); err != nil {
		log.Error().Err(err).Msg("corrida inicial del generador")
	}
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if _, err := generator.Run(context.Background(), time.Now()); err != nil {
				log.Error().Err(err).Msg("corrida periódica del generador")
			}
		}
	}()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Store Ops API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		UserUC:       userUC,
		DepartmentUC: deptUC,
		CatalogUC:    catalogUC,
		TaskUC:       taskUC,
		Generator:    generator,
		TimeOffUC:    timeOffUC,
		ReorderUC:    reorderUC,
		ScheduleUC:   scheduleUC,
		AssistantUC:  assistantUC,
		JWTSecret:    cfg.JWT.Secret,
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
