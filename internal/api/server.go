package api

import (
	"log"
	"time"

	"github.com/dedewo882/volunteer-platform-final/config"
	"github.com/dedewo882/volunteer-platform-final/infra/queue"
	"github.com/dedewo882/volunteer-platform-final/internal/api/rest/handlers"
	"github.com/dedewo882/volunteer-platform-final/internal/api/rest/middleware"
	"github.com/dedewo882/volunteer-platform-final/internal/clients/captcha"
	"github.com/dedewo882/volunteer-platform-final/internal/domain"
	"github.com/dedewo882/volunteer-platform-final/internal/helper"
	"github.com/dedewo882/volunteer-platform-final/internal/repository"
	"github.com/dedewo882/volunteer-platform-final/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func StartServer(cfg config.Config) {
	app := fiber.New()

	// ---------- ACCESS GATE ----------
	// The curfew gate runs before everything else so that blocked
	// requests never touch auth or the database.
	loc, err := time.LoadLocation(cfg.CurfewTimezone)
	if err != nil {
		log.Printf("unknown timezone %q, falling back to local: %v", cfg.CurfewTimezone, err)
		loc = time.Local
	}
	app.Use(middleware.Curfew(middleware.CurfewConfig{
		Enabled:        cfg.CurfewEnabled,
		Location:       loc,
		ExemptPrefixes: cfg.ExemptPrefixes,
	}))

	app.Use(recover.New())
	app.Use(logger.New())

	// ---------- CORS ----------
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.BaseURL,
		AllowHeaders:     "Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Println("database connected")

	// ---------- MIGRATION + SEED (guarded by advisory lock) ----------
	const migrateLockID int64 = 20260415

	if err := db.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
		log.Fatalf("migration lock error: %v", err)
	}
	defer func() {
		_ = db.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error
	}()

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Grade{},
		&domain.Tag{},
		&domain.VolunteerProfile{},
		&domain.Activity{},
		&domain.Session{},
		&domain.Registration{},
		&domain.Message{},
		&domain.Announcement{},
	); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	// Postgres unique indexes treat NULLs as distinct, so the composite
	// index alone would let two session-less submits race through. The
	// partial index covers that case.
	if err := db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS uniq_profile_activity_no_session " +
			"ON registrations (profile_id, activity_id) WHERE session_id IS NULL AND deleted_at IS NULL",
	).Error; err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Println("migration successful")

	// ---------- Infra ----------
	kafkaProducer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)

	var captchaClient *captcha.Client
	if cfg.CaptchaSecret != "" {
		captchaClient = captcha.New(cfg.CaptchaSecret, cfg.CaptchaVerifyURL)
	}

	authHelper := helper.SetupAuth(cfg.JWTSecret)
	validate := validator.New()

	seedAdmin(db, cfg, authHelper)

	// ---------- Repositories ----------
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	gradeRepo := repository.NewGradeRepository(db)
	tagRepo := repository.NewTagRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	registrationRepo := repository.NewRegistrationRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)

	// ---------- Services ----------
	userSvc := services.NewUserService(
		userRepo,
		profileRepo,
		registrationRepo,
		authHelper,
		captchaClient,
		cfg.CaptchaFailOpen,
	)
	catalogSvc := services.NewCatalogService(
		activityRepo,
		registrationRepo,
		profileRepo,
		gradeRepo,
		tagRepo,
		announcementRepo,
	)
	registrationSvc := services.NewRegistrationService(
		registrationRepo,
		profileRepo,
		activityRepo,
		kafkaProducer,
	)
	importerSvc := services.NewImporterService(
		userRepo,
		profileRepo,
		gradeRepo,
		tagRepo,
		registrationRepo,
		authHelper,
		kafkaProducer,
	)
	messageSvc := services.NewMessageService(messageRepo, userRepo)

	// ---------- Handlers ----------
	userHandler := handlers.NewUserHandler(userSvc, authHelper, validate)
	userHandler.SetupRoutes(app)

	activityHandler := handlers.NewActivityHandler(catalogSvc, registrationSvc, authHelper, validate)
	activityHandler.SetupRoutes(app)

	messageHandler := handlers.NewMessageHandler(messageSvc, authHelper, validate)
	messageHandler.SetupRoutes(app)

	adminHandler := handlers.NewAdminHandler(
		catalogSvc,
		registrationSvc,
		importerSvc,
		userSvc,
		authHelper,
		validate,
	)
	adminHandler.SetupRoutes(app)

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ---------- Listen ----------
	addr := cfg.ServerPort
	log.Println("listening on", addr)
	log.Fatal(app.Listen(addr))
}

// seedAdmin creates the bootstrap admin account on first start. It never
// resets an existing password.
func seedAdmin(db *gorm.DB, cfg config.Config, auth helper.Auth) {
	if cfg.AdminPassword == "" {
		return
	}

	var u domain.User
	err := db.Where("student_id = ?", cfg.AdminStudentID).First(&u).Error
	if err == gorm.ErrRecordNotFound {
		hash, hashErr := auth.HashPassword(cfg.AdminPassword)
		if hashErr != nil {
			log.Printf("admin seed skipped: %v", hashErr)
			return
		}
		_ = db.Create(&domain.User{
			StudentID:    cfg.AdminStudentID,
			Name:         cfg.AdminName,
			PasswordHash: hash,
			IsAdmin:      true,
			Status:       domain.UserStatusActive,
		}).Error
	}
}
