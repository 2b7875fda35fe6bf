package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"fstt-events-backend/cmd/events-api/apis"
	"fstt-events-backend/cmd/events-api/digest"
	"fstt-events-backend/cmd/events-api/model"
	"fstt-events-backend/cmd/events-api/repository"
	"fstt-events-backend/cmd/events-api/seed"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type EnvCfg struct {
	DBPath       string `envconfig:"DB_PATH" default:"fstt_events.db"`
	Port         int    `envconfig:"PORT" default:"8080"`
	CORSOrigin   string `envconfig:"CORS_ORIGIN" default:"http://localhost:5173"`
	DigestScheme string `envconfig:"DIGEST_SCHEME" default:"sha256"`
	BcryptCost   int    `envconfig:"BCRYPT_COST" default:"10"`
	Debug        bool   `envconfig:"DEBUG" default:"false"`
}

func main() {

	err := os.Setenv("TZ", "UTC")
	if err != nil {
		panic(err)
	}

	// Optional .env file for local development.
	_ = godotenv.Load()

	var cfg EnvCfg
	err = envconfig.Process("EVENTS", &cfg)
	if err != nil {
		panic(err)
	}

	logMode := logger.Silent
	if cfg.Debug {
		logMode = logger.Info
	}

	db, err := gorm.Open(
		sqlite.Open(cfg.DBPath),
		&gorm.Config{
			TranslateError: true,
			Logger:         logger.Default.LogMode(logMode),
		},
	)
	if err != nil {
		panic(err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Event{},
		&model.Registration{},
		&model.Comment{},
	)
	if err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	if err := seed.Run(context.Background(), db, cfg.Debug); err != nil {
		log.Fatalf("seed: %v", err)
	}

	hasher, err := digest.ForScheme(cfg.DigestScheme, cfg.BcryptCost)
	if err != nil {
		log.Fatal(err)
	}

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowCredentials: true,
	}))

	rootg := e.Group("")

	apis.
		NewHealthCheckAPI(db).
		Setup(rootg)

	userRepo := repository.NewUserRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	eventRepo := repository.NewEventRepo(db)
	registrationRepo := repository.NewRegistrationRepo(db)
	commentRepo := repository.NewCommentRepo(db)

	apis.
		NewAuthAPI(userRepo, hasher).
		Setup(rootg)

	apis.
		NewCategoryAPI(categoryRepo).
		Setup(rootg)

	apis.
		NewEventAPI(eventRepo, registrationRepo).
		Setup(rootg)

	apis.
		NewRegistrationAPI(registrationRepo).
		Setup(rootg)

	apis.
		NewCommentAPI(commentRepo).
		Setup(rootg)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("listening on %s (db=%s)", addr, cfg.DBPath)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
