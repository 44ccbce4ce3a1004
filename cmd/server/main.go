package main

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/TamyKittyCat/crud-personas2/internal/application"
	"github.com/TamyKittyCat/crud-personas2/internal/config"
	"github.com/TamyKittyCat/crud-personas2/internal/email"
	"github.com/TamyKittyCat/crud-personas2/internal/infrastructure/repository"
	handlers "github.com/TamyKittyCat/crud-personas2/internal/interfaces/http"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/TamyKittyCat/crud-personas2/migrations"
)

// aplicarMigraciones ejecuta los archivos SQL embebidos en orden de nombre
func aplicarMigraciones(db *sql.DB) error {
	entries, err := migrations.FS.ReadDir(".")
	if err != nil {
		return fmt.Errorf("error al leer migraciones: %w", err)
	}

	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		script, err := migrations.FS.ReadFile(entry.Name())
		if err != nil {
			return fmt.Errorf("error al leer migración %s: %w", entry.Name(), err)
		}
		if _, err := db.Exec(string(script)); err != nil {
			return fmt.Errorf("error al aplicar migración %s: %w", entry.Name(), err)
		}
	}

	return nil
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Error loading config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.GetDBConnString())
	if err != nil {
		logrus.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logrus.Fatalf("Error pinging database: %v", err)
	}

	if err := aplicarMigraciones(db); err != nil {
		logrus.Fatalf("Error applying migrations: %v", err)
	}

	app := fiber.New()

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.NewString() },
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigin,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept",
		AllowCredentials: true,
	}))

	// Email client (opcional)
	var emailClient *email.Client
	if cfg.HasSMTP() {
		emailClient, err = email.NewClient(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUser,
			cfg.SMTPPassword,
			cfg.SMTPFromName,
			cfg.SMTPFromEmail,
		)
		if err != nil {
			logrus.Warnf("Email client initialization failed: %v", err)
			emailClient = nil // Continuar sin email
		}
	}

	// Personas
	personaRepo := repository.NewPersonaRepository(db)
	personaService := application.NewPersonaService(personaRepo, emailClient)
	personaHandler := handlers.NewPersonaHandler(personaService)

	api := app.Group("/api")
	handlers.RegisterRoutes(api, personaHandler)

	logrus.Infof("Servidor ejecutándose en el puerto %s", cfg.ServerPort)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		logrus.Fatalf("Error starting server: %v", err)
	}
}
