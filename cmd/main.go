package main

import (
	"context"
	"os"

	"DentalDesk/config"
	"DentalDesk/database"
	"DentalDesk/repositories"
	"DentalDesk/services"
	"DentalDesk/utils"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// main boots the persistence core: open the store, migrate, seed, wire the
// services. The interactive shell that consumes them is layered on top and
// lives outside this module's concern.
func main() {
	// A missing .env is fine; the defaults cover a fresh install.
	_ = godotenv.Load()

	cfg := config.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.IsDevelopment() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	db, err := database.InitDB(context.Background(), cfg.DBPath, utils.HashPassword)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to initialize database")
	}

	userRepo := repositories.NewUserRepository(db, logger)
	patientRepo := repositories.NewPatientRepository(db, logger)
	appointmentRepo := repositories.NewAppointmentRepository(db, logger)
	treatmentRepo := repositories.NewTreatmentRepository(db, logger)
	invoiceRepo := repositories.NewInvoiceRepository(db, logger)

	registry := services.NewRegistry(
		services.NewUserService(userRepo, logger),
		services.NewPatientService(patientRepo, logger),
		services.NewAppointmentService(appointmentRepo, logger),
		services.NewTreatmentService(treatmentRepo, logger),
		services.NewBillingService(invoiceRepo, logger),
	)

	catalog, err := registry.Treatments.GetAll(context.Background())
	if err != nil {
		logger.Fatal().Err(err).Msg("store readback failed")
	}
	logger.Info().Str("path", cfg.DBPath).Int("treatments", len(catalog)).
		Msg("clinic store initialized and ready")
}
