package main

import (
	"context"
	"log"
	"monteluz-service/internal/app/config"
	"monteluz-service/internal/app/delivery/http/middlewares"
	"monteluz-service/internal/app/delivery/http/routers"
	"monteluz-service/internal/app/drivers/logger"
	"monteluz-service/internal/app/services/appointments"
	"monteluz-service/internal/app/services/prescriptions"
	"monteluz-service/internal/app/services/shared/documents"
	"monteluz-service/internal/app/services/shared/supabase"
	"monteluz-service/internal/pkg/utils"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	err := utils.ValidateStruct(internalConfig.Supabase)
	if err != nil {
		log.Fatalf("Invalid Supabase configuration: %v", err)
	}

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Supabase
	supabaseClient := supabase.NewSupabaseClient(bootstrap.InternalConfig.Supabase, bootstrap.Logger)

	// Documents
	documentRenderer := documents.NewDocumentRenderer(bootstrap.Logger)

	// Appointment
	appointmentUsecase := appointments.NewAppointmentUsecase(supabaseClient, bootstrap.Logger)
	appointmentController := appointments.NewAppointmentController(appointmentUsecase, documentRenderer, bootstrap.Logger)

	// Prescription
	prescriptionUsecase := prescriptions.NewPrescriptionUsecase(supabaseClient, bootstrap.Logger)
	prescriptionController := prescriptions.NewPrescriptionController(appointmentUsecase, prescriptionUsecase, documentRenderer, bootstrap.Logger)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, appointmentController, prescriptionController)
}
