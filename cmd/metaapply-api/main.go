// main is the entry point of the MetaApply API.
//
// STARTUP SEQUENCE:
//  1. Load configuration from a YAML file
//  2. Initialise the logger
//  3. Connect to MongoDB (and ping it)
//  4. Register all HTTP routes
//  5. Start the HTTP server in a separate goroutine
//  6. Block the main goroutine until an OS signal (Ctrl+C / kill) arrives
//  7. Gracefully shut down: finish in-flight requests, disconnect, exit
//
// RUNNING THE SERVER:
//
//	go run ./cmd/metaapply-api --config=config/local.yaml
//
// or (with the environment variable):
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/metaapply-api
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/metaapply/metaapply-api/internal/config"
	"github.com/metaapply/metaapply-api/internal/http/handlers/application"
	"github.com/metaapply/metaapply-api/internal/http/handlers/health"
	"github.com/metaapply/metaapply-api/internal/http/handlers/program"
	"github.com/metaapply/metaapply-api/internal/http/handlers/recommendation"
	"github.com/metaapply/metaapply-api/internal/http/handlers/recruiter"
	"github.com/metaapply/metaapply-api/internal/http/handlers/student"
	"github.com/metaapply/metaapply-api/internal/http/handlers/university"
	"github.com/metaapply/metaapply-api/internal/recommend"
	"github.com/metaapply/metaapply-api/internal/storage/mongo"
)

func main() {
	// MustLoad reads the YAML config and fatals if anything is wrong.
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)

	log.Info("starting metaapply-api",
		slog.String("env", cfg.Env),
		slog.String("version", "1.0.0"),
	)

	// Connect to the document store. We keep the *mongo.Mongo handle
	// (for Close and the health ping) but hand everything else the
	// storage.Storage interface — swapping the backend later only
	// requires changing this one block.
	store, err := mongo.New(context.Background(), cfg)
	if err != nil {
		log.Error("failed to initialise storage",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("storage initialised",
		slog.String("database", store.DatabaseName()))

	recommender := recommend.New(store)

	// Route table:
	//   POST /api/students                           → create a student
	//   GET  /api/students?level=&country=           → list students
	//   POST /api/universities                       → create a university
	//   GET  /api/universities?country=              → list universities
	//   POST /api/programs                           → create a program
	//   GET  /api/programs?level=&field=&country=    → list programs
	//   POST /api/recruiters                         → create a recruiter
	//   GET  /api/recruiters?verified=               → list recruiters
	//   POST /api/applications                       → create an application
	//   GET  /api/applications?status=&student_id=&program_id=
	//   GET  /api/recommendations/{student_id}?limit=
	//   GET  /api/health                             → liveness + store ping
	router := http.NewServeMux()

	router.HandleFunc("POST /api/students", student.Create(store))
	router.HandleFunc("GET /api/students", student.GetList(store))

	router.HandleFunc("POST /api/universities", university.Create(store))
	router.HandleFunc("GET /api/universities", university.GetList(store))

	router.HandleFunc("POST /api/programs", program.Create(store))
	router.HandleFunc("GET /api/programs", program.GetList(store))

	router.HandleFunc("POST /api/recruiters", recruiter.Create(store))
	router.HandleFunc("GET /api/recruiters", recruiter.GetList(store))

	router.HandleFunc("POST /api/applications", application.Create(store))
	router.HandleFunc("GET /api/applications", application.GetList(store))

	router.HandleFunc("GET /api/recommendations/{student_id}", recommendation.Get(recommender))

	router.HandleFunc("GET /api/health", health.Get(store))

	server := &http.Server{
		Addr:    cfg.HTTPServer.Addr,
		Handler: router,

		// Timeouts guard against slow clients holding connections open.
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ListenAndServe blocks, so it runs in its own goroutine and main
	// waits on the signal channel below.
	go func() {
		log.Info("server started", slog.String("address", cfg.HTTPServer.Addr))

		if err := server.ListenAndServe(); err != nil &&
			err != http.ErrServerClosed {
			log.Error("server encountered an error",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	log.Info("shutdown signal received, stopping server...")

	// Give in-flight requests five seconds, then cut them off.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server gracefully",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := store.Close(ctx); err != nil {
		log.Error("failed to disconnect from storage",
			slog.String("error", err.Error()))
	}

	log.Info("server stopped gracefully")
}

// setupLogger returns a *slog.Logger configured for the given
// environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Production (prod): machine-readable JSON output at INFO level.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}
