package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oakline/bizdiag/internal/advisor"
	"github.com/oakline/bizdiag/internal/httpapi"
	"github.com/oakline/bizdiag/internal/report"
	"github.com/oakline/bizdiag/internal/store"
	"github.com/oakline/bizdiag/internal/telemetry"
)

func main() {
	dbFlag := flag.String("db", "", "path to SQLite database file (overrides DB_PATH env var)")
	webDir := flag.String("web-dir", "", "directory with style.css for PDF rendering (built-in style when empty)")
	flag.Parse()

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	dbPath := *dbFlag
	if dbPath == "" {
		dbPath = os.Getenv("DB_PATH")
	}
	if dbPath == "" {
		dbPath = "bizdiag.db"
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	shutdownTracing, err := telemetry.Setup(ctx, "diagserver", os.Getenv("OTLP_ENDPOINT"))
	if err != nil {
		log.Fatalf("telemetry setup: %v", err)
	}
	defer func() {
		flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer flushCancel()
		_ = shutdownTracing(flushCtx)
	}()

	st, err := store.NewSQLiteStore(dbPath)
	if err != nil {
		log.Fatalf("failed to initialize sqlite store (%s): %v", dbPath, err)
	}
	defer st.Close()
	log.Printf("using sqlite store at %s", dbPath)

	// The advisor is optional; without an API key the responses just omit
	// the narrative summary.
	var adv httpapi.Advisor
	if caller, err := advisor.NewAnthropicCallerFromEnv(); err != nil {
		log.Printf("advisor disabled: %v", err)
	} else {
		adv = advisor.NewService(caller)
	}

	renderer := report.NewChromiumPDFRenderer(*webDir)

	srv := &http.Server{
		Addr:              addr,
		Handler:           httpapi.NewServer(st, adv, renderer),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("diagserver listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
