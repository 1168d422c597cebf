package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"bahikhata/internal/config"
	"bahikhata/internal/db"
	"bahikhata/internal/httpserver"
	customerrepo "bahikhata/internal/repository/customer"
	ownerrepo "bahikhata/internal/repository/owner"
	sessionrepo "bahikhata/internal/repository/session"
	txrepo "bahikhata/internal/repository/transaction"
	authsvc "bahikhata/internal/service/auth"
	ledgersvc "bahikhata/internal/service/ledger"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	ownerRepo := ownerrepo.NewPostgres(dbpool, logger)
	sessionRepo := sessionrepo.NewPostgres(dbpool)
	customerRepo := customerrepo.NewPostgres(dbpool)
	transactionRepo := txrepo.NewPostgres(dbpool, logger)

	authService := authsvc.New(ownerRepo, sessionRepo)
	ledgerService := ledgersvc.New(customerRepo, transactionRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		AuthSvc:   authService,
		LedgerSvc: ledgerService,
	}, cfg.CORSOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
