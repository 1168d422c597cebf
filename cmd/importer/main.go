package main

import (
	"context"
	"flag"
	"log"
	"os"

	"bahikhata/internal/config"
	"bahikhata/internal/db"
	"bahikhata/internal/importer"
	customerrepo "bahikhata/internal/repository/customer"
	txrepo "bahikhata/internal/repository/transaction"
	ledgersvc "bahikhata/internal/service/ledger"
)

func main() {
	var (
		filePath string
		ownerID  string
	)
	flag.StringVar(&filePath, "file", "", "Path to ledger CSV (name,phone,type,amount,notes)")
	flag.StringVar(&ownerID, "owner", "", "Store owner id to import into")
	flag.Parse()

	if filePath == "" || ownerID == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	f, err := os.Open(filePath)
	if err != nil {
		logger.Fatalf("open file: %v", err)
	}
	defer f.Close()

	ledgerService := ledgersvc.New(customerrepo.NewPostgres(pool), txrepo.NewPostgres(pool, logger))

	imp := importer.NewCSVImporter(f, ledgerService, ownerID)
	count, err := imp.Run(ctx)
	if err != nil {
		logger.Fatalf("import failed after %d rows: %v", count, err)
	}

	logger.Printf("imported %d transactions", count)
}
