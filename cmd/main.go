package main

import (
	"context"
	"flag"
	"log"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"

	"go-quality-report/internal/config"
	"go-quality-report/internal/db"
	"go-quality-report/internal/ftp"
	"go-quality-report/internal/orchestrator"
	"go-quality-report/internal/utils"
)

func main() {
	block := flag.String("block", "", "Block filter ex: COMPLAINTS")
	skipFTP := flag.Bool("skip-ftp", false, "Process files already present in FILE_PATH")
	flag.Parse()

	blockID := strings.ToUpper(strings.TrimSpace(*block))
	if blockID == "" {
		log.Fatalf("No block specified")
	}

	start := time.Now()
	ctx := context.Background()

	cfg := config.Load()

	for _, dir := range []string{
		cfg.FilePath,
		cfg.FileDir,
		cfg.FileSuccessDir,
		cfg.FileFailedDir,
		cfg.OutputDir,
		cfg.LogsDir,
	} {
		if err := utils.EnsureDir(dir); err != nil {
			log.Fatalf("Failed to create dir %s: %v", dir, err)
		}
	}

	dbConn, err := db.NewSQLServer(
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBUser,
		cfg.DBPass,
		cfg.DBName,
	)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	defer dbConn.Close()

	if !*skipFTP && blockID != "KPI" {
		ftpClient, err := ftp.NewClient(cfg.FTP)
		if err != nil {
			log.Fatalf("Failed to create FTP client: %v", err)
		}
		defer ftpClient.Close()

		log.Println("Starting FTP download...")
		files, err := ftpClient.DownloadExtracts(cfg.FilePath)
		if err != nil {
			log.Fatalf("Failed to download extracts: %v", err)
		}
		log.Printf("Downloaded %d extracts (files archived/deleted on server)", len(files))
	}

	processID := uuid.New().String()
	chain := orchestrator.New()

	log.Printf("Process ID %s\n", processID)

	// =========================================================
	// BLOCK REGISTRY
	// =========================================================
	blocks := map[string][]struct {
		Name string
		Fn   func(context.Context) error
	}{
		"COMPLAINTS": {
			{
				Name: "IMPORT COMPLAINTS",
				Fn: func(ctx context.Context) error {
					return orchestrator.RunComplaints(
						ctx,
						dbConn,
						cfg.FilePath,
						processID,
					)
				},
			},
		},
		"DELIVERIES": {
			{
				Name: "IMPORT DELIVERIES",
				Fn: func(ctx context.Context) error {
					return orchestrator.RunDeliveries(
						ctx,
						dbConn,
						cfg.FilePath,
						processID,
					)
				},
			},
		},
		"PLANTS": {
			{
				Name: "IMPORT PLANTS",
				Fn: func(ctx context.Context) error {
					return orchestrator.RunPlants(
						ctx,
						dbConn,
						cfg.FilePath,
						processID,
					)
				},
			},
		},
		"KPI": {
			{
				Name: "COMPUTE KPI",
				Fn: func(ctx context.Context) error {
					return orchestrator.RunKPI(
						ctx,
						dbConn,
						processID,
					)
				},
			},
		},
		"ALL": {
			{
				Name: "IMPORT PLANTS",
				Fn: func(ctx context.Context) error {
					return orchestrator.RunPlants(ctx, dbConn, cfg.FilePath, processID)
				},
			},
			{
				Name: "IMPORT COMPLAINTS",
				Fn: func(ctx context.Context) error {
					return orchestrator.RunComplaints(ctx, dbConn, cfg.FilePath, processID)
				},
			},
			{
				Name: "IMPORT DELIVERIES",
				Fn: func(ctx context.Context) error {
					return orchestrator.RunDeliveries(ctx, dbConn, cfg.FilePath, processID)
				},
			},
			{
				Name: "COMPUTE KPI",
				Fn: func(ctx context.Context) error {
					return orchestrator.RunKPI(ctx, dbConn, processID)
				},
			},
		},
	}

	// =========================================================
	// EXECUTION
	// =========================================================
	steps, ok := blocks[blockID]
	if !ok {
		log.Fatalf("Unknown block: %s", blockID)
	}

	log.Printf("Running block: %s\n", blockID)
	for _, step := range steps {
		chain.Add(step.Name, step.Fn)
	}

	if err := chain.Run(ctx); err != nil {
		log.Fatalf("RUN FAILED: %v", err)
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("Alloc=%dMB Sys=%dMB", m.Alloc/1024/1024, m.Sys/1024/1024)
	log.Printf("ALL STEPS COMPLETED IN %s\n", time.Since(start))
}
