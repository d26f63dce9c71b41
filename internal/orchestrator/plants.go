package orchestrator

import (
	"context"
	"database/sql"
	"log"
	"path/filepath"
	"sync"
	"sync/atomic"

	"go-quality-report/internal/config"
	"go-quality-report/internal/metrics"
	"go-quality-report/internal/model"
	"go-quality-report/internal/utils"
	"go-quality-report/internal/worker"
)

func RunPlants(
	ctx context.Context,
	dbConn *sql.DB,
	filePath string,
	processID string,
) error {

	cfg := config.Load()

	files, err := filepath.Glob(filePath + "/*_PLANTS.xlsx")
	if err != nil || len(files) == 0 {
		return err
	}

	var totalRows int64
	for _, f := range files {
		c, err := utils.CountRows(f)
		if err != nil {
			return err
		}
		totalRows += c
	}

	atomic.StoreInt64(&metrics.TotalRows, totalRows)
	atomic.StoreInt64(&metrics.ProcessedRows, 0)

	log.Printf("TOTAL ROWS (PLANTS): %d\n", totalRows)

	jobs := make(chan worker.FileJob, len(files))
	chPlants := make(chan model.Plant, cfg.BufferSize)
	fileMetrics := make(chan metrics.FileMetric, 100)

	metricsDone := make(chan struct{})
	go metrics.CollectFileMetrics(fileMetrics, metricsDone)

	progressDone := make(chan struct{})
	go metrics.StartProgressBar(totalRows, progressDone)

	var parseWg sync.WaitGroup
	for i := 0; i < cfg.Worker; i++ {
		parseWg.Add(1)
		go worker.ParseWorker(
			ctx,
			&parseWg,
			jobs,
			fileMetrics,
			nil,
			nil,
			chPlants,
		)
	}

	for _, path := range files {
		jobs <- worker.FileJob{
			FilePath: path,
			FileName: filepath.Base(path),
			Kind:     worker.ExtractPlants,
		}
	}
	close(jobs)

	donePlants := make(chan struct{})
	go worker.BulkPlants(ctx, dbConn, chPlants, donePlants)

	parseWg.Wait()
	close(chPlants)
	<-donePlants

	close(fileMetrics)
	<-metricsDone

	close(progressDone)

	log.Printf("PLANTS rows inserted: %d\n",
		atomic.LoadInt64(&metrics.InsertedRows),
	)

	return nil
}
