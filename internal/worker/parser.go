package worker

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/xuri/excelize/v2"

	"go-quality-report/internal/config"
	"go-quality-report/internal/metrics"
	"go-quality-report/internal/model"
	"go-quality-report/internal/utils"
)

func ParseWorker(
	ctx context.Context,
	wg *sync.WaitGroup,
	jobs <-chan FileJob,
	fileMetrics chan<- metrics.FileMetric,
	chComplaints chan<- model.Complaint,
	chDeliveries chan<- model.Delivery,
	chPlants chan<- model.Plant,
) {
	defer wg.Done()

	handlers := BuildRowHandlers(chComplaints, chDeliveries, chPlants)
	cfg := config.Load()

	for job := range jobs {
		err := parseOneWorkbook(ctx, job, fileMetrics, handlers)

		if err != nil {
			utils.MoveFile(job.FilePath, cfg.FileFailedDir)
			continue
		}
		utils.MoveFile(job.FilePath, cfg.FileSuccessDir)
	}
}

func parseOneWorkbook(
	ctx context.Context,
	job FileJob,
	fileMetrics chan<- metrics.FileMetric,
	handlers map[ExtractKind]RowHandler,
) error {
	start := time.Now()

	handler, ok := handlers[job.Kind]
	if !ok {
		return fmt.Errorf("no handler for extract %s", job.FileName)
	}

	f, err := excelize.OpenFile(job.FilePath)
	if err != nil {
		return fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return fmt.Errorf("no sheets found in %s", job.FileName)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("empty workbook %s", job.FileName)
	}

	if err := handler.Bind(rows[0]); err != nil {
		return err
	}

	var (
		totalRows  int64
		parsedRows int64
		errCount   int64
	)

	for rowNo := 1; rowNo < len(rows); rowNo++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		totalRows++
		atomic.AddInt64(&metrics.ProcessedRows, 1)

		row := rows[rowNo]
		if len(row) == 0 {
			continue // trailing blank rows
		}

		if err := handler.Handle(row, rowNo+1, job); err != nil {
			errCount++
			metrics.IncIssues(1)
			continue
		}

		parsedRows++
	}

	fileMetrics <- metrics.FileMetric{
		FileName:   job.FileName,
		StartTime:  start,
		EndTime:    time.Now(),
		Duration:   time.Since(start),
		TotalRows:  totalRows,
		ParsedRows: parsedRows,
		ErrorCount: errCount,
		Status:     "SUCCESS",
	}

	return nil
}
