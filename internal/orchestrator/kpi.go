package orchestrator

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"go-quality-report/internal/config"
	"go-quality-report/internal/export"
	"go-quality-report/internal/kpi"
	"go-quality-report/internal/store"
	"go-quality-report/internal/worker"
)

// RunKPI loads the merged record set, runs the aggregation core, persists
// the monthly KPI table and writes the JSON/XLSX hand-off artifacts.
func RunKPI(
	ctx context.Context,
	dbConn *sql.DB,
	processID string,
) error {

	cfg := config.Load()

	st := store.New(dbConn)

	complaints, err := st.ListComplaints(ctx)
	if err != nil {
		return err
	}
	deliveries, err := st.ListDeliveries(ctx)
	if err != nil {
		return err
	}

	log.Printf("AGGREGATING %d complaints, %d deliveries\n", len(complaints), len(deliveries))

	agg := kpi.Aggregator{
		Classifier: kpi.Classifier{Fallback: fallbackCategory(cfg.FallbackCategory)},
	}

	kpis, global, issues := agg.Compute(complaints, deliveries)

	if err := worker.ReplaceMonthlyKPI(ctx, dbConn, processID, kpis); err != nil {
		return fmt.Errorf("failed to persist KPI rows: %w", err)
	}

	result := export.Result{
		GeneratedAt: time.Now(),
		ProcessID:   processID,
		KPIs:        kpis,
		Global:      global,
		Issues:      issues,
	}

	stamp := time.Now().Format("20060102_150405")
	jsonPath := filepath.Join(cfg.OutputDir, "kpi_"+stamp+".json")
	xlsxPath := filepath.Join(cfg.OutputDir, "kpi_"+stamp+".xlsx")

	if err := export.WriteJSON(jsonPath, result); err != nil {
		return err
	}
	if err := export.WriteExcel(xlsxPath, result); err != nil {
		return err
	}

	log.Printf("KPI records: %d | data-quality issues: %d\n", len(kpis), len(issues))
	logGlobal(global.CustomerPPM, "GLOBAL CUSTOMER PPM")
	logGlobal(global.SupplierPPM, "GLOBAL SUPPLIER PPM")
	log.Printf("Exported %s and %s\n", jsonPath, xlsxPath)

	return nil
}

func fallbackCategory(raw string) kpi.Category {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "CUSTOMER":
		return kpi.CategoryCustomer
	case "SUPPLIER":
		return kpi.CategorySupplier
	case "DEVIATION":
		return kpi.CategoryDeviation
	default:
		return kpi.CategoryInternal
	}
}

func logGlobal(v *float64, label string) {
	if v == nil {
		log.Printf("%s: n/a (no deliveries)\n", label)
		return
	}
	log.Printf("%s: %.3f\n", label, *v)
}
