package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/xuri/excelize/v2"

	"go-quality-report/internal/kpi"
	"go-quality-report/internal/model"
)

// Result is the hand-off artifact the dashboard front end consumes. The KPI
// list keeps its month/site ordering; consumers rely on it for rendering.
type Result struct {
	GeneratedAt time.Time              `json:"generatedAt"`
	ProcessID   string                 `json:"processId"`
	KPIs        []model.MonthlySiteKPI `json:"kpis"`
	Global      model.GlobalPPM        `json:"globalPpm"`
	Issues      []kpi.Issue            `json:"issues"`
}

// WriteJSON writes the full result, issues included, as indented JSON.
func WriteJSON(filename string, r Result) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(r); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// WriteExcel writes a workbook with a Monthly KPI sheet, a Global PPM sheet
// and a Data Quality sheet. Undefined PPM cells stay empty rather than 0.
func WriteExcel(filename string, r Result) error {
	f := excelize.NewFile()
	defer f.Close()

	const kpiSheet = "Monthly KPI"
	f.SetSheetName("Sheet1", kpiSheet)

	header := []any{
		"Month", "Site Code", "Site Name",
		"Customer Complaints (Q1)", "Supplier Complaints (Q2)", "Internal Complaints (Q3)",
		"Deviations (D)", "PPAP In Progress", "PPAP Completed",
		"Customer Defective Parts", "Supplier Defective Parts", "Internal Defective Parts",
		"Customer Delivered Qty", "Supplier Delivered Qty",
		"Customer PPM", "Supplier PPM",
	}
	if err := f.SetSheetRow(kpiSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, k := range r.KPIs {
		row := []any{
			k.Month, k.SiteCode, k.SiteName,
			k.CustomerComplaints, k.SupplierComplaints, k.InternalComplaints,
			k.Deviations, k.PPAP.InProgress, k.PPAP.Completed,
			k.CustomerDefectiveParts, k.SupplierDefectiveParts, k.InternalDefectiveParts,
			k.CustomerDeliveredQty, k.SupplierDeliveredQty,
			ppmCell(k.CustomerPPM), ppmCell(k.SupplierPPM),
		}
		cellRef, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(kpiSheet, cellRef, &row); err != nil {
			return fmt.Errorf("failed to write KPI row %d: %w", i+2, err)
		}
	}

	const globalSheet = "Global PPM"
	if _, err := f.NewSheet(globalSheet); err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}
	globalHeader := []any{"Customer PPM", "Supplier PPM"}
	globalRow := []any{ppmCell(r.Global.CustomerPPM), ppmCell(r.Global.SupplierPPM)}
	if err := f.SetSheetRow(globalSheet, "A1", &globalHeader); err != nil {
		return fmt.Errorf("failed to write global header: %w", err)
	}
	if err := f.SetSheetRow(globalSheet, "A2", &globalRow); err != nil {
		return fmt.Errorf("failed to write global row: %w", err)
	}

	const issueSheet = "Data Quality"
	if _, err := f.NewSheet(issueSheet); err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}
	issueHeader := []any{"Record Kind", "Record ID", "Reason"}
	if err := f.SetSheetRow(issueSheet, "A1", &issueHeader); err != nil {
		return fmt.Errorf("failed to write issue header: %w", err)
	}
	for i, issue := range r.Issues {
		row := []any{issue.RecordKind, issue.RecordID, issue.Reason}
		cellRef, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(issueSheet, cellRef, &row); err != nil {
			return fmt.Errorf("failed to write issue row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}

// ppmCell leaves undefined ratios blank in the sheet.
func ppmCell(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}
