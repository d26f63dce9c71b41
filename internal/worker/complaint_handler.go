package worker

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"go-quality-report/internal/kpi"
	"go-quality-report/internal/model"
	"go-quality-report/internal/utils"
)

type ComplaintHandler struct {
	Out chan<- model.Complaint

	colID             int
	colNotificationNo int
	colSiteCode       int
	colSiteName       int
	colType           int
	colDefectiveParts int
	colUnit           int
	colFactor         int
	colMaterial       int
	colCreatedOn      int
}

func (h *ComplaintHandler) Bind(header []string) error {
	idx := headerIndex(header)

	col := func(name string) int {
		if i, ok := idx[name]; ok {
			return i
		}
		return -1
	}

	h.colID = col("id")
	h.colNotificationNo = col("notification_no")
	h.colSiteCode = col("site_code")
	h.colSiteName = col("site_name")
	h.colType = col("notification_type")
	h.colDefectiveParts = col("defective_parts")
	h.colUnit = col("unit")
	h.colFactor = col("factor_per_piece")
	h.colMaterial = col("material")
	h.colCreatedOn = col("created_on")

	if h.colSiteCode < 0 || h.colType < 0 || h.colCreatedOn < 0 {
		return fmt.Errorf("complaints extract misses required columns (site_code, notification_type, created_on)")
	}
	return nil
}

func (h *ComplaintHandler) Handle(row []string, rowNo int, job FileJob) error {
	siteCode := cell(row, h.colSiteCode)
	if siteCode == "" {
		return fmt.Errorf("row %d: empty site code", rowNo)
	}

	parts := 0.0
	if raw := cell(row, h.colDefectiveParts); raw != "" {
		v, err := utils.ParseNumber(raw)
		if err != nil {
			return fmt.Errorf("row %d: bad defective parts %q: %w", rowNo, raw, err)
		}
		parts = v
	}

	var factor float64
	if raw := cell(row, h.colFactor); raw != "" {
		factor, _ = utils.ParseNumber(raw)
	}

	unit := cell(row, h.colUnit)
	normalized, conv := kpi.NormalizePieces(parts, unit, factor, cell(row, h.colMaterial))

	// Stable id keeps re-uploads idempotent: extract id, then the
	// notification number, then a generated one.
	id := cell(row, h.colID)
	if id == "" {
		id = cell(row, h.colNotificationNo)
	}
	if id == "" {
		id = uuid.New().String()
	}

	h.Out <- model.Complaint{
		ID:              id,
		NotificationNo:  cell(row, h.colNotificationNo),
		SiteCode:        siteCode,
		SiteName:        cell(row, h.colSiteName),
		Type:            cell(row, h.colType),
		DefectiveParts:  normalized,
		Unit:            unit,
		Conversion:      &conv,
		CreatedOn:       utils.ParseDate(cell(row, h.colCreatedOn)),
		CoreFilename:    job.FileName,
		CoreProcessdate: time.Now(),
	}

	return nil
}
