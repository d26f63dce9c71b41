package worker

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"go-quality-report/internal/model"
	"go-quality-report/internal/utils"
)

type DeliveryHandler struct {
	Out chan<- model.Delivery

	colID       int
	colSiteCode int
	colSiteName int
	colKind     int
	colQuantity int
	colDate     int
}

func (h *DeliveryHandler) Bind(header []string) error {
	idx := headerIndex(header)

	col := func(name string) int {
		if i, ok := idx[name]; ok {
			return i
		}
		return -1
	}

	h.colID = col("delivery_id")
	h.colSiteCode = col("site_code")
	h.colSiteName = col("site_name")
	h.colKind = col("kind")
	h.colQuantity = col("quantity")
	h.colDate = col("delivery_date")

	if h.colSiteCode < 0 || h.colKind < 0 || h.colQuantity < 0 || h.colDate < 0 {
		return fmt.Errorf("deliveries extract misses required columns (site_code, kind, quantity, delivery_date)")
	}
	return nil
}

func (h *DeliveryHandler) Handle(row []string, rowNo int, job FileJob) error {
	siteCode := cell(row, h.colSiteCode)
	if siteCode == "" {
		return fmt.Errorf("row %d: empty site code", rowNo)
	}

	qty, err := utils.ParseNumber(cell(row, h.colQuantity))
	if err != nil {
		return fmt.Errorf("row %d: bad quantity %q: %w", rowNo, cell(row, h.colQuantity), err)
	}

	var kind model.DeliveryKind
	switch strings.ToUpper(cell(row, h.colKind)) {
	case "CUSTOMER", "OUTBOUND":
		kind = model.KindCustomer
	case "SUPPLIER", "INBOUND":
		kind = model.KindSupplier
	default:
		return fmt.Errorf("row %d: unknown delivery kind %q", rowNo, cell(row, h.colKind))
	}

	id := cell(row, h.colID)
	if id == "" {
		id = uuid.New().String()
	}

	h.Out <- model.Delivery{
		ID:              id,
		SiteCode:        siteCode,
		SiteName:        cell(row, h.colSiteName),
		Kind:            kind,
		Quantity:        qty,
		Date:            utils.ParseDate(cell(row, h.colDate)),
		CoreFilename:    job.FileName,
		CoreProcessdate: time.Now(),
	}

	return nil
}
