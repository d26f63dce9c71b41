package kpi

import (
	"sort"
	"strings"

	"go-quality-report/internal/model"
)

// Aggregator derives Monthly Site KPI records from grouped complaint and
// delivery data. It is stateless; calls are safe to repeat or run in
// parallel on the same input.
type Aggregator struct {
	Classifier Classifier
}

// Compute groups both record lists and returns the sorted monthly KPI list,
// the global PPM pair and any data-quality issues found on the way. It is
// the single entry point callers need; empty input yields empty output,
// never an error.
func (a Aggregator) Compute(complaints []model.Complaint, deliveries []model.Delivery) ([]model.MonthlySiteKPI, model.GlobalPPM, []Issue) {
	idx := Group(complaints, deliveries)
	return a.Aggregate(idx), a.GlobalPPM(complaints, deliveries), idx.Issues
}

// Aggregate produces one KPI record per (site, month) key present in either
// index, sorted by month ascending then site code ascending.
func (a Aggregator) Aggregate(idx *Index) []model.MonthlySiteKPI {
	keys := idx.Keys()

	out := make([]model.MonthlySiteKPI, 0, len(keys))
	for _, key := range keys {
		out = append(out, a.aggregateBucket(key, idx.Complaints[key], idx.Deliveries[key]))
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Month != out[j].Month {
			return out[i].Month < out[j].Month
		}
		return out[i].SiteCode < out[j].SiteCode
	})

	return out
}

func (a Aggregator) aggregateBucket(key string, complaints []model.Complaint, deliveries []model.Delivery) model.MonthlySiteKPI {
	site, month := splitKey(key)

	k := model.MonthlySiteKPI{
		Month:    month,
		SiteCode: site,
	}

	var customerConv, supplierConv rollupBuilder

	for _, c := range complaints {
		cl := a.Classifier.Classify(c.Type)

		switch cl.Category {
		case CategoryCustomer:
			k.CustomerComplaints++
			k.CustomerDefectiveParts += c.DefectiveParts
			customerConv.add(c)
		case CategorySupplier:
			k.SupplierComplaints++
			k.SupplierDefectiveParts += c.DefectiveParts
			supplierConv.add(c)
		case CategoryInternal:
			k.InternalComplaints++
			k.InternalDefectiveParts += c.DefectiveParts
		case CategoryDeviation:
			k.Deviations++
		case CategoryPPAP:
			switch cl.Stage {
			case StageCompleted:
				k.PPAP.Completed++
			default:
				k.PPAP.InProgress++
			}
		}

		if k.SiteName == "" && c.SiteName != "" {
			k.SiteName = c.SiteName
		}
	}

	for _, d := range deliveries {
		switch d.Kind {
		case model.KindCustomer:
			k.CustomerDeliveredQty += d.Quantity
		case model.KindSupplier:
			k.SupplierDeliveredQty += d.Quantity
		}

		if k.SiteName == "" && d.SiteName != "" {
			k.SiteName = d.SiteName
		}
	}

	k.CustomerPPM = ppm(k.CustomerDefectiveParts, k.CustomerDeliveredQty)
	k.SupplierPPM = ppm(k.SupplierDefectiveParts, k.SupplierDeliveredQty)
	k.CustomerConversions = customerConv.rollup()
	k.SupplierConversions = supplierConv.rollup()

	return k
}

// ppm derives parts-per-million, or nil when the delivered quantity is zero.
// An absent denominator means "no signal", never 0 or +Inf.
func ppm(defective, delivered float64) *float64 {
	if delivered == 0 {
		return nil
	}
	v := defective / delivered * 1_000_000
	return &v
}

func splitKey(key string) (site, month string) {
	i := strings.LastIndex(key, keySep)
	if i < 0 {
		return key, ""
	}
	return key[:i], key[i+len(keySep):]
}

// rollupBuilder accumulates successful unit conversions for one category.
type rollupBuilder struct {
	r model.ConversionRollup
}

func (b *rollupBuilder) add(c model.Complaint) {
	if c.Conversion == nil || c.Conversion.Status != model.ConversionDone {
		return
	}
	b.r.Count++
	b.r.OriginalTotal += c.Conversion.OriginalValue
	b.r.ConvertedTotal += c.Conversion.ConvertedValue
	b.r.Details = append(b.r.Details, model.ConversionDetail{
		NotificationNo: c.NotificationNo,
		Conversion:     *c.Conversion,
	})
}

// rollup returns nil when nothing converted, so empty rollups never reach
// the output.
func (b *rollupBuilder) rollup() *model.ConversionRollup {
	if b.r.Count == 0 {
		return nil
	}
	r := b.r
	return &r
}
