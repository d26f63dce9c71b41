package kpi

import (
	"fmt"
	"time"

	"go-quality-report/internal/model"
)

const keySep = "::"

// MonthOf truncates a timestamp to its "YYYY-MM" bucket.
func MonthOf(t time.Time) string {
	return t.Format("2006-01")
}

// BucketKey builds the grouping key for a site and date.
func BucketKey(siteCode string, t time.Time) string {
	return siteCode + keySep + MonthOf(t)
}

// Issue is one data-quality finding raised while grouping. Records behind
// issues are excluded from aggregation but never abort the batch.
type Issue struct {
	RecordKind string `json:"recordKind"`
	RecordID   string `json:"recordId"`
	Reason     string `json:"reason"`
}

// Index holds complaint and delivery records partitioned by
// siteCode::YYYY-MM. Bucket order is insertion order.
type Index struct {
	Complaints map[string][]model.Complaint
	Deliveries map[string][]model.Delivery
	Issues     []Issue
}

// Group partitions both record lists by (site, month). Records with a zero
// date, a negative quantity or an unknown delivery kind are dropped into the
// issue list instead of a bucket.
func Group(complaints []model.Complaint, deliveries []model.Delivery) *Index {
	idx := &Index{
		Complaints: make(map[string][]model.Complaint),
		Deliveries: make(map[string][]model.Delivery),
	}

	for _, c := range complaints {
		if c.CreatedOn.IsZero() {
			idx.reject("complaint", c.ID, "missing or unparseable creation date")
			continue
		}
		if c.DefectiveParts < 0 {
			idx.reject("complaint", c.ID, fmt.Sprintf("negative defective parts: %v", c.DefectiveParts))
			continue
		}
		key := BucketKey(c.SiteCode, c.CreatedOn)
		idx.Complaints[key] = append(idx.Complaints[key], c)
	}

	for _, d := range deliveries {
		if d.Date.IsZero() {
			idx.reject("delivery", d.ID, "missing or unparseable delivery date")
			continue
		}
		if d.Quantity < 0 {
			idx.reject("delivery", d.ID, fmt.Sprintf("negative quantity: %v", d.Quantity))
			continue
		}
		if d.Kind != model.KindCustomer && d.Kind != model.KindSupplier {
			idx.reject("delivery", d.ID, fmt.Sprintf("unknown kind %q", d.Kind))
			continue
		}
		key := BucketKey(d.SiteCode, d.Date)
		idx.Deliveries[key] = append(idx.Deliveries[key], d)
	}

	return idx
}

func (idx *Index) reject(kind, id, reason string) {
	idx.Issues = append(idx.Issues, Issue{
		RecordKind: kind,
		RecordID:   id,
		Reason:     reason,
	})
}

// Keys returns the union of complaint and delivery bucket keys, unordered.
func (idx *Index) Keys() []string {
	seen := make(map[string]bool, len(idx.Complaints)+len(idx.Deliveries))
	var keys []string
	for k := range idx.Complaints {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	for k := range idx.Deliveries {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	return keys
}
