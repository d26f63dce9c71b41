package kpi

import (
	"go-quality-report/internal/model"
)

// MergeComplaints folds a fresh upload into previously stored records,
// keeping the latest version per id. Order follows the existing list, with
// genuinely new records appended in upload order. The aggregator itself
// stays stateless; callers run this before handing data to Compute.
func MergeComplaints(existing, incoming []model.Complaint) []model.Complaint {
	replace := make(map[string]model.Complaint, len(incoming))
	for _, c := range incoming {
		replace[c.ID] = c
	}

	out := make([]model.Complaint, 0, len(existing)+len(incoming))
	seen := make(map[string]bool, len(existing))
	for _, c := range existing {
		if upd, ok := replace[c.ID]; ok {
			out = append(out, upd)
		} else {
			out = append(out, c)
		}
		seen[c.ID] = true
	}
	for _, c := range incoming {
		if !seen[c.ID] {
			out = append(out, c)
			seen[c.ID] = true
		}
	}
	return out
}

// MergeDeliveries is the delivery-side counterpart of MergeComplaints.
func MergeDeliveries(existing, incoming []model.Delivery) []model.Delivery {
	replace := make(map[string]model.Delivery, len(incoming))
	for _, d := range incoming {
		replace[d.ID] = d
	}

	out := make([]model.Delivery, 0, len(existing)+len(incoming))
	seen := make(map[string]bool, len(existing))
	for _, d := range existing {
		if upd, ok := replace[d.ID]; ok {
			out = append(out, upd)
		} else {
			out = append(out, d)
		}
		seen[d.ID] = true
	}
	for _, d := range incoming {
		if !seen[d.ID] {
			out = append(out, d)
			seen[d.ID] = true
		}
	}
	return out
}
