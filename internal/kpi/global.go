package kpi

import (
	"go-quality-report/internal/model"
)

// GlobalPPM collapses the whole record set into one customer/supplier PPM
// pair, ignoring site and month boundaries. Summing every monthly bucket's
// numerators and denominators and re-dividing yields the same figures.
func (a Aggregator) GlobalPPM(complaints []model.Complaint, deliveries []model.Delivery) model.GlobalPPM {
	var customerDefective, supplierDefective float64

	for _, c := range complaints {
		// Same exclusions Group applies, so global and monthly sums agree.
		if c.CreatedOn.IsZero() || c.DefectiveParts < 0 {
			continue
		}
		switch a.Classifier.Classify(c.Type).Category {
		case CategoryCustomer:
			customerDefective += c.DefectiveParts
		case CategorySupplier:
			supplierDefective += c.DefectiveParts
		}
	}

	var customerDelivered, supplierDelivered float64
	for _, d := range deliveries {
		if d.Date.IsZero() || d.Quantity < 0 {
			continue
		}
		switch d.Kind {
		case model.KindCustomer:
			customerDelivered += d.Quantity
		case model.KindSupplier:
			supplierDelivered += d.Quantity
		}
	}

	return model.GlobalPPM{
		CustomerPPM: ppm(customerDefective, customerDelivered),
		SupplierPPM: ppm(supplierDefective, supplierDelivered),
	}
}
