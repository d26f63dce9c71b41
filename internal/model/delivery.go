package model

import (
	"time"
)

// DeliveryKind is the direction of a shipment.
type DeliveryKind string

const (
	KindCustomer DeliveryKind = "Customer"
	KindSupplier DeliveryKind = "Supplier"
)

// Delivery is one shipment/receipt quantity from a *_DELIVERIES.xlsx extract.
type Delivery struct {
	ID       string
	SiteCode string
	SiteName string
	Kind     DeliveryKind
	Quantity float64
	Date     time.Time

	CoreFilename    string
	CoreProcessdate time.Time
}
