package model

// MonthlySiteKPI is the derived quality figure set for one (site, month)
// pair. It is recomputed from scratch on every aggregation run and carries
// no identity beyond its Month/SiteCode key.
type MonthlySiteKPI struct {
	Month    string `json:"month"`
	SiteCode string `json:"siteCode"`
	SiteName string `json:"siteName,omitempty"`

	CustomerComplaints int `json:"customerComplaintsQ1"`
	SupplierComplaints int `json:"supplierComplaintsQ2"`
	InternalComplaints int `json:"internalComplaintsQ3"`
	Deviations         int `json:"deviationsD"`

	PPAP PPAPStatus `json:"ppapP"`

	CustomerDefectiveParts float64 `json:"customerDefectiveParts"`
	SupplierDefectiveParts float64 `json:"supplierDefectiveParts"`
	InternalDefectiveParts float64 `json:"internalDefectiveParts"`

	CustomerDeliveredQty float64 `json:"customerDeliveredQty"`
	SupplierDeliveredQty float64 `json:"supplierDeliveredQty"`

	// PPM values are nil when the matching delivered quantity is zero:
	// the ratio is undefined there, not zero.
	CustomerPPM *float64 `json:"customerPpm"`
	SupplierPPM *float64 `json:"supplierPpm"`

	CustomerConversions *ConversionRollup `json:"customerConversions,omitempty"`
	SupplierConversions *ConversionRollup `json:"supplierConversions,omitempty"`
}

// PPAPStatus splits PPAP notifications by lifecycle state.
type PPAPStatus struct {
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
}

// ConversionRollup summarizes the successful unit conversions behind one
// side of a bucket. Absent (nil) when nothing was converted.
type ConversionRollup struct {
	Count          int                `json:"count"`
	OriginalTotal  float64            `json:"originalTotal"`
	ConvertedTotal float64            `json:"convertedTotal"`
	Details        []ConversionDetail `json:"details"`
}

// ConversionDetail ties one converted notification back to its source figures.
type ConversionDetail struct {
	NotificationNo string     `json:"notificationNo"`
	Conversion     Conversion `json:"conversion"`
}

// GlobalPPM is the headline customer/supplier PPM pair over the whole
// unpartitioned record set.
type GlobalPPM struct {
	CustomerPPM *float64 `json:"customerPpm"`
	SupplierPPM *float64 `json:"supplierPpm"`
}
