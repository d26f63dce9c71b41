package model

import (
	"time"
)

// Complaint is one quality notification from a *_COMPLAINTS.xlsx extract.
// DefectiveParts is already normalized to pieces at parse time; Conversion
// keeps the original figures for traceability.
type Complaint struct {
	ID             string
	NotificationNo string
	SiteCode       string
	SiteName       string
	Type           string
	DefectiveParts float64
	Unit           string
	Conversion     *Conversion
	CreatedOn      time.Time

	CoreFilename    string
	CoreProcessdate time.Time
}

// ConversionStatus tells whether a non-piece quantity could be converted.
type ConversionStatus string

const (
	ConversionNotApplicable ConversionStatus = "NOT_APPLICABLE"
	ConversionDone          ConversionStatus = "CONVERTED"
	ConversionFailed        ConversionStatus = "FAILED"
)

// Conversion records how a reported quantity was normalized to pieces.
type Conversion struct {
	OriginalValue  float64          `json:"originalValue"`
	OriginalUnit   string           `json:"originalUnit"`
	ConvertedValue float64          `json:"convertedValue"`
	FactorPerPiece float64          `json:"factorPerPiece"`
	Material       string           `json:"material,omitempty"`
	Status         ConversionStatus `json:"status"`
}
