package worker

import (
	"strings"
)

// ExtractKind identifies which extract a workbook carries, derived from the
// file name suffix the export system uses.
type ExtractKind string

const (
	ExtractComplaints ExtractKind = "COMPLAINTS"
	ExtractDeliveries ExtractKind = "DELIVERIES"
	ExtractPlants     ExtractKind = "PLANTS"
	ExtractUnknown    ExtractKind = ""
)

type FileJob struct {
	FilePath string
	FileName string
	Kind     ExtractKind
}

// KindOf maps a file name like 20250115_COMPLAINTS.xlsx to its extract kind.
func KindOf(fileName string) ExtractKind {
	upper := strings.ToUpper(fileName)
	switch {
	case strings.HasSuffix(upper, "_COMPLAINTS.XLSX"):
		return ExtractComplaints
	case strings.HasSuffix(upper, "_DELIVERIES.XLSX"):
		return ExtractDeliveries
	case strings.HasSuffix(upper, "_PLANTS.XLSX"):
		return ExtractPlants
	default:
		return ExtractUnknown
	}
}
