package worker

import (
	"strings"

	"go-quality-report/internal/model"
)

// RowHandler turns one spreadsheet row into a typed record. Bind runs once
// per file with the header row; Handle runs per data row and reports bad
// rows as errors so the parser can count and skip them.
type RowHandler interface {
	Bind(header []string) error
	Handle(row []string, rowNo int, job FileJob) error
}

// BuildRowHandlers wires one handler per extract kind to its output channel.
func BuildRowHandlers(
	chComplaints chan<- model.Complaint,
	chDeliveries chan<- model.Delivery,
	chPlants chan<- model.Plant,
) map[ExtractKind]RowHandler {
	return map[ExtractKind]RowHandler{
		ExtractComplaints: &ComplaintHandler{Out: chComplaints},
		ExtractDeliveries: &DeliveryHandler{Out: chDeliveries},
		ExtractPlants:     &PlantHandler{Out: chPlants},
	}
}

// headerIndex maps normalized column names to their position.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		key = strings.ReplaceAll(key, " ", "_")
		if key != "" {
			idx[key] = i
		}
	}
	return idx
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
