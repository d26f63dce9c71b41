package worker

import (
	"fmt"
	"time"

	"go-quality-report/internal/model"
)

type PlantHandler struct {
	Out chan<- model.Plant

	colCode    int
	colName    int
	colRegion  int
	colCountry int
}

func (h *PlantHandler) Bind(header []string) error {
	idx := headerIndex(header)

	col := func(name string) int {
		if i, ok := idx[name]; ok {
			return i
		}
		return -1
	}

	h.colCode = col("plant_code")
	h.colName = col("plant_name")
	h.colRegion = col("region")
	h.colCountry = col("country")

	if h.colCode < 0 {
		return fmt.Errorf("plants extract misses required column plant_code")
	}
	return nil
}

func (h *PlantHandler) Handle(row []string, rowNo int, job FileJob) error {
	code := cell(row, h.colCode)
	if code == "" {
		return fmt.Errorf("row %d: empty plant code", rowNo)
	}

	h.Out <- model.Plant{
		Code:            code,
		Name:            cell(row, h.colName),
		Region:          cell(row, h.colRegion),
		Country:         cell(row, h.colCountry),
		CoreFilename:    job.FileName,
		CoreProcessdate: time.Now(),
	}

	return nil
}
