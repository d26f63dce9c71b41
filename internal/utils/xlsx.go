package utils

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// CountRows returns the number of data rows (header excluded) on the first
// sheet of a workbook. Used to size the progress bar before parsing starts.
func CountRows(path string) (int64, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return 0, fmt.Errorf("no sheets found in %s", path)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return 0, fmt.Errorf("failed to read rows: %w", err)
	}

	if len(rows) <= 1 {
		return 0, nil
	}
	return int64(len(rows) - 1), nil
}
