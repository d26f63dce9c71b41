package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"go-quality-report/internal/kpi"
	"go-quality-report/internal/model"
)

func sampleResult() Result {
	customerPPM := 100.0
	return Result{
		GeneratedAt: time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC),
		ProcessID:   "test-process",
		KPIs: []model.MonthlySiteKPI{
			{
				Month:                  "2025-01",
				SiteCode:               "145",
				SiteName:               "Graz",
				CustomerComplaints:     1,
				CustomerDefectiveParts: 10,
				CustomerDeliveredQty:   100000,
				CustomerPPM:            &customerPPM,
			},
		},
		Global: model.GlobalPPM{CustomerPPM: &customerPPM},
		Issues: []kpi.Issue{
			{RecordKind: "complaint", RecordID: "c9", Reason: "missing or unparseable creation date"},
		},
	}
}

func TestWriteJSON_NullPPMStaysNull(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kpi.json")

	r := sampleResult()
	r.KPIs[0].SupplierPPM = nil
	require.NoError(t, WriteJSON(path, r))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded struct {
		KPIs []map[string]json.RawMessage `json:"kpis"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded.KPIs, 1)

	assert.JSONEq(t, "100", string(decoded.KPIs[0]["customerPpm"]))
	assert.JSONEq(t, "null", string(decoded.KPIs[0]["supplierPpm"]), "undefined ratio serializes as null, not 0")
}

func TestWriteExcel_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kpi.xlsx")

	require.NoError(t, WriteExcel(path, sampleResult()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Monthly KPI")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2025-01", rows[1][0])
	assert.Equal(t, "145", rows[1][1])

	issueRows, err := f.GetRows("Data Quality")
	require.NoError(t, err)
	require.Len(t, issueRows, 2)
	assert.Equal(t, "c9", issueRows[1][1])

	globalRows, err := f.GetRows("Global PPM")
	require.NoError(t, err)
	require.Len(t, globalRows, 2)
	// supplier cell is blank: undefined, not zero
	assert.Equal(t, "100", globalRows[1][0])
}
