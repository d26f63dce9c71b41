package worker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-quality-report/internal/model"
)

var complaintHeader = []string{
	"Notification No", "Site Code", "Site Name", "Notification Type",
	"Defective Parts", "Unit", "Factor Per Piece", "Material", "Created On",
}

func TestComplaintHandler_Bind(t *testing.T) {
	h := &ComplaintHandler{}

	require.NoError(t, h.Bind(complaintHeader))
	assert.Equal(t, 1, h.colSiteCode)
	assert.Equal(t, 8, h.colCreatedOn)

	err := h.Bind([]string{"Site Name", "Unit"})
	assert.Error(t, err, "required columns missing")
}

func TestComplaintHandler_HandlePieceRow(t *testing.T) {
	out := make(chan model.Complaint, 1)
	h := &ComplaintHandler{Out: out}
	require.NoError(t, h.Bind(complaintHeader))

	job := FileJob{FileName: "20250115_COMPLAINTS.xlsx", Kind: ExtractComplaints}
	err := h.Handle([]string{"N-100", "145", "Graz", "Q1", "10", "PC", "", "", "2025-01-15"}, 2, job)
	require.NoError(t, err)

	c := <-out
	assert.Equal(t, "N-100", c.NotificationNo)
	assert.Equal(t, "N-100", c.ID, "notification number doubles as id when the extract has no id column")
	assert.Equal(t, "145", c.SiteCode)
	assert.Equal(t, "Q1", c.Type)
	assert.Equal(t, 10.0, c.DefectiveParts)
	require.NotNil(t, c.Conversion)
	assert.Equal(t, model.ConversionNotApplicable, c.Conversion.Status)
	assert.Equal(t, "2025-01-15", c.CreatedOn.Format("2006-01-02"))
	assert.Equal(t, "20250115_COMPLAINTS.xlsx", c.CoreFilename)
}

func TestComplaintHandler_HandleNormalizesBulkUnits(t *testing.T) {
	out := make(chan model.Complaint, 1)
	h := &ComplaintHandler{Out: out}
	require.NoError(t, h.Bind(complaintHeader))

	job := FileJob{FileName: "x_COMPLAINTS.xlsx", Kind: ExtractComplaints}
	err := h.Handle([]string{"N-101", "145", "", "Q2", "12", "L", "0,5", "coolant", "2025-02-01"}, 2, job)
	require.NoError(t, err)

	c := <-out
	assert.Equal(t, 24.0, c.DefectiveParts)
	require.NotNil(t, c.Conversion)
	assert.Equal(t, model.ConversionDone, c.Conversion.Status)
	assert.Equal(t, 12.0, c.Conversion.OriginalValue)
	assert.Equal(t, "coolant", c.Conversion.Material)
}

func TestComplaintHandler_HandleRejectsBadRows(t *testing.T) {
	out := make(chan model.Complaint, 1)
	h := &ComplaintHandler{Out: out}
	require.NoError(t, h.Bind(complaintHeader))

	job := FileJob{FileName: "x_COMPLAINTS.xlsx", Kind: ExtractComplaints}

	assert.Error(t, h.Handle([]string{"N-1", "", "", "Q1", "1", "PC", "", "", "2025-01-01"}, 3, job), "empty site code")
	assert.Error(t, h.Handle([]string{"N-2", "145", "", "Q1", "abc", "PC", "", "", "2025-01-01"}, 4, job), "unparseable quantity")
	assert.Empty(t, out)
}
