package kpi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-quality-report/internal/model"
)

func TestMergeComplaints_KeepsLatestPerID(t *testing.T) {
	existing := []model.Complaint{
		{ID: "a", DefectiveParts: 1, CreatedOn: day(2025, time.January, 1)},
		{ID: "b", DefectiveParts: 2, CreatedOn: day(2025, time.January, 2)},
	}
	incoming := []model.Complaint{
		{ID: "b", DefectiveParts: 20, CreatedOn: day(2025, time.January, 2)},
		{ID: "c", DefectiveParts: 3, CreatedOn: day(2025, time.January, 3)},
	}

	merged := MergeComplaints(existing, incoming)

	require.Len(t, merged, 3)
	assert.Equal(t, "a", merged[0].ID)
	assert.Equal(t, 20.0, merged[1].DefectiveParts, "re-upload replaces the stored record")
	assert.Equal(t, "c", merged[2].ID)
}

func TestMergeComplaints_EmptySides(t *testing.T) {
	one := []model.Complaint{{ID: "a"}}

	assert.Equal(t, one, MergeComplaints(nil, one))
	assert.Equal(t, one, MergeComplaints(one, nil))
	assert.Empty(t, MergeComplaints(nil, nil))
}

func TestMergeDeliveries_KeepsLatestPerID(t *testing.T) {
	existing := []model.Delivery{
		{ID: "x", Quantity: 100, Kind: model.KindCustomer, Date: day(2025, time.April, 1)},
	}
	incoming := []model.Delivery{
		{ID: "x", Quantity: 150, Kind: model.KindCustomer, Date: day(2025, time.April, 1)},
		{ID: "y", Quantity: 50, Kind: model.KindSupplier, Date: day(2025, time.April, 2)},
	}

	merged := MergeDeliveries(existing, incoming)

	require.Len(t, merged, 2)
	assert.Equal(t, 150.0, merged[0].Quantity)
	assert.Equal(t, "y", merged[1].ID)
}
