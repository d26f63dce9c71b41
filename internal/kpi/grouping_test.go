package kpi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-quality-report/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBucketKey(t *testing.T) {
	assert.Equal(t, "145::2025-01", BucketKey("145", day(2025, time.January, 15)))
}

func TestGroup_AccumulatesByKey(t *testing.T) {
	complaints := []model.Complaint{
		{ID: "c1", SiteCode: "145", Type: "Q1", CreatedOn: day(2025, time.January, 3)},
		{ID: "c2", SiteCode: "145", Type: "Q2", CreatedOn: day(2025, time.January, 28)},
		{ID: "c3", SiteCode: "175", Type: "Q1", CreatedOn: day(2025, time.January, 3)},
	}
	deliveries := []model.Delivery{
		{ID: "d1", SiteCode: "145", Kind: model.KindCustomer, Quantity: 100, Date: day(2025, time.January, 10)},
	}

	idx := Group(complaints, deliveries)

	require.Len(t, idx.Complaints["145::2025-01"], 2)
	require.Len(t, idx.Complaints["175::2025-01"], 1)
	require.Len(t, idx.Deliveries["145::2025-01"], 1)
	assert.Empty(t, idx.Issues)

	// Insertion order within a bucket.
	assert.Equal(t, "c1", idx.Complaints["145::2025-01"][0].ID)
	assert.Equal(t, "c2", idx.Complaints["145::2025-01"][1].ID)
}

func TestGroup_EmptyInput(t *testing.T) {
	idx := Group(nil, nil)

	assert.Empty(t, idx.Complaints)
	assert.Empty(t, idx.Deliveries)
	assert.Empty(t, idx.Issues)
	assert.Empty(t, idx.Keys())
}

func TestGroup_BadRecordsBecomeIssuesNotPanics(t *testing.T) {
	complaints := []model.Complaint{
		{ID: "ok", SiteCode: "145", CreatedOn: day(2025, time.February, 1)},
		{ID: "no-date", SiteCode: "145"},
		{ID: "negative", SiteCode: "145", DefectiveParts: -3, CreatedOn: day(2025, time.February, 1)},
	}
	deliveries := []model.Delivery{
		{ID: "bad-kind", SiteCode: "145", Kind: "Transit", Quantity: 5, Date: day(2025, time.February, 1)},
		{ID: "neg-qty", SiteCode: "145", Kind: model.KindCustomer, Quantity: -1, Date: day(2025, time.February, 1)},
	}

	idx := Group(complaints, deliveries)

	require.Len(t, idx.Complaints["145::2025-02"], 1)
	assert.Empty(t, idx.Deliveries)
	require.Len(t, idx.Issues, 4)

	ids := make([]string, 0, len(idx.Issues))
	for _, is := range idx.Issues {
		ids = append(ids, is.RecordID)
	}
	assert.ElementsMatch(t, []string{"no-date", "negative", "bad-kind", "neg-qty"}, ids)
}

func TestKeys_UnionOfBothIndices(t *testing.T) {
	complaints := []model.Complaint{
		{ID: "c1", SiteCode: "145", CreatedOn: day(2025, time.January, 1)},
	}
	deliveries := []model.Delivery{
		{ID: "d1", SiteCode: "175", Kind: model.KindSupplier, Quantity: 10, Date: day(2025, time.March, 1)},
	}

	idx := Group(complaints, deliveries)

	assert.ElementsMatch(t, []string{"145::2025-01", "175::2025-03"}, idx.Keys())
}
