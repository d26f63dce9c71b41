package kpi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-quality-report/internal/model"
)

func TestGlobalPPM_HeadlineFigure(t *testing.T) {
	var agg Aggregator

	complaints := []model.Complaint{
		{ID: "c1", SiteCode: "145", Type: "Q1", DefectiveParts: 10, CreatedOn: day(2025, time.January, 1)},
		{ID: "c2", SiteCode: "175", Type: "Q1", DefectiveParts: 8, CreatedOn: day(2025, time.February, 1)},
	}
	deliveries := []model.Delivery{
		{ID: "d1", SiteCode: "145", Kind: model.KindCustomer, Quantity: 100000, Date: day(2025, time.January, 5)},
		{ID: "d2", SiteCode: "175", Kind: model.KindCustomer, Quantity: 75000, Date: day(2025, time.February, 5)},
	}

	global := agg.GlobalPPM(complaints, deliveries)

	require.NotNil(t, global.CustomerPPM)
	assert.InDelta(t, 18.0/175000.0*1_000_000, *global.CustomerPPM, 1e-9) // ≈ 102.857
	assert.Nil(t, global.SupplierPPM)
}

func TestGlobalPPM_MatchesMonthlySums(t *testing.T) {
	var agg Aggregator

	complaints := []model.Complaint{
		{ID: "c1", SiteCode: "145", Type: "Q1", DefectiveParts: 10, CreatedOn: day(2025, time.January, 1)},
		{ID: "c2", SiteCode: "175", Type: "Q1", DefectiveParts: 8, CreatedOn: day(2025, time.February, 1)},
		{ID: "c3", SiteCode: "145", Type: "Q2", DefectiveParts: 4, CreatedOn: day(2025, time.March, 1)},
		{ID: "c4", SiteCode: "999", Type: "Q2", DefectiveParts: 6, CreatedOn: day(2025, time.March, 2)},
	}
	deliveries := []model.Delivery{
		{ID: "d1", SiteCode: "145", Kind: model.KindCustomer, Quantity: 100000, Date: day(2025, time.January, 5)},
		{ID: "d2", SiteCode: "175", Kind: model.KindCustomer, Quantity: 75000, Date: day(2025, time.February, 5)},
		{ID: "d3", SiteCode: "145", Kind: model.KindSupplier, Quantity: 40000, Date: day(2025, time.March, 5)},
		{ID: "d4", SiteCode: "999", Kind: model.KindSupplier, Quantity: 10000, Date: day(2025, time.April, 5)},
	}

	kpis, global, _ := agg.Compute(complaints, deliveries)

	var custDef, custDel, supDef, supDel float64
	for _, k := range kpis {
		custDef += k.CustomerDefectiveParts
		custDel += k.CustomerDeliveredQty
		supDef += k.SupplierDefectiveParts
		supDel += k.SupplierDeliveredQty
	}

	require.NotNil(t, global.CustomerPPM)
	require.NotNil(t, global.SupplierPPM)
	assert.InDelta(t, custDef/custDel*1_000_000, *global.CustomerPPM, 1e-9)
	assert.InDelta(t, supDef/supDel*1_000_000, *global.SupplierPPM, 1e-9)
}

func TestGlobalPPM_ExcludesSameRecordsAsGrouping(t *testing.T) {
	var agg Aggregator

	complaints := []model.Complaint{
		{ID: "ok", SiteCode: "145", Type: "Q1", DefectiveParts: 5, CreatedOn: day(2025, time.January, 1)},
		{ID: "no-date", SiteCode: "145", Type: "Q1", DefectiveParts: 100},
	}
	deliveries := []model.Delivery{
		{ID: "d1", SiteCode: "145", Kind: model.KindCustomer, Quantity: 1000, Date: day(2025, time.January, 5)},
		{ID: "neg", SiteCode: "145", Kind: model.KindCustomer, Quantity: -50, Date: day(2025, time.January, 6)},
	}

	global := agg.GlobalPPM(complaints, deliveries)

	require.NotNil(t, global.CustomerPPM)
	assert.InDelta(t, 5.0/1000.0*1_000_000, *global.CustomerPPM, 1e-9)
}
