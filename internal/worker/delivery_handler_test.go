package worker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-quality-report/internal/model"
)

var deliveryHeader = []string{"Delivery ID", "Site Code", "Site Name", "Kind", "Quantity", "Delivery Date"}

func TestDeliveryHandler_Handle(t *testing.T) {
	out := make(chan model.Delivery, 1)
	h := &DeliveryHandler{Out: out}
	require.NoError(t, h.Bind(deliveryHeader))

	job := FileJob{FileName: "20250110_DELIVERIES.xlsx", Kind: ExtractDeliveries}
	err := h.Handle([]string{"D-7", "145", "Graz", "Customer", "100,000", "2025-01-10"}, 2, job)
	require.NoError(t, err)

	d := <-out
	assert.Equal(t, "D-7", d.ID)
	assert.Equal(t, model.KindCustomer, d.Kind)
	assert.Equal(t, 100000.0, d.Quantity, "thousands separator handled")
	assert.Equal(t, "2025-01", d.Date.Format("2006-01"))
}

func TestDeliveryHandler_KindAliases(t *testing.T) {
	out := make(chan model.Delivery, 2)
	h := &DeliveryHandler{Out: out}
	require.NoError(t, h.Bind(deliveryHeader))

	job := FileJob{FileName: "x_DELIVERIES.xlsx", Kind: ExtractDeliveries}
	require.NoError(t, h.Handle([]string{"", "145", "", "OUTBOUND", "10", "2025-01-10"}, 2, job))
	require.NoError(t, h.Handle([]string{"", "145", "", "inbound", "20", "2025-01-10"}, 3, job))

	assert.Equal(t, model.KindCustomer, (<-out).Kind)
	assert.Equal(t, model.KindSupplier, (<-out).Kind)
}

func TestDeliveryHandler_RejectsUnknownKind(t *testing.T) {
	out := make(chan model.Delivery, 1)
	h := &DeliveryHandler{Out: out}
	require.NoError(t, h.Bind(deliveryHeader))

	job := FileJob{FileName: "x_DELIVERIES.xlsx", Kind: ExtractDeliveries}
	err := h.Handle([]string{"", "145", "", "Transit", "10", "2025-01-10"}, 2, job)
	assert.Error(t, err)
	assert.Empty(t, out)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, ExtractComplaints, KindOf("20250115_COMPLAINTS.xlsx"))
	assert.Equal(t, ExtractDeliveries, KindOf("site_a_deliveries.XLSX"))
	assert.Equal(t, ExtractPlants, KindOf("2025_PLANTS.xlsx"))
	assert.Equal(t, ExtractUnknown, KindOf("readme.txt"))
}
