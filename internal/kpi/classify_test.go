package kpi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_KnownCodes(t *testing.T) {
	var cl Classifier

	cases := []struct {
		code string
		want Classification
	}{
		{"Q1", Classification{Category: CategoryCustomer, Known: true}},
		{"Q2", Classification{Category: CategorySupplier, Known: true}},
		{"Q3", Classification{Category: CategoryInternal, Known: true}},
		{"D1", Classification{Category: CategoryDeviation, Known: true}},
		{"D2", Classification{Category: CategoryDeviation, Known: true}},
		{"D3", Classification{Category: CategoryDeviation, Known: true}},
		{"P1", Classification{Category: CategoryPPAP, Stage: StageInProgress, Known: true}},
		{"P2", Classification{Category: CategoryPPAP, Stage: StageCompleted, Known: true}},
		{"P3", Classification{Category: CategoryPPAP, Stage: StageCompleted, Known: true}},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, cl.Classify(tc.code), "code %q", tc.code)
	}
}

func TestClassify_NormalizesInput(t *testing.T) {
	var cl Classifier

	assert.Equal(t, CategoryCustomer, cl.Classify(" q1 ").Category)
	assert.Equal(t, CategoryCustomer, cl.Classify("Q-1").Category)
	assert.Equal(t, CategorySupplier, cl.Classify("q 2").Category)
	assert.Equal(t, StageCompleted, cl.Classify("p3").Stage)
}

func TestClassify_UnknownFallsBackToInternal(t *testing.T) {
	var cl Classifier

	got := cl.Classify("X9")
	assert.Equal(t, CategoryInternal, got.Category)
	assert.False(t, got.Known)

	got = cl.Classify("")
	assert.Equal(t, CategoryInternal, got.Category)
	assert.False(t, got.Known)
}

func TestClassify_ConfigurableFallback(t *testing.T) {
	cl := Classifier{Fallback: CategoryDeviation}

	assert.Equal(t, CategoryDeviation, cl.Classify("Z7").Category)
	// Known codes ignore the fallback.
	assert.Equal(t, CategoryCustomer, cl.Classify("Q1").Category)
}

func TestClassify_Deterministic(t *testing.T) {
	var cl Classifier

	first := cl.Classify("D2")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, cl.Classify("D2"))
	}
}
