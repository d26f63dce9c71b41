package kpi

import (
	"strings"
)

// Category is the semantic bucket a notification counts into.
type Category string

const (
	CategoryCustomer  Category = "CUSTOMER"
	CategorySupplier  Category = "SUPPLIER"
	CategoryInternal  Category = "INTERNAL"
	CategoryDeviation Category = "DEVIATION"
	CategoryPPAP      Category = "PPAP"
)

// Stage is the lifecycle sub-state of a PPAP notification.
type Stage string

const (
	StageNone       Stage = ""
	StageInProgress Stage = "IN_PROGRESS"
	StageCompleted  Stage = "COMPLETED"
)

// Classification is the result of mapping one notification-type code.
type Classification struct {
	Category Category
	Stage    Stage
	// Known is false when the code was unrecognized and the fallback
	// category was applied.
	Known bool
}

// Classifier maps notification-type codes to categories. Unrecognized codes
// land in Fallback; the zero value falls back to internal complaints, which
// mirrors the source system's policy but stays overridable.
type Classifier struct {
	Fallback Category
}

var codeTable = map[string]Classification{
	"Q1": {Category: CategoryCustomer, Known: true},
	"Q2": {Category: CategorySupplier, Known: true},
	"Q3": {Category: CategoryInternal, Known: true},
	"D1": {Category: CategoryDeviation, Known: true},
	"D2": {Category: CategoryDeviation, Known: true},
	"D3": {Category: CategoryDeviation, Known: true},
	"P1": {Category: CategoryPPAP, Stage: StageInProgress, Known: true},
	"P2": {Category: CategoryPPAP, Stage: StageCompleted, Known: true},
	"P3": {Category: CategoryPPAP, Stage: StageCompleted, Known: true},
}

// Classify maps a raw type code to its category. Codes are trimmed and
// uppercased first; decorated variants like "q-1" or "Q 1" reduce to their
// leading letter + first digit. The mapping is pure: same code in, same
// classification out.
func (cl Classifier) Classify(code string) Classification {
	norm := normalizeCode(code)
	if c, ok := codeTable[norm]; ok {
		return c
	}

	fallback := cl.Fallback
	if fallback == "" {
		fallback = CategoryInternal
	}
	return Classification{Category: fallback}
}

func normalizeCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if c, ok := codeTable[code]; ok && c.Known {
		return code
	}
	if code == "" {
		return ""
	}

	// Decorated variant: leading letter plus the first digit that follows.
	letter := code[0]
	if letter != 'Q' && letter != 'D' && letter != 'P' {
		return code
	}
	for i := 1; i < len(code); i++ {
		if code[i] >= '0' && code[i] <= '9' {
			return string(letter) + string(code[i])
		}
	}
	return code
}
