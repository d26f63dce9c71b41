package kpi

import (
	"strings"

	"go-quality-report/internal/model"
)

// Units that already mean "pieces". An empty unit is treated the same way.
var pieceUnits = map[string]bool{
	"PC":  true,
	"PCS": true,
	"ST":  true,
	"EA":  true,
}

// Recognized bulk units a per-piece factor can convert from.
var bulkUnits = map[string]bool{
	// volume
	"L": true, "ML": true, "M3": true,
	// length
	"M": true, "MM": true, "CM": true, "KM": true,
	// area
	"M2": true, "CM2": true, "MM2": true,
}

// NormalizePieces converts a reported defective quantity into a piece count.
//
// Piece units (or a missing unit) pass through untouched. A recognized bulk
// unit with a positive per-piece factor converts as value/factor: the factor
// declares how much bulk one piece represents. A bulk unit without a usable
// factor keeps the original value so the record is not lost, and the
// returned metadata flags the failure for downstream reporting.
func NormalizePieces(value float64, unit string, factorPerPiece float64, material string) (float64, model.Conversion) {
	u := strings.ToUpper(strings.TrimSpace(unit))

	if u == "" || pieceUnits[u] {
		return value, model.Conversion{
			OriginalValue: value,
			OriginalUnit:  u,
			Status:        model.ConversionNotApplicable,
		}
	}

	if bulkUnits[u] && factorPerPiece > 0 {
		converted := value / factorPerPiece
		return converted, model.Conversion{
			OriginalValue:  value,
			OriginalUnit:   u,
			ConvertedValue: converted,
			FactorPerPiece: factorPerPiece,
			Material:       material,
			Status:         model.ConversionDone,
		}
	}

	// Unknown unit, or no factor declared. Keep the figure, flag the record.
	return value, model.Conversion{
		OriginalValue: value,
		OriginalUnit:  u,
		Material:      material,
		Status:        model.ConversionFailed,
	}
}

// NormalizeComplaint applies NormalizePieces to a complaint in place and is a
// no-op when the record already carries conversion metadata.
func NormalizeComplaint(c *model.Complaint, factorPerPiece float64) {
	if c.Conversion != nil {
		return
	}
	parts, conv := NormalizePieces(c.DefectiveParts, c.Unit, factorPerPiece, "")
	c.DefectiveParts = parts
	c.Conversion = &conv
}
