package store

import (
	"context"
	"database/sql"
	"fmt"

	"go-quality-report/internal/model"
)

// Store reads merged raw records back for aggregation. Plant master names
// fill in missing site names so the KPI output can resolve display names.
type Store struct {
	DB *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{DB: db}
}

func (s *Store) ListComplaints(ctx context.Context) ([]model.Complaint, error) {
	const q = `
		SELECT
			c.ID, c.NOTIFICATION_NO, c.SITE_CODE,
			COALESCE(NULLIF(c.SITE_NAME, ''), p.NAME, ''),
			c.NOTIF_TYPE, c.DEFECTIVE_PARTS, c.UNIT,
			c.ORIG_VALUE, c.ORIG_UNIT, c.CONV_VALUE,
			c.FACTOR_PER_PIECE, c.MATERIAL, c.CONV_STATUS,
			c.CREATED_ON
		FROM dbo.quality_complaints c
		LEFT JOIN dbo.quality_plants p ON p.CODE = c.SITE_CODE
	`

	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query complaints: %w", err)
	}
	defer rows.Close()

	var out []model.Complaint
	for rows.Next() {
		var (
			c         model.Complaint
			conv      model.Conversion
			status    sql.NullString
			material  sql.NullString
			createdOn sql.NullTime
		)
		if err := rows.Scan(
			&c.ID, &c.NotificationNo, &c.SiteCode, &c.SiteName,
			&c.Type, &c.DefectiveParts, &c.Unit,
			&conv.OriginalValue, &conv.OriginalUnit, &conv.ConvertedValue,
			&conv.FactorPerPiece, &material, &status,
			&createdOn,
		); err != nil {
			return nil, fmt.Errorf("failed to scan complaint: %w", err)
		}

		conv.Material = material.String
		conv.Status = model.ConversionStatus(status.String)
		if conv.Status == "" {
			conv.Status = model.ConversionNotApplicable
		}
		c.Conversion = &conv
		if createdOn.Valid {
			c.CreatedOn = createdOn.Time
		}
		out = append(out, c)
	}

	return out, rows.Err()
}

func (s *Store) ListDeliveries(ctx context.Context) ([]model.Delivery, error) {
	const q = `
		SELECT
			d.ID, d.SITE_CODE,
			COALESCE(NULLIF(d.SITE_NAME, ''), p.NAME, ''),
			d.KIND, d.QUANTITY, d.DELIVERY_DATE
		FROM dbo.quality_deliveries d
		LEFT JOIN dbo.quality_plants p ON p.CODE = d.SITE_CODE
	`

	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query deliveries: %w", err)
	}
	defer rows.Close()

	var out []model.Delivery
	for rows.Next() {
		var (
			d    model.Delivery
			kind string
			date sql.NullTime
		)
		if err := rows.Scan(&d.ID, &d.SiteCode, &d.SiteName, &kind, &d.Quantity, &date); err != nil {
			return nil, fmt.Errorf("failed to scan delivery: %w", err)
		}
		d.Kind = model.DeliveryKind(kind)
		if date.Valid {
			d.Date = date.Time
		}
		out = append(out, d)
	}

	return out, rows.Err()
}
