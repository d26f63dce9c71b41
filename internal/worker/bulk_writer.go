package worker

import (
	"context"
	"database/sql"
	"strings"
	"sync/atomic"

	"go-quality-report/internal/logger"
	"go-quality-report/internal/metrics"
	"go-quality-report/internal/model"

	mssql "github.com/microsoft/go-mssqldb"
)

type Logger interface {
	Printf(string, ...any)
}

/* =========================
   CORE BULK INSERT
========================= */

func bulkInsert(
	ctx context.Context,
	db *sql.DB,
	table string,
	cols []string,
	data <-chan func() []any,
	done chan<- struct{},
	l Logger,
) {
	defer close(done)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		l.Printf("[BULK][%s] begin tx failed: %v", table, err)
		return
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(mssql.CopyIn(table, mssql.BulkOptions{}, cols...))
	if err != nil {
		l.Printf("[BULK][%s] prepare failed: %v", table, err)
		return
	}
	defer stmt.Close()

	var (
		rowNum        int64
		localInserted int64
	)

	for rowFn := range data {
		select {
		case <-ctx.Done():
			return
		default:
		}

		rowNum++
		row := rowFn()

		if _, err := stmt.Exec(row...); err != nil {
			l.Printf(
				"[BULK][%s] exec failed at row #%d\nColumns: %v\nValues : %#v\nError  : %v",
				table, rowNum, cols, row, err,
			)
			return
		}

		localInserted++
		if localInserted%1000 == 0 {
			atomic.AddInt64(&metrics.InsertedRows, localInserted)
			localInserted = 0
		}
	}

	if localInserted > 0 {
		atomic.AddInt64(&metrics.InsertedRows, localInserted)
	}

	if _, err := stmt.Exec(); err != nil {
		l.Printf("[BULK][%s] final exec failed: %v", table, err)
		return
	}

	if err := tx.Commit(); err != nil {
		l.Printf("[BULK][%s] commit failed: %v", table, err)
		return
	}

	l.Printf("[BULK][%s] completed successfully, rows=%d", table, rowNum)
}

/* =========================
   BULK UPSERT VIA TEMP TABLE
========================= */

func bulkUpsertViaTempTable(
	ctx context.Context,
	db *sql.DB,
	targetTable string,
	tempTable string,
	cols []string,
	tempTableDDL string,
	joinCondition string,
	updateSetClause string,
	data <-chan func() []any,
	done chan<- struct{},
	l Logger,
) error {
	defer close(done)

	l.Printf("[BULK-UPSERT][%s] START", targetTable)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`SET XACT_ABORT ON;`); err != nil {
		return err
	}

	if _, err := tx.Exec(tempTableDDL); err != nil {
		return err
	}

	stmt, err := tx.Prepare(mssql.CopyIn(tempTable, mssql.BulkOptions{}, cols...))
	if err != nil {
		return err
	}
	defer stmt.Close()

	var (
		rowNum        int64
		localInserted int64
	)

	for rowFn := range data {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		rowNum++
		if _, err := stmt.Exec(rowFn()...); err != nil {
			return err
		}

		localInserted++
		if localInserted%1000 == 0 {
			atomic.AddInt64(&metrics.InsertedRows, localInserted)
			localInserted = 0
		}
	}

	if localInserted > 0 {
		atomic.AddInt64(&metrics.InsertedRows, localInserted)
	}

	if _, err := stmt.Exec(); err != nil {
		return err
	}

	insertCols := strings.Join(cols, ", ")
	insertVals := make([]string, len(cols))
	for i, c := range cols {
		insertVals[i] = "src." + c
	}
	insertValsSQL := strings.Join(insertVals, ", ")

	mergeSQL := `
		SET NOCOUNT ON;

		;WITH src AS (
			SELECT DISTINCT
				` + insertCols + `
			FROM ` + tempTable + `
		)
		MERGE ` + targetTable + ` WITH (HOLDLOCK) AS tgt
		USING src
			ON ` + joinCondition + `
		WHEN MATCHED THEN
			UPDATE SET ` + updateSetClause + `
		WHEN NOT MATCHED BY TARGET THEN
			INSERT (` + insertCols + `)
			VALUES (` + insertValsSQL + `);
	`

	if _, err := tx.Exec(mergeSQL); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	l.Printf("[BULK-UPSERT][%s] completed, rows=%d", targetTable, rowNum)
	return nil
}

/* =========================
   TABLE WRAPPERS
========================= */

// BulkComplaints upserts raw complaint records keyed by record id, so a
// re-uploaded extract replaces rather than duplicates its rows.
func BulkComplaints(ctx context.Context, db *sql.DB, ch <-chan model.Complaint, done chan<- struct{}) {
	l, err := logger.NewDailyWorkerLogger("bulk_complaints")
	if err != nil {
		panic(err)
	}

	rows := make(chan func() []any, 1000)

	go func() {
		err := bulkUpsertViaTempTable(
			ctx,
			db,
			"dbo.quality_complaints",
			"#tmp_quality_complaints",
			[]string{"ID", "NOTIFICATION_NO", "SITE_CODE", "SITE_NAME", "NOTIF_TYPE", "DEFECTIVE_PARTS", "UNIT", "ORIG_VALUE", "ORIG_UNIT", "CONV_VALUE", "FACTOR_PER_PIECE", "MATERIAL", "CONV_STATUS", "CREATED_ON", "CORE_FILENAME", "CORE_PROCESSDATE"},
			`
			CREATE TABLE #tmp_quality_complaints (
				ID NVARCHAR(64),
				NOTIFICATION_NO NVARCHAR(64),
				SITE_CODE NVARCHAR(32),
				SITE_NAME NVARCHAR(255),
				NOTIF_TYPE NVARCHAR(16),
				DEFECTIVE_PARTS FLOAT,
				UNIT NVARCHAR(16),
				ORIG_VALUE FLOAT,
				ORIG_UNIT NVARCHAR(16),
				CONV_VALUE FLOAT,
				FACTOR_PER_PIECE FLOAT,
				MATERIAL NVARCHAR(255),
				CONV_STATUS NVARCHAR(32),
				CREATED_ON DATETIME,
				CORE_FILENAME NVARCHAR(255),
				CORE_PROCESSDATE DATETIME
			)
			`,
			"tgt.ID = src.ID",
			`
			tgt.NOTIFICATION_NO = src.NOTIFICATION_NO,
			tgt.SITE_CODE = src.SITE_CODE,
			tgt.SITE_NAME = src.SITE_NAME,
			tgt.NOTIF_TYPE = src.NOTIF_TYPE,
			tgt.DEFECTIVE_PARTS = src.DEFECTIVE_PARTS,
			tgt.UNIT = src.UNIT,
			tgt.ORIG_VALUE = src.ORIG_VALUE,
			tgt.ORIG_UNIT = src.ORIG_UNIT,
			tgt.CONV_VALUE = src.CONV_VALUE,
			tgt.FACTOR_PER_PIECE = src.FACTOR_PER_PIECE,
			tgt.MATERIAL = src.MATERIAL,
			tgt.CONV_STATUS = src.CONV_STATUS,
			tgt.CREATED_ON = src.CREATED_ON,
			tgt.CORE_FILENAME = src.CORE_FILENAME,
			tgt.CORE_PROCESSDATE = src.CORE_PROCESSDATE
			`,
			rows,
			done,
			l,
		)
		if err != nil {
			l.Printf("[BULK-UPSERT][dbo.quality_complaints] failed: %v", err)
		}
	}()

	for c := range ch {
		c := c
		rows <- func() []any {
			conv := c.Conversion
			if conv == nil {
				conv = &model.Conversion{Status: model.ConversionNotApplicable}
			}
			var createdOn any
			if !c.CreatedOn.IsZero() {
				createdOn = c.CreatedOn
			}
			return []any{
				c.ID,
				c.NotificationNo,
				c.SiteCode,
				c.SiteName,
				c.Type,
				c.DefectiveParts,
				c.Unit,
				conv.OriginalValue,
				conv.OriginalUnit,
				conv.ConvertedValue,
				conv.FactorPerPiece,
				conv.Material,
				string(conv.Status),
				createdOn,
				c.CoreFilename,
				c.CoreProcessdate,
			}
		}
	}
	close(rows)
}

// BulkDeliveries upserts raw delivery records keyed by record id.
func BulkDeliveries(ctx context.Context, db *sql.DB, ch <-chan model.Delivery, done chan<- struct{}) {
	l, err := logger.NewDailyWorkerLogger("bulk_deliveries")
	if err != nil {
		panic(err)
	}

	rows := make(chan func() []any, 1000)

	go func() {
		err := bulkUpsertViaTempTable(
			ctx,
			db,
			"dbo.quality_deliveries",
			"#tmp_quality_deliveries",
			[]string{"ID", "SITE_CODE", "SITE_NAME", "KIND", "QUANTITY", "DELIVERY_DATE", "CORE_FILENAME", "CORE_PROCESSDATE"},
			`
			CREATE TABLE #tmp_quality_deliveries (
				ID NVARCHAR(64),
				SITE_CODE NVARCHAR(32),
				SITE_NAME NVARCHAR(255),
				KIND NVARCHAR(16),
				QUANTITY FLOAT,
				DELIVERY_DATE DATETIME,
				CORE_FILENAME NVARCHAR(255),
				CORE_PROCESSDATE DATETIME
			)
			`,
			"tgt.ID = src.ID",
			`
			tgt.SITE_CODE = src.SITE_CODE,
			tgt.SITE_NAME = src.SITE_NAME,
			tgt.KIND = src.KIND,
			tgt.QUANTITY = src.QUANTITY,
			tgt.DELIVERY_DATE = src.DELIVERY_DATE,
			tgt.CORE_FILENAME = src.CORE_FILENAME,
			tgt.CORE_PROCESSDATE = src.CORE_PROCESSDATE
			`,
			rows,
			done,
			l,
		)
		if err != nil {
			l.Printf("[BULK-UPSERT][dbo.quality_deliveries] failed: %v", err)
		}
	}()

	for d := range ch {
		d := d
		rows <- func() []any {
			var date any
			if !d.Date.IsZero() {
				date = d.Date
			}
			return []any{
				d.ID,
				d.SiteCode,
				d.SiteName,
				string(d.Kind),
				d.Quantity,
				date,
				d.CoreFilename,
				d.CoreProcessdate,
			}
		}
	}
	close(rows)
}

// BulkPlants upserts the plant master keyed by plant code.
func BulkPlants(ctx context.Context, db *sql.DB, ch <-chan model.Plant, done chan<- struct{}) {
	l, err := logger.NewDailyWorkerLogger("bulk_plants")
	if err != nil {
		panic(err)
	}

	rows := make(chan func() []any, 1000)

	go func() {
		err := bulkUpsertViaTempTable(
			ctx,
			db,
			"dbo.quality_plants",
			"#tmp_quality_plants",
			[]string{"CODE", "NAME", "REGION", "COUNTRY", "CORE_FILENAME", "CORE_PROCESSDATE"},
			`
			CREATE TABLE #tmp_quality_plants (
				CODE NVARCHAR(32),
				NAME NVARCHAR(255),
				REGION NVARCHAR(64),
				COUNTRY NVARCHAR(64),
				CORE_FILENAME NVARCHAR(255),
				CORE_PROCESSDATE DATETIME
			)
			`,
			"tgt.CODE = src.CODE",
			`
			tgt.NAME = src.NAME,
			tgt.REGION = src.REGION,
			tgt.COUNTRY = src.COUNTRY,
			tgt.CORE_FILENAME = src.CORE_FILENAME,
			tgt.CORE_PROCESSDATE = src.CORE_PROCESSDATE
			`,
			rows,
			done,
			l,
		)
		if err != nil {
			l.Printf("[BULK-UPSERT][dbo.quality_plants] failed: %v", err)
		}
	}()

	for p := range ch {
		p := p
		rows <- func() []any {
			return []any{
				p.Code,
				p.Name,
				p.Region,
				p.Country,
				p.CoreFilename,
				p.CoreProcessdate,
			}
		}
	}
	close(rows)
}

// ReplaceMonthlyKPI swaps the derived KPI table for a fresh computation.
// KPI rows are pure derived data, so the previous run's rows are dropped
// wholesale instead of merged.
func ReplaceMonthlyKPI(ctx context.Context, db *sql.DB, processID string, kpis []model.MonthlySiteKPI) error {
	l, err := logger.NewDailyWorkerLogger("bulk_kpi")
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM dbo.quality_kpi_monthly`); err != nil {
		return err
	}

	rows := make(chan func() []any, 1000)
	done := make(chan struct{})

	go bulkInsert(
		ctx,
		db,
		"dbo.quality_kpi_monthly",
		[]string{"PROCESS_ID", "KPI_MONTH", "SITE_CODE", "SITE_NAME", "CUSTOMER_COMPLAINTS", "SUPPLIER_COMPLAINTS", "INTERNAL_COMPLAINTS", "DEVIATIONS", "PPAP_IN_PROGRESS", "PPAP_COMPLETED", "CUSTOMER_DEFECTIVE_PARTS", "SUPPLIER_DEFECTIVE_PARTS", "INTERNAL_DEFECTIVE_PARTS", "CUSTOMER_DELIVERED_QTY", "SUPPLIER_DELIVERED_QTY", "CUSTOMER_PPM", "SUPPLIER_PPM"},
		rows,
		done,
		l,
	)

	for _, k := range kpis {
		k := k
		rows <- func() []any {
			var custPPM, supPPM any
			if k.CustomerPPM != nil {
				custPPM = *k.CustomerPPM
			}
			if k.SupplierPPM != nil {
				supPPM = *k.SupplierPPM
			}
			return []any{
				processID,
				k.Month,
				k.SiteCode,
				k.SiteName,
				k.CustomerComplaints,
				k.SupplierComplaints,
				k.InternalComplaints,
				k.Deviations,
				k.PPAP.InProgress,
				k.PPAP.Completed,
				k.CustomerDefectiveParts,
				k.SupplierDefectiveParts,
				k.InternalDefectiveParts,
				k.CustomerDeliveredQty,
				k.SupplierDeliveredQty,
				custPPM,
				supPPM,
			}
		}
	}
	close(rows)
	<-done

	return nil
}
