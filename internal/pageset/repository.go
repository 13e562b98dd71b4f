// internal/pageset/repository.go
//
// page_set query helpers.
//
// Context
// -------
// Read-only access to the **page_set** table:
//
//   - `ByID`   – cache loader on first request for a page set.
//   - `BySite` – CLI and admin listings.
//   - `Count`  – boot-time sanity check.
//
// Workflow
// --------
//  1. Callers supply a *sqlx.DB already connected to the store.
//  2. Each helper executes exactly one parameterised SELECT.
//  3. Rows are scanned into `Record`; decoding is left to the caller.
//
// Notes
// -----
//   - Column list matches the fields in `Record`; update both together.
//   - Oxford commas, two spaces after periods, no m-dash.
package pageset

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// ErrNotFound is returned when an id is not present in the page_set table.
var ErrNotFound = errors.New("page set not found")

const selectColumns = `
        SELECT id, site_id, type, path_info, url_templates, updated_at
        FROM   page_set`

// ByID fetches a single page_set row.  The lookup respects request
// deadlines via ctx.
func ByID(ctx context.Context, db *sqlx.DB, id string) (*Record, error) {
	const q = selectColumns + `
        WHERE  id = ?
        LIMIT  1`
	var rec Record
	if err := db.GetContext(ctx, &rec, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		zap.L().Error("pageset.ByID", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return &rec, nil
}

// BySite returns every page set that belongs to siteID, ordered by id.
func BySite(ctx context.Context, db *sqlx.DB, siteID uint64) ([]Record, error) {
	const q = selectColumns + `
        WHERE  site_id = ?
        ORDER  BY id`
	var rows []Record
	if err := db.SelectContext(ctx, &rows, q, siteID); err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the number of rows in page_set.
func Count(ctx context.Context, db *sqlx.DB) (int, error) {
	var n int
	if err := db.GetContext(ctx, &n, `SELECT COUNT(*) FROM page_set`); err != nil {
		return 0, err
	}
	return n, nil
}
