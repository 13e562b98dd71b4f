// internal/pageset/record.go
//
// `page_set` table row model.
//
// Context
// -------
// The `Record` struct mirrors one row in the persistent **page_set** table.
// Each row carries the routing configuration the upstream platform would
// otherwise ship on every document: the modern pathInfo block and the
// legacy primary/alternate URL templates, both stored as JSON text.
//
// Schema reference
//
//	CREATE TABLE page_set (
//	    id             VARCHAR(64)   PRIMARY KEY,
//	    site_id        INT UNSIGNED  NOT NULL,
//	    type           VARCHAR(16)   NOT NULL DEFAULT 'ENTITY',
//	    path_info      JSON          NULL,
//	    url_templates  JSON          NULL,
//	    updated_at     TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
//	);
//
// Notes
// -----
// • Nullable JSON columns scan into sql.NullString.
// • `Decode` is the only place that parses the JSON columns.
// • Oxford commas, two spaces after periods.
package pageset

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/yanizio/pagepath/internal/document"
)

// Record mirrors one row in the `page_set` table.
type Record struct {
	ID           string         `db:"id"`
	SiteID       uint64         `db:"site_id"`
	Type         string         `db:"type"`
	PathInfo     sql.NullString `db:"path_info"`
	URLTemplates sql.NullString `db:"url_templates"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

// PageSet is a decoded Record.
type PageSet struct {
	ID          string                 `json:"id"`
	SiteID      uint64                 `json:"siteId,omitempty"`
	Type        document.PageSetType   `json:"type,omitempty"`
	PathInfo    *document.PathInfo     `json:"pathInfo,omitempty"`
	URLTemplate *document.URLTemplates `json:"urlTemplate,omitempty"`
	UpdatedAt   time.Time              `json:"updatedAt,omitempty"`
}

// Decode parses the JSON columns.  A malformed column is an error; callers
// decide whether to serve without it.
func (r *Record) Decode() (*PageSet, error) {
	ps := &PageSet{
		ID:        r.ID,
		SiteID:    r.SiteID,
		Type:      document.PageSetType(r.Type),
		UpdatedAt: r.UpdatedAt,
	}
	if r.PathInfo.Valid {
		p, err := document.DecodePathInfo(r.PathInfo.String)
		if err != nil {
			return nil, fmt.Errorf("page set %s: %w", r.ID, err)
		}
		ps.PathInfo = p
	}
	if r.URLTemplates.Valid {
		u, err := document.DecodeURLTemplates(r.URLTemplates.String)
		if err != nil {
			return nil, fmt.Errorf("page set %s: %w", r.ID, err)
		}
		ps.URLTemplate = u
	}
	return ps, nil
}
