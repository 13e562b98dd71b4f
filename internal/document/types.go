package document

// PathInfo is the modern per-page-set routing configuration.
type PathInfo struct {
	Template                            string   `json:"template,omitempty"`
	SourceEntityPageSetTemplate         string   `json:"sourceEntityPageSetTemplate,omitempty"`
	PrimaryLocale                       string   `json:"primaryLocale,omitempty"`
	IncludeLocalePrefixForPrimaryLocale bool     `json:"includeLocalePrefixForPrimaryLocale,omitempty"`
	BreadcrumbTemplates                 []string `json:"breadcrumbTemplates,omitempty"`
	BreadcrumbPrefix                    string   `json:"breadcrumbPrefix,omitempty"`
}

// PageSetType enumerates page-set kinds.
type PageSetType string

const (
	PageSetEntity    PageSetType = "ENTITY"
	PageSetDirectory PageSetType = "DIRECTORY"
	PageSetLocator   PageSetType = "LOCATOR"
)

// URLTemplates holds the legacy primary/alternate template pair.
type URLTemplates struct {
	Primary   string `json:"primary,omitempty"`
	Alternate string `json:"alternate,omitempty"`
}

// Empty reports whether neither template is set.
func (u *URLTemplates) Empty() bool {
	return u == nil || (u.Primary == "" && u.Alternate == "")
}

// Select picks primary or alternate by locale role, falling back to
// whichever template exists.
func (u *URLTemplates) Select(primary bool) string {
	if u == nil {
		return ""
	}
	if primary && u.Primary != "" {
		return u.Primary
	}
	if !primary && u.Alternate != "" {
		return u.Alternate
	}
	if u.Primary != "" {
		return u.Primary
	}
	return u.Alternate
}

// PageSetConfig is the decoded “_pageset” side channel.
type PageSetConfig struct {
	Type        PageSetType   `json:"type,omitempty"`
	URLTemplate *URLTemplates `json:"urlTemplate,omitempty"`

	// PrimaryLocale and IncludeLocalePrefixForPrimaryLocale are the older
	// page-set level settings.  Only the structural location path consults
	// them.
	PrimaryLocale                       string `json:"primaryLocale,omitempty"`
	IncludeLocalePrefixForPrimaryLocale bool   `json:"includeLocalePrefixForPrimaryLocale,omitempty"`
}

// UsesEntityTemplates is false for page sets whose pages are listings.
func (p *PageSetConfig) UsesEntityTemplates() bool {
	return p == nil || (p.Type != PageSetDirectory && p.Type != PageSetLocator)
}

// SourcePageSet is one entry of “__.locatorSourcePageSets”.  ID is the
// opaque page-set key the entry was stored under.
type SourcePageSet struct {
	ID                    string
	EntityType            string
	InternalSavedFilterID string
	PathInfo              *PathInfo
}

// BreadcrumbLink is one crumb.  An empty Slug marks the current page.
type BreadcrumbLink struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}
