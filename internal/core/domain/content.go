package domain

// Table identifies one of the three content tables. It is a closed
// enumeration: every SQL statement interpolates only the canonical name of a
// parsed Table, never raw request input.
type Table string

const (
	TableNews         Table = "news"
	TableEvents       Table = "events"
	TablePublications Table = "publications"
)

// Tables lists every known content table.
var Tables = []Table{TableNews, TableEvents, TablePublications}

// writableColumns is the per-table whitelist of columns a client may set.
// Fields outside this set are silently dropped from create/update payloads.
var writableColumns = map[Table][]string{
	TableNews:         {"title", "excerpt", "content", "image_url", "date", "status"},
	TableEvents:       {"title", "description", "image_url", "date", "location", "status"},
	TablePublications: {"title", "excerpt", "type", "date", "pages", "url"},
}

// ParseTable maps a path segment onto the table enumeration.
func ParseTable(s string) (Table, error) {
	switch Table(s) {
	case TableNews, TableEvents, TablePublications:
		return Table(s), nil
	}
	return "", ErrInvalidTable
}

// String returns the canonical table name, safe for SQL interpolation.
func (t Table) String() string { return string(t) }

// Columns returns the writable column whitelist in declaration order.
func (t Table) Columns() []string { return writableColumns[t] }

// Filter reduces body to the columns writable on t, preserving the
// whitelist's declaration order semantics (iteration happens over the
// whitelist, not the payload).
func (t Table) Filter(body map[string]any) map[string]any {
	filtered := make(map[string]any, len(body))
	for _, col := range writableColumns[t] {
		if v, ok := body[col]; ok {
			filtered[col] = v
		}
	}
	return filtered
}

// Record is a single content row keyed by column name.
type Record map[string]any
