package schema

// CatalogBookTable represents the 'catalog.book' table
type CatalogBookTable struct {
	Table    string
	ID       string
	Title    string
	Summary  string
	ISBN     string
	AuthorID string
}

// CatalogBook is the schema definition for catalog.book
var CatalogBook = CatalogBookTable{
	Table:    "catalog.book",
	ID:       "id",
	Title:    "title",
	Summary:  "summary",
	ISBN:     "isbn",
	AuthorID: "authorid",
}

func (t CatalogBookTable) Columns() []string {
	return []string{t.ID, t.Title, t.Summary, t.ISBN, t.AuthorID}
}
