package schema

// CatalogBookGenreTable represents the 'catalog.bookgenre' junction table
type CatalogBookGenreTable struct {
	Table   string
	BookID  string
	GenreID string
}

// CatalogBookGenre is the schema definition for catalog.bookgenre
var CatalogBookGenre = CatalogBookGenreTable{
	Table:   "catalog.bookgenre",
	BookID:  "bookid",
	GenreID: "genreid",
}
