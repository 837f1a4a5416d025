package model

// Section identifies the part of a daily Congressional Record issue an
// article belongs to. Values are the section names as returned by the
// API; only the House and Senate sections are in scope for fetching,
// other sections pass through the collector untouched.
type Section string

const (
	SectionHouse      Section = "House Section"
	SectionSenate     Section = "Senate Section"
	SectionExtensions Section = "Extensions of Remarks Section"
	SectionDigest     Section = "Daily Digest"
)

// ArticleLocator is one row of the records index: enough information
// to locate and fetch a single article's formatted text. Rows are
// immutable once written and are stored in traversal order.
type ArticleLocator struct {
	Volume    int
	Issue     int
	IssueDate string
	Section   Section
	Title     string
	TextURL   string
}
