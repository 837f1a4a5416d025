package congress

// Pagination is the cursor block present on every list response. A
// non-empty Next URL means more pages follow; the terminal page omits
// it.
type Pagination struct {
	Count int    `json:"count"`
	Next  string `json:"next"`
}

// VolumePage is one page of the daily-congressional-record listing
// for a volume.
type VolumePage struct {
	Issues     []IssueRef `json:"dailyCongressionalRecord"`
	Pagination Pagination `json:"pagination"`
}

// IssueRef points at one daily issue within a volume. IssueNumber is a
// string in the API payload.
type IssueRef struct {
	IssueNumber string `json:"issueNumber"`
	IssueDate   string `json:"issueDate"`
	URL         string `json:"url"`
}

// ArticlesPage is one page of an issue's article listing, grouped by
// section.
type ArticlesPage struct {
	Sections   []SectionArticles `json:"articles"`
	Pagination Pagination        `json:"pagination"`
}

// SectionArticles is one section of an issue with its articles.
type SectionArticles struct {
	Name     string    `json:"name"`
	Articles []Article `json:"sectionArticles"`
}

// Article is one article entry, carrying every available text
// representation.
type Article struct {
	Title string               `json:"title"`
	Text  []TextRepresentation `json:"text"`
}

// TextRepresentation is one rendering of an article's text. The
// pipeline only consumes the "Formatted Text" type.
type TextRepresentation struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// FormattedTextType is the representation type the collector selects.
const FormattedTextType = "Formatted Text"

// MembersPage is one page of the member listing for a congress.
type MembersPage struct {
	Members    []Member   `json:"members"`
	Pagination Pagination `json:"pagination"`
}

// Member is one legislator entry. Name uses "Last, First" order.
type Member struct {
	Name  string `json:"name"`
	Party string `json:"partyName"`
	State string `json:"state"`
	Terms Terms  `json:"terms"`
}

// Terms wraps the API's nested term list.
type Terms struct {
	Item []Term `json:"item"`
}

// Term is one service term; only the chamber is consumed.
type Term struct {
	Chamber string `json:"chamber"`
}
