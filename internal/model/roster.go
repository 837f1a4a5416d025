package model

// Chamber is the chamber a legislator served in, as reported by the
// member API ("House of Representatives" or "Senate").
type Chamber string

const (
	ChamberHouse  Chamber = "House of Representatives"
	ChamberSenate Chamber = "Senate"
)

// Party sentinels used by the roster lookup. Ambiguous marks a surname
// that cannot be uniquely resolved to one party; NotFound is the
// default for names absent from the roster entirely.
const (
	PartyAmbiguous = "Ambiguous"
	PartyNotFound  = "Not Found"
)

// RosterEntry is one legislator row from the member API. LastName is
// derived from the API's "Last, First" name format.
type RosterEntry struct {
	Name     string
	LastName string
	Party    string
	State    string
	Chamber  Chamber
	Congress int
}
