package roster

import (
	"sort"
	"strings"

	"congrec/internal/model"
)

// Lookup maps lowercased legislator last names to a party value: a
// concrete party, or the Ambiguous sentinel. Chamber is folded into
// the collision decision but not preserved in the key, so same-surname
// legislators in different chambers are not distinguished downstream.
// That precision limit is inherited from the data model, not fixed
// here.
type Lookup map[string]string

// Party resolves a lowercased last name, defaulting to the Not Found
// sentinel.
func (l Lookup) Party(lastName string) string {
	if party, ok := l[strings.ToLower(lastName)]; ok {
		return party
	}
	return model.PartyNotFound
}

// BuildLookup collapses raw roster entries into the flat lookup.
//
// Entries are first deduplicated on (last name, chamber, party) so the
// same legislator serving across several congresses does not collide
// with themselves. Then any (last name, chamber) group holding more
// than one distinct party is marked Ambiguous. Flattening across
// chambers is deterministic: a surname present in both chambers keeps
// its party only when both chambers agree, otherwise it is Ambiguous.
func BuildLookup(entries []model.RosterEntry) Lookup {
	type group struct{ last, chamber string }

	parties := make(map[group]map[string]bool)
	for _, e := range entries {
		g := group{last: strings.ToLower(e.LastName), chamber: string(e.Chamber)}
		if parties[g] == nil {
			parties[g] = make(map[string]bool)
		}
		parties[g][e.Party] = true
	}

	// Per-chamber collapse: >1 distinct party behind a surname means
	// the surname alone cannot attribute a speech.
	byName := make(map[string][]string)
	for g, set := range parties {
		party := model.PartyAmbiguous
		if len(set) == 1 {
			for p := range set {
				party = p
			}
		}
		byName[g.last] = append(byName[g.last], party)
	}

	lookup := make(Lookup, len(byName))
	for last, chamberParties := range byName {
		sort.Strings(chamberParties)
		party := chamberParties[0]
		for _, p := range chamberParties[1:] {
			if p != party {
				party = model.PartyAmbiguous
				break
			}
		}
		lookup[last] = party
	}
	return lookup
}
