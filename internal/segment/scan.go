package segment

import "regexp"

// boundary marks the start of a new speaker's remarks: the presiding
// officer's literal marker, or a titled all-caps surname (letters,
// spaces, and hyphens, two or more characters).
var boundary = regexp.MustCompile(`The SPEAKER|Mr\. [A-Z \-]{2,}|Ms\. [A-Z \-]{2,}|Miss [A-Z \-]{2,}`)

// scan cuts normalized article text into an alternating sequence of
// plain and boundary segments. Plain segments between, before, and
// after matches are always emitted, even when empty, so that the
// segment immediately following a boundary is always that speaker's
// speech slot. This is an explicit tokenizing pass, not a
// capture-group split, so the index layout does not depend on any
// split-library's capture semantics.
func scan(text string) []string {
	matches := boundary.FindAllStringIndex(text, -1)
	parts := make([]string, 0, 2*len(matches)+1)
	prev := 0
	for _, m := range matches {
		parts = append(parts, text[prev:m[0]], text[m[0]:m[1]])
		prev = m[1]
	}
	return append(parts, text[prev:])
}

// indices partitions the segment index range into the three disjoint
// classes.
type indices struct {
	total     int
	speakers  []int
	speeches  []int
	undefined []int
}

// classify assigns every segment index to exactly one class: indices
// matching the boundary pattern are speakers, the index immediately
// after each speaker is its speech, and everything else (leading
// preamble, boundary-adjacent anomalies) is undefined.
func classify(parts []string) indices {
	ix := indices{total: len(parts)}

	claimed := make(map[int]bool, len(parts))
	for i, part := range parts {
		if boundary.MatchString(part) {
			ix.speakers = append(ix.speakers, i)
			ix.speeches = append(ix.speeches, i+1)
			claimed[i] = true
			claimed[i+1] = true
		}
	}
	for i := range parts {
		if !claimed[i] {
			ix.undefined = append(ix.undefined, i)
		}
	}
	return ix
}

// validate runs the five structural checks in order and returns the
// first violation, or nil when the partition is sound. No partial
// result survives a violation: a misfired boundary pattern must
// surface as a categorized failure, never as a corrupted
// speaker-to-speech mapping.
func (ix indices) validate() *Failure {
	if len(ix.speakers)+len(ix.speeches)+len(ix.undefined) != ix.total {
		return &Failure{
			Kind:   FailurePartition,
			Detail: "speaker, speech, and undefined indices do not partition the split",
		}
	}
	if !inRange(ix.speeches, ix.total) {
		return &Failure{Kind: FailureSpeechRange, Detail: "speech index not in index range"}
	}
	if !inRange(ix.speakers, ix.total) {
		return &Failure{Kind: FailureSpeakerRange, Detail: "speaker index not in index range"}
	}
	if !inRange(ix.undefined, ix.total) {
		return &Failure{Kind: FailureUndefinedRange, Detail: "undefined index not in index range"}
	}
	if len(ix.speakers) != len(ix.speeches) {
		return &Failure{
			Kind:   FailureCorrespondence,
			Detail: "speaker count does not match speech count",
		}
	}
	return nil
}

func inRange(ixs []int, total int) bool {
	for _, i := range ixs {
		if i < 0 || i >= total {
			return false
		}
	}
	return true
}
