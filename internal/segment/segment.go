// Package segment recovers speaker-attributed speech fragments from
// cleaned Congressional Record article text. The boundary pattern is a
// heuristic, so every split is structurally validated before any
// attribution is emitted.
package segment

import (
	"regexp"
	"strings"

	"congrec/internal/model"
	"congrec/internal/nlp"
	"congrec/internal/roster"
)

// presidingOfficer is the normalized speaker name whose remarks are
// procedural and never attributed as a legislator's speech. Their text
// still participates in segmentation.
const presidingOfficer = "the speaker"

var whitespace = regexp.MustCompile(`\s+`)

// Segmenter splits article text into speeches and attributes each one
// to a party via the roster lookup. It holds no per-article state and
// is safe to share across workers.
type Segmenter struct {
	lookup   roster.Lookup
	pipeline nlp.Pipeline
}

// New creates a segmenter.
func New(lookup roster.Lookup, pipeline nlp.Pipeline) *Segmenter {
	return &Segmenter{lookup: lookup, pipeline: pipeline}
}

// Segment processes one article's cleaned text. Whitespace runs are
// collapsed first to undo the record's hard line wrapping, the text is
// scanned into tagged segments, the partition is validated, and each
// surviving speech is reduced to filtered token groups.
func (s *Segmenter) Segment(text string) Result {
	clean := whitespace.ReplaceAllString(text, " ")
	parts := scan(clean)

	ix := classify(parts)
	if f := ix.validate(); f != nil {
		return Result{Failure: f}
	}

	records := make([]model.SpeechRecord, 0, len(ix.speakers))
	for i, speakerIx := range ix.speakers {
		speaker := parts[speakerIx]
		if NormalizeSpeaker(speaker) == presidingOfficer {
			continue
		}

		sentences, err := s.pipeline.Process(parts[ix.speeches[i]])
		if err != nil {
			return Result{Failure: &Failure{Kind: FailureNLP, Detail: err.Error()}}
		}

		records = append(records, model.SpeechRecord{
			Speaker: speaker,
			Party:   s.lookup.Party(NormalizeSpeaker(speaker)),
			Tokens:  nlp.FilterGroups(sentences),
		})
	}
	return Result{Records: records}
}

// NormalizeSpeaker reduces raw boundary text to a roster lookup key:
// lowercased, honorific prefixes stripped, whitespace trimmed.
// "The SPEAKER" normalizes to the presiding-officer name.
func NormalizeSpeaker(raw string) string {
	name := strings.ToLower(raw)
	name = strings.TrimPrefix(name, "mr.")
	name = strings.TrimPrefix(name, "ms.")
	return strings.TrimSpace(name)
}
