package segment

import (
	"fmt"

	"congrec/internal/model"
)

// FailureKind categorizes why an article could not be segmented. The
// five structural kinds correspond one-to-one with the validation
// checks; FailureNLP covers token-pipeline errors, which fail the
// whole article under the same policy (recorded per article, batch
// continues).
type FailureKind int

const (
	FailurePartition FailureKind = iota
	FailureSpeechRange
	FailureSpeakerRange
	FailureUndefinedRange
	FailureCorrespondence
	FailureNLP
)

// String names the failure kind for logs and the parse index.
func (k FailureKind) String() string {
	switch k {
	case FailurePartition:
		return "splitting attribution"
	case FailureSpeechRange:
		return "speech attribution"
	case FailureSpeakerRange:
		return "speaker attribution"
	case FailureUndefinedRange:
		return "undefined text attribution"
	case FailureCorrespondence:
		return "speaker-speech correspondence"
	case FailureNLP:
		return "token pipeline"
	default:
		return "unknown"
	}
}

// Failure is the typed outcome of a segmentation that could not be
// validated. It is a value, not an error: the caller decides whether
// to skip, log, or halt the batch.
type Failure struct {
	Kind   FailureKind
	Detail string
}

func (f *Failure) String() string {
	return fmt.Sprintf("error in %s: %s", f.Kind, f.Detail)
}

// Result is the outcome of segmenting one article: either the
// speaker-attributed records in document order, or a single failure.
type Result struct {
	Records []model.SpeechRecord
	Failure *Failure
}
