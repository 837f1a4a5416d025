// Package nlp is the tokenizer/tagger/lemmatizer collaborator and the
// part-of-speech token filter used on speech text.
package nlp

import "strings"

// Token is one word with its lowercased lemma and Penn Treebank tag.
type Token struct {
	Lemma string
	Tag   string
}

// Sentence is one tokenized sentence.
type Sentence []Token

// Pipeline turns raw text into tagged, lemmatized sentences. The
// segmenter treats it as a black box.
type Pipeline interface {
	Process(text string) ([]Sentence, error)
}

// KeepTag reports whether a tag is a common noun or adjective, the
// only parts of speech retained in speech tokens.
func KeepTag(tag string) bool {
	switch tag {
	case "NN", "NNS", "JJ", "JJR", "JJS":
		return true
	}
	return false
}

// FilterGroups reduces tagged sentences to sentence-grouped
// noun/adjective lemmas. Groups with 3 or fewer surviving tokens are
// discarded as noise. The function is pure: filtering already-filtered
// groups yields the same groups.
func FilterGroups(sentences []Sentence) [][]string {
	var groups [][]string
	for _, sentence := range sentences {
		var kept []string
		for _, tok := range sentence {
			if KeepTag(tok.Tag) {
				kept = append(kept, strings.ToLower(tok.Lemma))
			}
		}
		if len(kept) > 3 {
			groups = append(groups, kept)
		}
	}
	return groups
}
