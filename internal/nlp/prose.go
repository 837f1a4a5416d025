package nlp

import (
	"fmt"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	prose "github.com/jdkato/prose/v2"
)

// ProsePipeline implements Pipeline with prose for sentence
// segmentation and POS tagging and golem for lemmatization. The
// underlying models load once at construction; the value is safe to
// share across parse workers since Process only reads them.
type ProsePipeline struct {
	lemmatizer *golem.Lemmatizer
}

// NewProsePipeline loads the English models.
func NewProsePipeline() (*ProsePipeline, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("load lemmatizer: %w", err)
	}
	return &ProsePipeline{lemmatizer: lemmatizer}, nil
}

// Process segments text into sentences and tags each token. Tokens
// carry lowercased lemmas; words absent from the lemma dictionary fall
// back to their lowercased surface form.
func (p *ProsePipeline) Process(text string) ([]Sentence, error) {
	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithTagging(false))
	if err != nil {
		return nil, fmt.Errorf("segment sentences: %w", err)
	}

	raw := doc.Sentences()
	sentences := make([]Sentence, 0, len(raw))
	for _, s := range raw {
		tagged, err := prose.NewDocument(s.Text,
			prose.WithExtraction(false),
			prose.WithSegmentation(false))
		if err != nil {
			return nil, fmt.Errorf("tag sentence: %w", err)
		}

		var sentence Sentence
		for _, tok := range tagged.Tokens() {
			sentence = append(sentence, Token{
				Lemma: p.lemma(tok.Text),
				Tag:   tok.Tag,
			})
		}
		sentences = append(sentences, sentence)
	}
	return sentences, nil
}

func (p *ProsePipeline) lemma(word string) string {
	lower := strings.ToLower(word)
	if p.lemmatizer.InDict(lower) {
		return p.lemmatizer.Lemma(lower)
	}
	return lower
}
