package model

// SpeechRecord is one speaker-attributed speech fragment recovered
// from an article. Speaker keeps the raw boundary text (e.g.
// "Mr. SMITH"); Tokens holds sentence-grouped noun/adjective lemmas
// after filtering.
type SpeechRecord struct {
	Speaker string     `json:"speaker"`
	Party   string     `json:"party"`
	Tokens  [][]string `json:"speech_tokens"`
}

// ParsedArticle is the persisted output of segmenting one article.
type ParsedArticle struct {
	URL      string         `json:"original_url"`
	Speeches []SpeechRecord `json:"speeches"`
}
