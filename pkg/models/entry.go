package models

// Entry represents one vocabulary record: the term the learner must type
// and its definitional phrases. Entries are immutable after parsing.
type Entry struct {
	Term    string
	Phrases []Phrase
}

// Phrase is one sense of a term, optionally annotated with a comment
type Phrase struct {
	Body    string
	Comment string
}
