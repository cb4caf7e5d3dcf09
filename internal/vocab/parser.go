package vocab

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/example/vocabtrainer/pkg/models"
)

// ParseLine parses a single line of the vocabulary format into an entry.
//
// The term runs until end of line or the two-character sequence " /" (which
// is consumed). The remainder is a series of slash-terminated phrases; a ';'
// switches the current phrase into comment mode until the phrase is closed.
// A line that is empty or begins with ';' carries no entry and returns nil.
func ParseLine(line string) *models.Entry {
	runes := []rune(line)
	if len(runes) == 0 || runes[0] == ';' {
		return nil
	}

	// Term segment: copy until " /" or end of line.
	var term []rune
	i := 0
	for i < len(runes) {
		if runes[i] == ' ' && i+1 < len(runes) && runes[i+1] == '/' {
			i += 2 // skip the separator
			break
		}
		term = append(term, runes[i])
		i++
	}

	// Phrase segment: '/' closes a phrase, ';' enters comment mode.
	var phrases []models.Phrase
	var body, comment []rune
	inComment := false
	for ; i < len(runes); i++ {
		switch c := runes[i]; c {
		case '/':
			phrases = append(phrases, models.Phrase{Body: string(body), Comment: string(comment)})
			body = body[:0]
			comment = comment[:0]
			inComment = false
		case ';':
			inComment = true
		default:
			if inComment {
				comment = append(comment, c)
			} else {
				body = append(body, c)
			}
		}
	}
	// Content after the last '/' was never closed and is dropped.

	return &models.Entry{Term: string(term), Phrases: phrases}
}

// LoadEntries reads the vocabulary stream line by line and collects the
// entries that parse. Comment and empty lines are skipped silently.
func LoadEntries(r io.Reader) ([]*models.Entry, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var entries []*models.Entry
	for scanner.Scan() {
		if entry := ParseLine(scanner.Text()); entry != nil {
			entries = append(entries, entry)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read entries: %v", err)
	}
	return entries, nil
}

// LoadEntriesFromFile opens the given path and loads entries from it
func LoadEntriesFromFile(path string) ([]*models.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open vocabulary file: %v", err)
	}
	defer f.Close()
	return LoadEntries(f)
}
