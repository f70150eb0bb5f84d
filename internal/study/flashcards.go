package study

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

const flashcardPrompt = `From these notes, create 5 flashcards in Q&A format to help students learn:`

var flashcardPattern = regexp.MustCompile(`(?s)Q:\s*(.*?)\n\s*A:\s*(.*?)(?:\n\s*\n|\z)`)

// Flashcard is one question and answer pair.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Flashcards asks the model for flashcards over the notes. The raw model
// text is returned alongside whatever structured cards could be parsed, so
// callers can still show the output when the format drifts.
func (t *Tutor) Flashcards(ctx context.Context, notes string) ([]Flashcard, string, error) {
	if strings.TrimSpace(notes) == "" {
		return nil, "", fmt.Errorf("no notes to make flashcards from")
	}

	raw, err := t.complete(ctx, flashcardPrompt+"\n\n"+chunkWords(notes, summaryChunkWords)[0])
	if err != nil {
		return nil, "", err
	}
	return ParseFlashcards(raw), raw, nil
}

// ParseFlashcards extracts Q/A pairs from model output.
func ParseFlashcards(raw string) []Flashcard {
	var cards []Flashcard
	for _, m := range flashcardPattern.FindAllStringSubmatch(raw, -1) {
		q := strings.TrimSpace(m[1])
		a := strings.TrimSpace(m[2])
		if q == "" || a == "" {
			continue
		}
		cards = append(cards, Flashcard{Question: q, Answer: a})
	}
	return cards
}
