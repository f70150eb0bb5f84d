package study

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

const quizPrompt = `Generate 3 multiple choice questions with 4 options. Format each like:
Q: Question?
a) Option A
b) Option B
c) Option C
d) Option D
Answer: b
From this content:`

var questionPattern = regexp.MustCompile(`(?s)Q:\s*(.*?)\n\s*a\)\s*(.*?)\n\s*b\)\s*(.*?)\n\s*c\)\s*(.*?)\n\s*d\)\s*(.*?)\n\s*Answer:\s*([abcd])`)

// Question is one multiple choice question with options keyed a through d.
type Question struct {
	Prompt  string            `json:"prompt"`
	Options map[string]string `json:"options"`
	Answer  string            `json:"answer"`
}

// Quiz is an ordered set of questions.
type Quiz []Question

// QuestionResult reports how one question was answered.
type QuestionResult struct {
	Correct  bool   `json:"correct"`
	Expected string `json:"expected"`
	Given    string `json:"given"`
}

// GradeResult is the outcome of grading a quiz.
type GradeResult struct {
	Score   int              `json:"score"`
	Total   int              `json:"total"`
	Results []QuestionResult `json:"results"`
}

// GenerateQuiz asks the model for questions over the notes and parses them.
func (t *Tutor) GenerateQuiz(ctx context.Context, notes string) (Quiz, error) {
	if strings.TrimSpace(notes) == "" {
		return nil, fmt.Errorf("no notes to quiz on")
	}

	raw, err := t.complete(ctx, quizPrompt+"\n\n"+chunkWords(notes, summaryChunkWords)[0])
	if err != nil {
		return nil, err
	}

	quiz := ParseQuiz(raw)
	if len(quiz) == 0 {
		return nil, fmt.Errorf("no questions found in model output")
	}
	return quiz, nil
}

// ParseQuiz extracts questions from model output. Malformed blocks are
// skipped rather than failing the whole quiz.
func ParseQuiz(raw string) Quiz {
	var quiz Quiz
	for _, m := range questionPattern.FindAllStringSubmatch(raw, -1) {
		quiz = append(quiz, Question{
			Prompt: strings.TrimSpace(m[1]),
			Options: map[string]string{
				"a": strings.TrimSpace(m[2]),
				"b": strings.TrimSpace(m[3]),
				"c": strings.TrimSpace(m[4]),
				"d": strings.TrimSpace(m[5]),
			},
			Answer: m[6],
		})
	}
	return quiz
}

// Grade scores answers against the quiz. Missing answers count as wrong.
func Grade(quiz Quiz, answers []string) GradeResult {
	result := GradeResult{Total: len(quiz)}
	for i, q := range quiz {
		given := ""
		if i < len(answers) {
			given = strings.ToLower(strings.TrimSpace(answers[i]))
		}
		correct := given == q.Answer
		if correct {
			result.Score++
		}
		result.Results = append(result.Results, QuestionResult{
			Correct:  correct,
			Expected: q.Answer,
			Given:    given,
		})
	}
	return result
}
