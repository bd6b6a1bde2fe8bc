// Package grading evaluates learner responses against catalog items.
// Grading is total and deterministic: the same (item, response) pair
// always yields the same result, and unknown item types degrade to an
// incorrect result with an explicit reason instead of an error.
package grading

import (
	"strings"

	"github.com/sevenacademy/leaflab/internal/catalog"
)

// Reason codes attached to every grading result.
const (
	ReasonExactMatch      = "exact_match"
	ReasonMismatch        = "mismatch"
	ReasonUnsupportedType = "unsupported_item_type"
)

// Response is a learner's answer to an item. Choice is used for mcq
// items, Text for short-answer items.
type Response struct {
	Choice int
	Text   string
}

// ChoiceResponse builds a response selecting a choice index.
func ChoiceResponse(index int) Response {
	return Response{Choice: index}
}

// TextResponse builds a free-text response.
func TextResponse(text string) Response {
	return Response{Choice: -1, Text: text}
}

// Result is the outcome of grading one response.
type Result struct {
	Correct          bool
	Reason           string
	MisconceptionTag string
}

// Grade evaluates a response against an item. It has no side effects;
// the caller feeds the result into history and mastery updates.
func Grade(item catalog.Item, resp Response) Result {
	switch item.Type {
	case catalog.TypeMCQ:
		return gradeMCQ(item, resp.Choice)
	case catalog.TypeShort:
		return gradeShort(item, resp.Text)
	default:
		return Result{Correct: false, Reason: ReasonUnsupportedType}
	}
}

func gradeMCQ(item catalog.Item, choice int) Result {
	if choice == item.AnswerIndex {
		return Result{Correct: true, Reason: ReasonExactMatch}
	}
	res := Result{Correct: false, Reason: ReasonMismatch}
	for _, idx := range item.MisconceptionKeyIndexes {
		if choice == idx {
			res.MisconceptionTag = item.MisconceptionTag
			break
		}
	}
	return res
}

func gradeShort(item catalog.Item, text string) Result {
	if normalize(text) == normalize(item.Answer) {
		return Result{Correct: true, Reason: ReasonExactMatch}
	}
	return Result{Correct: false, Reason: ReasonMismatch}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
