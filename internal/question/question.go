// Package question implements the quiz Question aggregate: a titled,
// point-weighted prompt that owns an ordered list of answer Choices and
// enforces how many of them may be selected at once.
//
// A Question is not safe for concurrent mutation. Callers sharing one
// across goroutines must serialize access themselves.
package question

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// Question is the aggregate root. Create one with New.
type Question struct {
	id            int64
	key           uuid.UUID
	title         string
	points        int
	maxSelections int

	choices      []*Choice
	lastChoiceID int
}

// Option overrides a default applied by New.
type Option func(*settings)

type settings struct {
	points        int
	maxSelections int
}

// WithPoints sets the question's weight. Must be within [MinPoints, MaxPoints].
func WithPoints(points int) Option {
	return func(s *settings) { s.points = points }
}

// WithMaxSelections caps how many choice ids SelectChoices accepts in one call.
func WithMaxSelections(n int) Option {
	return func(s *settings) { s.maxSelections = n }
}

// New validates its arguments and returns a Question with no choices.
// Returns a *ValidationError if the title, points or max selections are
// out of range.
func New(title string, opts ...Option) (*Question, error) {
	s := settings{
		points:        DefaultPoints,
		maxSelections: DefaultMaxSelections,
	}
	for _, opt := range opts {
		opt(&s)
	}

	title, verr := normalizeText("title", title, MaxTitleLen)
	if verr != nil {
		return nil, verr
	}
	if s.points < MinPoints || s.points > MaxPoints {
		return nil, &ValidationError{
			Field:   "points",
			Message: fmt.Sprintf("must be between %d and %d (got %d)", MinPoints, MaxPoints, s.points),
		}
	}
	if s.maxSelections < 1 {
		return nil, &ValidationError{
			Field:   "max_selections",
			Message: fmt.Sprintf("must be at least 1 (got %d)", s.maxSelections),
		}
	}

	return &Question{
		id:            nextQuestionID(),
		key:           newKey(),
		title:         title,
		points:        s.points,
		maxSelections: s.maxSelections,
	}, nil
}

func (q *Question) ID() int64 { return q.id }

// Key is a random identifier that stays unique across process restarts,
// unlike ID.
func (q *Question) Key() uuid.UUID { return q.key }

// Title is stored in NFC form.
func (q *Question) Title() string { return q.title }

func (q *Question) Points() int { return q.points }

func (q *Question) MaxSelections() int { return q.maxSelections }

// Choices returns the question's choices in insertion order. The slice is
// a copy; the choices themselves are the ones owned by q.
func (q *Question) Choices() []*Choice {
	return slices.Clone(q.choices)
}

// AddChoice appends a new choice and returns it.
func (q *Question) AddChoice(text string, correct bool) (*Choice, error) {
	text, verr := normalizeText("text", text, MaxChoiceTextLen)
	if verr != nil {
		return nil, verr
	}
	q.lastChoiceID++
	c := &Choice{id: q.lastChoiceID, text: text, correct: correct}
	q.choices = append(q.choices, c)
	return c, nil
}

// ChoiceByID looks up a choice owned by q.
func (q *Question) ChoiceByID(id int) (*Choice, bool) {
	i := q.indexOf(id)
	if i < 0 {
		return nil, false
	}
	return q.choices[i], true
}

// RemoveChoiceByID removes the choice with the given id, keeping the order
// of the others. Returns a *NotFoundError if q has no such choice.
func (q *Question) RemoveChoiceByID(id int) error {
	i := q.indexOf(id)
	if i < 0 {
		return &NotFoundError{ChoiceID: id}
	}
	q.choices = slices.Delete(q.choices, i, i+1)
	return nil
}

// RemoveAllChoices drops every choice. Calling it on an empty question is
// a no-op.
func (q *Question) RemoveAllChoices() {
	q.choices = nil
}

// SelectChoices returns the ids among ids that belong to correct choices,
// in choice order and without duplicates. Unknown ids are ignored. It
// fails with a *ValidationError when more ids are submitted than
// MaxSelections allows, regardless of how many of them are correct.
func (q *Question) SelectChoices(ids []int) ([]int, error) {
	if len(ids) > q.maxSelections {
		return nil, &ValidationError{
			Field:   "selection",
			Message: fmt.Sprintf("at most %d choices may be selected (got %d)", q.maxSelections, len(ids)),
		}
	}

	picked := idSet(ids)
	selected := make([]int, 0, len(ids))
	for _, c := range q.choices {
		if c.correct && picked[c.id] {
			selected = append(selected, c.id)
		}
	}
	return selected, nil
}

// SetCorrectChoices marks exactly the choices in ids as correct and every
// other choice as incorrect. Unknown ids are ignored.
func (q *Question) SetCorrectChoices(ids []int) {
	correct := idSet(ids)
	for _, c := range q.choices {
		c.correct = correct[c.id]
	}
}

// CorrectChoiceIDs returns the ids of the correct choices in choice order.
func (q *Question) CorrectChoiceIDs() []int {
	var ids []int
	for _, c := range q.choices {
		if c.correct {
			ids = append(ids, c.id)
		}
	}
	return ids
}

func (q *Question) indexOf(id int) int {
	return slices.IndexFunc(q.choices, func(c *Choice) bool { return c.id == id })
}

func idSet(ids []int) map[int]bool {
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
