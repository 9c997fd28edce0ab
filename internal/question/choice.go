package question

// Choice is one answer option of a Question. Choices are created only
// through Question.AddChoice and their correctness is changed only by
// the owning Question.
type Choice struct {
	id      int
	text    string
	correct bool
}

// ID is unique within the owning Question.
func (c *Choice) ID() int { return c.id }

// Text is stored in NFC form.
func (c *Choice) Text() string { return c.text }

func (c *Choice) IsCorrect() bool { return c.correct }
