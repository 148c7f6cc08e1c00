package typing

// Tone is the correctness style of a displayed rune.
type Tone int

const (
	Neutral Tone = iota
	Positive
	Negative
)

// Segment is one styled rune of the display projection.
type Segment struct {
	Value  rune
	Tone   Tone
	Active bool
}

// ConstructText rebuilds the display projection from the letter records
// and cursor. Input does not call it; callers refresh after every Input.
func (e *Engine) ConstructText() []Segment {
	text := make([]Segment, len(e.letters))
	for i, l := range e.letters {
		text[i] = Segment{Value: l.Value, Tone: toneFor(l.State)}
	}
	if e.cursor < len(text) {
		text[e.cursor].Active = true
	}
	e.text = text
	return e.Text()
}

// Text returns the projection built by the last ConstructText call.
func (e *Engine) Text() []Segment {
	return append([]Segment(nil), e.text...)
}

func toneFor(s LetterState) Tone {
	switch s {
	case Correct:
		return Positive
	case Incorrect:
		return Negative
	case Unpressed:
		return Neutral
	default:
		return Neutral
	}
}
