package state

import "unicode"

// Input is an editable single-line text buffer with a rune cursor. It backs
// search, filter and form text boxes.
type Input struct {
	text   string
	cursor int
}

// NewInput returns an input holding text with the cursor at the end.
func NewInput(text string) *Input {
	in := &Input{}
	in.Set(text, len([]rune(text)))
	return in
}

// Value returns the buffer contents.
func (in *Input) Value() string {
	return in.text
}

// Set replaces the contents and places the cursor, clamped.
func (in *Input) Set(text string, cursor int) {
	in.text = text
	runes := []rune(text)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	in.cursor = cursor
}

// CursorPos returns the rune offset of the cursor.
func (in *Input) CursorPos() int {
	runes := []rune(in.text)
	if in.cursor < 0 {
		return 0
	}
	if in.cursor > len(runes) {
		return len(runes)
	}
	return in.cursor
}

// Insert inserts text at the cursor.
func (in *Input) Insert(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(in.text)
	pos := in.CursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	in.Set(string(updated), pos+len(insert))
	return true
}

// DeleteRuneBackward deletes the rune before the cursor.
func (in *Input) DeleteRuneBackward() bool {
	runes := []rune(in.text)
	pos := in.CursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	in.Set(string(updated), pos-1)
	return true
}

// DeleteWordBackward deletes the word preceding the cursor.
func (in *Input) DeleteWordBackward() bool {
	runes := []rune(in.text)
	pos := in.CursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStart(runes, pos)
	updated := append(runes[:i], runes[pos:]...)
	in.Set(string(updated), i)
	return true
}

// MoveStart moves the cursor to the start.
func (in *Input) MoveStart() bool {
	if in.CursorPos() == 0 {
		return false
	}
	in.cursor = 0
	return true
}

// MoveEnd moves the cursor to the end.
func (in *Input) MoveEnd() bool {
	end := len([]rune(in.text))
	if in.CursorPos() == end {
		return false
	}
	in.cursor = end
	return true
}

// MoveLeft moves the cursor one rune backward.
func (in *Input) MoveLeft() bool {
	if in.CursorPos() == 0 {
		return false
	}
	in.cursor = in.CursorPos() - 1
	return true
}

// MoveRight moves the cursor one rune forward.
func (in *Input) MoveRight() bool {
	pos := in.CursorPos()
	if pos >= len([]rune(in.text)) {
		return false
	}
	in.cursor = pos + 1
	return true
}

// MoveWordBackward moves the cursor to the start of the previous word.
func (in *Input) MoveWordBackward() bool {
	runes := []rune(in.text)
	pos := in.CursorPos()
	if pos == 0 {
		return false
	}
	i := wordStart(runes, pos)
	if i == pos {
		return false
	}
	in.cursor = i
	return true
}

// MoveWordForward moves the cursor past the next word.
func (in *Input) MoveWordForward() bool {
	runes := []rune(in.text)
	pos := in.CursorPos()
	if pos >= len(runes) {
		return false
	}
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	in.cursor = i
	return i != pos
}

func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}
