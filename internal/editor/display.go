package editor

// TextBuffer is a command.Display that keeps the echoed text in memory.
// OnChange, when set, sees the text after every change.
type TextBuffer struct {
	text     []rune
	OnChange func(text string)
}

func (b *TextBuffer) Append(r rune) {
	b.text = append(b.text, r)
	b.changed()
}

func (b *TextBuffer) SetText(s string) {
	b.text = append(b.text[:0], []rune(s)...)
	b.changed()
}

func (b *TextBuffer) String() string { return string(b.text) }

func (b *TextBuffer) changed() {
	if b.OnChange != nil {
		b.OnChange(string(b.text))
	}
}
