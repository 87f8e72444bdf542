package statusline

// LinePart is a rendered fragment of the status line together with its
// visible length. Len counts glyphs only, never SGR escape bytes.
type LinePart struct {
	Part string
	Len  int
}

// Append concatenates other onto l.
func (l *LinePart) Append(other LinePart) {
	l.Part += other.Part
	l.Len += other.Len
}

func (l LinePart) String() string {
	return l.Part
}
