package widgets

// Widget renders itself into a width x height cell box.
type Widget interface {
	Render(width, height int) string
}

// Text is a Widget that renders a fixed string, clipped to the box.
type Text string

func (t Text) Render(width, height int) string {
	return Clip(string(t), width, height)
}
