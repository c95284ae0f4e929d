package buffer

// Option is a functional option for configuring a Document.
type Option func(*Document)

// WithText sets the document's initial content.
func WithText(text string) Option {
	return func(d *Document) {
		d.text = text
	}
}

// WithHistoryLimit sets the maximum number of undo snapshots.
func WithHistoryLimit(limit int) Option {
	return func(d *Document) {
		if limit > 0 {
			d.history.SetMaxEntries(limit)
		}
	}
}
