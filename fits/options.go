package fits

// Card is a header keyword/value pair used when writing files.
// Value may be a string, bool, integer or floating-point number.
type Card struct {
	Name    string
	Value   interface{}
	Comment string
}

// Column defines a float64 ("D") table column for writing.
type Column struct {
	Name   string
	Unit   string
	Values []float64
}

// TableOption configures table creation options.
type TableOption func(*tableOptions)

type tableOptions struct {
	version int
	cards   []Card
}

func defaultTableOptions() *tableOptions {
	return &tableOptions{
		version: 0,
	}
}

// WithVersion sets the EXTVER of the table. Versions below 1 are ignored.
func WithVersion(version int) TableOption {
	return func(o *tableOptions) {
		if version >= 1 {
			o.version = version
		}
	}
}

// WithCards adds header cards to the table.
// Multiple WithCards options can be used to add more cards.
func WithCards(cards ...Card) TableOption {
	return func(o *tableOptions) {
		o.cards = append(o.cards, cards...)
	}
}
