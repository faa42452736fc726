package dedupe

// Option applies a configuration option to the InMemoryDeduper.
type Option func(*inMemoryDeduper)

// WithCaseFolding treats IDs that differ only in case as the same ID.
func WithCaseFolding(fold bool) Option {
	return func(d *inMemoryDeduper) {
		d.foldCase = fold
	}
}
