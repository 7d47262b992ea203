package dedupe

// Option configures the in-memory deduper.
type Option func(*memoryDeduper)

// WithMaxSize caps the number of remembered keys; the oldest key is evicted
// first. A value <= 0 disables the cap.
func WithMaxSize(maxSize int) Option {
	return func(d *memoryDeduper) {
		d.maxSize = maxSize
	}
}
