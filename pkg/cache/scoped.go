package cache

// ScopedKeyer wraps a Keyer with a prefix, giving each scope its own
// namespace in a shared backend.
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "champagne:v1:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// DrawingKey generates a prefixed key for drawing caching.
func (k *ScopedKeyer) DrawingKey(paramsHash string, opts DrawingKeyOpts) string {
	return k.prefix + k.inner.DrawingKey(paramsHash, opts)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(drawingHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(drawingHash, opts)
}
