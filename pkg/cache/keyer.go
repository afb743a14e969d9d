package cache

// DrawingKeyOpts are the inputs that determine a drawing besides the panel
// parameters.
type DrawingKeyOpts struct {
	Seed uint64 `json:"seed"`
}

// ArtifactKeyOpts are the render settings that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format      string  `json:"format"`
	Scale       float64 `json:"scale,omitempty"`
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"stroke_width,omitempty"`
	Notes       bool    `json:"notes,omitempty"`
	Title       string  `json:"title,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// DrawingKey returns the key of the drawing generated from paramsHash.
	DrawingKey(paramsHash string, opts DrawingKeyOpts) string

	// ArtifactKey returns the key of a rendering of the drawing with drawingHash.
	ArtifactKey(drawingHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes the key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// DrawingKey implements [Keyer].
func (DefaultKeyer) DrawingKey(paramsHash string, opts DrawingKeyOpts) string {
	return hashKey("drawing", paramsHash, opts)
}

// ArtifactKey implements [Keyer].
func (DefaultKeyer) ArtifactKey(drawingHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", drawingHash, opts)
}
