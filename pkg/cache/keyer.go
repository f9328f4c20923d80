package cache

// Keyer generates cache keys for pathviz entries.
type Keyer interface {
	// ResultKey identifies a shortest-path result for one query on a graph.
	ResultKey(graphHash string, start, end int) string

	// ArtifactKey identifies one rendered output.
	ArtifactKey(graphHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the inputs that change a rendered artifact.
// A nil Start or End means no path overlay.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Start  *int    `json:"start,omitempty"`
	End    *int    `json:"end,omitempty"`
	Scale  float64 `json:"scale,omitempty"`
	Engine string  `json:"engine,omitempty"`
	Arrows bool    `json:"arrows,omitempty"`
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) ResultKey(graphHash string, start, end int) string {
	return hashKey("result", graphHash, start, end)
}

func (DefaultKeyer) ArtifactKey(graphHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", graphHash, opts)
}
