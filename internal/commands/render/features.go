package rendercmd

// FeatureGates exposes runtime toggles consulted by render command handlers.
type FeatureGates struct {
	FetchEnabled    func() bool
	MarkdownEnabled func() bool
}

func (g FeatureGates) fetchEnabled() bool {
	if g.FetchEnabled == nil {
		return true
	}
	return g.FetchEnabled()
}

func (g FeatureGates) markdownEnabled() bool {
	if g.MarkdownEnabled == nil {
		return true
	}
	return g.MarkdownEnabled()
}
