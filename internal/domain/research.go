package domain

// PlatformOptions configures one platform's part of a research session.
type PlatformOptions struct {
	Enabled            bool
	MaxItems           int
	UseRandomKeywords  bool
	RandomKeywordCount int
	Regions            []string // TikTok only
}

// ResearchRequest is the single entry point payload for a research session.
type ResearchRequest struct {
	Keywords    []string
	Niche       string
	Description string
	DaysBack    int
	Platforms   map[Platform]PlatformOptions
	Publish     bool
}

// Options returns the request's options for a platform, falling back to a
// disabled zero value when the platform was not mentioned.
func (r ResearchRequest) Options(p Platform) PlatformOptions {
	if r.Platforms == nil {
		return PlatformOptions{}
	}
	return r.Platforms[p]
}
