package catalog

// Catalog bundles the rule lists and response tables of the mock tier.
type Catalog struct {
	// CaptionRules classify uploaded filenames.
	CaptionRules []Rule
	// ImageRules classify caption text.
	ImageRules []Rule
	// AnimatedRules classify caption text and style for animated videos.
	AnimatedRules []Rule

	Captions     map[Category]string
	Summaries    map[Category]string
	SampleImages map[Category]string
	// AnimatedVideos maps a category to a fixed external URL.
	AnimatedVideos map[Category]string
}

// Caption returns the mock caption for a filename.
func (c *Catalog) Caption(filename string) (Category, string) {
	cat := Classify(filename, c.CaptionRules)
	return cat, Respond(cat, c.Captions)
}

// Summary returns the mock summary for a category.
func (c *Catalog) Summary(cat Category) string {
	return Respond(cat, c.Summaries)
}

// SampleImage returns the sample asset name for a caption text.
func (c *Catalog) SampleImage(text string) (Category, string) {
	cat := Classify(text, c.ImageRules)
	return cat, Respond(cat, c.SampleImages)
}

// AnimatedVideo returns the animated video URL for a text, falling back to
// the Default entry. ok is false only when the table has neither.
func (c *Catalog) AnimatedVideo(text string) (Category, string, bool) {
	cat := Classify(text, c.AnimatedRules)
	url, ok := Lookup(cat, c.AnimatedVideos)
	if url == "" {
		ok = false
	}
	return cat, url, ok
}
