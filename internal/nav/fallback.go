package nav

// SectionBounds is the measured geometry of one page section, in document
// coordinates, as reported by the scroll fallback when IntersectionObserver
// is unavailable in the visitor's browser.
type SectionBounds struct {
	ID     string  `json:"id"`
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// ResolveFromScroll is the degraded substitute for Resolve: given the
// sections in document order and the current viewport band, it picks the
// last section whose vertical midpoint falls inside the band. The
// last-match-wins rule deliberately mirrors Resolve so the two paths agree
// when several sections are visible at once. No match keeps the previous id.
func ResolveFromScroll(sections []SectionBounds, viewTop, viewHeight float64, previousID string) string {
	active := previousID
	for _, s := range sections {
		if s.ID == "" || s.Height <= 0 {
			continue
		}
		mid := s.Top + s.Height/2
		if mid >= viewTop && mid < viewTop+viewHeight {
			active = s.ID
		}
	}
	return active
}
