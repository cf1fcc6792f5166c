// Package nav decides which navigation section is highlighted as the
// visitor scrolls. The browser reports IntersectionObserver batches to the
// server, which reduces each batch to a single active section id.
package nav

// Observation is one element's visibility report from the browser's
// IntersectionObserver callback. Target is decoded as `any` because the
// batch arrives as JSON from the client and may carry a null, a number, or
// be missing entirely; only non-empty strings are usable ids.
type Observation struct {
	IsIntersecting bool `json:"isIntersecting"`
	Target         any  `json:"target"`
}

// Resolve returns the section id that should be active after applying a
// batch of observations on top of the previously active id.
//
// Entries are applied in order: nil entries, non-intersecting entries, and
// entries without a non-empty string target are skipped; among the rest the
// last one wins. A nil or empty batch, or one with no qualifying entry,
// leaves the previous id active. Malformed input never fails the caller —
// the worst case is that the highlight does not move this cycle.
func Resolve(entries []*Observation, previousID string) string {
	active := previousID
	for _, e := range entries {
		if e == nil || !e.IsIntersecting {
			continue
		}
		id, ok := e.Target.(string)
		if !ok || id == "" {
			continue
		}
		active = id
	}
	return active
}
