package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveFromScroll(t *testing.T) {
	sections := []SectionBounds{
		{ID: "home", Top: 0, Height: 800},
		{ID: "features", Top: 800, Height: 600},
		{ID: "portfolio", Top: 1400, Height: 900},
		{ID: "resume", Top: 2300, Height: 700},
		{ID: "contact", Top: 3000, Height: 500},
	}

	tests := []struct {
		name     string
		viewTop  float64
		viewH    float64
		previous string
		want     string
	}{
		{
			name:     "top_of_page_selects_home",
			viewTop:  0,
			viewH:    900,
			previous: "contact",
			want:     "home",
		},
		{
			name:     "mid_scroll_selects_portfolio",
			viewTop:  1500,
			viewH:    900,
			previous: "home",
			want:     "portfolio",
		},
		{
			name:     "two_midpoints_visible_last_in_document_order_wins",
			viewTop:  300,
			viewH:    900,
			previous: "contact",
			want:     "features",
		},
		{
			name:     "no_midpoint_in_band_keeps_previous",
			viewTop:  700,
			viewH:    200,
			previous: "home",
			want:     "home",
		},
		{
			name:     "scrolled_past_everything_keeps_previous",
			viewTop:  5000,
			viewH:    900,
			previous: "contact",
			want:     "contact",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveFromScroll(sections, tt.viewTop, tt.viewH, tt.previous)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveFromScrollSkipsDegenerateSections(t *testing.T) {
	sections := []SectionBounds{
		{ID: "", Top: 0, Height: 800},
		{ID: "collapsed", Top: 100, Height: 0},
		{ID: "home", Top: 0, Height: 600},
	}

	assert.Equal(t, "home", ResolveFromScroll(sections, 0, 900, "contact"))
}

func TestResolveFromScrollEmptyPage(t *testing.T) {
	assert.Equal(t, "home", ResolveFromScroll(nil, 0, 900, "home"))
}
