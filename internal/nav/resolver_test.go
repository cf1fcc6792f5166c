package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func obs(intersecting bool, target any) *Observation {
	return &Observation{IsIntersecting: intersecting, Target: target}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		entries  []*Observation
		previous string
		want     string
	}{
		{
			name:     "nil_batch_is_a_no_op",
			entries:  nil,
			previous: "home",
			want:     "home",
		},
		{
			name:     "empty_batch_keeps_previous",
			entries:  []*Observation{},
			previous: "portfolio",
			want:     "portfolio",
		},
		{
			name:     "nil_entries_are_skipped",
			entries:  []*Observation{nil, nil},
			previous: "home",
			want:     "home",
		},
		{
			name:     "non_intersecting_entries_are_ignored",
			entries:  []*Observation{obs(false, "resume")},
			previous: "home",
			want:     "home",
		},
		{
			name:     "single_qualifying_entry_wins",
			entries:  []*Observation{obs(true, "features")},
			previous: "home",
			want:     "features",
		},
		{
			name:     "last_qualifying_entry_wins",
			entries:  []*Observation{obs(true, "home"), obs(true, "portfolio")},
			previous: "home",
			want:     "portfolio",
		},
		{
			name:     "empty_string_target_is_rejected",
			entries:  []*Observation{obs(true, "")},
			previous: "home",
			want:     "home",
		},
		{
			name:     "non_string_target_is_rejected",
			entries:  []*Observation{obs(true, 123)},
			previous: "home",
			want:     "home",
		},
		{
			name:     "nil_target_is_rejected",
			entries:  []*Observation{obs(true, nil)},
			previous: "home",
			want:     "home",
		},
		{
			name:     "rejected_entries_do_not_shadow_earlier_winners",
			entries:  []*Observation{obs(true, "features"), obs(true, ""), obs(false, "contact"), nil},
			previous: "home",
			want:     "features",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.entries, tt.previous)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Reversing two qualifying entries must change the winner: the rule is
// genuinely order-dependent, not set-based.
func TestResolveOrderSensitivity(t *testing.T) {
	forward := []*Observation{obs(true, "home"), obs(true, "portfolio")}
	reversed := []*Observation{obs(true, "portfolio"), obs(true, "home")}

	assert.Equal(t, "portfolio", Resolve(forward, "home"))
	assert.Equal(t, "home", Resolve(reversed, "home"))
	assert.NotEqual(t, Resolve(forward, "home"), Resolve(reversed, "home"))
}

// Re-applying the same batch on top of its own result yields the same id.
func TestResolveIdempotent(t *testing.T) {
	batch := []*Observation{obs(true, "features"), obs(true, "portfolio")}

	once := Resolve(batch, "home")
	twice := Resolve(batch, once)
	assert.Equal(t, once, twice)
}
