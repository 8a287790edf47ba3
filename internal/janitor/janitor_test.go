package janitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubExpirer struct {
	cutoffs []time.Time
}

func (s *stubExpirer) ExpireBefore(cutoff time.Time) int {
	s.cutoffs = append(s.cutoffs, cutoff)
	return 2
}

func TestSweepUsesTTLCutoff(t *testing.T) {
	exp := &stubExpirer{}
	j := New(exp, 30*time.Minute, time.Minute, zap.NewNop())

	before := time.Now().Add(-30 * time.Minute)
	j.sweep()
	after := time.Now().Add(-30 * time.Minute)

	assert.Len(t, exp.cutoffs, 1)
	assert.False(t, exp.cutoffs[0].Before(before))
	assert.False(t, exp.cutoffs[0].After(after))
}
