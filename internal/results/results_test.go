package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverall(t *testing.T) {
	assert.Equal(t, 80, WISCAR.Overall())
	assert.Equal(t, 0, Scores{}.Overall())
	assert.Equal(t, 51, Scores{Will: 50, Skill: 51}.Overall())
}

func TestInterpret(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "Excellent"},
		{80, "Excellent"},
		{79, "Good"},
		{70, "Good"},
		{69, "Fair"},
		{60, "Fair"},
		{59, "Needs Development"},
		{0, "Needs Development"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Interpret(tt.score).Label, "score %d", tt.score)
	}
}

func TestReadinessFor(t *testing.T) {
	assert.Equal(t, "High Readiness", ReadinessFor(WISCAR.Overall()).Level)
	assert.Equal(t, "Moderate Readiness", ReadinessFor(79).Level)
	assert.Equal(t, "Developing Readiness", ReadinessFor(60).Level)
	assert.Equal(t, "Early Stage", ReadinessFor(59).Level)
	assert.Equal(t, BandLow, ReadinessFor(10).Band)
}

func TestRecommendationFor(t *testing.T) {
	tests := []struct {
		score    int
		verdict  Verdict
		showPlan bool
	}{
		{80, VerdictYes, true},
		{Confidence, VerdictMaybe, true},
		{65, VerdictMaybe, true},
		{64, VerdictNo, false},
	}
	for _, tt := range tests {
		r := RecommendationFor(tt.score)
		assert.Equal(t, tt.verdict, r.Verdict, "score %d", tt.score)
		assert.Equal(t, tt.showPlan, r.ShowsPlan(), "score %d", tt.score)
	}
	assert.Equal(t, "Conditionally Recommended", RecommendationFor(Confidence).Title)
}

func TestMatrixPosition(t *testing.T) {
	p := MatrixPosition(WISCAR)
	assert.InDelta(t, 30+72*0.4, p.X, 1e-9)
	assert.InDelta(t, 70-82*0.4, p.Y, 1e-9)
	assert.Equal(t, "High Readiness, High Alignment", Quadrant(p))

	low := MatrixPosition(Scores{})
	assert.Equal(t, Point{X: 30, Y: 70}, low)
	assert.Equal(t, "Low Readiness, Low Alignment", Quadrant(low))
}

func TestMatchTier(t *testing.T) {
	assert.Equal(t, TierStrong, MatchTier(75))
	assert.Equal(t, TierGood, MatchTier(74))
	assert.Equal(t, TierGood, MatchTier(65))
	assert.Equal(t, TierLow, MatchTier(64))

	tiers := make([]Tier, len(CareerRoles))
	for i, r := range CareerRoles {
		tiers[i] = r.Tier()
	}
	assert.Equal(t, []Tier{TierStrong, TierGood, TierGood}, tiers)
}

func TestStaticContent(t *testing.T) {
	assert.Len(t, Dimensions, 6)
	for _, d := range Dimensions {
		assert.NotEmpty(t, d.Info().Name, d)
		_, ok := WISCAR[d]
		assert.True(t, ok, d)
	}
	assert.Len(t, LearningPath, 3)
	assert.Len(t, Projects, 3)
	assert.Len(t, Alternatives, 4)
	assert.Len(t, Strengths, 3)
	assert.Len(t, DevelopmentAreas, 3)
	assert.Len(t, KeyInsights, 3)
}
