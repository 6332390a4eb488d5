// Package results holds the fixed outcome content shown after the scored
// modules: WISCAR dimension scores, readiness bands, recommendations and
// career guidance. None of it is derived from the user's answers.
package results

import "math"

// Dimension is one WISCAR axis.
type Dimension string

const (
	Will      Dimension = "will"
	Interest  Dimension = "interest"
	Skill     Dimension = "skill"
	Cognitive Dimension = "cognitive"
	Ability   Dimension = "ability"
	RealWorld Dimension = "realworld"
)

// Dimensions lists the axes in display order.
var Dimensions = []Dimension{Will, Interest, Skill, Cognitive, Ability, RealWorld}

// DimensionInfo is the display copy for a dimension.
type DimensionInfo struct {
	Name        string
	Description string
}

var dimensionInfo = map[Dimension]DimensionInfo{
	Will:      {"Will", "Inner drive, persistence, and consistency"},
	Interest:  {"Interest", "Genuine curiosity and relevance to DevOps"},
	Skill:     {"Skill", "Current technical and soft skills"},
	Cognitive: {"Cognitive", "Analytical thinking and problem-solving ability"},
	Ability:   {"Ability to Learn", "Openness to feedback and continuous improvement"},
	RealWorld: {"Real-World Alignment", "Match with actual DevOps role requirements"},
}

// Info returns the name and description of d.
func (d Dimension) Info() DimensionInfo {
	return dimensionInfo[d]
}

// Scores maps each dimension to a 0..100 score.
type Scores map[Dimension]int

// WISCAR is the fixed score set shown on the framework screen.
var WISCAR = Scores{
	Will:      85,
	Interest:  92,
	Skill:     68,
	Cognitive: 76,
	Ability:   88,
	RealWorld: 72,
}

// Overall is the rounded mean over all dimensions.
func (s Scores) Overall() int {
	if len(s) == 0 {
		return 0
	}
	sum := 0
	for _, v := range s {
		sum += v
	}
	return int(math.Round(float64(sum) / float64(len(s))))
}

// Band is a coarse classification of a score.
type Band int

const (
	BandLow Band = iota
	BandFair
	BandGood
	BandExcellent
)

func bandOf(score int) Band {
	switch {
	case score >= 80:
		return BandExcellent
	case score >= 70:
		return BandGood
	case score >= 60:
		return BandFair
	}
	return BandLow
}

// Interpretation labels a single dimension score.
type Interpretation struct {
	Label string
	Band  Band
}

// Interpret classifies a dimension score.
func Interpret(score int) Interpretation {
	b := bandOf(score)
	labels := [...]string{"Needs Development", "Fair", "Good", "Excellent"}
	return Interpretation{Label: labels[b], Band: b}
}

// Readiness describes the overall score band.
type Readiness struct {
	Level       string
	Description string
	Band        Band
}

var readinessLevels = [...]Readiness{
	BandLow:       {"Early Stage", "Consider foundational learning before pursuing DevOps", BandLow},
	BandFair:      {"Developing Readiness", "You show potential but need focused skill development", BandFair},
	BandGood:      {"Moderate Readiness", "You have good foundation with some areas for improvement", BandGood},
	BandExcellent: {"High Readiness", "You show strong potential for a successful DevOps career", BandExcellent},
}

// ReadinessFor classifies an overall score.
func ReadinessFor(overall int) Readiness {
	return readinessLevels[bandOf(overall)]
}

// Point is a position on the readiness matrix, in percent of each axis.
// X grows to the right; Y grows downward from the top edge.
type Point struct {
	X, Y float64
}

// MatrixPosition places s on the readiness matrix. Readiness (skill and
// cognitive) moves the marker right; alignment (interest and real-world)
// moves it up.
func MatrixPosition(s Scores) Point {
	readiness := float64(s[Skill]+s[Cognitive]) / 2
	alignment := float64(s[Interest]+s[RealWorld]) / 2
	return Point{
		X: 30 + readiness*0.4,
		Y: 70 - alignment*0.4,
	}
}

// Quadrant names the matrix quadrant containing p.
func Quadrant(p Point) string {
	readiness := "Low Readiness"
	if p.X >= 50 {
		readiness = "High Readiness"
	}
	alignment := "Low Alignment"
	if p.Y < 50 {
		alignment = "High Alignment"
	}
	return readiness + ", " + alignment
}

// Insight is a titled note on the framework screen.
type Insight struct {
	Title string
	Text  string
}

// KeyInsights are shown under the readiness matrix.
var KeyInsights = []Insight{
	{"Strengths", "Your high interest and ability to learn indicate strong intrinsic motivation for DevOps."},
	{"Development Areas", "Focus on building technical skills and gaining real-world exposure to DevOps practices."},
	{"Recommendation", "Consider a structured learning path with hands-on projects to bridge the skills gap."},
}
