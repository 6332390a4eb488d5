package router

import "strings"

// RouteID names a page of the app.
type RouteID string

const (
	RouteHome            RouteID = "home"
	RouteIntroduction    RouteID = "introduction"
	RoutePsychometric    RouteID = "psychometric"
	RouteTechnical       RouteID = "technical"
	RouteWISCAR          RouteID = "wiscar"
	RouteRecommendations RouteID = "recommendations"
	RouteGuidance        RouteID = "guidance"
	RouteNotFound        RouteID = "notfound"
)

// TotalSteps is the number of assessment steps.
const TotalSteps = 6

// Route is a path-addressable page. Step is 1..TotalSteps for assessment
// pages and 0 otherwise.
type Route struct {
	ID    RouteID
	Path  string
	Title string
	Step  int
}

// IsStep reports whether r is one of the assessment steps.
func (r Route) IsStep() bool {
	return r.Step > 0
}

// Progress returns the step as a fraction of TotalSteps.
func (r Route) Progress() float64 {
	return float64(r.Step) / TotalSteps
}

var table = []Route{
	{RouteHome, "/", "DevOps Navigator", 0},
	{RouteIntroduction, "/assessment/introduction", "Introduction", 1},
	{RoutePsychometric, "/assessment/psychometric", "Psychometric Assessment", 2},
	{RouteTechnical, "/assessment/technical", "Technical Assessment", 3},
	{RouteWISCAR, "/assessment/wiscar", "WISCAR Analysis", 4},
	{RouteRecommendations, "/assessment/recommendations", "Recommendations", 5},
	{RouteGuidance, "/assessment/guidance", "Career Guidance", 6},
}

var notFound = Route{ID: RouteNotFound, Title: "Not Found"}

// Routes returns the addressable routes in step order.
func Routes() []Route {
	return append([]Route(nil), table...)
}

// Normalize trims whitespace, any query or fragment, and a trailing slash,
// and makes the path absolute.
func Normalize(path string) string {
	p := strings.TrimSpace(path)
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = "/"
		}
	}
	return p
}

// Resolve maps a path to its route. Matching ignores case. Unknown paths
// resolve to the not-found route.
func Resolve(path string) Route {
	p := Normalize(path)
	for _, r := range table {
		if strings.EqualFold(r.Path, p) {
			return r
		}
	}
	return notFound
}

// Lookup returns the route with the given id.
func Lookup(id RouteID) (Route, bool) {
	if id == RouteNotFound {
		return notFound, true
	}
	for _, r := range table {
		if r.ID == id {
			return r, true
		}
	}
	return Route{}, false
}

// ForStep returns the route at the given step; step 0 is home.
func ForStep(step int) (Route, bool) {
	if step < 0 || step >= len(table) {
		return Route{}, false
	}
	return table[step], true
}

// Next returns the route after r in the linear flow.
func Next(r Route) (Route, bool) {
	if r.ID == RouteNotFound {
		return Route{}, false
	}
	return ForStep(r.Step + 1)
}

// Previous returns the route before r in the linear flow.
func Previous(r Route) (Route, bool) {
	if r.ID == RouteNotFound {
		return Route{}, false
	}
	return ForStep(r.Step - 1)
}
