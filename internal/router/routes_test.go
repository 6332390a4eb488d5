package router

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		path string
		want RouteID
	}{
		{"/", RouteHome},
		{"", RouteHome},
		{"/assessment/introduction", RouteIntroduction},
		{"/assessment/psychometric", RoutePsychometric},
		{"/assessment/technical", RouteTechnical},
		{"/assessment/wiscar", RouteWISCAR},
		{"/assessment/recommendations", RouteRecommendations},
		{"/assessment/guidance", RouteGuidance},
		{"assessment/technical", RouteTechnical},
		{" /assessment/wiscar/ ", RouteWISCAR},
		{"/assessment/WISCAR", RouteWISCAR},
		{"/assessment/guidance?ref=home", RouteGuidance},
		{"/assessment", RouteNotFound},
		{"/assessment/results", RouteNotFound},
		{"/foo", RouteNotFound},
	}
	for _, tt := range tests {
		if got := Resolve(tt.path).ID; got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"":             "/",
		"/":            "/",
		"///":          "/",
		"foo":          "/foo",
		"/foo/":        "/foo",
		"/foo#section": "/foo",
	}
	for in, want := range tests {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStepsAreOrdered(t *testing.T) {
	routes := Routes()
	if len(routes) != TotalSteps+1 {
		t.Fatalf("expected %d routes, got %d", TotalSteps+1, len(routes))
	}
	for i, r := range routes {
		if r.Step != i {
			t.Errorf("route %q: expected step %d, got %d", r.ID, i, r.Step)
		}
	}
}

func TestNextPrevious(t *testing.T) {
	home, _ := Lookup(RouteHome)
	r := home
	var walked []RouteID
	for {
		next, ok := Next(r)
		if !ok {
			break
		}
		walked = append(walked, next.ID)
		r = next
	}
	if len(walked) != TotalSteps || r.ID != RouteGuidance {
		t.Fatalf("unexpected forward walk: %v", walked)
	}

	for {
		prev, ok := Previous(r)
		if !ok {
			break
		}
		r = prev
	}
	if r.ID != RouteHome {
		t.Errorf("expected backward walk to end at home, got %q", r.ID)
	}

	nf, _ := Lookup(RouteNotFound)
	if _, ok := Next(nf); ok {
		t.Error("expected no next route from not-found")
	}
}

func TestProgress(t *testing.T) {
	wiscar, _ := Lookup(RouteWISCAR)
	if got := wiscar.Progress(); got < 0.666 || got > 0.667 {
		t.Errorf("expected wiscar progress ~0.667, got %f", got)
	}
	if !wiscar.IsStep() {
		t.Error("expected wiscar to be a step")
	}
	home, _ := Lookup(RouteHome)
	if home.IsStep() {
		t.Error("expected home not to be a step")
	}
}
