package app

import (
	"fmt"

	"github.com/abhisek/navigator/internal/bank"
	"github.com/abhisek/navigator/internal/results"
	"github.com/abhisek/navigator/internal/router"
	"github.com/abhisek/navigator/internal/screen"
	"github.com/abhisek/navigator/internal/screens/guidance"
	"github.com/abhisek/navigator/internal/screens/home"
	"github.com/abhisek/navigator/internal/screens/introduction"
	"github.com/abhisek/navigator/internal/screens/notfound"
	"github.com/abhisek/navigator/internal/screens/psychometric"
	"github.com/abhisek/navigator/internal/screens/recommendations"
	"github.com/abhisek/navigator/internal/screens/technical"
	"github.com/abhisek/navigator/internal/screens/wiscar"
)

// newFactory returns a router.Factory that builds a fresh screen for each
// route entry, so re-entering an assessment module starts it over.
func newFactory(opts Options) (router.Factory, error) {
	b := opts.Bank
	if b == nil {
		var err error
		if b, err = bank.Default(); err != nil {
			return nil, fmt.Errorf("load default bank: %w", err)
		}
	}
	psych, err := b.Module(bank.ModulePsychometric)
	if err != nil {
		return nil, err
	}
	tech, err := b.Module(bank.ModuleTechnical)
	if err != nil {
		return nil, err
	}

	return func(r router.Route, path string) screen.Screen {
		switch r.ID {
		case router.RouteHome:
			return home.New()
		case router.RouteIntroduction:
			return introduction.New()
		case router.RoutePsychometric:
			return psychometric.New(psych, opts.Logger)
		case router.RouteTechnical:
			return technical.New(tech, opts.DefaultTimeLimit, opts.Logger)
		case router.RouteWISCAR:
			return wiscar.New(results.WISCAR)
		case router.RouteRecommendations:
			return recommendations.New(results.Confidence)
		case router.RouteGuidance:
			return guidance.New(results.CareerRoles)
		}
		return notfound.New(path)
	}, nil
}
