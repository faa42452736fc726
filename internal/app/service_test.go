package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"

	service "github.com/okian/weekender/internal/app"
	"github.com/okian/weekender/internal/adapters/catalog"
	"github.com/okian/weekender/internal/adapters/weather"
	"github.com/okian/weekender/internal/domain/model"
	"github.com/okian/weekender/internal/domain/recommend"
	"github.com/okian/weekender/internal/domain/scoring"
	"github.com/okian/weekender/internal/domain/theme"
	"github.com/okian/weekender/internal/domain/wizard"
	"github.com/okian/weekender/pkg/logger"
	"github.com/okian/weekender/pkg/metrics"
)

// recorder captures published notifications.
type recorder struct {
	mu    sync.Mutex
	types []string
}

func (r *recorder) Publish(_ context.Context, msgType string, _ any) {
	r.mu.Lock()
	r.types = append(r.types, msgType)
	r.mu.Unlock()
}

func (r *recorder) seen() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.types...)
}

func newService(opts ...service.Option) (*service.Service, *recorder) {
	rec := &recorder{}
	base := []service.Option{
		service.WithLogger(logger.Discard()),
		service.WithMetrics(metrics.NewManager(metrics.WithPrometheusRegistry(prometheus.NewRegistry()))),
		service.WithNotifier(rec),
		service.WithCatalog(catalog.Sample()),
	}
	svc := service.New(append(base, opts...)...)
	So(svc.Start(context.Background()), ShouldBeNil)
	return svc, rec
}

func musicLover() model.UserProfile {
	p := model.DefaultProfile()
	p.Interests = []model.Category{model.CategoryMusic}
	p.Budget = model.PriceFree
	return p
}

func TestService_Recommendations(t *testing.T) {
	Convey("Given a started session on the sample catalog", t, func() {
		svc, rec := newService()
		defer svc.Stop()
		ctx := context.Background()

		Convey("When no profile exists yet", func() {
			_, err := svc.Recommendations(ctx, service.Query{})

			Convey("Then recommendations are not ready", func() {
				So(errors.Is(err, service.ErrNoProfile), ShouldBeTrue)
			})
		})

		Convey("When a profile is set", func() {
			_, err := svc.SetProfile(ctx, musicLover())
			So(err, ShouldBeNil)

			recs, err := svc.Recommendations(ctx, service.Query{Sort: recommend.SortRecommended})

			Convey("Then the catalog is ranked by score", func() {
				So(err, ShouldBeNil)
				So(len(recs), ShouldEqual, 3)
				// interest 30 + adults 20 + free/free 30 + no outdoor bonus for music
				So(recs[0].Event.ID, ShouldEqual, "1")
				So(recs[0].Score, ShouldEqual, 80)
				So(recs[0].Badge, ShouldEqual, theme.BadgeHigh)
				for i := 1; i < len(recs); i++ {
					So(recs[i-1].Score, ShouldBeGreaterThanOrEqualTo, recs[i].Score)
				}
			})

			Convey("Then reasons are cut to the display limit", func() {
				So(recs[0].Reasons, ShouldResemble, []string{scoring.ReasonInterest, scoring.ReasonFree})
				So(recs[0].ReasonCount, ShouldEqual, 2)
				So(recs[0].Breakdown, ShouldBeNil)
			})

			Convey("Then notifications were published", func() {
				So(rec.seen(), ShouldResemble, []string{service.NotifyProfile, service.NotifyRecommendations})
			})

			Convey("And a category filter and limit apply", func() {
				recs, err := svc.Recommendations(ctx, service.Query{Category: "family", Limit: 5})
				So(err, ShouldBeNil)
				So(len(recs), ShouldEqual, 1)
				So(recs[0].Event.Category, ShouldEqual, model.CategoryFamily)

				recs, err = svc.Recommendations(ctx, service.Query{Limit: 2})
				So(err, ShouldBeNil)
				So(len(recs), ShouldEqual, 2)

				recs, err = svc.Recommendations(ctx, service.Query{Category: "nightlife"})
				So(err, ShouldBeNil)
				So(recs, ShouldBeEmpty)
			})

			Convey("And explain attaches a breakdown that sums to the score", func() {
				recs, err := svc.Recommendations(ctx, service.Query{Explain: true})
				So(err, ShouldBeNil)
				for _, r := range recs {
					So(r.Breakdown, ShouldNotBeNil)
					So(r.Breakdown.Total(), ShouldEqual, r.Score)
				}
			})
		})
	})
}

func TestService_Profile(t *testing.T) {
	Convey("Given a started session", t, func() {
		svc, _ := newService()
		defer svc.Stop()
		ctx := context.Background()

		Convey("When an invalid profile is submitted", func() {
			p := musicLover()
			p.Budget = "luxury"
			_, err := svc.SetProfile(ctx, p)

			Convey("Then it is rejected and nothing changes", func() {
				So(errors.Is(err, service.ErrInvalidProfile), ShouldBeTrue)
				_, ok := svc.Profile()
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When a profile without kids lists kid age groups", func() {
			p := musicLover()
			p.KidAgeGroups = []model.KidAgeGroup{model.KidToddler}
			got, err := svc.SetProfile(ctx, p)

			Convey("Then the age groups are cleared and the wizard completes", func() {
				So(err, ShouldBeNil)
				So(got.KidAgeGroups, ShouldBeEmpty)
				So(svc.Wizard().State, ShouldEqual, wizard.StateComplete)
			})
		})
	})
}

func TestService_Wizard(t *testing.T) {
	Convey("Given a started session", t, func() {
		svc, rec := newService()
		defer svc.Stop()
		ctx := context.Background()
		yes := true

		Convey("When an edit batch contains an invalid value", func() {
			bad := model.Category("karaoke")
			_, err := svc.WizardEdit(ctx, service.WizardEdit{HasKids: &yes, ToggleInterest: &bad})

			Convey("Then no part of it is applied", func() {
				So(errors.Is(err, wizard.ErrInvalidValue), ShouldBeTrue)
				So(svc.Wizard().Draft.HasKids, ShouldBeFalse)
			})
		})

		Convey("When walking the wizard to completion", func() {
			snap, err := svc.WizardNext(ctx)
			So(err, ShouldBeNil)
			So(snap.State, ShouldEqual, wizard.StateInterests)

			_, err = svc.WizardNext(ctx)
			So(errors.Is(err, wizard.ErrStepIncomplete), ShouldBeTrue)

			art := model.CategoryArt
			_, err = svc.WizardEdit(ctx, service.WizardEdit{ToggleInterest: &art})
			So(err, ShouldBeNil)
			_, err = svc.WizardNext(ctx)
			So(err, ShouldBeNil)

			snap, err = svc.WizardBack(ctx)
			So(err, ShouldBeNil)
			So(snap.State, ShouldEqual, wizard.StateInterests)
			_, err = svc.WizardNext(ctx)
			So(err, ShouldBeNil)

			brooklyn := model.BoroughBrooklyn
			_, err = svc.WizardEdit(ctx, service.WizardEdit{Borough: &brooklyn})
			So(err, ShouldBeNil)
			_, err = svc.WizardNext(ctx)
			So(err, ShouldBeNil)
			So(svc.Wizard().State, ShouldEqual, wizard.StateLocation)

			snap, err = svc.WizardNext(ctx)

			Convey("Then the profile is installed", func() {
				So(err, ShouldBeNil)
				So(snap.State, ShouldEqual, wizard.StateComplete)
				p, ok := svc.Profile()
				So(ok, ShouldBeTrue)
				So(p.Interests, ShouldResemble, []model.Category{model.CategoryArt})
				So(p.Location.Borough, ShouldEqual, model.BoroughBrooklyn)
				So(rec.seen(), ShouldContain, service.NotifyProfile)
			})

			Convey("And a reset clears it again", func() {
				snap := svc.WizardReset(ctx)
				So(snap.State, ShouldEqual, wizard.StateFamily)
				_, ok := svc.Profile()
				So(ok, ShouldBeFalse)
			})
		})
	})
}

func TestService_WeatherAndTheme(t *testing.T) {
	Convey("Given a started session with a profile", t, func() {
		svc, rec := newService(service.WithTheme("minimal"))
		defer svc.Stop()
		ctx := context.Background()
		p := model.DefaultProfile()
		p.Interests = []model.Category{model.CategoryEducational}
		_, err := svc.SetProfile(ctx, p)
		So(err, ShouldBeNil)

		Convey("Then the sample weather is loaded", func() {
			w := svc.Weather()
			So(w, ShouldNotBeNil)
			So(w.Condition, ShouldEqual, model.ConditionSunny)
			So(svc.WeatherSummary().Advice, ShouldNotBeEmpty)
		})

		Convey("When it starts raining", func() {
			err := svc.SetWeather(ctx, &model.WeatherData{Condition: "Rainy", Temperature: 58, Precipitation: 80})
			So(err, ShouldBeNil)
			recs, err := svc.Recommendations(ctx, service.Query{Category: "educational"})
			So(err, ShouldBeNil)

			Convey("Then indoor events gain the weather bonus", func() {
				So(recs[0].WeatherCompatible, ShouldBeTrue)
				So(rec.seen(), ShouldContain, service.NotifyWeather)
			})
		})

		Convey("When the weather is cleared", func() {
			So(svc.SetWeather(ctx, nil), ShouldBeNil)

			Convey("Then scoring continues without a weather bonus", func() {
				So(svc.Weather(), ShouldBeNil)
				recs, err := svc.Recommendations(ctx, service.Query{})
				So(err, ShouldBeNil)
				for _, r := range recs {
					So(r.WeatherCompatible, ShouldBeFalse)
				}
			})
		})

		Convey("When the weather is invalid", func() {
			err := svc.SetWeather(ctx, &model.WeatherData{Condition: "hail"})
			So(errors.Is(err, service.ErrInvalidWeather), ShouldBeTrue)
			So(svc.Weather().Condition, ShouldEqual, model.ConditionSunny)
		})

		Convey("When refreshing from a provider", func() {
			So(svc.RefreshWeather(ctx), ShouldBeNil)
			So(svc.Weather().Temperature, ShouldEqual, weather.Sample().Temperature)
		})

		Convey("When switching themes", func() {
			So(svc.Theme().Theme, ShouldEqual, theme.Minimal)
			view, err := svc.SetTheme(ctx, "playful")
			So(err, ShouldBeNil)
			So(view.Styles, ShouldResemble, theme.Resolve(theme.Playful))

			_, err = svc.SetTheme(ctx, "neon")
			So(errors.Is(err, service.ErrUnknownTheme), ShouldBeTrue)
			So(svc.Theme().Theme, ShouldEqual, theme.Playful)
		})

		Convey("When reading stats", func() {
			stats := svc.GetStats()
			So(stats["started"], ShouldEqual, true)
			So(stats["events"], ShouldEqual, 3)
			So(stats["hasProfile"], ShouldEqual, true)
			So(stats["session"], ShouldNotBeEmpty)
		})
	})
}
