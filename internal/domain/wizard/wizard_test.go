package wizard_test

import (
	"errors"
	"testing"

	"github.com/okian/weekender/internal/domain/model"
	"github.com/okian/weekender/internal/domain/wizard"
	. "github.com/smartystreets/goconvey/convey"
)

func TestWizard_Flow(t *testing.T) {
	Convey("Given a new wizard", t, func() {
		w := wizard.New()

		Convey("Then it starts on the family step", func() {
			So(w.State(), ShouldEqual, wizard.StateFamily)
			step, total := w.Progress()
			So(step, ShouldEqual, 1)
			So(total, ShouldEqual, 4)
			So(w.Title(), ShouldEqual, "Tell us about your family")
			So(w.CanBack(), ShouldBeFalse)
			So(w.CanNext(), ShouldBeTrue)
		})

		Convey("When going back from the first step", func() {
			err := w.Back()

			Convey("Then the transition is rejected", func() {
				So(errors.Is(err, wizard.ErrInvalidTransition), ShouldBeTrue)
				So(w.State(), ShouldEqual, wizard.StateFamily)
			})
		})

		Convey("When the user has kids but picked no age group", func() {
			So(w.SetHasKids(true), ShouldBeNil)

			Convey("Then next is blocked", func() {
				So(w.CanNext(), ShouldBeFalse)
				_, _, err := w.Next()
				So(errors.Is(err, wizard.ErrStepIncomplete), ShouldBeTrue)
				So(w.State(), ShouldEqual, wizard.StateFamily)
			})

			Convey("And picking an age group unblocks it", func() {
				So(w.ToggleKidAgeGroup(model.KidElementary), ShouldBeNil)
				_, done, err := w.Next()
				So(err, ShouldBeNil)
				So(done, ShouldBeFalse)
				So(w.State(), ShouldEqual, wizard.StateInterests)
			})
		})

		Convey("When walking through every step", func() {
			_, _, err := w.Next()
			So(err, ShouldBeNil)

			Convey("Then interests require a selection", func() {
				_, _, err := w.Next()
				So(errors.Is(err, wizard.ErrStepIncomplete), ShouldBeTrue)

				So(w.ToggleInterest(model.CategoryMusic), ShouldBeNil)
				So(w.ToggleInterest(model.CategoryArt), ShouldBeNil)
				So(w.ToggleInterest(model.CategoryArt), ShouldBeNil)
				_, _, err = w.Next()
				So(err, ShouldBeNil)
				So(w.State(), ShouldEqual, wizard.StatePreferences)

				So(w.SetBudget(model.PriceLow), ShouldBeNil)
				So(w.SetPreferredTime(model.TimeEvening), ShouldBeNil)
				_, _, err = w.Next()
				So(err, ShouldBeNil)
				So(w.State(), ShouldEqual, wizard.StateLocation)
				So(w.Title(), ShouldEqual, "Location & transport")

				So(w.SetBorough(model.BoroughBrooklyn), ShouldBeNil)
				So(w.SetTransport(model.TransportWalking), ShouldBeNil)
				profile, done, err := w.Next()

				Convey("And the last next completes with the finished profile", func() {
					So(err, ShouldBeNil)
					So(done, ShouldBeTrue)
					So(w.Done(), ShouldBeTrue)
					So(profile.Interests, ShouldResemble, []model.Category{model.CategoryMusic})
					So(profile.Budget, ShouldEqual, model.PriceLow)
					So(profile.PreferredTime, ShouldEqual, model.TimeEvening)
					So(profile.Location.Borough, ShouldEqual, model.BoroughBrooklyn)
					So(profile.TransportMode, ShouldEqual, model.TransportWalking)
				})

				Convey("And the complete state accepts no more transitions or edits", func() {
					_, _, err := w.Next()
					So(errors.Is(err, wizard.ErrInvalidTransition), ShouldBeTrue)
					So(errors.Is(w.Back(), wizard.ErrInvalidTransition), ShouldBeTrue)
					So(errors.Is(w.SetBudget(model.PriceHigh), wizard.ErrInvalidTransition), ShouldBeTrue)
				})
			})

			Convey("Then back returns to the family step", func() {
				So(w.Back(), ShouldBeNil)
				So(w.State(), ShouldEqual, wizard.StateFamily)
			})
		})

		Convey("When turning kids off after selecting age groups", func() {
			So(w.SetHasKids(true), ShouldBeNil)
			So(w.ToggleKidAgeGroup(model.KidToddler), ShouldBeNil)
			So(w.SetHasKids(false), ShouldBeNil)

			Convey("Then the age groups are cleared", func() {
				So(w.Draft().KidAgeGroups, ShouldBeEmpty)
			})
		})

		Convey("When applying invalid values", func() {
			So(errors.Is(w.ToggleInterest("karaoke"), wizard.ErrInvalidValue), ShouldBeTrue)
			So(errors.Is(w.ToggleKidAgeGroup("adult"), wizard.ErrInvalidValue), ShouldBeTrue)
			So(errors.Is(w.SetBudget("luxury"), wizard.ErrInvalidValue), ShouldBeTrue)
			So(errors.Is(w.SetPreferredTime("night"), wizard.ErrInvalidValue), ShouldBeTrue)
			So(errors.Is(w.SetBorough("Jersey City"), wizard.ErrInvalidValue), ShouldBeTrue)
			So(errors.Is(w.SetTransport("bike"), wizard.ErrInvalidValue), ShouldBeTrue)
		})

		Convey("When the draft copy is edited by a caller", func() {
			So(w.ToggleInterest(model.CategoryFood), ShouldBeNil)
			d := w.Draft()
			d.Interests[0] = model.CategoryArt

			Convey("Then the wizard draft is unchanged", func() {
				So(w.Draft().Interests, ShouldResemble, []model.Category{model.CategoryFood})
			})
		})
	})
}

func TestWizard_CompleteAndReset(t *testing.T) {
	Convey("Given a wizard completed with a supplied profile", t, func() {
		w := wizard.New()
		p := model.DefaultProfile()
		p.Interests = []model.Category{model.CategorySports}
		w.Complete(p)

		Convey("Then the snapshot reflects completion", func() {
			snap := w.Snapshot()
			So(snap.State, ShouldEqual, wizard.StateComplete)
			So(snap.Step, ShouldEqual, 4)
			So(snap.CanNext, ShouldBeFalse)
			So(snap.CanBack, ShouldBeFalse)
			So(snap.Draft.Interests, ShouldResemble, []model.Category{model.CategorySports})
		})

		Convey("When reset", func() {
			w.Reset()

			Convey("Then it starts over with the default profile", func() {
				So(w.State(), ShouldEqual, wizard.StateFamily)
				So(w.Draft().Interests, ShouldBeEmpty)
			})
		})
	})
}
