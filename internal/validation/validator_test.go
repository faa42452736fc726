package validation_test

import (
	"errors"
	"testing"

	"github.com/okian/weekender/internal/domain/model"
	"github.com/okian/weekender/internal/validation"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGet(t *testing.T) {
	Convey("Given the shared validator", t, func() {
		So(validation.Get(), ShouldNotBeNil)
		So(validation.Get(), ShouldEqual, validation.Get())
	})
}

func TestStruct(t *testing.T) {
	Convey("Given a profile", t, func() {
		p := model.DefaultProfile()

		Convey("When it is the default profile", func() {
			Convey("Then it validates", func() {
				So(validation.Struct(p), ShouldBeNil)
			})
		})

		Convey("When the budget and borough are unknown", func() {
			p.Budget = "luxury"
			p.Location.Borough = "Hoboken"
			err := validation.Struct(p)

			Convey("Then both fields are reported by their json names", func() {
				var verr *validation.Error
				So(errors.As(err, &verr), ShouldBeTrue)
				So(len(verr.Fields), ShouldEqual, 2)
				So(verr.Fields[0].Field, ShouldEqual, "budget")
				So(verr.Fields[0].Tag, ShouldEqual, "oneof")
				So(verr.Fields[1].Field, ShouldEqual, "location.borough")
				So(err.Error(), ShouldContainSubstring, "budget must be one of")
			})
		})

		Convey("When the borough contains a space", func() {
			p.Location.Borough = model.BoroughStatenIsland

			Convey("Then it validates", func() {
				So(validation.Struct(p), ShouldBeNil)
			})
		})

		Convey("When an interest is unknown", func() {
			p.Interests = []model.Category{model.CategoryMusic, "karaoke"}
			err := validation.Struct(p)

			Convey("Then the slice element is reported", func() {
				var verr *validation.Error
				So(errors.As(err, &verr), ShouldBeTrue)
				So(verr.Fields[0].Field, ShouldEqual, "interests[1]")
			})
		})
	})

	Convey("Given an event", t, func() {
		e := model.Event{
			ID:         "1",
			Title:      "Jazz",
			Date:       "2024-11-16",
			Category:   model.CategoryMusic,
			PriceRange: model.PriceLow,
			AgeGroups:  []model.AgeGroup{model.AgeAdults},
		}
		So(validation.Struct(e), ShouldBeNil)

		e.Date = "11/16/2024"
		err := validation.Struct(e)
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "date must match the layout 2006-01-02")
	})
}
