package catalog_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/weekender/internal/adapters/catalog"
	"github.com/okian/weekender/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

const firstCatalog = `
events:
  - id: "a"
    title: Jazz Night
    date: "2025-08-02"
    time: 8:00 PM
    venue: Blue Note
    category: Music
    price_range: high
    age_groups: [adults]
    source: eventbrite
  - title: Street Fair
    date: "2025-08-03"
    category: food
    price_range: free
    age_groups: [family, kids]
`

const secondCatalog = `
events:
  - id: "a"
    title: Jazz Night Rerun
    date: "2025-08-09"
    category: music
    price_range: low
  - id: "b"
    title: Gallery Walk
    date: "2025-08-03"
    category: art
    price_range: free
    link: https://example.com/gallery
`

func writeFile(dir, name, content string) string {
	path := filepath.Join(dir, name)
	So(os.WriteFile(path, []byte(content), 0o600), ShouldBeNil)
	return path
}

func TestLoader_Sample(t *testing.T) {
	Convey("Given a loader without files", t, func() {
		l := catalog.NewLoader()

		Convey("When loading", func() {
			res, err := l.Load(context.Background())

			Convey("Then the sample catalog is returned", func() {
				So(err, ShouldBeNil)
				So(len(res.Events), ShouldEqual, 3)
				So(res.Sources, ShouldResemble, []string{"sample"})
				So(res.Events[0].Title, ShouldEqual, "Central Park Summer Concert")
			})
		})

		Convey("When the sample is modified by a caller", func() {
			s := catalog.Sample()
			s[0].AgeGroups[0] = model.AgeSeniors

			Convey("Then later samples are unaffected", func() {
				So(catalog.Sample()[0].AgeGroups[0], ShouldEqual, model.AgeFamily)
			})
		})
	})
}

func TestLoader_Files(t *testing.T) {
	Convey("Given catalog files", t, func() {
		dir := t.TempDir()
		first := writeFile(dir, "first.yaml", firstCatalog)
		second := writeFile(dir, "second.yaml", secondCatalog)
		l := catalog.NewLoader(catalog.WithIDGenerator(func() string { return "generated" }))

		Convey("When loading both in order", func() {
			res, err := l.Load(context.Background(), first, second)

			Convey("Then the first occurrence of an id wins", func() {
				So(err, ShouldBeNil)
				So(len(res.Events), ShouldEqual, 3)
				So(res.Duplicates, ShouldEqual, 1)
				So(res.Events[0].Title, ShouldEqual, "Jazz Night")
				So(res.Events[2].ID, ShouldEqual, "b")
				So(res.Sources, ShouldResemble, []string{first, second})
			})

			Convey("Then fields are decoded and normalized", func() {
				jazz := res.Events[0]
				So(jazz.Category, ShouldEqual, model.CategoryMusic)
				So(jazz.PriceRange, ShouldEqual, model.PriceHigh)
				So(jazz.AgeGroups, ShouldResemble, []model.AgeGroup{model.AgeAdults})
				So(jazz.Source, ShouldEqual, model.SourceEventbrite)
				So(jazz.Time, ShouldEqual, "8:00 PM")
			})

			Convey("Then entries without an id get a generated one", func() {
				So(res.Events[1].ID, ShouldEqual, "generated")
			})
		})

		Convey("When an entry is invalid", func() {
			bad := writeFile(dir, "bad.yaml", `
events:
  - id: "x"
    title: Mystery
    date: "next saturday"
    category: music
    price_range: free
`)
			_, err := l.Load(context.Background(), first, bad)

			Convey("Then the load fails with the entry position", func() {
				So(errors.Is(err, catalog.ErrInvalidEvent), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "events[0]")
			})
		})

		Convey("When a file is missing", func() {
			_, err := l.Load(context.Background(), filepath.Join(dir, "nope.yaml"))

			Convey("Then a load error is returned", func() {
				So(errors.Is(err, catalog.ErrLoadCatalog), ShouldBeTrue)
			})
		})

		Convey("When the context is already cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err := l.Load(ctx, first)

			Convey("Then loading stops", func() {
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
			})
		})
	})
}
