package forecast_test

import (
	"testing"

	"github.com/okian/weekender/internal/domain/forecast"
	"github.com/okian/weekender/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAdvice(t *testing.T) {
	Convey("Given weather snapshots", t, func() {
		cases := []struct {
			name string
			in   *model.WeatherData
			want string
		}{
			{"missing", nil, forecast.AdviceUnavailable},
			{"wet", &model.WeatherData{Condition: model.ConditionSunny, Temperature: 80, Precipitation: 60}, forecast.AdviceIndoor},
			{"hot sun", &model.WeatherData{Condition: model.ConditionSunny, Temperature: 78}, forecast.AdviceOutdoor},
			{"cold sun", &model.WeatherData{Condition: model.ConditionSunny, Temperature: 55}, forecast.AdviceJacket},
			{"mild sun", &model.WeatherData{Condition: model.ConditionSunny, Temperature: 68}, forecast.AdviceDefault},
			{"warm clouds", &model.WeatherData{Condition: model.ConditionCloudy, Temperature: 70}, forecast.AdviceWalk},
			{"snow", &model.WeatherData{Condition: model.ConditionSnowy, Temperature: 30}, forecast.AdviceDefault},
		}

		for _, tc := range cases {
			Convey("When the weather is "+tc.name, func() {
				So(forecast.Advice(tc.in), ShouldEqual, tc.want)
			})
		}
	})
}

func TestTemperatureBand(t *testing.T) {
	Convey("Given temperatures", t, func() {
		So(forecast.TemperatureBand(85), ShouldEqual, forecast.BandHot)
		So(forecast.TemperatureBand(70), ShouldEqual, forecast.BandWarm)
		So(forecast.TemperatureBand(65), ShouldEqual, forecast.BandMild)
		So(forecast.TemperatureBand(50), ShouldEqual, forecast.BandCool)
		So(forecast.TemperatureBand(20), ShouldEqual, forecast.BandCold)
	})
}

func TestSummarize(t *testing.T) {
	Convey("Given a summary request", t, func() {
		Convey("When weather is present", func() {
			s := forecast.Summarize(&model.WeatherData{Condition: model.ConditionRainy, Temperature: 62})
			So(s.Icon, ShouldEqual, forecast.Icon(model.ConditionRainy))
			So(s.Band, ShouldEqual, forecast.BandMild)
		})

		Convey("When weather is missing", func() {
			s := forecast.Summarize(nil)
			So(s.Weather, ShouldBeNil)
			So(s.Icon, ShouldBeEmpty)
			So(s.Advice, ShouldEqual, forecast.AdviceUnavailable)
		})

		Convey("When the condition is unknown", func() {
			So(forecast.Icon("hail"), ShouldEqual, "🌤️")
		})
	})
}
