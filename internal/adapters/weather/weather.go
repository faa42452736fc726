// Package weather provides weather snapshots from the built-in sample or a
// YAML file. Real forecast services are out of scope.
package weather

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/weekender/internal/domain/model"
	"github.com/okian/weekender/internal/validation"
)

// Sentinel error kinds for this package.
var (
	ErrLoadWeather    = errors.New("load weather failed")
	ErrInvalidWeather = errors.New("invalid weather")
)

// Provider returns the current weather snapshot. A nil snapshot with a nil
// error means no weather is available.
type Provider interface {
	Current(ctx context.Context) (*model.WeatherData, error)
}

// Static serves a fixed snapshot.
type Static struct {
	data *model.WeatherData
}

// NewStatic returns a provider for w. A nil w yields no weather.
func NewStatic(w *model.WeatherData) *Static {
	return &Static{data: Clone(w)}
}

// Current returns a copy of the snapshot.
func (s *Static) Current(ctx context.Context) (*model.WeatherData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Clone(s.data), nil
}

// File reads the snapshot from a YAML file on every call.
type File struct {
	path string
}

// NewFile returns a provider reading path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Current parses and validates the file.
func (f *File) Current(ctx context.Context) (*model.WeatherData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(f.path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadWeather, f.path, err)
	}

	var w model.WeatherData
	if err := k.UnmarshalWithConf("", &w, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadWeather, f.path, err)
	}
	w = Normalize(w)
	if err := validation.Struct(w); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidWeather, f.path, err)
	}
	return &w, nil
}

// New picks the file provider when path is set and the sample otherwise.
func New(path string) Provider {
	if path == "" {
		return NewStatic(Sample())
	}
	return NewFile(path)
}

// Sample returns the built-in snapshot: a mild sunny day.
func Sample() *model.WeatherData {
	return &model.WeatherData{
		Temperature:   68,
		Condition:     model.ConditionSunny,
		Humidity:      45,
		WindSpeed:     8,
		Precipitation: 0,
		Forecast: []model.WeatherForecast{
			{Date: "2025-08-02", High: 72, Low: 58, Condition: model.ConditionSunny, Precipitation: 0},
			{Date: "2025-08-03", High: 69, Low: 55, Condition: model.ConditionCloudy, Precipitation: 20},
		},
	}
}

// Normalize lower-cases conditions and replaces a nil forecast.
func Normalize(w model.WeatherData) model.WeatherData {
	w.Condition = model.Condition(strings.ToLower(strings.TrimSpace(string(w.Condition))))
	forecast := make([]model.WeatherForecast, len(w.Forecast))
	for i, d := range w.Forecast {
		d.Condition = model.Condition(strings.ToLower(strings.TrimSpace(string(d.Condition))))
		forecast[i] = d
	}
	w.Forecast = forecast
	return w
}

// Clone deep-copies a snapshot. Clone(nil) is nil.
func Clone(w *model.WeatherData) *model.WeatherData {
	if w == nil {
		return nil
	}
	out := *w
	out.Forecast = append([]model.WeatherForecast(nil), w.Forecast...)
	if out.Forecast == nil {
		out.Forecast = []model.WeatherForecast{}
	}
	return &out
}
