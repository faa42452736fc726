// Package catalog loads the event catalog from YAML files or the built-in
// sample. Catalogs are read once; the result is an immutable slice.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/weekender/internal/domain/dedupe"
	"github.com/okian/weekender/internal/domain/model"
	"github.com/okian/weekender/internal/validation"
	"github.com/okian/weekender/pkg/logger"
)

// Result is a loaded catalog.
type Result struct {
	Events []model.Event
	// Duplicates counts entries dropped because their ID was already taken.
	Duplicates int
	// Sources lists the files read, or "sample" for the built-in catalog.
	Sources []string
}

// Loader reads catalog files.
type Loader struct {
	log   logger.Logger
	newID func() string
}

// NewLoader creates a Loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		log:   logger.Discard(),
		newID: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// document is the YAML layout of a catalog file.
type document struct {
	Events []model.Event `koanf:"events"`
}

// Load merges the given files in order. An entry whose ID was already seen
// is dropped, so the first file wins. With no paths the built-in sample is
// returned. Any invalid entry fails the whole load.
func (l *Loader) Load(ctx context.Context, paths ...string) (Result, error) {
	if len(paths) == 0 {
		events := Sample()
		l.log.Info(ctx, "using sample catalog", logger.Int("events", len(events)))
		return Result{Events: events, Sources: []string{"sample"}}, nil
	}

	seen := dedupe.NewInMemoryDeduper()
	res := Result{Events: []model.Event{}, Sources: make([]string, 0, len(paths))}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		events, err := l.LoadFile(ctx, path)
		if err != nil {
			return Result{}, err
		}

		kept := 0
		for _, e := range events {
			if seen.SeenAndRecord(ctx, e.ID) {
				res.Duplicates++
				l.log.Warn(ctx, "dropping duplicate event",
					logger.String("id", e.ID),
					logger.String("file", path))
				continue
			}
			res.Events = append(res.Events, e)
			kept++
		}
		res.Sources = append(res.Sources, path)
		l.log.Info(ctx, "catalog file loaded",
			logger.String("file", path),
			logger.Int("events", kept))
	}

	return res, nil
}

// LoadFile parses and validates one catalog file. Entries without an ID get
// a generated one.
func (l *Loader) LoadFile(_ context.Context, path string) ([]model.Event, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadCatalog, path, err)
	}

	var doc document
	if err := k.UnmarshalWithConf("", &doc, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadCatalog, path, err)
	}

	out := make([]model.Event, 0, len(doc.Events))
	for i, e := range doc.Events {
		e = normalize(e)
		if e.ID == "" {
			e.ID = l.newID()
		}
		if err := validation.Struct(e); err != nil {
			return nil, fmt.Errorf("%w: %s: events[%d]: %w", ErrInvalidEvent, path, i, err)
		}
		out = append(out, e)
	}
	return out, nil
}

// normalize trims identifiers and lower-cases the enum fields.
func normalize(e model.Event) model.Event {
	e.ID = strings.TrimSpace(e.ID)
	e.Title = strings.TrimSpace(e.Title)
	e.Date = strings.TrimSpace(e.Date)
	e.Category = model.Category(strings.ToLower(strings.TrimSpace(string(e.Category))))
	e.PriceRange = model.PriceRange(strings.ToLower(strings.TrimSpace(string(e.PriceRange))))
	e.Source = model.Source(strings.ToLower(strings.TrimSpace(string(e.Source))))
	if e.AgeGroups == nil {
		e.AgeGroups = []model.AgeGroup{}
	}
	for i, g := range e.AgeGroups {
		e.AgeGroups[i] = model.AgeGroup(strings.ToLower(strings.TrimSpace(string(g))))
	}
	return e
}
