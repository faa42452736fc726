package planner

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/weekender/internal/domain/model"
	"github.com/okian/weekender/internal/validation"
)

// LoadProfile reads a YAML profile. Keys missing from the file keep the
// default profile's values. An empty path returns the default profile.
func LoadProfile(path string) (model.UserProfile, error) {
	p := model.DefaultProfile()
	if path == "" {
		return p, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return model.UserProfile{}, fmt.Errorf("%w: %s: %w", ErrLoadProfile, path, err)
	}
	if err := k.UnmarshalWithConf("", &p, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return model.UserProfile{}, fmt.Errorf("%w: %s: %w", ErrLoadProfile, path, err)
	}

	p = p.Normalize()
	if err := validation.Struct(p); err != nil {
		return model.UserProfile{}, fmt.Errorf("%w: %s: %w", ErrInvalidProfile, path, err)
	}
	return p, nil
}
