package slug

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/slugkit/pkg/sanitizer"
)

// Markup stripper names accepted by Config.MarkupStripper.
const (
	MarkupStripperNaive = "naive"
	MarkupStripperHTML  = "html"
)

// Config holds process-wide slug settings loaded once at startup.
// Embed it in the application config for env parsing with caarlos0/env.
type Config struct {
	DefaultSeparator   string `env:"SLUG_DEFAULT_SEPARATOR" envDefault:"-"`
	DefaultColumn      string `env:"SLUG_DEFAULT_COLUMN" envDefault:"slug"`
	DefaultSourceField string `env:"SLUG_DEFAULT_SOURCE_FIELD" envDefault:"name"`
	FallbackPrefix     string `env:"SLUG_FALLBACK_PREFIX" envDefault:"item"`

	// YAML file with extra single-character transliterations.
	CharacterMapFile string `env:"SLUG_CHARACTER_MAP_FILE"`

	// "naive" strips <...> sequences, "html" runs a full HTML sanitizer.
	MarkupStripper string `env:"SLUG_MARKUP_STRIPPER" envDefault:"naive"`

	MaxAttempts    int `env:"SLUG_MAX_ATTEMPTS" envDefault:"100"`
	RandomAttempts int `env:"SLUG_RANDOM_ATTEMPTS" envDefault:"3"`

	RegenerateOnUpdate bool `env:"SLUG_REGENERATE_ON_UPDATE" envDefault:"true"`
	PreserveOriginal   bool `env:"SLUG_PRESERVE_ORIGINAL" envDefault:"true"`

	// Only consulted when PreserveOriginal is false.
	UseIntl bool `env:"SLUG_USE_INTL" envDefault:"true"`
}

// Options converts the config into Normalizer options.
// The character map file is read here; a missing or invalid file is
// returned as an error rather than silently ignored.
func (c Config) Options() ([]Option, error) {
	opts := []Option{
		Separator(c.DefaultSeparator),
		PreserveOriginal(c.PreserveOriginal),
		UseIntl(c.UseIntl),
		FallbackPrefix(c.FallbackPrefix),
	}

	switch c.MarkupStripper {
	case "", MarkupStripperNaive:
	case MarkupStripperHTML:
		opts = append(opts, WithMarkupStripper(sanitizer.StripTags))
	default:
		return nil, fmt.Errorf("slug: unknown markup stripper %q", c.MarkupStripper)
	}

	if c.CharacterMapFile != "" {
		f, err := os.Open(c.CharacterMapFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		m, err := LoadCharacterMap(f)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithCharacterMap(m))
	}

	return opts, nil
}

// Defaults converts the config into hook defaults.
func (c Config) Defaults() Defaults {
	return Defaults{
		SourceField:        c.DefaultSourceField,
		Separator:          c.DefaultSeparator,
		Column:             c.DefaultColumn,
		RegenerateOnUpdate: c.RegenerateOnUpdate,
	}
}

// ResolverOptions converts the config into resolver options.
func (c Config) ResolverOptions(log *slog.Logger) []ResolverOption {
	return []ResolverOption{
		WithMaxAttempts(c.MaxAttempts),
		WithRandomAttempts(c.RandomAttempts),
		WithResolverLogger(log),
	}
}
