package hangulcv

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/ieee0824/hangul-cv/lyric"
	"github.com/ieee0824/hangul-cv/timing"
)

// Config is the file form of the Phonemizer settings.
type Config struct {
	Timing TimingConfig `toml:"timing"`
	Lyric  LyricConfig  `toml:"lyric"`
}

// TimingConfig configures phoneme placement.
type TimingConfig struct {
	ConsonantTicks int    `toml:"consonant-ticks"`
	CodaTicks      int    `toml:"coda-ticks"`
	CodaPolicy     string `toml:"coda-policy"` // "fixed" or "near-end"
}

// LyricConfig configures lyric handling.
type LyricConfig struct {
	HintSpacing int    `toml:"hint-spacing"`
	Literals    string `toml:"literals"` // "keep" or "drop"
}

// DefaultConfig returns the settings New uses without options.
func DefaultConfig() Config {
	t := timing.DefaultConfig()
	return Config{
		Timing: TimingConfig{
			ConsonantTicks: t.ConsonantTicks,
			CodaTicks:      t.CodaTicks,
			CodaPolicy:     t.Coda.String(),
		},
		Lyric: LyricConfig{
			HintSpacing: DefaultHintSpacing,
			Literals:    lyric.LiteralKeep.String(),
		},
	}
}

// ParseConfig decodes TOML settings. Omitted fields keep their defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads TOML settings from path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if _, err := timing.ParseCodaPolicy(c.Timing.CodaPolicy); err != nil {
		return err
	}
	if _, err := lyric.ParseLiteralPolicy(c.Lyric.Literals); err != nil {
		return err
	}
	if c.Timing.ConsonantTicks < 0 || c.Timing.CodaTicks < 0 || c.Lyric.HintSpacing < 0 {
		return fmt.Errorf("tick values must not be negative")
	}
	return nil
}

// WithConfig applies file settings. Unknown policy names fall back to the
// defaults; ParseConfig rejects them before they get here.
func WithConfig(cfg Config) Option {
	return func(p *Phonemizer) {
		coda, _ := timing.ParseCodaPolicy(cfg.Timing.CodaPolicy)
		literals, _ := lyric.ParseLiteralPolicy(cfg.Lyric.Literals)
		p.Timing = timing.Config{
			ConsonantTicks: cfg.Timing.ConsonantTicks,
			CodaTicks:      cfg.Timing.CodaTicks,
			Coda:           coda,
		}
		p.Literals = literals
		p.HintSpacing = cfg.Lyric.HintSpacing
	}
}
