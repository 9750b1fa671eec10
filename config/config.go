package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/pkg/errors"
)

const envPrefix = "FPLOT_"

type Configuration struct {
	Domain DomainConfig `koanf:"domain"`
	Figure FigureConfig `koanf:"figure"`
	Render RenderConfig `koanf:"render"`
}

// DomainConfig is the half-open sampling range [XMin, XMax) stepped by Step.
type DomainConfig struct {
	XMin float64 `koanf:"x_min"`
	XMax float64 `koanf:"x_max"`
	Step float64 `koanf:"step"`
}

type FigureConfig struct {
	Title  string `koanf:"title"`
	XLabel string `koanf:"x_label"`
	YLabel string `koanf:"y_label"`
	Legend bool   `koanf:"legend"`
	Width  int    `koanf:"width"`
	Height int    `koanf:"height"`
}

type RenderConfig struct {
	SkipInvalid bool `koanf:"skip_invalid"`
}

var Config *Configuration

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"domain.x_min":        -20.0,
		"domain.x_max":        20.0,
		"domain.step":         0.01,
		"figure.title":        "Function plots",
		"figure.x_label":      "x",
		"figure.y_label":      "y",
		"figure.legend":       true,
		"figure.width":        960,
		"figure.height":       720,
		"render.skip_invalid": false,
	}
}

// Init loads defaults, then the yaml file at path (when it exists), then
// FPLOT_ environment variables, and stores the result in Config.
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}

	Config = cfg
	return nil
}

// Load builds a Configuration without touching the package globals.
func Load(path string) (*Configuration, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, "load defaults")
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, errors.Wrapf(err, "load config %q", path)
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "stat config %q", path)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, "load environment")
	}

	cfg := new(Configuration)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FPLOT_DOMAIN__X_MIN -> domain.x_min
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

func (c *Configuration) Validate() error {
	switch {
	case c.Domain.Step <= 0:
		return errors.Errorf("domain.step must be positive, got %v", c.Domain.Step)
	case c.Domain.XMax <= c.Domain.XMin:
		return errors.Errorf("domain.x_max (%v) must be greater than domain.x_min (%v)", c.Domain.XMax, c.Domain.XMin)
	case c.Figure.Width <= 0 || c.Figure.Height <= 0:
		return errors.Errorf("figure size must be positive, got %dx%d", c.Figure.Width, c.Figure.Height)
	}

	return nil
}
