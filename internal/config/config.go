package config

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/redjax/sysfacts/internal/utils/path"
)

// EnvPrefix marks environment variables read as configuration.
const EnvPrefix = "SYSFACTS_"

// WiFiSettings overrides the interface names the Wi-Fi heuristics use.
type WiFiSettings struct {
	Interface    string `koanf:"interface"`
	AuxInterface string `koanf:"aux_interface"`
	TetherMatch  string `koanf:"tether_match"`
}

// ReportSettings tunes report rendering.
type ReportSettings struct {
	// Values wider than this are truncated in text output. 0 disables.
	MaxWidth int  `koanf:"max_width"`
	Spinner  bool `koanf:"spinner"`
}

// Settings is the merged configuration for one run.
type Settings struct {
	Platform string         `koanf:"platform"`
	Format   string         `koanf:"format"`
	Sections []string       `koanf:"section"`
	Debug    bool           `koanf:"debug"`
	WiFi     WiFiSettings   `koanf:"wifi"`
	Report   ReportSettings `koanf:"report"`
}

// Defaults returns the settings used when nothing else is configured.
func Defaults() Settings {
	return Settings{
		Format: "text",
		Report: ReportSettings{MaxWidth: 80, Spinner: true},
	}
}

// Load merges the config file, SYSFACTS_* environment variables and command
// line flags, in increasing order of precedence.
func Load(flagSet *pflag.FlagSet, configFile string) (*Settings, error) {
	k := koanf.New(".")

	if configFile != "" {
		expanded, err := path.ExpandPath(configFile)
		if err != nil {
			return nil, err
		}
		configFile = expanded

		parser, err := parserForFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("unsupported config file format: %w", err)
		}
		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// SYSFACTS_WIFI_AUX_INTERFACE -> wifi.aux_interface. Only the first
	// underscore separates levels so keys can keep theirs.
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("error loading environment: %w", err)
	}

	if flagSet != nil {
		if err := k.Load(posflag.Provider(flagSet, ".", k), nil); err != nil {
			return nil, fmt.Errorf("error loading flags: %w", err)
		}
	}

	s := Defaults()
	if err := k.Unmarshal("", &s); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	s.Format = strings.ToLower(strings.TrimSpace(s.Format))

	return &s, nil
}

func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
}

func parserForFile(name string) (koanf.Parser, error) {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".env":
		return dotenv.Parser(), nil
	default:
		return nil, fmt.Errorf("unknown file extension: %s", ext)
	}
}

type settingsKey struct{}

// WithSettings stores s in ctx for subcommands to pick up.
func WithSettings(ctx context.Context, s *Settings) context.Context {
	return context.WithValue(ctx, settingsKey{}, s)
}

// FromContext returns the settings stored by WithSettings, or the defaults.
func FromContext(ctx context.Context) *Settings {
	if ctx != nil {
		if s, ok := ctx.Value(settingsKey{}).(*Settings); ok && s != nil {
			return s
		}
	}
	d := Defaults()
	return &d
}
