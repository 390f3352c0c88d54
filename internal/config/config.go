package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/AvengeMedia/dankmotion/internal/motion"
	"github.com/AvengeMedia/dankmotion/internal/nav"
	"github.com/AvengeMedia/dankmotion/internal/screens"
	"github.com/AvengeMedia/dankmotion/internal/theme"
)

const (
	EnvPrefix     = "DANKMOTION"
	EnvConfigPath = "DANKMOTION_CONFIG"
)

type Config struct {
	Animation AnimationConfig `mapstructure:"animation" yaml:"animation"`
	UI        UIConfig        `mapstructure:"ui" yaml:"ui"`
	Log       LogConfig       `mapstructure:"log" yaml:"log"`
}

type AnimationConfig struct {
	FPS                int           `mapstructure:"fps" yaml:"fps"`
	TransitionDuration time.Duration `mapstructure:"transition_duration" yaml:"transition_duration"`
	TransitionDistance float64       `mapstructure:"transition_distance" yaml:"transition_distance"`
	ScaleDuration      time.Duration `mapstructure:"scale_duration" yaml:"scale_duration"`
	InfiniteDuration   time.Duration `mapstructure:"infinite_duration" yaml:"infinite_duration"`
	FadeInDuration     time.Duration `mapstructure:"fade_in_duration" yaml:"fade_in_duration"`
	FadeOutDuration    time.Duration `mapstructure:"fade_out_duration" yaml:"fade_out_duration"`
}

type UIConfig struct {
	Accent      string `mapstructure:"accent" yaml:"accent"`
	Light       bool   `mapstructure:"light" yaml:"light"`
	StartScreen string `mapstructure:"start_screen" yaml:"start_screen"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

// Loader reads configuration from a filesystem, so tests can run against
// an in-memory one. lookEnv resolves the config path and state directory;
// DANKMOTION_* key overrides come from the process environment through viper.
type Loader struct {
	fs      afero.Fs
	home    string
	lookEnv func(string) (string, bool)
}

func NewLoader() *Loader {
	home, _ := os.UserHomeDir()
	return &Loader{
		fs:      afero.NewOsFs(),
		home:    home,
		lookEnv: os.LookupEnv,
	}
}

func NewLoaderWithFs(fs afero.Fs, home string, lookEnv func(string) (string, bool)) *Loader {
	if lookEnv == nil {
		lookEnv = func(string) (string, bool) { return "", false }
	}
	return &Loader{fs: fs, home: home, lookEnv: lookEnv}
}

// Load is shorthand for NewLoader().Load(path).
func Load(path string) (Config, error) {
	return NewLoader().Load(path)
}

func (l *Loader) DefaultPath() string {
	return filepath.Join(l.home, ".config", "dankmotion", "config.toml")
}

func (l *Loader) defaultLogFile() string {
	if state, ok := l.lookEnv("XDG_STATE_HOME"); ok && state != "" {
		return filepath.Join(state, "dankmotion", "dankmotion.log")
	}
	return filepath.Join(l.home, ".local", "state", "dankmotion", "dankmotion.log")
}

func (l *Loader) setDefaults(v *viper.Viper) {
	v.SetDefault("animation.fps", motion.DefaultFPS)
	v.SetDefault("animation.transition_duration", screens.TransitionDuration)
	v.SetDefault("animation.transition_distance", screens.DefaultLaunchDistance)
	v.SetDefault("animation.scale_duration", screens.ScaleDuration)
	v.SetDefault("animation.infinite_duration", screens.InfiniteLeg)
	v.SetDefault("animation.fade_in_duration", screens.FadeDuration)
	v.SetDefault("animation.fade_out_duration", screens.FadeDuration)
	v.SetDefault("ui.accent", theme.DefaultAccent)
	v.SetDefault("ui.light", false)
	v.SetDefault("ui.start_screen", nav.Main.String())
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", l.defaultLogFile())
}

// Load merges defaults, the TOML file and DANKMOTION_* environment
// variables. An explicit path must exist; the default path may be missing.
func (l *Loader) Load(path string) (Config, error) {
	v := viper.New()
	v.SetFs(l.fs)
	l.setDefaults(v)

	v.SetConfigType("toml")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	explicit := path != ""
	if !explicit {
		if envPath, ok := l.lookEnv(EnvConfigPath); ok && envPath != "" {
			path = envPath
			explicit = true
		} else {
			path = l.DefaultPath()
		}
	}
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		exists, _ := afero.Exists(l.fs, path)
		if explicit || exists {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects values no screen can work with.
func (c Config) Validate() error {
	if c.Animation.FPS <= 0 || c.Animation.FPS > 240 {
		return fmt.Errorf("animation.fps must be between 1 and 240, got %d", c.Animation.FPS)
	}
	durations := map[string]time.Duration{
		"animation.transition_duration": c.Animation.TransitionDuration,
		"animation.scale_duration":      c.Animation.ScaleDuration,
		"animation.infinite_duration":   c.Animation.InfiniteDuration,
		"animation.fade_in_duration":    c.Animation.FadeInDuration,
		"animation.fade_out_duration":   c.Animation.FadeOutDuration,
	}
	for key, d := range durations {
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", key, d)
		}
	}
	if c.Animation.TransitionDistance <= 0 {
		return fmt.Errorf("animation.transition_distance must be positive, got %v", c.Animation.TransitionDistance)
	}
	if _, err := theme.NormalizeHex(c.UI.Accent); err != nil {
		return fmt.Errorf("ui.accent: %w", err)
	}
	if _, err := nav.ParseScreenID(c.UI.StartScreen); err != nil {
		return fmt.Errorf("ui.start_screen: %w", err)
	}
	return nil
}

// ScreenOptions converts the animation section for the state machines.
func (c Config) ScreenOptions() screens.Options {
	opts := screens.DefaultOptions()
	opts.TransitionDuration = c.Animation.TransitionDuration
	opts.LaunchDistance = c.Animation.TransitionDistance
	opts.ScaleDuration = c.Animation.ScaleDuration
	opts.InfiniteLeg = c.Animation.InfiniteDuration
	opts.EnterDuration = c.Animation.FadeInDuration
	opts.ExitDuration = c.Animation.FadeOutDuration
	return opts
}

func (c Config) StartScreen() nav.ScreenID {
	id, err := nav.ParseScreenID(c.UI.StartScreen)
	if err != nil {
		return nav.Main
	}
	return id
}
