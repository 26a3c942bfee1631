// Package config provides configuration loading and access for the engine.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all engine configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	World     WorldConfig     `yaml:"world"`
	Pool      PoolConfig      `yaml:"pool"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Wind      WindConfig      `yaml:"wind"`
	Weather   WeatherConfig   `yaml:"weather"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings for the viewer.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds the boundary model.
type WorldConfig struct {
	Radius        float64 `yaml:"radius"`         // sphere radius (sphere mode)
	CollisionMode string  `yaml:"collision_mode"` // "sphere" or "flat"
}

// PoolConfig holds particle pool sizing.
type PoolConfig struct {
	Capacity int `yaml:"capacity"`
}

// PhysicsConfig holds integration and collision constants.
type PhysicsConfig struct {
	DT                float64 `yaml:"dt"`
	Gravity           float64 `yaml:"gravity"`
	BuoyantDrag       float64 `yaml:"buoyant_drag"`
	RisingBias        float64 `yaml:"rising_bias"`
	WindCoupling      float64 `yaml:"wind_coupling"`
	WindGravityFactor float64 `yaml:"wind_gravity_factor"`
	HorizontalDrag    float64 `yaml:"horizontal_drag"`
	SizeGrowBuoyant   float64 `yaml:"size_grow_buoyant"`
	SizeShrink        float64 `yaml:"size_shrink"`
	ColorFade         float64 `yaml:"color_fade"`
	ImpactThreshold   float64 `yaml:"impact_threshold"`
	ReflectFactor     float64 `yaml:"reflect_factor"`
	BounceDamping     float64 `yaml:"bounce_damping"`
	GroundBounceMin   float64 `yaml:"ground_bounce_min"`
	GroundRestitution float64 `yaml:"ground_restitution"`
	MinLifetime       float64 `yaml:"min_lifetime"`
	MaxRotationSpeed  float64 `yaml:"max_rotation_speed"`
}

// WindConfig holds the initial wind field state.
type WindConfig struct {
	Direction     []float64 `yaml:"direction"` // 3 components, normalized on use
	Strength      float64   `yaml:"strength"`
	GustAmplitude float64   `yaml:"gust_amplitude"`
	GustFrequency float64   `yaml:"gust_frequency"`
}

// WeatherConfig holds the built-in weather emitter parameters.
type WeatherConfig struct {
	RainRate    float64 `yaml:"rain_rate"`
	SnowRate    float64 `yaml:"snow_rate"`
	ShellHeight float64 `yaml:"shell_height"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT32      float32 // Physics.DT as float32
	Radius32  float32 // World.Radius as float32
	ScreenW32 float32
	ScreenH32 float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()
	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DT32 = float32(c.Physics.DT)
	c.Derived.Radius32 = float32(c.World.Radius)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	if len(c.Wind.Direction) != 3 {
		c.Wind.Direction = []float64{1, 0, 0}
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
