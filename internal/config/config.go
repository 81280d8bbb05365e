// Package config handles world configuration loading and management.
package config

// Config holds all settings for the world core and demo binary.
type Config struct {
	World   WorldConfig   `yaml:"world"`
	Noise   NoiseConfig   `yaml:"noise"`
	Logging LoggingConfig `yaml:"logging"`
}

// WorldConfig holds chunk streaming settings.
type WorldConfig struct {
	RenderDistance int   `yaml:"render_distance"` // viewport radius, in chunks
	Seed           int64 `yaml:"seed"`
}

// NoiseConfig holds terrain shape settings.
type NoiseConfig struct {
	Scale       float64 `yaml:"scale"`
	BaseHeight  int     `yaml:"base_height"`
	Amplitude   float64 `yaml:"amplitude"`
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"`
	Lacunarity  float64 `yaml:"lacunarity"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		World: WorldConfig{
			RenderDistance: 8,
			Seed:           1337,
		},
		Noise: NoiseConfig{
			Scale:       1.0 / 64.0,
			BaseHeight:  32,
			Amplitude:   32,
			Octaves:     4,
			Persistence: 0.5,
			Lacunarity:  2.0,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// ClampRenderDistance bounds the render distance to a usable range.
func ClampRenderDistance(distance int) int {
	if distance < 2 {
		return 2
	}
	if distance > 50 {
		return 50
	}
	return distance
}
