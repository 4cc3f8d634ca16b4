package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Sound   SoundConfig   `yaml:"sound"`
	Logging LoggingConfig `yaml:"logging"`
}

// GameConfig holds game-rule configuration
type GameConfig struct {
	TurnSeconds int  `yaml:"turn_seconds"`       // thinking time per turn
	MaxRounds   int  `yaml:"max_rounds"`         // 0 = unlimited
	ChainRule   bool `yaml:"chain_rule"`         // shiritori-style chaining
	PassLimit   int  `yaml:"pass_limit"`         // passes per player
	WrongLimit  int  `yaml:"wrong_answer_limit"` // wrong answers before elimination
}

// SoundConfig maps game moments to sound identifiers. The core only reports
// these IDs; playback belongs to the presentation layer.
type SoundConfig struct {
	Correct   string         `yaml:"correct"`
	Wrong     string         `yaml:"wrong"`
	Timeout   string         `yaml:"timeout"`
	Countdown map[int]string `yaml:"countdown"` // remaining seconds -> sound id
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Game: GameConfig{
			TurnSeconds: getEnvInt("YAMANOTE_TURN_SECONDS", 60),
			MaxRounds:   getEnvInt("YAMANOTE_MAX_ROUNDS", 0),
			ChainRule:   getEnvBool("YAMANOTE_CHAIN_RULE", false),
			PassLimit:   getEnvInt("YAMANOTE_PASS_LIMIT", 0),
			WrongLimit:  getEnvInt("YAMANOTE_WRONG_ANSWER_LIMIT", 5),
		},
		Sound: SoundConfig{
			Correct: getEnv("YAMANOTE_SOUND_CORRECT", "correct"),
			Wrong:   getEnv("YAMANOTE_SOUND_WRONG", "wrong"),
			Timeout: getEnv("YAMANOTE_SOUND_TIMEOUT", "timeout"),
			Countdown: map[int]string{
				10: "beep10",
				5:  "beep5",
				3:  "beep3",
				2:  "beep2",
				1:  "beep1",
			},
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

// ApplyFile overlays c with values from a YAML file.
func (c *Config) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return nil
}

// Validate checks the configuration for values the game cannot run with.
func (c *Config) Validate() error {
	if c.Game.TurnSeconds < 1 {
		return fmt.Errorf("turn_seconds must be positive, got %d", c.Game.TurnSeconds)
	}
	if c.Game.MaxRounds < 0 {
		return fmt.Errorf("max_rounds must not be negative, got %d", c.Game.MaxRounds)
	}
	if c.Game.WrongLimit < 0 {
		return fmt.Errorf("wrong_answer_limit must not be negative, got %d", c.Game.WrongLimit)
	}
	return nil
}

// getEnv returns an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt returns an environment variable as an integer or a default value
func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool returns an environment variable as a bool or a default value
func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
