package config

import (
	"os"
	"time"

	"github.com/kiryu-dev/tic-tac-toe-ai/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidDefaultMode = errors.New("invalid default game mode")
	ErrNegativeAIDelay    = errors.New("ai delay must not be negative")
	ErrInvalidLogLevel    = errors.New("invalid log level")
)

const (
	defaultAddr     = ":8080"
	defaultAIDelay  = 500 * time.Millisecond
	defaultLogLevel = "info"
)

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type GameConfig struct {
	DefaultMode domain.Mode   `yaml:"default_mode"`
	AIDelay     time.Duration `yaml:"ai_delay"`
}

type LoggerConfig struct {
	Level string `yaml:"level"`
}

type Config struct {
	Server ServerConfig `yaml:"server"`
	Game   GameConfig   `yaml:"game"`
	Logger LoggerConfig `yaml:"logger"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{Addr: defaultAddr},
		Game: GameConfig{
			DefaultMode: domain.PlayerVsPlayer,
			AIDelay:     defaultAIDelay,
		},
		Logger: LoggerConfig{Level: defaultLogLevel},
	}
}

// New reads the YAML file at cfgPath on top of Default.
func New(cfgPath string) (Config, error) {
	file, err := os.Open(cfgPath)
	if err != nil {
		return Config{}, errors.WithMessage(err, "open config file")
	}
	defer func() {
		_ = file.Close()
	}()
	cfg := Default()
	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
		return Config{}, errors.WithMessage(err, "decode yaml config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if !c.Game.DefaultMode.Valid() {
		return errors.WithMessagef(ErrInvalidDefaultMode, "mode '%s'", c.Game.DefaultMode)
	}
	if c.Game.AIDelay < 0 {
		return errors.WithMessagef(ErrNegativeAIDelay, "got %s", c.Game.AIDelay)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

func (c Config) LogLevel() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(c.Logger.Level)
	if err != nil {
		return zapcore.InfoLevel, errors.WithMessagef(ErrInvalidLogLevel, "level '%s'", c.Logger.Level)
	}
	return level, nil
}
