package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string   `yaml:"http-port" env:"HTTP_PORT" env-default:"8000"`
	Redis    Redis    `yaml:"redis"`
	Session  Session  `yaml:"session"`
	Opponent Opponent `yaml:"opponent"`
}

type Redis struct {
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type Session struct {
	CookieName string        `yaml:"cookie-name" env:"SESSION_COOKIE_NAME" env-default:"game_session"`
	TTL        time.Duration `yaml:"ttl" env:"SESSION_TTL" env-default:"24h"`
	Secure     bool          `yaml:"secure" env:"SESSION_SECURE" env-default:"false"`
}

type Opponent struct {
	ThinkingDelay time.Duration `yaml:"thinking-delay" env:"OPPONENT_THINKING_DELAY" env-default:"500ms"`
	// Seed for the opponent's random fallback; 0 seeds from the clock.
	Seed int64 `yaml:"seed" env:"OPPONENT_SEED" env-default:"0"`
}

// MustLoad - load all configurations in config.yml file, overridden by environment variables.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
