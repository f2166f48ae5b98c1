package data

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	logger "github.com/sirupsen/logrus"
)

type Config struct {
	Port      int
	Mode      string
	DataDir   string
	LogLevel  string
	LogFormat string
}

const (
	defaultPort      = 8080
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
)

// Load reads an optional .env file and then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, errors.Wrap(err, "load .env")
	}

	cfg := Config{
		Mode:      valueOrDefault("CARDKIT_MODE", RunModeDev),
		DataDir:   os.Getenv("CARDKIT_DATA_DIR"),
		LogLevel:  valueOrDefault("LOG_LEVEL", defaultLogLevel),
		LogFormat: valueOrDefault("LOG_FORMAT", defaultLogFormat),
	}

	var err error
	if cfg.Port, err = parsePort("CARDKIT_PORT", defaultPort); err != nil {
		return Config{}, err
	}
	switch cfg.Mode {
	case RunModeDev, RunModeTest, RunModeRelease:
	default:
		return Config{}, errors.Errorf("invalid CARDKIT_MODE %q", cfg.Mode)
	}
	return cfg, nil
}

// SetupLogger applies the logging settings to the standard logrus logger.
func (c Config) SetupLogger() {
	if strings.EqualFold(c.LogFormat, "json") {
		logger.SetFormatter(&logger.JSONFormatter{TimestampFormat: DateTimePattern})
	} else {
		logger.SetFormatter(&logger.TextFormatter{FullTimestamp: true, TimestampFormat: DateTimePattern})
	}
	logger.SetOutput(os.Stdout)
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		logger.Warnf("invalid log level %q, using info", c.LogLevel)
		level = logger.InfoLevel
	}
	logger.SetLevel(level)
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parsePort(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	port, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s value %q", key, v)
	}
	if port <= 0 || port > 65535 {
		return 0, errors.Errorf("port %d is out of range", port)
	}
	return port, nil
}
