package config

import (
	"flag"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

const (
	defaultServerAddress = ":8080"
	defaultDatabaseDSN   = ""
	defaultNATSURL       = ""
	defaultLogLevel      = "debug"
)

type Config struct {
	ServerAddr  string
	DatabaseDSN string
	NATSURL     string
	LogLevel    string
	TokenKey    string
}

var (
	once      sync.Once
	singleton *Config
)

// New returns new Config. It parses command line and environment variables only once.
func New() (*Config, error) {
	once.Do(func() {
		// local overrides, ignored when the file is absent
		_ = godotenv.Load()

		cfg := Config{}

		// initialize flags
		flag.StringVar(&cfg.ServerAddr, "a", defaultServerAddress, "travelmart server address")
		flag.StringVar(&cfg.DatabaseDSN, "d", defaultDatabaseDSN, "travelmart database DSN")
		flag.StringVar(&cfg.NATSURL, "n", defaultNATSURL, "NATS server URL for payment events")
		flag.StringVar(&cfg.LogLevel, "l", defaultLogLevel, "log level")

		flag.Parse()

		// if environment variable is set, then using it
		if runAddrEnv := os.Getenv("RUN_ADDRESS"); runAddrEnv != "" {
			cfg.ServerAddr = runAddrEnv
		}
		if dataBaseURIEnv := os.Getenv("DATABASE_URI"); dataBaseURIEnv != "" {
			cfg.DatabaseDSN = dataBaseURIEnv
		}
		if natsURLEnv := os.Getenv("NATS_URL"); natsURLEnv != "" {
			cfg.NATSURL = natsURLEnv
		}
		if logLevelEnv := os.Getenv("LOG_LEVEL"); logLevelEnv != "" {
			cfg.LogLevel = logLevelEnv
		}
		if tokenKeyEnv := os.Getenv("TOKEN_KEY"); tokenKeyEnv != "" {
			cfg.TokenKey = tokenKeyEnv
		}

		singleton = &cfg
	})

	return singleton, nil
}
