package config

import (
	"flag"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Address   string        `env:"RUN_ADDRESS" envDefault:"localhost:8080"`
	LogLvl    string        `env:"LOG_LVL"     envDefault:"info"`
	JWTSecret string        `env:"JWT_SECRET"  envDefault:"lottoshop-secret"`
	TokenTTL  time.Duration `env:"TOKEN_TTL"   envDefault:"24h"`

	AdminEmail    string `env:"ADMIN_EMAIL"    envDefault:"laffymonkeyofficial@gmail.com"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"laffymonkeyofficial"`

	TicketUnitPrice      float64 `env:"TICKET_UNIT_PRICE"      envDefault:"7"`
	WithdrawalFeePercent float64 `env:"WITHDRAWAL_FEE_PERCENT" envDefault:"5"`
	DepositFeePercent    float64 `env:"DEPOSIT_FEE_PERCENT"    envDefault:"2"`

	FeedCapacity int           `env:"FEED_CAPACITY" envDefault:"15"`
	FeedInterval time.Duration `env:"FEED_INTERVAL" envDefault:"8s"`

	VerificationDelay   time.Duration `env:"VERIFICATION_DELAY"   envDefault:"2s"`
	VerificationWorkers int           `env:"VERIFICATION_WORKERS" envDefault:"10"`

	SuggestionURL    string `env:"SUGGESTION_URL"     envDefault:"https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash:generateContent"`
	SuggestionAPIKey string `env:"SUGGESTION_API_KEY"`

	CorsOrigins   []string `env:"CORS_ORIGINS"   envDefault:"*" envSeparator:","`
	SnowflakeNode int64    `env:"SNOWFLAKE_NODE" envDefault:"1"`
}

func New() *Config {
	cfg := &Config{}

	// .env is optional; real environment variables win.
	_ = godotenv.Load()
	env.Parse(cfg)

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.StringVar(&cfg.JWTSecret, "s", cfg.JWTSecret, "jwt signing secret")
	flag.StringVar(&cfg.SuggestionURL, "g", cfg.SuggestionURL, "lucky number suggestion endpoint")
	flag.DurationVar(&cfg.VerificationDelay, "v", cfg.VerificationDelay, "simulated verification delay")
	flag.Parse()

	if !strings.HasPrefix(cfg.SuggestionURL, "http://") && !strings.HasPrefix(cfg.SuggestionURL, "https://") {
		cfg.SuggestionURL = "https://" + cfg.SuggestionURL
	}

	return cfg
}
