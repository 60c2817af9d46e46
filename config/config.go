package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App       App
	HTTP      HTTP
	Probe     Probe
	Metrics   Metrics
	Redis     Redis
	Session   Session
	RateLimit RateLimit
	Policy    Policy
}

type App struct {
	Name     string `env:"APP_NAME" envDefault:"apartment-journey"`
	Version  string `env:"APP_VERSION" envDefault:"dev"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	NoColor  bool   `env:"LOG_NO_COLOR" envDefault:"false"`
}

type HTTP struct {
	ListenAddress   string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
	LogFieldMaxLen  int           `env:"HTTP_LOG_FIELD_MAX_LEN" envDefault:"2048"`
}

type Probe struct {
	ListenAddress string `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
}

type Metrics struct {
	ListenAddress string `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
}

// Redis stores wizard sessions. When disabled, sessions live in process
// memory and are lost on restart.
type Redis struct {
	Enabled        bool   `env:"REDIS_ENABLED" envDefault:"false"`
	Address        string `env:"REDIS_ADDRESS" envDefault:"localhost:6379"`
	Password       string `env:"REDIS_PASSWORD"`
	DatabaseNumber int    `env:"REDIS_DB" envDefault:"0"`
	PoolSize       int    `env:"REDIS_POOL_SIZE" envDefault:"10"`
}

type Session struct {
	TTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`
}

type RateLimit struct {
	Capacity int           `env:"RATE_LIMIT_CAPACITY" envDefault:"60"`
	Refill   time.Duration `env:"RATE_LIMIT_REFILL" envDefault:"1m"`
}

// Policy overrides the market and legal figures used by the calculators.
type Policy struct {
	VATRate             float64 `env:"POLICY_VAT_RATE" envDefault:"0.18"`
	AgentRate           float64 `env:"POLICY_AGENT_RATE" envDefault:"0.015"`
	LawyerRate          float64 `env:"POLICY_LAWYER_RATE" envDefault:"0.01"`
	AdvisorRate         float64 `env:"POLICY_ADVISOR_RATE" envDefault:"0.01"`
	AdvisorMinimum      float64 `env:"POLICY_ADVISOR_MINIMUM" envDefault:"7500"`
	CitizenFirstHomeLTV float64 `env:"POLICY_CITIZEN_FIRST_HOME_LTV" envDefault:"0.75"`
	StandardLTV         float64 `env:"POLICY_STANDARD_LTV" envDefault:"0.50"`
	PaymentPerMillion20 float64 `env:"POLICY_PAYMENT_PER_MILLION_20Y" envDefault:"6700"`
	PaymentPerMillion30 float64 `env:"POLICY_PAYMENT_PER_MILLION_30Y" envDefault:"5550"`
	Tolerance           float64 `env:"POLICY_CONVERGENCE_TOLERANCE" envDefault:"500"`
	MaxIterations       int     `env:"POLICY_MAX_ITERATIONS" envDefault:"15"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}
