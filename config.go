package sendsculpt

import "time"

// Environment selects live delivery or the non-delivering sandbox.
type Environment string

const (
	EnvironmentLive    Environment = "live"
	EnvironmentSandbox Environment = "sandbox"
)

// Valid reports whether e is a known environment.
func (e Environment) Valid() bool {
	return e == EnvironmentLive || e == EnvironmentSandbox
}

const (
	// DefaultBaseURL is the SendSculpt API root.
	DefaultBaseURL = "https://api.sendsculpt.com/api/v1"

	// DefaultTimeout bounds a whole send round trip when no HTTP client is supplied.
	DefaultTimeout = time.Minute
)

// Config holds SendSculpt client configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	APIKey      string        `env:"SENDSCULPT_API_KEY,required"`
	Environment Environment   `env:"SENDSCULPT_ENVIRONMENT" envDefault:"live"`
	BaseURL     string        `env:"SENDSCULPT_BASE_URL" envDefault:"https://api.sendsculpt.com/api/v1"`
	Timeout     time.Duration `env:"SENDSCULPT_TIMEOUT" envDefault:"1m"`
}

// options converts config values into client options.
// Zero values are skipped so client defaults apply.
func (c Config) options() []Option {
	return []Option{
		WithEnvironment(c.Environment),
		WithBaseURL(c.BaseURL),
		WithTimeout(c.Timeout),
	}
}
