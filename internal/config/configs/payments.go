package configs

import "time"

const (
	PaymentsStripe  = "stripe"
	PaymentsSandbox = "sandbox"
)

// Payments configures the external payment processor.
type Payments struct {
	// Provider is "stripe" or "sandbox". The sandbox provider confirms every
	// intent immediately and must not be used in production.
	Provider  string `env:"PROVIDER" envDefault:"stripe"`
	StripeKey string `env:"STRIPE_KEY,unset"`
	Currency  string `env:"CURRENCY" envDefault:"usd"`
	// Timeout bounds every call to the processor.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}
