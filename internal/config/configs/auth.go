package configs

import "time"

// Auth configures bearer tokens and password hashing.
type Auth struct {
	// JWTSecret signs bearer tokens (HS256). Required.
	JWTSecret string `env:"JWT_SECRET,unset"`
	// TokenTTL is the validity window of issued tokens.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"168h"`
	// BcryptCost is the work factor for password hashes.
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`
}
