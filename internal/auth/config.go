package auth

import "time"

// Config holds the credential-lifecycle policy values. TTLs and cost are
// deliberate policy choices exposed as configuration rather than constants.
type Config struct {
	JWTSecret     string        `env:"JWT_SECRET,required"`                        // JWTSecret signs bearer tokens.
	TokenTTL      time.Duration `env:"TOKEN_TTL" envDefault:"2h"`                  // TokenTTL is the bearer token lifetime.
	ResetTokenTTL time.Duration `env:"RESET_TOKEN_TTL" envDefault:"1h"`            // ResetTokenTTL is how long a reset token stays redeemable.
	BcryptCost    int           `env:"BCRYPT_COST" envDefault:"10"`                // BcryptCost is the password hashing work factor.
	AppURL        string        `env:"APP_URL" envDefault:"http://localhost:3000"` // AppURL is the frontend base URL used in reset links.
}
