package handler

// Config holds HTTP transport configuration.
type Config struct {
	// AllowedOrigins is the CORS allow-list of trusted frontend origins.
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:3000"`
}
