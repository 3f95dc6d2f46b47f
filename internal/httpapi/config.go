package httpapi

// Config holds boundary-layer settings. APIKey guards the fixed notification
// routes; when unset those routes answer 401 until it is configured.
type Config struct {
	APIKey      string   `env:"API_KEY"`
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"http://localhost:8000,https://www.huyche.site"`
}
