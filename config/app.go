package config

type App struct {
	Port              string `env:"APP_PORT" default:"8080"`
	DatabaseURL       string `env:"DATABASE_URL,required"`
	JWTSecret         string `env:"JWT_SECRET,required"`
	TokenTTLHours     int    `env:"TOKEN_TTL_HOURS" default:"5"`
	StrictTransitions bool   `env:"ORDER_STRICT_TRANSITIONS" default:"false"`
	Env               string `env:"APP_ENV" default:"dev"`
}
