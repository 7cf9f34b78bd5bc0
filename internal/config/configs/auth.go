package configs

// Auth configures bearer token verification. Tokens are HS256 JWTs whose
// subject is the user id. With an empty secret every viewer is anonymous.
type Auth struct {
	JWTSecret string `env:"JWT_SECRET"`
}
