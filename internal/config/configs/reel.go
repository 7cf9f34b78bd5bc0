package configs

import "time"

// Reel configures viewing sessions. Sessions idle for longer than
// SessionTTL are closed by a janitor that runs every SweepInterval. A
// zero SessionTTL keeps sessions until they are closed explicitly.
// PreferPremium is the default for sessions opened without an explicit
// preference.
type Reel struct {
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"1m"`
	PreferPremium bool          `env:"PREFER_PREMIUM" envDefault:"false"`

	// ShutdownTimeout bounds how long pending tracking writes are awaited.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
