// Package config loads configuration structs from environment variables.
//
// Fields are bound with caarlos0/env struct tags. Dotenv files are read with
// godotenv and merged underneath the process environment, so a real
// environment variable always wins over a file entry. Loading never writes
// to the process environment.
//
// # Usage
//
//	type Config struct {
//	    RosterPath string        `env:"ROSTER_PATH" envDefault:"names.txt"`
//	    SendEmails bool          `env:"SEND_EMAILS" envDefault:"true"`
//	    Delay      time.Duration `env:"EMAIL_DELAY" envDefault:"600ms"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Options select other dotenv files or a fixed environment for tests:
//
//	config.Load(&cfg, config.WithEnvFiles(".env", ".env.local"))
//	config.Load(&cfg, config.WithEnvironment(map[string]string{"SEND_EMAILS": "false"}))
package config
