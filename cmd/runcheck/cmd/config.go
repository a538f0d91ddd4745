package cmd

// Config is read from the environment (and an optional dotenv file).
// Flags given on the command line take precedence.
type Config struct {
	Env          string `env:"RUNCHECK_ENV" envDefault:"development"`
	LogLevel     string `env:"RUNCHECK_LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"RUNCHECK_LOG_FORMAT" envDefault:"text"`
	Lang         string `env:"RUNCHECK_LANG" envDefault:"es"`
	StrictLength bool   `env:"RUNCHECK_STRICT_LENGTH" envDefault:"true"`
}
