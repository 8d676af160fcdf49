package config

import (
	"flag"
	"os"
	"time"
)

// commandArgs keeps the positional arguments left after flag parsing.
// The CLI dispatcher consumes them as the command and its operands.
var commandArgs []string

// ParseFlags parses all configuration flags from the command line.
// Parsing stops at the first positional argument; the remainder is
// available via [CommandArgs].
//
// Flags:
//
//	-s server base address
//	-e account email
//	-session-path session record file path
//	-cache-path blob cache database path
//	-use-keyring store the session record in the OS keychain
//	-health-interval connectivity probe interval (e.g., "5m")
//	-request-timeout request timeout (e.g., "15s", "1m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	cfg, rest := parseFlags(os.Args[1:])
	commandArgs = rest
	return cfg
}

// CommandArgs returns the positional arguments that followed the
// configuration flags, in order.
func CommandArgs() []string {
	return commandArgs
}

func parseFlags(args []string) (*StructuredConfig, []string) {
	fs := flag.NewFlagSet("vaultward", flag.ExitOnError)

	var (
		serverAddress  string
		email          string
		sessionPath    string
		cachePath      string
		useKeyring     bool
		healthInterval time.Duration
		requestTimeout time.Duration
		jsonConfigPath string
	)

	fs.StringVar(&serverAddress, "s", "", "Server base address")
	fs.StringVar(&email, "e", "", "Account email")
	fs.StringVar(&sessionPath, "session-path", "", "Session record file path")
	fs.StringVar(&cachePath, "cache-path", "", "Blob cache database path")
	fs.BoolVar(&useKeyring, "use-keyring", false, "Store the session record in the OS keychain")
	fs.DurationVar(&healthInterval, "health-interval", 0, "Connectivity probe interval (e.g., 5m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	_ = fs.Parse(args)

	cfg := &StructuredConfig{
		App: App{
			Email: email,
		},
		Adapter: Adapter{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			SessionPath: sessionPath,
			CachePath:   cachePath,
			UseKeyring:  useKeyring,
		},
		Workers: Workers{
			HealthInterval: healthInterval,
		},
		JSONFilePath: jsonConfigPath,
	}

	return cfg, fs.Args()
}
