package config

import (
	"os"
	"strconv"
	"time"
)

// EnvPrefix is the prefix for all environment variables read by fibmatrix.
// Environment variables provide an alternative to CLI flags, following the
// 12-Factor App methodology; flags win when both are set.
const EnvPrefix = "FIBMATRIX_"

// defaultsFromEnv builds the flag defaults, starting from the compiled-in
// values and layering any FIBMATRIX_* overrides on top. Malformed values
// are ignored rather than fatal: the flag layer re-validates everything.
func defaultsFromEnv() AppConfig {
	cfg := AppConfig{
		N:       DefaultN,
		Algo:    DefaultAlgo,
		Timeout: DefaultTimeout,
		Port:    DefaultPort,
	}

	if v, ok := lookupInt64("N"); ok {
		cfg.N = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "ALGO"); ok && v != "" {
		cfg.Algo = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "TIMEOUT"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}
	if v, ok := os.LookupEnv(EnvPrefix + "PORT"); ok && v != "" {
		cfg.Port = v
	}
	cfg.Verbose = lookupBool("VERBOSE")
	cfg.JSONOutput = lookupBool("JSON")
	cfg.Quiet = lookupBool("QUIET")
	cfg.NoColor = lookupBool("NO_COLOR")
	cfg.ServerMode = lookupBool("SERVER")
	cfg.Debug = lookupBool("DEBUG")
	return cfg
}

func lookupInt64(name string) (int64, bool) {
	v, ok := os.LookupEnv(EnvPrefix + name)
	if !ok {
		return 0, false
	}
	parsed, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return parsed, true
}

func lookupBool(name string) bool {
	v, ok := os.LookupEnv(EnvPrefix + name)
	if !ok {
		return false
	}
	parsed, err := strconv.ParseBool(v)
	return err == nil && parsed
}
