// SPDX-License-Identifier: EPL-2.0

// Package config loads audcat defaults from the environment. Command-line
// flags override what is loaded here.
package config

import (
	"os"
	"strconv"
)

// Config holds runtime defaults for the audcat command.
type Config struct {
	// BaseURL resolves site-relative clip references.
	BaseURL string

	// Format of the output file: mp3 or wav.
	Format string

	// OutDir is where finished files are written.
	OutDir string

	// Naming is "derived" or "fixed"; empty picks the default for Format.
	Naming string

	// FixedName is used when Naming is "fixed".
	FixedName string

	// Parallelism bounds concurrent fetch+decode.
	Parallelism int

	StrictSampleRate bool
	Verbose          bool
}

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	return Config{
		BaseURL:          envStr("AUDCAT_BASE_URL", "https://lingopolo.org"),
		Format:           envStr("AUDCAT_FORMAT", "mp3"),
		OutDir:           envStr("AUDCAT_OUT_DIR", "."),
		Naming:           envStr("AUDCAT_NAMING", ""),
		FixedName:        envStr("AUDCAT_NAME", ""),
		Parallelism:      envInt("AUDCAT_PARALLEL", 4),
		StrictSampleRate: envBool("AUDCAT_STRICT_RATE", false),
		Verbose:          envBool("AUDCAT_VERBOSE", false),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
