package logger

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"
)

// LoadEnvFiles loads KEY=VALUE pairs from the given .env files into the
// process environment, so that MAXLOG_LEVEL and MAXLOG_FILE can be kept
// next to the program. With no arguments ".env" is loaded. Missing files
// are skipped and variables already present in the environment win.
//
// Call it before the first log call; the threshold is read only once.
func LoadEnvFiles(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	var err error
	for _, p := range paths {
		if _, statErr := os.Stat(p); errors.Is(statErr, os.ErrNotExist) {
			continue
		}
		if loadErr := godotenv.Load(p); loadErr != nil {
			err = multierr.Append(err, fmt.Errorf("load %s: %w", p, loadErr))
		}
	}
	return err
}
