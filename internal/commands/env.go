package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// envFileArg finds the --env-file value in args without a full flag parse.
func envFileArg(args []string) (string, bool) {
	for i, arg := range args {
		switch {
		case arg == "--":
			return "", false
		case arg == "--env-file" && i+1 < len(args):
			return args[i+1], true
		case strings.HasPrefix(arg, "--env-file="):
			return strings.TrimPrefix(arg, "--env-file="), true
		}
	}
	return "", false
}

// LoadEnv loads dotenv variables before flags are resolved so that ROSTER_*
// values can come from a file. An explicit --env-file (or ROSTER_ENV_FILE)
// must exist; the default ./.env is optional. Variables already set in the
// environment win. Returns the file that was loaded, if any.
func LoadEnv(args []string) (string, error) {
	path, explicit := envFileArg(args)
	if !explicit {
		path, explicit = os.LookupEnv("ROSTER_ENV_FILE")
	}
	if !explicit || path == "" {
		path = defaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("load env file %s: %w", path, err)
	}
	return path, nil
}
