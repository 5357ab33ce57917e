package config

import "errors"

// CaseInsensitiveEnv disables case-sensitive matching when present, whatever its value.
const CaseInsensitiveEnv = "MINIGREP_CASE_INSENSITIVE"

var (
	// ErrMissingQuery is returned when no query argument is supplied.
	ErrMissingQuery = errors.New("did not get a query string")
	// ErrMissingFilename is returned when no filename argument is supplied.
	ErrMissingFilename = errors.New("did not get a filename string")
)

// LookupFunc reports the value of an environment variable and whether it is set.
type LookupFunc func(key string) (string, bool)

// Config describes a single search run.
type Config struct {
	Query         string
	Filename      string
	CaseSensitive bool
}

// New builds a Config from the process arguments. The first argument is the
// program name and is skipped; the query and filename follow in that order.
// Additional arguments are ignored.
func New(args []string, lookupEnv LookupFunc) (Config, error) {
	if len(args) > 0 {
		args = args[1:]
	}

	if len(args) < 1 {
		return Config{}, ErrMissingQuery
	}
	query := args[0]

	if len(args) < 2 {
		return Config{}, ErrMissingFilename
	}
	filename := args[1]

	return Config{
		Query:         query,
		Filename:      filename,
		CaseSensitive: !isSet(lookupEnv, CaseInsensitiveEnv),
	}, nil
}

func isSet(lookupEnv LookupFunc, key string) bool {
	if lookupEnv == nil {
		return false
	}
	_, ok := lookupEnv(key)
	return ok
}

// MapLookup adapts a map of variables to a LookupFunc.
func MapLookup(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}
}
