// Package config resolves what a run searches for (query, file and case mode)
// from process arguments and the environment, and loads the runtime settings
// that tune diagnostics. Settings precedence: Environment variables > YAML
// config > Defaults. Environment access goes through an injected lookup
// function so callers and tests never depend on the process environment.
package config
