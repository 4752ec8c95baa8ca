package internal

import "io"

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config   *Config
	vault    string
	folder   string
	watch    bool
	env      string
	logOut   io.Writer
	onImport func()
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithSource sets the vault root and the folder inside it to import.
func WithSource(vault, folder string) Option {
	return func(a *application) {
		a.vault = vault
		a.folder = folder
	}
}

// WithWatch keeps the application running and re-imports on changes.
func WithWatch(watch bool) Option {
	return func(a *application) {
		a.watch = watch
	}
}

// WithEnv sets the deployment environment name (APP_ENV).
func WithEnv(env string) Option {
	return func(a *application) {
		a.env = env
	}
}

// WithLogOutput redirects log output, which defaults to stderr.
func WithLogOutput(w io.Writer) Option {
	return func(a *application) {
		a.logOut = w
	}
}

// withImportHook is called after every batch run. Used by tests.
func withImportHook(fn func()) Option {
	return func(a *application) {
		a.onImport = fn
	}
}
