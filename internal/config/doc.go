// Package config provides configuration management for the ztpl CLI.
//
// Configuration is read by Viper from ztpl.yaml, searched in the working
// directory and then in the XDG config directory (see [paths.ConfigDir]).
// Every key may also be set through a ZTPL_-prefixed environment variable,
// and command-line flags override both.
//
//	version: 1
//	templates_root: src/content/templates
//	jobs: 4
//	report_success: true
//	watch_debounce: 300ms
//
// [Load] validates what it reads; [Validate] can be used on a hand-built
// Config as well.
package config
