// Package template discovers the templates under a root directory and runs
// the compose checks over them.
//
// Every immediate child of the root is a template candidate. Children that
// are not directories, or directories without a compose.yml, are reported as
// missing their compose document rather than skipped.
package template
