// Package paths resolves the locations ztpl reads from.
//
// Two families of paths exist:
//
//   - Tool configuration: ztpl.yaml is searched in the working directory and
//     in the XDG config home (github.com/adrg/xdg), so ~/.config/ztpl on
//     Linux and ~/Library/Application Support/ztpl on macOS.
//   - Template content: every template lives in its own directory under the
//     templates root and is described by two files:
//
//	<root>/<slug>/compose.yml   the compose document
//	<root>/<slug>/index.md      catalog metadata in frontmatter
package paths
