// Package compose checks a template's compose document.
//
// A document goes through three stages:
//
//  1. [Load] reads compose.yml and parses it as YAML into a generic value.
//  2. [Decode] applies a loose schema: only the fields ztpl relies on are
//     checked (a non-empty services mapping whose entries carry an image,
//     mapping-shaped configs and x-zane-env) and everything else is kept
//     untouched. The result is a typed [Document].
//  3. [Evaluate] runs the [Rule] set over the Document. Rules are pure and
//     every finding is collected; nothing short-circuits.
//
// Malformed input never panics; it becomes a [validator.Issue].
package compose
