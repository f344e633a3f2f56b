// Package charset classifies characters into Word, Blank, and Punctuation
// categories for the seek engine.
//
// The classification is a pure predicate pair with no process-wide state:
// charsets are constructed once (from the defaults, a per-language TOML
// configuration, or a Lua predicate supplied by a host plugin) and passed
// explicitly into each seek call. The Registry resolves language-specific
// word classes and can be kept current with a file Watcher.
package charset
