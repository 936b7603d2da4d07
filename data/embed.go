// Package data embeds fixed assets shipped with the module.
package data

import _ "embed"

// Sample is the explainer sample text fed through the stage pipeline by
// the CLI and the e2e script. It exercises every stage: leading and
// trailing whitespace, accented letters, typographic punctuation,
// expanding substitutions, tab runs, CRLF line endings, and scripts that
// are dropped outright.
//
//go:embed sample.txt
var Sample string
