// Package jsoncolor renders JSON text with per-token terminal colors.
//
// The tokenizer is a single left-to-right scan that classifies each
// lexical token (delimiters, colons, commas, strings, numbers, the
// true/false/null keywords) and hands it to a Styler. It does not
// validate the input: malformed JSON is styled best-effort, never
// rejected, and stripping the styling always recovers the input
// exactly.
package jsoncolor
