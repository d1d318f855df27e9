// Package format provides pure helpers for turning raw values into
// display strings and for parsing small text inputs:
//   - Duration and size formatting for response summaries
//   - Standard base64 encoding for Basic auth credentials
//   - Dotted-path extraction from JSON documents
//   - Header block parsing for -H style input
//   - Status code phrase lookup
package format
