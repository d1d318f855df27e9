// Package config loads optional defaults from a .httpcall.yml file:
// timeout, user agent, default headers, redirect and TLS behavior.
// Command-line flags always win over file values.
package config
