// Package output renders responses and errors for the terminal, with
// colored status indicators and optional JSON body colorization.
package output
