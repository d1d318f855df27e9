package cmd

// Exit codes for the httpcall CLI
const (
	// ExitSuccess indicates the request completed
	ExitSuccess = 0

	// ExitInputError indicates invalid usage or input (bad flags,
	// malformed headers, invalid payload, failed extraction)
	ExitInputError = 2

	// ExitNetworkError indicates a transport-level failure
	ExitNetworkError = 4
)
