package main

// Exit codes. Operation-level errors (a failed seed, an unknown id) are
// printed but still exit 0; only connection failures and usage errors fail
// the process.
const (
	ExitSuccess = 0 // Success, including printed operation errors
	ExitError   = 1 // Connection failure or invalid usage
)
