package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	// ErrGroupNotFound is returned when the requested credential group
	// does not exist in the database. The CLI maps it to exit code 2.
	ErrGroupNotFound = goerr.New("credential group not found")

	// ErrQuotaNotFound is returned when the server's quota response does
	// not carry a usable "User quota" storage entry. It is a valid
	// per-mailbox outcome, not a failure of the run.
	ErrQuotaNotFound = goerr.New("quota not found")
)
