package domain

import "errors"

// Sentinel errors shared across services, store adapters, and the HTTP error
// handler. Services wrap them with fmt.Errorf("%w: ...") when extra context
// helps the client; errors.Is still matches.
var (
	// ErrValidation marks client-correctable input problems (400).
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials is returned for both unknown email and wrong
	// password so login failures never reveal which check failed (401).
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers every token failure mode: bad signature,
	// malformed structure, expiry. Callers must not be able to tell these
	// apart (403).
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrNoToken marks a request that carried no bearer credential at all,
	// distinct from one that carried a bad credential (401).
	ErrNoToken = errors.New("no token provided")

	ErrUserExists        = errors.New("user already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrWorkspaceNotFound = errors.New("workspace not found")

	// ErrMembershipNotFound is the store-level absence result; the
	// authorization layer converts it into ErrNotMember before it ever
	// reaches a caller.
	ErrMembershipNotFound = errors.New("membership not found")

	ErrNotMember     = errors.New("not a workspace member")
	ErrOwnerOnly     = errors.New("owner-only operation")
	ErrAlreadyMember = errors.New("user is already a workspace member")
)
