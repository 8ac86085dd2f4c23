package port

import "context"

// SignupClient abstracts the outbound call to the waitlist signup API.
type SignupClient interface {
	// Signup submits the configured email and returns the upstream HTTP
	// status and the raw response body. An error means the call itself
	// failed (network, timeout); a non-2xx status is not an error.
	Signup(ctx context.Context, email string) (status int, body string, err error)
}
