// Package captcha verifies human-verification challenge tokens before
// credential endpoints accept a request.
package captcha

import "context"

// Verifier checks a client-supplied challenge token. Implementations
// fail closed: any doubt (empty token, transport error, non-success
// verdict) reports false.
type Verifier interface {
	Verify(ctx context.Context, token string) bool
}
