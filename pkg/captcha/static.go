package captcha

import "context"

// Static is a Verifier with a fixed verdict. Use it in tests and in
// local development where no challenge provider is configured.
type Static struct {
	Verdict bool
}

// Verify implements Verifier.
func (s Static) Verify(context.Context, string) bool { return s.Verdict }
