package auth

import "context"

// TokenManager issues and verifies signed session tokens and login
// challenges. Nothing is stored server-side; the token is the session.
type TokenManager interface {
	Issue(ctx context.Context, c Credential) (Session, error)
	Verify(token string) (Subject, error)
	IssueChallenge(ctx context.Context, c Credential, code string) (Challenge, error)
	// VerifyChallenge returns the identifier the challenge was issued for
	// when code matches.
	VerifyChallenge(token, code string) (string, error)
}

// CodeSender delivers a one-time code to the administrator.
type CodeSender interface {
	SendCode(ctx context.Context, identifier, code string) error
}
