package auth

// Keep this small interface so tests can fake it easily.
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
}

// Guard is the single place a bearer token becomes a user identity.
// Everything downstream takes the resolved user id as an explicit input
// and never trusts an id from a request body.
type Guard struct {
	tokens TokenVerifier
}

func NewGuard(tokens TokenVerifier) *Guard {
	return &Guard{tokens: tokens}
}

func (g *Guard) ResolveIdentity(token string) (string, error) {
	if token == "" {
		return "", ErrInvalidToken
	}

	return g.tokens.VerifyToken(token)
}
