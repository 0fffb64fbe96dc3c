package model

// TokenManager signs and validates bearer access tokens carrying the actor.
type TokenManager interface {
	GenerateAccessToken(actor Actor) (string, error)
	ParseAccessToken(token string) (Actor, error)
}
