package composer

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/composer_mock.go -package=mock

// PortNegotiator resolves the dev server port. It is satisfied by
// *port.Negotiator.
type PortNegotiator interface {
	Negotiate(ctx context.Context, preferred int) (int, error)
}
