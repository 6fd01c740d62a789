package preview

import "context"

// PortNegotiator resolves the port the server binds. It is satisfied by
// *port.Negotiator.
type PortNegotiator interface {
	Negotiate(ctx context.Context, preferred int) (int, error)
}
