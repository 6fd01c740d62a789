package preview

import "errors"

var (
	ErrNoRoot       = errors.New("preview root is not a directory")
	ErrNoIndex      = errors.New("preview root has no index.html")
	ErrNoNegotiator = errors.New("preview server needs a port negotiator")
)
