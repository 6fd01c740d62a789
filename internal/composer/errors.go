package composer

import "errors"

var (
	ErrPortAlreadySet = errors.New("invocation port already set")
	ErrPortNotSet     = errors.New("invocation port not set")
	ErrNoNegotiator   = errors.New("development tree needs a port negotiator")
)
