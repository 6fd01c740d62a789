// Package composer assembles the configuration tree handed to the build
// engine.
//
// A tree is the base tree merged with the overlay of the invocation's
// environment. The production and testing trees resolve synchronously. The
// development tree additionally waits for a dev server port to be negotiated
// and only then carries the port in devServer.port and in the invocation.
package composer
