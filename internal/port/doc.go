// Package port negotiates a free TCP port for the development server.
//
// A [Negotiator] probes upward from a preferred port until a probe succeeds,
// a probe fails for a reason other than the port being taken, or the
// configured attempt bound is reached. Every negotiator resolves exactly once.
package port
