// Package preview serves a finished build over HTTP.
//
// The server binds a port obtained by negotiation, serves the files of the
// build output directory and falls back to index.html for client-side
// routes. Responses are gzip-compressed when the client accepts it and every
// request is logged with its own request ID.
package preview
