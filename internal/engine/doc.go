// Package engine hands a composed configuration tree to the external build
// engine and reports the outcome.
//
// The engine itself is a black box reached over HTTP: it accepts a tree and
// answers with build statistics. [Runner] turns those statistics into the
// user-facing report and a pass or fail result.
package engine
