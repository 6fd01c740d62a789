// Package tree models the configuration tree handed to the build engine and
// implements the layered merge of a shared base tree with an environment
// overlay.
//
// A tree is built from a closed set of shapes: [Map] (string-keyed mapping),
// [Seq] (ordered sequence) and scalars (strings, numbers, booleans, nil and
// [Pattern]). Anything that is not a Map or a Seq is treated as a scalar.
package tree
