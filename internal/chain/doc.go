// Package chain generates the ordered style-processing chains applied to each
// stylesheet family and assembles them into the fixed per-extension table the
// build engine consumes.
package chain
