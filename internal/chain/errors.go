package chain

import "errors"

var (
	// ErrUnknownAssetFamily is returned when a lookup or family definition
	// refers to a family or preprocessor that the table does not know.
	ErrUnknownAssetFamily = errors.New("unknown asset family")
	// ErrDuplicateExtension is returned when two families claim the same
	// extension.
	ErrDuplicateExtension = errors.New("extension claimed by more than one family")
)
