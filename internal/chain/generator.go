package chain

import "github.com/MKhiriev/go-pack-config/internal/tree"

// Flags are the feature switches that shape a processing chain.
type Flags struct {
	// SourceMap makes every stage emit source maps.
	SourceMap bool
	// Autoprefix inserts the vendor-prefixing stage.
	Autoprefix bool
	// Extract redirects the chain output into a standalone file.
	Extract bool
	// Minimize asks the style-resolution stage to minify.
	Minimize bool
}

// Generate builds the processing chain for one asset family.
//
// The chain is [style-resolution, prefixing (if enabled), preprocessor (if
// any)]. extra is merged into the preprocessor stage options only. With
// flags.Extract the chain is wrapped into a single extraction stage whose
// fallback is the in-place style-injection stage; otherwise the injection
// stage is prepended.
//
// Generate does not validate preprocessor; the table rejects unknown
// families before calling it.
func Generate(preprocessor string, flags Flags, extra tree.Map) Chain {
	stages := Chain{
		{
			Kind: KindStyleResolve,
			Options: tree.Map{
				"minimize":  flags.Minimize,
				"sourceMap": flags.SourceMap,
			},
		},
	}

	if flags.Autoprefix {
		stages = append(stages, Stage{
			Kind:    KindPrefix,
			Options: tree.Map{"sourceMap": flags.SourceMap},
		})
	}

	if preprocessor != "" {
		options := tree.CloneMap(extra)
		if options == nil {
			options = tree.Map{}
		}
		options["sourceMap"] = flags.SourceMap

		stages = append(stages, Stage{
			Kind:    preprocessor + "-loader",
			Options: options,
		})
	}

	injection := Stage{Kind: KindStyleInjection}
	if flags.Extract {
		return Chain{{
			Kind:     KindExtract,
			Fallback: &injection,
			Use:      stages,
		}}
	}

	return append(Chain{injection}, stages...)
}
