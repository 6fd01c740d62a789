package composer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-pack-config/internal/assets"
	"github.com/MKhiriev/go-pack-config/internal/chain"
	"github.com/MKhiriev/go-pack-config/internal/config"
	"github.com/MKhiriev/go-pack-config/internal/tree"
)

const (
	gzipThreshold = 10240
	gzipMinRatio  = 0.8
)

// Production returns the tree of a production or testing build. It resolves
// synchronously.
func Production(cfg *config.StructuredConfig, env config.Environment) (tree.Map, error) {
	if !env.IsProduction() {
		return nil, fmt.Errorf("%w: %q is not a production build", config.ErrUnknownEnvironment, env)
	}

	base, err := Base(cfg, env)
	if err != nil {
		return nil, err
	}
	overlay, err := prodOverlay(cfg, env)
	if err != nil {
		return nil, err
	}

	t, err := tree.Merge(base, overlay)
	if err != nil {
		return nil, fmt.Errorf("error merging %s overlay: %w", env, err)
	}
	return t, nil
}

func prodOverlay(cfg *config.StructuredConfig, env config.Environment) (tree.Map, error) {
	sourceMap := config.Enabled(cfg.Build.ProductionSourceMap)

	rules, err := styleRules(chain.Flags{
		SourceMap:  sourceMap,
		Autoprefix: true,
		Extract:    true,
		Minimize:   env == config.Production,
	})
	if err != nil {
		return nil, err
	}

	define, err := definePlugin(env)
	if err != nil {
		return nil, err
	}

	var devtool any = false
	if sourceMap {
		devtool = cfg.Build.Devtool
	}

	resolver := assets.NewResolver(cfg)

	htmlFilename := resolve(cfg, cfg.Build.Index)
	if env == config.Testing {
		htmlFilename = "index.html"
	}

	cssProcessorOptions := tree.Map{"safe": true}
	if sourceMap {
		cssProcessorOptions["map"] = tree.Map{"inline": false}
	}

	plugins := newPluginList(
		define,
		Plugin(PluginUglify, tree.Map{
			"uglifyOptions": tree.Map{
				"compress": tree.Map{"warnings": false, "drop_console": true},
			},
			"sourceMap": sourceMap,
			"comments":  false,
			"parallel":  true,
		}),
		Plugin(PluginExtractText, tree.Map{
			"filename":  resolver.Path(env, "css/[name].[contenthash].css"),
			"allChunks": true,
		}),
		Plugin(PluginOptimizeCSS, tree.Map{"cssProcessorOptions": cssProcessorOptions}),
		Plugin(PluginHTML, tree.Map{
			"filename": htmlFilename,
			"template": "index.html",
			"inject":   true,
			"minify": tree.Map{
				"removeComments":        true,
				"collapseWhitespace":    true,
				"removeAttributeQuotes": true,
			},
			"chunksSortMode": "dependency",
		}),
		Plugin(PluginHashedModuleIDs, nil),
		Plugin(PluginModuleConcatenation, nil),
		Plugin(PluginCommonsChunk, tree.Map{
			"name": "vendor",
			"minChunks": tree.Map{
				"resource": tree.NewPattern(`\.js$`),
				"within":   resolve(cfg, "node_modules"),
			},
		}),
		Plugin(PluginCommonsChunk, tree.Map{"name": "manifest", "minChunks": "Infinity"}),
		Plugin(PluginCommonsChunk, tree.Map{
			"name":      "app",
			"async":     "vendor-async",
			"children":  true,
			"minChunks": 3,
		}),
		copyPlugin(cfg, cfg.Build.AssetsSubDirectory),
	).
		when(config.Enabled(cfg.Build.ProductionGzip), func() tree.Map {
			return compressionPlugin(cfg.Build.ProductionGzipExtensions)
		}).
		when(cfg.ReportRequested(), func() tree.Map {
			return Plugin(PluginBundleAnalyzer, nil)
		})

	return tree.Map{
		"module":  tree.Map{"rules": rules},
		"devtool": devtool,
		"output": tree.Map{
			"path":          resolve(cfg, cfg.Build.AssetsRoot),
			"filename":      resolver.Path(env, "js/[name].[chunkhash].js"),
			"chunkFilename": resolver.Path(env, "js/[id].[chunkhash].js"),
		},
		"plugins": plugins.seq(),
	}, nil
}

func compressionPlugin(extensions []string) tree.Map {
	quoted := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		quoted = append(quoted, regexp.QuoteMeta(ext))
	}

	return Plugin(PluginCompression, tree.Map{
		"asset":     "[path].gz[query]",
		"algorithm": "gzip",
		"test":      tree.NewPattern(`\.(` + strings.Join(quoted, "|") + `)$`),
		"threshold": gzipThreshold,
		"minRatio":  gzipMinRatio,
	})
}
