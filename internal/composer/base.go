package composer

import (
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/go-pack-config/internal/assets"
	"github.com/MKhiriev/go-pack-config/internal/chain"
	"github.com/MKhiriev/go-pack-config/internal/config"
	"github.com/MKhiriev/go-pack-config/internal/tree"
)

const urlLoaderLimit = 10000

// urlAssets are the file groups inlined below urlLoaderLimit bytes and
// emitted into their own asset directory otherwise.
var urlAssets = []struct {
	test string
	dir  string
}{
	{test: `\.(png|jpe?g|gif|svg)(\?.*)?$`, dir: "img"},
	{test: `\.(mp4|webm|ogg|mp3|wav|flac|aac)(\?.*)?$`, dir: "media"},
	{test: `\.(woff2?|eot|ttf|otf)(\?.*)?$`, dir: "fonts"},
}

// Base returns the tree shared by every environment: entry, output, module
// resolution, the component, script and asset rules and node stubs.
func Base(cfg *config.StructuredConfig, env config.Environment) (tree.Map, error) {
	styleFlags := chain.Flags{
		SourceMap: config.Enabled(cfg.Dev.CSSSourceMap),
		Minimize:  env == config.Production,
	}
	publicPath := cfg.Dev.AssetsPublicPath
	if env.IsProduction() {
		styleFlags.SourceMap = config.Enabled(cfg.Build.ProductionSourceMap)
		styleFlags.Extract = true
		publicPath = cfg.Build.AssetsPublicPath
	}

	table, err := chain.Build(styleFlags)
	if err != nil {
		return nil, fmt.Errorf("error building component loaders: %w", err)
	}

	rules := tree.Seq{}
	if config.Enabled(cfg.Dev.UseEslint) {
		rules = append(rules, lintRule(cfg))
	}
	rules = append(rules,
		tree.Map{
			"test":   tree.NewPattern(`\.vue$`),
			"loader": "vue-loader",
			"options": tree.Map{
				"loaders":      table.LoadersTree(),
				"cssSourceMap": styleFlags.SourceMap,
				"cacheBusting": config.Enabled(cfg.Dev.CacheBusting),
				"transformToRequire": tree.Map{
					"video":  tree.Seq{"src", "poster"},
					"source": "src",
					"img":    "src",
					"image":  "xlink:href",
				},
			},
		},
		tree.Map{
			"test":   tree.NewPattern(`\.js$`),
			"loader": "babel-loader",
			"include": tree.Seq{
				resolve(cfg, "src"),
				resolve(cfg, "test"),
				resolve(cfg, "node_modules/webpack-dev-server/client"),
			},
		},
	)

	resolver := assets.NewResolver(cfg)
	for _, a := range urlAssets {
		rules = append(rules, tree.Map{
			"test":   tree.NewPattern(a.test),
			"loader": "url-loader",
			"options": tree.Map{
				"limit": urlLoaderLimit,
				"name":  resolver.Path(env, a.dir+"/[name].[hash:7].[ext]"),
			},
		})
	}

	return tree.Map{
		"context": resolve(cfg, ""),
		"entry":   tree.Map{"app": "./src/main.js"},
		"output": tree.Map{
			"path":       resolve(cfg, cfg.Build.AssetsRoot),
			"filename":   "[name].js",
			"publicPath": publicPath,
		},
		"resolve": tree.Map{
			"extensions": tree.Seq{".js", ".vue", ".json"},
			"alias": tree.Map{
				"vue$": "vue/dist/vue.esm.js",
				"@":    resolve(cfg, "src"),
			},
		},
		"module": tree.Map{"rules": rules},
		"node": tree.Map{
			"setImmediate":  false,
			"dgram":         "empty",
			"fs":            "empty",
			"net":           "empty",
			"tls":           "empty",
			"child_process": "empty",
		},
	}, nil
}

func lintRule(cfg *config.StructuredConfig) tree.Map {
	return tree.Map{
		"test":    tree.NewPattern(`\.(js|vue)$`),
		"loader":  "eslint-loader",
		"enforce": "pre",
		"include": tree.Seq{resolve(cfg, "src"), resolve(cfg, "test")},
		"options": tree.Map{
			"formatter":   "eslint-friendly-formatter",
			"emitWarning": !config.Enabled(cfg.Dev.ShowEslintErrorsInOverlay),
		},
	}
}

// styleRules renders the style chain table as module rules.
func styleRules(flags chain.Flags) (tree.Seq, error) {
	table, err := chain.Build(flags)
	if err != nil {
		return nil, fmt.Errorf("error building style rules: %w", err)
	}
	return table.RulesTree(), nil
}

// resolve joins dir onto the project root. Absolute dirs are kept.
func resolve(cfg *config.StructuredConfig, dir string) string {
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(cfg.Context, dir)
}
