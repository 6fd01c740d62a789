package composer

import (
	"github.com/MKhiriev/go-pack-config/internal/config"
	"github.com/MKhiriev/go-pack-config/internal/tree"
)

// Plugin names as the engine knows them.
const (
	PluginDefine               = "DefinePlugin"
	PluginHotModuleReplacement = "HotModuleReplacementPlugin"
	PluginNamedModules         = "NamedModulesPlugin"
	PluginNoEmitOnErrors       = "NoEmitOnErrorsPlugin"
	PluginClean                = "CleanWebpackPlugin"
	PluginHTML                 = "HtmlWebpackPlugin"
	PluginCopy                 = "CopyWebpackPlugin"
	PluginFriendlyErrors       = "FriendlyErrorsPlugin"
	PluginUglify               = "UglifyJsPlugin"
	PluginExtractText          = "ExtractTextPlugin"
	PluginOptimizeCSS          = "OptimizeCSSPlugin"
	PluginHashedModuleIDs      = "HashedModuleIdsPlugin"
	PluginModuleConcatenation  = "ModuleConcatenationPlugin"
	PluginCommonsChunk         = "CommonsChunkPlugin"
	PluginCompression          = "CompressionWebpackPlugin"
	PluginBundleAnalyzer       = "BundleAnalyzerPlugin"
)

// Plugin returns a plugin descriptor. options may be nil.
func Plugin(name string, options tree.Map) tree.Map {
	p := tree.Map{"plugin": name}
	if options != nil {
		p["options"] = options
	}
	return p
}

// PluginName returns the name of descriptor p, or "" when p is not one.
func PluginName(p any) string {
	m, ok := p.(tree.Map)
	if !ok {
		return ""
	}
	name, _ := m["plugin"].(string)
	return name
}

// pluginList collects descriptors in order, some of them only when a flag is
// set.
type pluginList struct {
	plugins tree.Seq
}

func newPluginList(always ...tree.Map) *pluginList {
	l := &pluginList{plugins: make(tree.Seq, 0, len(always))}
	for _, p := range always {
		l.plugins = append(l.plugins, p)
	}
	return l
}

// when appends the descriptor built by fn only if enabled. fn is not called
// otherwise.
func (l *pluginList) when(enabled bool, fn func() tree.Map) *pluginList {
	if enabled {
		l.plugins = append(l.plugins, fn())
	}
	return l
}

func (l *pluginList) seq() tree.Seq {
	return l.plugins
}

func definePlugin(env config.Environment) (tree.Map, error) {
	vars, err := config.VarsFor(env)
	if err != nil {
		return nil, err
	}
	processEnv := make(tree.Map, len(vars))
	for k, v := range vars {
		processEnv[k] = v
	}
	return Plugin(PluginDefine, tree.Map{"process.env": processEnv}), nil
}

func copyPlugin(cfg *config.StructuredConfig, to string) tree.Map {
	return Plugin(PluginCopy, tree.Map{
		"patterns": tree.Seq{
			tree.Map{
				"from":   resolve(cfg, "static"),
				"to":     to,
				"ignore": tree.Seq{".*"},
			},
		},
	})
}
