package composer

import (
	"context"
	"fmt"
	"path"

	"github.com/MKhiriev/go-pack-config/internal/chain"
	"github.com/MKhiriev/go-pack-config/internal/config"
	"github.com/MKhiriev/go-pack-config/internal/tree"
)

// Dev returns the development tree. It blocks until negotiator resolves the
// dev server port, starting from the preferred one in cfg.
//
// On success the port is written into inv and into devServer.port, and the
// FriendlyErrors plugin announcing the server URL is appended. On failure
// neither is touched and the negotiation error is returned.
func Dev(ctx context.Context, inv *Invocation, cfg *config.StructuredConfig, negotiator PortNegotiator) (tree.Map, error) {
	if negotiator == nil {
		return nil, ErrNoNegotiator
	}

	base, err := Base(cfg, config.Development)
	if err != nil {
		return nil, err
	}
	overlay, err := devOverlay(cfg)
	if err != nil {
		return nil, err
	}
	t, err := tree.Merge(base, overlay)
	if err != nil {
		return nil, fmt.Errorf("error merging development overlay: %w", err)
	}

	port, err := negotiator.Negotiate(ctx, cfg.DevPort())
	if err != nil {
		return nil, fmt.Errorf("error negotiating dev server port: %w", err)
	}
	if err = inv.SetPort(port); err != nil {
		return nil, err
	}
	if err = tree.Set(t, port, "devServer", "port"); err != nil {
		return nil, err
	}

	url, err := inv.URL(cfg.DevHost())
	if err != nil {
		return nil, err
	}

	return tree.Merge(t, tree.Map{
		"plugins": tree.Seq{friendlyErrorsPlugin(url, config.Enabled(cfg.Dev.NotifyOnErrors))},
	})
}

func devOverlay(cfg *config.StructuredConfig) (tree.Map, error) {
	rules, err := styleRules(chain.Flags{
		SourceMap:  config.Enabled(cfg.Dev.CSSSourceMap),
		Autoprefix: config.Enabled(cfg.Dev.UsePostCSS),
	})
	if err != nil {
		return nil, err
	}

	define, err := definePlugin(config.Development)
	if err != nil {
		return nil, err
	}

	var overlay any = false
	if config.Enabled(cfg.Dev.ErrorOverlay) {
		overlay = tree.Map{"warnings": false, "errors": true}
	}

	proxy := make(tree.Map, len(cfg.Dev.ProxyTable))
	for from, target := range cfg.Dev.ProxyTable {
		proxy[from] = target
	}

	plugins := newPluginList(
		define,
		Plugin(PluginHotModuleReplacement, nil),
		Plugin(PluginNamedModules, nil),
		Plugin(PluginNoEmitOnErrors, nil),
		Plugin(PluginClean, tree.Map{"paths": tree.Seq{"dist"}}),
		Plugin(PluginHTML, tree.Map{
			"filename": "index.html",
			"template": "index.html",
			"inject":   true,
		}),
		copyPlugin(cfg, cfg.Dev.AssetsSubDirectory),
	)

	return tree.Map{
		"module":  tree.Map{"rules": rules},
		"devtool": cfg.Dev.Devtool,
		"devServer": tree.Map{
			"clientLogLevel": "warning",
			"historyApiFallback": tree.Map{
				"rewrites": tree.Seq{
					tree.Map{
						"from": tree.NewPattern(`.*`),
						"to":   path.Join(cfg.Dev.AssetsPublicPath, "index.html"),
					},
				},
			},
			"hot":          true,
			"contentBase":  false,
			"compress":     true,
			"host":         cfg.DevHost(),
			"port":         cfg.DevPort(),
			"open":         config.Enabled(cfg.Dev.AutoOpenBrowser),
			"overlay":      overlay,
			"publicPath":   cfg.Dev.AssetsPublicPath,
			"proxy":        proxy,
			"quiet":        true,
			"watchOptions": tree.Map{"poll": config.Enabled(cfg.Dev.Poll)},
		},
		"plugins": plugins.seq(),
	}, nil
}

func friendlyErrorsPlugin(url string, notify bool) tree.Map {
	options := tree.Map{
		"compilationSuccessInfo": tree.Map{
			"messages": tree.Seq{"Your application is running here: " + url},
		},
	}
	if notify {
		options["onErrors"] = "notifier"
	}
	return Plugin(PluginFriendlyErrors, options)
}
