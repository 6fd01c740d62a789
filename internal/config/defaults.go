package config

import "time"

// DefaultMaxPortAttempts bounds port negotiation when nothing else is set.
const DefaultMaxPortAttempts = 100

// Default returns the built-in settings, the lowest-priority layer.
func Default() *StructuredConfig {
	return &StructuredConfig{
		Env:     Development,
		Context: ".",
		Dev: Dev{
			AssetsSubDirectory:        "static",
			AssetsPublicPath:          "/",
			ProxyTable:                map[string]string{},
			Host:                      "localhost",
			Port:                      8080,
			AutoOpenBrowser:           Bool(true),
			ErrorOverlay:              Bool(true),
			NotifyOnErrors:            Bool(true),
			Poll:                      Bool(false),
			UseEslint:                 Bool(true),
			ShowEslintErrorsInOverlay: Bool(false),
			Devtool:                   "cheap-module-eval-source-map",
			CacheBusting:              Bool(true),
			CSSSourceMap:              Bool(true),
			UsePostCSS:                Bool(true),
			MaxPortAttempts:           DefaultMaxPortAttempts,
		},
		Build: Build{
			Index:                    "dist/index.html",
			AssetsRoot:               "dist",
			AssetsSubDirectory:       "static",
			AssetsPublicPath:         "/",
			ProductionSourceMap:      Bool(true),
			Devtool:                  "#source-map",
			ProductionGzip:           Bool(false),
			ProductionGzipExtensions: []string{"js", "css"},
			BundleAnalyzerReport:     Bool(false),
			EngineURL:                "http://localhost:9000",
			EngineTimeout:            5 * time.Minute,
		},
	}
}
