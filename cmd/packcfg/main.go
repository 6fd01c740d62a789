package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/MKhiriev/go-pack-config/internal/composer"
	"github.com/MKhiriev/go-pack-config/internal/config"
	"github.com/MKhiriev/go-pack-config/internal/engine"
	"github.com/MKhiriev/go-pack-config/internal/logger"
	"github.com/MKhiriev/go-pack-config/internal/port"
	"github.com/MKhiriev/go-pack-config/internal/preview"
	"github.com/MKhiriev/go-pack-config/internal/tree"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `usage: packcfg <command> [flags]

commands:
  inspect  print the resolved configuration tree as JSON
  dev      compose the development tree and hand it to the build engine
  build    compose the production (or testing) tree and run the build
  serve    serve the build output over HTTP
`

var errUsage = errors.New("unknown command")

func main() {
	printBuildInfo(os.Stderr)

	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	command, args := args[0], args[1:]

	log := logger.NewConsoleLogger("packcfg", stderr)

	cfg, err := config.GetStructuredConfig(args)
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		return err
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()
	ctx = log.WithContext(ctx)

	switch command {
	case "inspect":
		err = inspect(ctx, cfg, cfg.Env, stdout, log)
	case "dev":
		err = build(ctx, cfg, config.Development, stdout, log)
	case "build":
		env := config.Production
		if cfg.Env == config.Testing {
			env = config.Testing
		}
		err = build(ctx, cfg, env, stdout, log)
	case "serve":
		err = serve(ctx, cfg, log)
	default:
		log.Error().Str("command", command).Msg("unknown command")
		return errUsage
	}
	if err != nil {
		log.Error().Err(err).Str("command", command).Msg("command failed")
	}
	return err
}

func compose(ctx context.Context, cfg *config.StructuredConfig, env config.Environment, log *logger.Logger) (*composer.Invocation, tree.Map, error) {
	negotiator := port.NewNegotiator(port.TCPProber{}, cfg.DevHost(), cfg.Dev.MaxPortAttempts, log)
	inv := composer.NewInvocation(env)

	t, err := composer.NewComposer(cfg, negotiator, log).Compose(ctx, inv)
	if err != nil {
		return nil, nil, err
	}
	return inv, t, nil
}

func inspect(ctx context.Context, cfg *config.StructuredConfig, env config.Environment, stdout io.Writer, log *logger.Logger) error {
	_, t, err := compose(ctx, cfg, env, log)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(t)
}

func build(ctx context.Context, cfg *config.StructuredConfig, env config.Environment, stdout io.Writer, log *logger.Logger) error {
	inv, t, err := compose(ctx, cfg, env, log)
	if err != nil {
		return err
	}
	if url, err := inv.URL(cfg.DevHost()); err == nil {
		log.Info().Str("url", url).Msg("dev server address resolved")
	}

	e := engine.NewHTTPEngine(cfg.Build.EngineURL, cfg.Build.EngineTimeout)
	return engine.NewRunner(e, stdout, log).Run(inv.Context(ctx), env, t)
}

func serve(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	t, err := composer.Production(cfg, config.Production)
	if err != nil {
		return err
	}

	root := cfg.Build.AssetsRoot
	if !filepath.IsAbs(root) {
		root = filepath.Join(cfg.Context, root)
	}

	negotiator := port.NewNegotiator(port.TCPProber{}, cfg.DevHost(), cfg.Dev.MaxPortAttempts, log)
	srv, err := preview.NewServer(root, cfg.DevHost(), negotiator, log, preview.WithConfigTree(t))
	if err != nil {
		return err
	}

	return srv.Run(ctx, cfg.DevPort(), func(url string) {
		log.Info().Str("url", url).Msg("serving build output")
	})
}

func printBuildInfo(w io.Writer) {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(w, "Build version: %s\n", buildVersion)
	fmt.Fprintf(w, "Build date: %s\n", buildDate)
	fmt.Fprintf(w, "Build commit: %s\n", buildCommit)
}
