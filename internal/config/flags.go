package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the configuration flags found in args. Only flags that
// are explicitly present end up in the returned config, so unset flags never
// shadow lower-priority sources.
//
// Flags:
//
//	-a dev server address in format [host]:[port]
//	-env environment: development, production or testing
//	-context project root directory
//	-c/-config HCL project file path
//	-report request the bundle composition report
//	-gzip emit gzip-compressed copies of production assets
//	-source-map emit production source maps
//	-max-port-attempts bound for dev server port negotiation
//	-engine-url remote build engine base URL
//	-engine-timeout remote build timeout (e.g., "5m")
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("packcfg", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var address NetAddress
	var environment, context, projectFile, engineURL string
	var report, gzip, sourceMap bool
	var maxPortAttempts int
	var engineTimeout time.Duration

	fs.Var(&address, "a", "Dev server address host:port")
	fs.StringVar(&environment, "env", "", "Environment: development, production or testing")
	fs.StringVar(&context, "context", "", "Project root directory")
	fs.StringVar(&projectFile, "c", "", "HCL project file path")
	fs.StringVar(&projectFile, "config", "", "HCL project file path (alias)")
	fs.BoolVar(&report, "report", false, "Generate bundle composition report")
	fs.BoolVar(&gzip, "gzip", false, "Emit gzip-compressed assets")
	fs.BoolVar(&sourceMap, "source-map", false, "Emit production source maps")
	fs.IntVar(&maxPortAttempts, "max-port-attempts", 0, "Port negotiation bound")
	fs.StringVar(&engineURL, "engine-url", "", "Remote build engine base URL")
	fs.DurationVar(&engineTimeout, "engine-timeout", 0, "Remote build timeout (e.g., 5m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := &StructuredConfig{}
	var err error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a":
			cfg.Host = address.Host
			cfg.Port = address.Port
		case "env":
			var env Environment
			if env, err = ParseEnvironment(environment); err == nil {
				cfg.Env = env
			}
		case "context":
			cfg.Context = context
		case "c", "config":
			cfg.FilePath = projectFile
		case "report":
			cfg.Report = Bool(report)
		case "gzip":
			cfg.Build.ProductionGzip = Bool(gzip)
		case "source-map":
			cfg.Build.ProductionSourceMap = Bool(sourceMap)
		case "max-port-attempts":
			cfg.Dev.MaxPortAttempts = maxPortAttempts
		case "engine-url":
			cfg.Build.EngineURL = engineURL
		case "engine-timeout":
			cfg.Build.EngineTimeout = engineTimeout
		}
	})
	if err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > maxPort {
		return errors.New("port number is an integer in 1..65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
