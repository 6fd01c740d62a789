// Package config provides configuration loading, merging, and validation
// facilities for the project settings a configuration tree is composed from.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override the fields they set):
//  1. Built-in defaults
//  2. HCL project file
//  3. .env file and environment variables
//  4. Command-line flags
//
// The main entry point is [GetStructuredConfig]. [VarsFor] returns the
// compile-time variable set injected into the bundle for an environment.
package config
