// Package config provides configuration loading, merging, and validation
// facilities for the heirloom CLI and the development gateway.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON config file
//  3. Environment variables (a .env file in the working directory is loaded
//     first)
//  4. Command-line flag overrides
//
// The main entry points are [GetClientConfig] and [GetGatewayConfig].
package config
