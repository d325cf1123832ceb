// Package config provides configuration loading, merging, and validation
// facilities for the friend-library server and CLI client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags (server only)
//  3. JSON config file
//
// Fields left unset by every source receive defaults: a SQLite file named
// users.db, the listen address ":" + $PORT (or ":5000"), a 21-day default
// loan length and a randomly generated session sign key.
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the CLI client.
package config
