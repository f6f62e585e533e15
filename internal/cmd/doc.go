// Package cmd provides helpers for executing external commands with proper error handling.
//
// This package wraps [os/exec.Cmd] to capture stderr and include it in error
// messages, making command failures more informative for users. All helpers
// take a context so in-flight commands are terminated when the process
// receives a signal, and echo the command line through the context logger
// when debug mode is enabled.
//
// # Design Notes
//
// precommit shells out to git (and to the tools behind external hooks)
// rather than using Go libraries. This approach is simpler, more reliable,
// and ensures compatibility with user configurations (SSH keys, credential
// helpers, PATH setup, etc.).
package cmd
