// Package cli is the lifeweeks command-line client.
//
// Every command is a one-shot cobra subcommand: the persistent flags are
// resolved into a config, a client is dialled with the stored session and
// the command talks to the server. A failed remote action prints one error
// line naming the action and the process exits non-zero.
//
// Entry point: Execute.
package cli
