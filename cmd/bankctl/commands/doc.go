// Package commands defines the bankctl CLI.
//
// Commands
//
//   - seed-operator  Create an operator account (admin by default)
//   - bank add       Register a remote bank ledger
//   - bank list      List registered banks
//   - transfer       Submit one transfer and print its outcome
//
// The root command loads the environment and builds the same services the
// HTTP server uses before any subcommand runs.
package commands
