// Package commands defines the rdsops CLI and wires dependencies for subcommands.
//
// Commands
//
//   - inventory       List databases by engine version, optionally against Terraform
//   - preflight       Check a database is safe for a blue/green upgrade
//   - params show     Show replication and user-set parameters
//   - params edit     Edit replication parameters interactively
//   - params migrate  Create parameter groups for a major version upgrade
//   - upgrade         Drive a Blue/Green engine upgrade end to end
//   - alarms copy     Copy a database's CloudWatch alarms to new targets
//
// # Implementation
//
// The root command loads configuration, builds the logger and constructs the
// AWS service clients before any subcommand runs, so handlers share one SDK
// configuration and one logger.
package commands
