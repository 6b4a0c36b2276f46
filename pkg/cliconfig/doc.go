// Package cliconfig loads default CLI flag values from a YAML file, so
// a user running many caveripper invocations against the same cave
// (and the same worker/output preferences) doesn't need to repeat every
// flag by hand. Flags explicitly passed on the command line always
// override the config file.
package cliconfig
