// Package main provides the entry point for the confreport CLI.
//
// confreport prints the resolvable configurations of a build project
// together with their attributes and capabilities, read from a snapshot
// file exported by the build.
//
// Usage:
//
//	confreport resolvable snapshot.yaml
//	confreport resolvable --all --recursive snapshot.yaml
//
// See --help for all available options.
package main

// main is the entry point for confreport.
func main() {
	Execute()
}
