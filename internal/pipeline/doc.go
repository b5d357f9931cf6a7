// Package pipeline runs the steps that turn a snapshot file into a
// configuration report: load, resolve options, build.
//
// A Pipeline handles one snapshot. BatchProcessor runs one pipeline per
// snapshot file concurrently and returns the jobs in argument order, so the
// printed output does not depend on scheduling.
package pipeline
