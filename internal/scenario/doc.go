// Package scenario defines the workloads driven by the evq CLI.
//
// A scenario is a named, repeatable exercise of the core primitives
// (queue drain, cleanup, bidir bounce, merge) with a configurable
// iteration count. Configuration follows the usual layering: Default()
// baseline, optional YAML file via Load, then FromEnv overlay of EVQ_*
// variables.
package scenario
