// Package resource manages global resource limits shared across a campaign:
// solver worker slots, launch pacing, and a memory budget for in-flight
// trace diagnostics.
package resource
