// Package model defines the core value types shared across fixgo:
// points, seeds, run statuses, and test networks.
package model
