// Package batch runs collections of independent experiment jobs in parallel
// with bounded concurrency, and persists the outcome list to a checkpoint
// store so an interrupted campaign can resume where it stopped.
//
// Jobs are identified by key. A resumed batch skips every job whose previous
// result succeeded and re-runs only the failures and the jobs never started.
package batch
