// Package experiment ties the solvers, the point-set algebra, and the
// checkpoint store into resumable experiment jobs.
//
// Every job is identified by a stable key derived from the suite ID, the
// network size, and the sample index. A job runs in stages and overwrites
// its checkpoint record after every stage, so a crash loses at most the
// stage in flight. A record whose Complete flag is set short-circuits the
// job entirely on rerun.
//
// Campaign fans jobs out over a whole suite of networks with bounded
// concurrency and a batch-level result checkpoint.
package experiment
