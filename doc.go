// Package fixgo provides a fixed-point enumeration and comparison harness
// for nonlinear vector maps such as recurrent network dynamics.
//
// Fixgo does not implement the map or the root-finding algorithms themselves.
// It drives external continuation and baseline solvers from seed points,
// merges the returned point clouds into equivalence classes under a caller
// tolerance, and exhausts a frontier of reference points not yet explained
// by what has been found. A second layer fans many such discovery and
// comparison jobs out across workers with checkpointed, resumable
// persistence.
//
// # Packages
//
//   - model: core value types (points, seeds, run statuses, networks)
//   - pointset: equivalence clustering and set algebra under a predicate
//   - discovery: the seeded frontier exploration loop
//   - compare: overlap counts, dispersion statistics, reference coverage
//   - solver: the continuation and baseline solver contracts
//   - checkpoint: keyed, overwritable record stores (local, memory, S3,
//     DynamoDB, MinIO) with optional compression
//   - batch: the worker-pool job orchestrator
//   - experiment: the concrete experiment units and suite campaigns
//
// # Quick start
//
//	store, _ := checkpoint.NewLocalStore("./results")
//	camp := experiment.NewCampaign(store, myTraverseSolver, myBaselineSolver,
//	    func(o *experiment.Options) { o.Workers = 8 },
//	)
//	records, _ := camp.BaselineComparison(ctx, suite)
//
// Each stage of every job overwrites its own checkpoint key, so an
// interrupted batch resumes from the last completed stage when re-run
// against the same store.
package fixgo
