package experiment

import "fmt"

// Checkpoint keys are partitioned per job: one job owns its key and the
// derived arrays key, and nothing else ever writes them.

// TraverseKey returns the checkpoint key of one traverse job.
func TraverseKey(suite string, n, sample int) string {
	return fmt.Sprintf("traverse_%s_N_%d_s_%d", suite, n, sample)
}

// BaselineKey returns the checkpoint key of one baseline job.
func BaselineKey(suite string, n, sample int) string {
	return fmt.Sprintf("baseline_%s_N_%d_s_%d", suite, n, sample)
}

// ComparisonKey returns the checkpoint key of one traverse-vs-baseline
// comparison job.
func ComparisonKey(suite string, n, sample int) string {
	return fmt.Sprintf("tvb_%s_N_%d_s_%d", suite, n, sample)
}

// DiscoveryKey returns the checkpoint key of one frontier discovery job.
func DiscoveryKey(suite string, n, sample int) string {
	return fmt.Sprintf("discovery_%s_N_%d_s_%d", suite, n, sample)
}

// ArraysKey returns the key under which a job stores its bulky arrays
// (unique points, traces), kept separate from the small summary record.
func ArraysKey(key string) string {
	return key + "_arrays"
}

// SuiteKey returns the key under which a suite of networks is stored.
func SuiteKey(id string) string {
	return "suite_" + id
}

// TraverseBatchKey returns the batch result key of a suite's traverse runs.
func TraverseBatchKey(suite string) string {
	return "traverse_" + suite
}

// BaselineBatchKey returns the batch result key of a suite's baseline runs.
func BaselineBatchKey(suite string) string {
	return "baseline_" + suite
}

// ComparisonBatchKey returns the batch result key of a suite's comparisons.
func ComparisonBatchKey(suite string) string {
	return "tvb_" + suite
}

// DiscoveryBatchKey returns the batch result key of a suite's discovery runs.
func DiscoveryBatchKey(suite string) string {
	return "discovery_" + suite
}
