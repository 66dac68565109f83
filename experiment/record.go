package experiment

import (
	"time"

	"github.com/hupe1980/fixgo/compare"
	"github.com/hupe1980/fixgo/model"
	"github.com/hupe1980/fixgo/solver"
)

// TraverseRecord is the summary of one traverse job. It is written after
// every stage: first the raw run, then post-processing, then coverage.
// Complete is set only by the final stage.
type TraverseRecord struct {
	Key    string `json:"key"`
	N      int    `json:"n"`
	Sample int    `json:"sample"`

	// Raw run stage.
	Status     model.Status  `json:"status"`
	Runtime    time.Duration `json:"runtime"`
	Steps      int           `json:"steps"`
	PathLength float64       `json:"path_length"`
	MinSMin    float64       `json:"min_s_min"`
	RawCount   int           `json:"raw_count"`

	// Post-processing stage.
	PostRuntime time.Duration `json:"post_runtime"`
	UniqueCount int           `json:"unique_count"`

	// Coverage stage.
	KnownFound int `json:"known_found"`

	Complete bool `json:"complete"`
}

// TraverseArrays holds the bulky outputs of a traverse job, stored under
// the job's arrays key.
type TraverseArrays struct {
	Unique []model.Point       `json:"unique"`
	Trace  []solver.TracePoint `json:"trace,omitempty"`
}

// BaselineRecord is the summary of one baseline job. The timeout is the
// companion traverse record's runtime, so both solvers get equal budget.
type BaselineRecord struct {
	Key    string `json:"key"`
	N      int    `json:"n"`
	Sample int    `json:"sample"`

	Timeout  time.Duration `json:"timeout"`
	Runtime  time.Duration `json:"runtime"`
	Restarts int           `json:"restarts"`
	RawCount int           `json:"raw_count"`

	PostRuntime time.Duration `json:"post_runtime"`
	UniqueCount int           `json:"unique_count"`

	KnownFound int `json:"known_found"`

	Complete bool `json:"complete"`
}

// BaselineArrays holds the deduplicated points of a baseline job.
type BaselineArrays struct {
	Unique []model.Point `json:"unique"`
}

// ComparisonRecord is the summary of one traverse-vs-baseline comparison.
// Side A of the report is the traverse set, side B the baseline set.
type ComparisonRecord struct {
	Key    string `json:"key"`
	N      int    `json:"n"`
	Sample int    `json:"sample"`

	compare.Report

	Complete bool `json:"complete"`
}

// DiscoveryRecord is the summary of one frontier discovery job.
type DiscoveryRecord struct {
	Key    string `json:"key"`
	N      int    `json:"n"`
	Sample int    `json:"sample"`

	Runtime     time.Duration `json:"runtime"`
	Runs        int           `json:"runs"`
	ClosedLoops int           `json:"closed_loops"`
	FoundCount  int           `json:"found_count"`
	KnownFound  int           `json:"known_found"`

	Complete bool `json:"complete"`
}

// DiscoveryArrays holds the full found set of a discovery job.
type DiscoveryArrays struct {
	Found []model.Point `json:"found"`
}
