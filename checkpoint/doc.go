// Package checkpoint provides keyed, overwritable record stores for
// resumable batch execution.
//
// A checkpoint is a durable partial-result record under a caller-chosen
// key. Stores support overwriting an existing key and reading a key if
// present; the key namespace is partitioned per job by the orchestrator,
// so no two jobs ever write the same key concurrently.
//
// Records are encoded with a self-describing header (codec name and
// compression scheme), so any store can read records written with other
// options. Backends: local filesystem (atomic overwrite), in-memory (for
// tests), S3, DynamoDB, and MinIO.
package checkpoint
