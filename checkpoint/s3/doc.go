// Package s3 provides checkpoint stores backed by Amazon S3 and DynamoDB.
//
// The S3 store keeps one object per checkpoint key; S3 PUT is atomic per
// object, which matches the overwrite-per-stage discipline. The DynamoDB
// store keeps one item per key and suits small, frequently overwritten
// records.
package s3
