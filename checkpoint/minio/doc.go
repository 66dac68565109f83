// Package minio provides a checkpoint store for MinIO and other
// S3-compatible object storage (Ceph, SeaweedFS, Garage).
//
// # Basic Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := miniockpt.NewStore(client, "my-bucket", "results/")
package minio
