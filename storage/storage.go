// Package storage keeps post image attachments on local disk or in a S3
// bucket, selected by configuration.
package storage

import (
	"errors"
	"io"
	"log"
	"net/http"

	"blog/config"
)

type StorageAPI interface {
	Save(path string, reader io.Reader) (int64, error)
	Load(path string, writer io.Writer) (int64, error)
	Serve(path string, request *http.Request, writer http.ResponseWriter)
	Delete(path string) error
}

var active StorageAPI

func Init() {
	if config.S3_BUCKET != "" {
		active = NewS3Storage(config.S3_BUCKET, config.S3_PREFIX)
		log.Printf("Storage: S3 bucket %s", config.S3_BUCKET)
		return
	}
	if config.UPLOADS_DIR != "" {
		active = NewDiskStorage(config.UPLOADS_DIR)
		log.Printf("Storage: local dir %s", config.UPLOADS_DIR)
		return
	}
	log.Print("Storage: not configured, image uploads disabled")
}

// Get returns the configured storage or an error when image uploads are
// disabled.
func Get() (StorageAPI, error) {
	if active == nil {
		return nil, errors.New("no storage configured")
	}
	return active, nil
}
