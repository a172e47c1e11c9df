package storage

import (
	"io"
	"net/http"
	"strings"

	"blog/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

type S3Storage struct {
	bucket   string
	prefix   string
	s3Client *s3.S3
}

func NewS3Storage(bucket, prefix string) *S3Storage {
	cfg := aws.NewConfig()
	if config.S3_REGION != "" {
		cfg = cfg.WithRegion(config.S3_REGION)
	}
	if config.S3_ENDPOINT != "" {
		cfg = cfg.WithEndpoint(config.S3_ENDPOINT).WithS3ForcePathStyle(true)
	}
	if config.S3_AUTH != "" {
		parts := strings.SplitN(config.S3_AUTH, ":", 2)
		if len(parts) == 2 {
			cfg = cfg.WithCredentials(credentials.NewStaticCredentials(parts[0], parts[1], ""))
		}
	}
	return &S3Storage{
		bucket:   bucket,
		prefix:   prefix,
		s3Client: s3.New(session.Must(session.NewSession()), cfg),
	}
}

func (s *S3Storage) remotePath(path string) string {
	if s.prefix == "" {
		return path
	}
	return s.prefix + "/" + path
}

func (s *S3Storage) Save(path string, reader io.Reader) (int64, error) {
	uploader := s3manager.NewUploaderWithClient(s.s3Client)
	_, err := uploader.Upload(&s3manager.UploadInput{
		Bucket: &s.bucket,
		Key:    aws.String(s.remotePath(path)),
		Body:   reader,
	})
	// The S3 uploader doesn't report the byte count
	return 0, err
}

func (s *S3Storage) Load(path string, writer io.Writer) (int64, error) {
	resp, err := s.s3Client.GetObject(&s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(s.remotePath(path)),
	})
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return io.Copy(writer, resp.Body)
}

func (s *S3Storage) Serve(path string, request *http.Request, writer http.ResponseWriter) {
	if _, err := s.Load(path, writer); err != nil {
		writer.WriteHeader(http.StatusNotFound)
	}
}

func (s *S3Storage) Delete(path string) error {
	_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(s.remotePath(path)),
	})
	return err
}
