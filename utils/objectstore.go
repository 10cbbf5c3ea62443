package utils

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Generated invoices can be archived to an S3-compatible bucket (Cloudflare
// R2) so the shipping desk can share links instead of files. The bucket is
// optional: without the env vars archival is simply reported unconfigured.

var (
	archiveClient     *s3.Client
	archiveBucket     string
	archivePublicBase string
	archiveInitOnce   sync.Once
)

// ArchiveConfigured reports whether the archival bucket env vars are present.
func ArchiveConfigured() bool {
	return os.Getenv("ARCHIVE_BUCKET") != "" && os.Getenv("ARCHIVE_ACCOUNT_ID") != "" && os.Getenv("ARCHIVE_PUBLIC_URL") != ""
}

func initArchive() error {
	var initErr error
	archiveInitOnce.Do(func() {
		archiveBucket = os.Getenv("ARCHIVE_BUCKET")
		accountID := os.Getenv("ARCHIVE_ACCOUNT_ID")
		archivePublicBase = os.Getenv("ARCHIVE_PUBLIC_URL")

		if archiveBucket == "" || accountID == "" || archivePublicBase == "" {
			initErr = fmt.Errorf("missing required archive bucket environment variables")
			return
		}

		endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID)

		customResolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			return aws.Endpoint{
				URL:           endpoint,
				SigningRegion: "auto",
			}, nil
		})

		cfg, err := config.LoadDefaultConfig(context.Background(),
			config.WithRegion("auto"),
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				os.Getenv("ARCHIVE_ACCESS_KEY_ID"),
				os.Getenv("ARCHIVE_SECRET_ACCESS_KEY"),
				"",
			)),
			config.WithEndpointResolverWithOptions(customResolver),
		)
		if err != nil {
			initErr = fmt.Errorf("failed to load archive bucket config: %v", err)
			return
		}

		archiveClient = s3.NewFromConfig(cfg)
	})
	return initErr
}

// ArchivePDF uploads a generated PDF and returns its public URL.
func ArchivePDF(fileBytes []byte, filename string) (string, error) {
	if err := initArchive(); err != nil {
		return "", err
	}

	key := filepath.Base(filename)
	_, err := archiveClient.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(archiveBucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(fileBytes),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to archive PDF: %v", err)
	}

	fileURL := fmt.Sprintf("%s/%s", strings.TrimRight(archivePublicBase, "/"), url.PathEscape(key))
	return fileURL, nil
}

// DeleteArchivedPDF removes an archived PDF by its public URL or bare
// object name.
func DeleteArchivedPDF(fileURL string) error {
	if err := initArchive(); err != nil {
		return err
	}

	u, err := url.Parse(fileURL)
	if err != nil {
		return fmt.Errorf("invalid file URL: %v", err)
	}
	key := filepath.Base(u.Path)

	_, err = archiveClient.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(archiveBucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete archived PDF: %v", err)
	}
	return nil
}
