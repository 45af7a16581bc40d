// Package s3util provides S3 object and prefix helpers over a narrow client
// interface, mirroring how the local file helpers work.
package s3util

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	toolbelterrors "toolbelt.dev/toolbelt/internal/errors"
	"toolbelt.dev/toolbelt/internal/fileutil"
)

// Client is the slice of the S3 API the toolbelt uses.
type Client interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// Compile-time check that the SDK client satisfies the interface
var _ Client = (*s3.Client)(nil)

// ObjectExists reports whether an object exists in a bucket, optionally under
// a prefix.
func ObjectExists(ctx context.Context, client Client, bucket, name, prefix string) (bool, error) {
	if fileutil.IsBlank(name) {
		return false, toolbelterrors.ErrBlankFilename
	}

	key := JoinKey(prefix, name)
	_, err := client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *s3types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check s3://%s/%s: %w", bucket, key, err)
	}
	return true, nil
}

// PrefixExists reports whether any object lives under a prefix in a bucket.
func PrefixExists(ctx context.Context, client Client, bucket, prefix string) (bool, error) {
	out, err := client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(bucket),
		Prefix:  aws.String(EnsureSlash(prefix)),
		MaxKeys: aws.Int32(1),
	})
	if err != nil {
		return false, fmt.Errorf("failed to list s3://%s/%s: %w", bucket, prefix, err)
	}
	return aws.ToInt32(out.KeyCount) > 0, nil
}

// EnsurePrefix creates a zero-byte prefix marker. S3 has a flat namespace, so
// this is how the console materializes an empty "folder".
func EnsurePrefix(ctx context.Context, client Client, bucket, prefix string) error {
	_, err := client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(EnsureSlash(prefix)),
		Body:   bytes.NewReader(nil),
	})
	if err != nil {
		return fmt.Errorf("failed to create prefix s3://%s/%s: %w", bucket, prefix, err)
	}
	return nil
}

// Upload copies a local file into a bucket and returns the console URL of the
// uploaded object. The key defaults to the local filename when name is empty.
func Upload(ctx context.Context, client Client, bucket, region, localPath, prefix, name string) (string, error) {
	if name == "" {
		name = filepath.Base(localPath)
	}
	key := JoinKey(prefix, name)

	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", localPath, err)
	}
	defer f.Close()

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   f,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to s3://%s/%s: %w", localPath, bucket, key, err)
	}

	return ConsoleURL(bucket, region, key), nil
}

// Download copies an object to a local path, creating parent directories.
// The local filename defaults to the object name.
func Download(ctx context.Context, client Client, bucket, key, localDir, localName string) (string, error) {
	if localName == "" {
		localName = filepath.Base(key)
	}
	if err := fileutil.EnsureDir(localDir); err != nil {
		return "", err
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get s3://%s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()

	localPath := filepath.Join(localDir, localName)
	f, err := os.Create(localPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, out.Body); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", localPath, err)
	}
	return localPath, nil
}

// ConsoleURL renders the AWS console link for an object.
func ConsoleURL(bucket, region, key string) string {
	return fmt.Sprintf("https://s3.console.aws.amazon.com/s3/object/%s?region=%s&prefix=%s", bucket, region, key)
}
