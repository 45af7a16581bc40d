package s3util

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/require"

	toolbelterrors "toolbelt.dev/toolbelt/internal/errors"
)

// fakeS3 is an in-memory bucket keyed by object key.
type fakeS3 struct {
	objects map[string]string
	puts    []string
}

func newFakeS3(objects map[string]string) *fakeS3 {
	if objects == nil {
		objects = map[string]string{}
	}
	return &fakeS3{objects: objects}
}

func (f *fakeS3) HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	if _, ok := f.objects[aws.ToString(params.Key)]; !ok {
		return nil, &s3types.NotFound{}
	}
	return &s3.HeadObjectOutput{}, nil
}

func (f *fakeS3) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	body, ok := f.objects[aws.ToString(params.Key)]
	if !ok {
		return nil, &s3types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	key := aws.ToString(params.Key)
	f.objects[key] = string(data)
	f.puts = append(f.puts, key)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	var count int32
	for key := range f.objects {
		if strings.HasPrefix(key, aws.ToString(params.Prefix)) {
			count++
		}
	}
	return &s3.ListObjectsV2Output{KeyCount: aws.Int32(count)}, nil
}

func TestEnsureSlash(t *testing.T) {
	t.Parallel()

	require.Equal(t, "reports/", EnsureSlash("reports"))
	require.Equal(t, "reports/", EnsureSlash("reports/"))
	require.Equal(t, "", EnsureSlash(""))
}

func TestJoinKey(t *testing.T) {
	t.Parallel()

	require.Equal(t, "data.csv", JoinKey("", "data.csv"))
	require.Equal(t, "reports/data.csv", JoinKey("reports", "data.csv"))
	require.Equal(t, "reports/data.csv", JoinKey("reports/", "data.csv"))
}

func TestObjectExists(t *testing.T) {
	t.Parallel()

	client := newFakeS3(map[string]string{"reports/data.csv": "x"})

	t.Run("finds an object under a prefix", func(t *testing.T) {
		t.Parallel()
		exists, err := ObjectExists(context.Background(), client, "bucket", "data.csv", "reports")
		require.NoError(t, err)
		require.True(t, exists)
	})

	t.Run("missing object is not an error", func(t *testing.T) {
		t.Parallel()
		exists, err := ObjectExists(context.Background(), client, "bucket", "missing.csv", "")
		require.NoError(t, err)
		require.False(t, exists)
	})

	t.Run("blank names are rejected", func(t *testing.T) {
		t.Parallel()
		_, err := ObjectExists(context.Background(), client, "bucket", "", "")
		require.ErrorIs(t, err, toolbelterrors.ErrBlankFilename)
	})
}

func TestPrefixExists(t *testing.T) {
	t.Parallel()

	client := newFakeS3(map[string]string{"reports/data.csv": "x"})

	exists, err := PrefixExists(context.Background(), client, "bucket", "reports")
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = PrefixExists(context.Background(), client, "bucket", "archive")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestEnsurePrefix(t *testing.T) {
	t.Parallel()

	client := newFakeS3(nil)
	require.NoError(t, EnsurePrefix(context.Background(), client, "bucket", "reports"))
	require.Equal(t, []string{"reports/"}, client.puts)
}

func TestUpload(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	localPath := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(localPath, []byte("id,name\n"), 0o600))

	client := newFakeS3(nil)
	url, err := Upload(context.Background(), client, "bucket", "us-east-1", localPath, "reports", "")
	require.NoError(t, err)
	require.Equal(t, "id,name\n", client.objects["reports/data.csv"])
	require.Contains(t, url, "prefix=reports/data.csv")

	t.Run("missing local file", func(t *testing.T) {
		t.Parallel()
		_, err := Upload(context.Background(), client, "bucket", "us-east-1", filepath.Join(dir, "nope.csv"), "", "")
		require.Error(t, err)
	})
}

func TestDownload(t *testing.T) {
	t.Parallel()

	client := newFakeS3(map[string]string{"reports/data.csv": "id,name\n"})
	localDir := filepath.Join(t.TempDir(), "results")

	path, err := Download(context.Background(), client, "bucket", "reports/data.csv", localDir, "")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(localDir, "data.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "id,name\n", string(data))
}
