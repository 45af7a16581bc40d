package awsx

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	rdstypes "github.com/aws/aws-sdk-go-v2/service/rds/types"
	"github.com/aws/aws-sdk-go-v2/service/redshift"
	redshifttypes "github.com/aws/aws-sdk-go-v2/service/redshift/types"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/stretchr/testify/require"

	toolbelterrors "toolbelt.dev/toolbelt/internal/errors"
)

type fakeRDS struct {
	out *rds.DescribeDBClustersOutput
	err error
}

func (f *fakeRDS) DescribeDBClusters(ctx context.Context, params *rds.DescribeDBClustersInput, optFns ...func(*rds.Options)) (*rds.DescribeDBClustersOutput, error) {
	return f.out, f.err
}

type fakeRedshift struct {
	out *redshift.DescribeClustersOutput
	err error
}

func (f *fakeRedshift) DescribeClusters(ctx context.Context, params *redshift.DescribeClustersInput, optFns ...func(*redshift.Options)) (*redshift.DescribeClustersOutput, error) {
	return f.out, f.err
}

type fakeSecrets struct {
	out *secretsmanager.GetSecretValueOutput
	err error
}

func (f *fakeSecrets) GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	return f.out, f.err
}

func rdsCluster(engine string) *rds.DescribeDBClustersOutput {
	return &rds.DescribeDBClustersOutput{
		DBClusters: []rdstypes.DBCluster{{
			Endpoint:       aws.String("writer.cluster.local"),
			ReaderEndpoint: aws.String("reader.cluster.local"),
			Port:           aws.Int32(5432),
			MasterUsername: aws.String("Admin"),
			DatabaseName:   aws.String("events"),
			Engine:         aws.String(engine),
		}},
	}
}

func TestDescribeCluster(t *testing.T) {
	t.Parallel()

	t.Run("returns the RDS writer endpoint", func(t *testing.T) {
		t.Parallel()

		endpoint, err := DescribeCluster(context.Background(), &fakeRDS{out: rdsCluster("aurora-postgresql")}, &fakeRedshift{}, "msp-staging-cluster", false)
		require.NoError(t, err)
		require.Equal(t, "writer.cluster.local", endpoint.Host)
		require.Equal(t, 5432, endpoint.Port)
		require.Equal(t, "Admin", endpoint.User)
		require.Equal(t, "events", endpoint.Database)
		require.Equal(t, "postgresql", endpoint.Dialect)
	})

	t.Run("returns the reader endpoint when read-only", func(t *testing.T) {
		t.Parallel()

		endpoint, err := DescribeCluster(context.Background(), &fakeRDS{out: rdsCluster("aurora-postgresql")}, &fakeRedshift{}, "msp-staging-cluster", true)
		require.NoError(t, err)
		require.Equal(t, "reader.cluster.local", endpoint.Host)
	})

	t.Run("rejects non-postgres RDS engines", func(t *testing.T) {
		t.Parallel()

		_, err := DescribeCluster(context.Background(), &fakeRDS{out: rdsCluster("aurora-mysql")}, &fakeRedshift{}, "msp-staging-cluster", false)
		require.ErrorIs(t, err, toolbelterrors.ErrEngineMismatch)
	})

	t.Run("falls back to Redshift when RDS does not know the cluster", func(t *testing.T) {
		t.Parallel()

		rdsClient := &fakeRDS{err: &rdstypes.DBClusterNotFoundFault{}}
		redshiftClient := &fakeRedshift{out: &redshift.DescribeClustersOutput{
			Clusters: []redshifttypes.Cluster{{
				Endpoint: &redshifttypes.Endpoint{
					Address: aws.String("medicare.redshift.local"),
					Port:    aws.Int32(5439),
				},
				MasterUsername: aws.String("awsuser"),
				DBName:         aws.String("medicare"),
			}},
		}}

		endpoint, err := DescribeCluster(context.Background(), rdsClient, redshiftClient, "medicare-events-cluster", false)
		require.NoError(t, err)
		require.Equal(t, "medicare.redshift.local", endpoint.Host)
		require.Equal(t, 5439, endpoint.Port)
		require.Equal(t, "redshift", endpoint.Dialect)
	})

	t.Run("surfaces other RDS errors without falling back", func(t *testing.T) {
		t.Parallel()

		rdsClient := &fakeRDS{err: errors.New("throttled")}
		_, err := DescribeCluster(context.Background(), rdsClient, &fakeRedshift{}, "msp-staging-cluster", false)
		require.ErrorContains(t, err, "throttled")
	})
}

func TestGetSecret(t *testing.T) {
	t.Parallel()

	t.Run("returns the secret string", func(t *testing.T) {
		t.Parallel()

		client := &fakeSecrets{out: &secretsmanager.GetSecretValueOutput{SecretString: aws.String("hunter2")}}
		secret, err := GetSecret(context.Background(), client, "msp/staging-db-password")
		require.NoError(t, err)
		require.Equal(t, "hunter2", secret)
	})

	t.Run("errors on a binary-only secret", func(t *testing.T) {
		t.Parallel()

		client := &fakeSecrets{out: &secretsmanager.GetSecretValueOutput{}}
		_, err := GetSecret(context.Background(), client, "msp/staging-db-password")
		require.ErrorContains(t, err, "no string value")
	})

	t.Run("wraps client errors with the secret name", func(t *testing.T) {
		t.Parallel()

		client := &fakeSecrets{err: errors.New("access denied")}
		_, err := GetSecret(context.Background(), client, "msp/staging-db-password")
		require.ErrorContains(t, err, "msp/staging-db-password")
	})
}
