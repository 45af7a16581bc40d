// Package awsx wraps the AWS SDK calls the toolbelt needs: Secrets Manager
// lookups and RDS/Redshift cluster endpoint discovery. Interfaces are kept
// narrow so tests can substitute fakes.
package awsx

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/redshift"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// SecretsManagerClient is the slice of the Secrets Manager API the toolbelt uses.
type SecretsManagerClient interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// RDSClient is the slice of the RDS API the toolbelt uses.
type RDSClient interface {
	DescribeDBClusters(ctx context.Context, params *rds.DescribeDBClustersInput, optFns ...func(*rds.Options)) (*rds.DescribeDBClustersOutput, error)
}

// RedshiftClient is the slice of the Redshift API the toolbelt uses.
type RedshiftClient interface {
	DescribeClusters(ctx context.Context, params *redshift.DescribeClustersInput, optFns ...func(*redshift.Options)) (*redshift.DescribeClustersOutput, error)
}

// Compile-time checks that the SDK clients satisfy the interfaces
var (
	_ SecretsManagerClient = (*secretsmanager.Client)(nil)
	_ RDSClient            = (*rds.Client)(nil)
	_ RedshiftClient       = (*redshift.Client)(nil)
)

// Clients bundles the AWS service clients for one region.
type Clients struct {
	Secrets  SecretsManagerClient
	RDS      RDSClient
	Redshift RedshiftClient
	S3       *s3.Client
}

// NewClients creates service clients from the ambient AWS credentials
// (environment variables, shared config, instance role).
func NewClients(ctx context.Context, region string) (*Clients, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &Clients{
		Secrets:  secretsmanager.NewFromConfig(cfg),
		RDS:      rds.NewFromConfig(cfg),
		Redshift: redshift.NewFromConfig(cfg),
		S3:       s3.NewFromConfig(cfg),
	}, nil
}
