package awsx

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	rdstypes "github.com/aws/aws-sdk-go-v2/service/rds/types"
	"github.com/aws/aws-sdk-go-v2/service/redshift"

	toolbelterrors "toolbelt.dev/toolbelt/internal/errors"
)

// ClusterEndpoint holds the connection parameters discovered for a cluster.
// The password is looked up separately via Secrets Manager.
type ClusterEndpoint struct {
	Host     string
	Port     int
	User     string
	Database string
	Dialect  string // "postgresql" or "redshift"
}

// DescribeCluster discovers the endpoint of a cluster identifier. RDS is tried
// first; identifiers unknown to RDS fall through to Redshift. When readOnly is
// set and the cluster is in RDS, the reader endpoint is returned.
func DescribeCluster(ctx context.Context, rdsClient RDSClient, redshiftClient RedshiftClient, identifier string, readOnly bool) (ClusterEndpoint, error) {
	endpoint, err := describeRDSCluster(ctx, rdsClient, identifier, readOnly)
	if err == nil {
		return endpoint, nil
	}

	var notFound *rdstypes.DBClusterNotFoundFault
	if !errors.As(err, &notFound) {
		return ClusterEndpoint{}, err
	}

	return describeRedshiftCluster(ctx, redshiftClient, identifier)
}

func describeRDSCluster(ctx context.Context, client RDSClient, identifier string, readOnly bool) (ClusterEndpoint, error) {
	out, err := client.DescribeDBClusters(ctx, &rds.DescribeDBClustersInput{
		DBClusterIdentifier: aws.String(identifier),
	})
	if err != nil {
		return ClusterEndpoint{}, fmt.Errorf("failed to describe RDS cluster %q: %w", identifier, err)
	}
	if len(out.DBClusters) == 0 {
		return ClusterEndpoint{}, fmt.Errorf("RDS returned no clusters for %q", identifier)
	}

	cluster := out.DBClusters[0]

	engine := aws.ToString(cluster.Engine)
	if !strings.Contains(engine, "postgres") {
		return ClusterEndpoint{}, fmt.Errorf("cluster %q runs engine %q: %w", identifier, engine, toolbelterrors.ErrEngineMismatch)
	}

	host := aws.ToString(cluster.Endpoint)
	if readOnly {
		host = aws.ToString(cluster.ReaderEndpoint)
	}

	return ClusterEndpoint{
		Host:     host,
		Port:     int(aws.ToInt32(cluster.Port)),
		User:     aws.ToString(cluster.MasterUsername),
		Database: aws.ToString(cluster.DatabaseName),
		Dialect:  "postgresql",
	}, nil
}

func describeRedshiftCluster(ctx context.Context, client RedshiftClient, identifier string) (ClusterEndpoint, error) {
	out, err := client.DescribeClusters(ctx, &redshift.DescribeClustersInput{
		ClusterIdentifier: aws.String(identifier),
	})
	if err != nil {
		return ClusterEndpoint{}, fmt.Errorf("failed to describe Redshift cluster %q: %w", identifier, err)
	}
	if len(out.Clusters) == 0 {
		return ClusterEndpoint{}, fmt.Errorf("Redshift returned no clusters for %q", identifier)
	}

	cluster := out.Clusters[0]
	if cluster.Endpoint == nil {
		return ClusterEndpoint{}, fmt.Errorf("Redshift cluster %q has no endpoint", identifier)
	}

	return ClusterEndpoint{
		Host:     aws.ToString(cluster.Endpoint.Address),
		Port:     int(aws.ToInt32(cluster.Endpoint.Port)),
		User:     aws.ToString(cluster.MasterUsername),
		Database: aws.ToString(cluster.DBName),
		Dialect:  "redshift",
	}, nil
}
