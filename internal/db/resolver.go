package db

import (
	"context"

	"github.com/rs/zerolog"

	"toolbelt.dev/toolbelt/internal/awsx"
	"toolbelt.dev/toolbelt/internal/config"
	"toolbelt.dev/toolbelt/pkg/logging"
)

// Resolver turns cluster nicknames into connection details by combining the
// registry, cluster endpoint discovery, and Secrets Manager.
type Resolver struct {
	registry *config.Registry
	secrets  awsx.SecretsManagerClient
	rds      awsx.RDSClient
	redshift awsx.RedshiftClient
	log      zerolog.Logger
}

// NewResolver creates a Resolver.
func NewResolver(registry *config.Registry, clients *awsx.Clients) *Resolver {
	return &Resolver{
		registry: registry,
		secrets:  clients.Secrets,
		rds:      clients.RDS,
		redshift: clients.Redshift,
		log:      logging.New("resolver"),
	}
}

// Resolve looks up a nickname and returns ready-to-connect details.
func (r *Resolver) Resolve(ctx context.Context, nickname string, readOnly bool) (ConnectionDetails, error) {
	cluster, err := r.registry.Lookup(nickname)
	if err != nil {
		return ConnectionDetails{}, err
	}

	r.log.Debug().Str("nickname", nickname).Str("identifier", cluster.Identifier).Msg("resolving cluster")

	endpoint, err := awsx.DescribeCluster(ctx, r.rds, r.redshift, cluster.Identifier, readOnly)
	if err != nil {
		return ConnectionDetails{}, err
	}

	password, err := awsx.GetSecret(ctx, r.secrets, cluster.PasswordSecret)
	if err != nil {
		return ConnectionDetails{}, err
	}

	return ConnectionDetails{
		Host:     endpoint.Host,
		Port:     endpoint.Port,
		User:     endpoint.User,
		Password: password,
		Database: endpoint.Database,
		Dialect:  endpoint.Dialect,
	}, nil
}
