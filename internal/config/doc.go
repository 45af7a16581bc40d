// Package config holds the cluster nickname registry.
//
// A nickname maps to the AWS identifier of an RDS or Redshift cluster and the
// Secrets Manager entry holding its password. Built-in nicknames ship with the
// toolbelt; extra clusters load from ~/.toolbelt/clusters.yaml and TOOLBELT_
// prefixed environment variables. A .env file is auto-loaded when present.
package config
