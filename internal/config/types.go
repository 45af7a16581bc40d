package config

// Cluster maps a nickname to the information needed to locate the cluster and
// its password.
type Cluster struct {
	// Identifier is the cluster name as denoted on AWS RDS or Redshift.
	Identifier string `koanf:"identifier" validate:"required"`

	// PasswordSecret is the Secrets Manager name holding the cluster password.
	PasswordSecret string `koanf:"password_secret" validate:"required"`

	// Region is the AWS region the cluster lives in.
	Region string `koanf:"region"`
}

// Settings holds top-level toolbelt settings.
type Settings struct {
	// Region is the default AWS region, used when a cluster does not set one.
	Region string `koanf:"region"`

	// ResultsDir is where query result CSVs are written.
	ResultsDir string `koanf:"results_dir"`
}
