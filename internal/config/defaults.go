package config

// DefaultRegion is used when neither the settings nor a cluster set one.
const DefaultRegion = "us-east-1"

// DefaultResultsDir is the default folder for query result CSVs.
const DefaultResultsDir = "./results"

// builtinClusters are the clusters every install knows about. New shared
// clusters get added here; ad hoc ones belong in clusters.yaml.
func builtinClusters() map[string]Cluster {
	return map[string]Cluster{
		"msp_staging": {
			Identifier:     "msp-staging-cluster",
			PasswordSecret: "msp/staging-db-password",
		},
		"msp_final": {
			Identifier:     "msp-final-cluster",
			PasswordSecret: "msp/final-db-password",
		},
		"medicare_events": {
			Identifier:     "medicare-events-cluster",
			PasswordSecret: "medicare-events/redshift-password",
		},
	}
}
