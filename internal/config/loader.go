package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	yamlparser "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	toolbelterrors "toolbelt.dev/toolbelt/internal/errors"
)

// Registry resolves cluster nicknames. Lookups are case-insensitive.
type Registry struct {
	Settings Settings
	clusters map[string]Cluster
}

// DefaultPath returns the clusters file path, honoring TOOLBELT_CLUSTERS_FILE.
func DefaultPath() string {
	if path := os.Getenv("TOOLBELT_CLUSTERS_FILE"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".toolbelt", "clusters.yaml")
}

// Load builds the registry from built-ins, the default clusters file, and
// TOOLBELT_ environment variables.
func Load() (*Registry, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom builds the registry using the given clusters file. A missing file
// is not an error; the built-in clusters still apply.
func LoadFrom(path string) (*Registry, error) {
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yamlparser.Parser()); err != nil {
				return nil, fmt.Errorf("failed to parse clusters file %s: %w", path, err)
			}
		}
	}

	if err := k.Load(env.Provider("TOOLBELT_", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}

	registry := &Registry{
		Settings: Settings{
			Region:     DefaultRegion,
			ResultsDir: DefaultResultsDir,
		},
		clusters: builtinClusters(),
	}

	if region := k.String("region"); region != "" {
		registry.Settings.Region = region
	}
	if resultsDir := k.String("results_dir"); resultsDir != "" {
		registry.Settings.ResultsDir = resultsDir
	}

	fileClusters := map[string]Cluster{}
	if err := k.Unmarshal("clusters", &fileClusters); err != nil {
		return nil, fmt.Errorf("failed to unmarshal clusters: %w", err)
	}

	validate := validator.New()
	for nickname, cluster := range fileClusters {
		if err := validate.Struct(cluster); err != nil {
			return nil, fmt.Errorf("invalid cluster %q: %w", nickname, err)
		}
		registry.clusters[strings.ToLower(nickname)] = cluster
	}

	return registry, nil
}

// clusterEnvFields are the per-cluster keys settable from the environment.
var clusterEnvFields = []string{"identifier", "password_secret", "region"}

// envKey maps a TOOLBELT_ environment variable onto a config key. Cluster
// variables (TOOLBELT_CLUSTERS_<NICKNAME>_<FIELD>) become nested
// clusters.<nickname>.<field> keys; everything else stays flat, so
// TOOLBELT_REGION -> "region". Nicknames may themselves contain underscores,
// which is why the field suffix is matched rather than splitting on "_".
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "TOOLBELT_"))

	rest, ok := strings.CutPrefix(key, "clusters_")
	if !ok {
		return key
	}
	for _, field := range clusterEnvFields {
		if nickname, ok := strings.CutSuffix(rest, "_"+field); ok && nickname != "" {
			return "clusters." + nickname + "." + field
		}
	}
	return key
}

// Lookup resolves a nickname to its cluster, case-insensitively.
func (r *Registry) Lookup(nickname string) (Cluster, error) {
	cluster, ok := r.clusters[strings.ToLower(nickname)]
	if !ok {
		return Cluster{}, toolbelterrors.NewClusterNotFoundError(nickname, r.Nicknames())
	}
	if cluster.Region == "" {
		cluster.Region = r.Settings.Region
	}
	return cluster, nil
}

// Nicknames returns the configured nicknames, sorted.
func (r *Registry) Nicknames() []string {
	names := make([]string, 0, len(r.clusters))
	for name := range r.clusters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
