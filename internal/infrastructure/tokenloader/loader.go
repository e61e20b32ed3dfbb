package tokenloader

import (
	"fmt"
	"path/filepath"

	"bridge_tokens/internal/app/port"
	"bridge_tokens/internal/domain/entity"
	"bridge_tokens/internal/pkg/utils"

	"github.com/spf13/afero"
)

const (
	defaultMappingsDirectoryPath = "data/token_mappings"
	defaultManifestFileName      = "token-list.json"
)

// MappingFileLoader implements the port.MappingProvider interface.
type MappingFileLoader struct {
	fs           afero.Fs
	mappingsDir  string
	manifestFile string
	logger       port.Logger
}

// NewMappingLoader creates a new MappingFileLoader reading from mappingsDir on fs.
// Empty arguments fall back to data/token_mappings and token-list.json.
func NewMappingLoader(fs afero.Fs, mappingsDir, manifestFile string, logger port.Logger) port.MappingProvider {
	if mappingsDir == "" {
		mappingsDir = defaultMappingsDirectoryPath
	}
	if manifestFile == "" {
		manifestFile = defaultManifestFileName
	}
	return &MappingFileLoader{
		fs:           fs,
		mappingsDir:  mappingsDir,
		manifestFile: manifestFile,
		logger:       logger,
	}
}

// LoadMappings reads the manifest, then one <identifier>.json record per entry.
// Any missing or malformed file aborts the load.
func (l *MappingFileLoader) LoadMappings() ([]entity.MappingRecord, error) {
	manifestPath := filepath.Join(l.mappingsDir, l.manifestFile)

	var identifiers []string
	if err := utils.ReadJSON(l.fs, manifestPath, &identifiers); err != nil {
		return nil, fmt.Errorf("failed to load token manifest: %w", err)
	}
	if len(identifiers) == 0 {
		l.logger.Warn("Token manifest lists no tokens", "path", manifestPath)
	}

	records := make([]entity.MappingRecord, 0, len(identifiers))
	for _, id := range identifiers {
		tokenPath := filepath.Join(l.mappingsDir, id+".json")

		var record entity.MappingRecord
		if err := utils.ReadJSON(l.fs, tokenPath, &record); err != nil {
			return nil, fmt.Errorf("failed to load token mapping %q: %w", id, err)
		}
		if record == nil {
			return nil, fmt.Errorf("failed to load token mapping %q: %s is not a JSON object", id, tokenPath)
		}

		if _, ok := record.Value(entity.ResourceIDTitle); !ok {
			l.logger.Warn("Token mapping has no resource id", "token", id, "path", tokenPath)
		}
		l.logger.Debug("Loaded token mapping", "token", id, "resource_id", record.ResourceID())
		records = append(records, record)
	}

	l.logger.Info("Token mappings loaded", "count", len(records), "path", l.mappingsDir)
	return records, nil
}
