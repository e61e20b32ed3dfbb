package logocopier

import (
	"fmt"
	"path/filepath"
	"strings"

	"bridge_tokens/internal/app/port"
	"bridge_tokens/internal/domain/entity"
	"bridge_tokens/internal/pkg/utils"

	"github.com/patrickmn/go-cache"
	"github.com/spf13/afero"
)

const (
	defaultLogoStoreDir = "data/resource-logos"
	logoFileName        = "logo.png"
	dirPerm             = 0o755
	filePerm            = 0o644
)

// FileCopier implements port.LogoCopier. All paths are relative to the root of fs.
type FileCopier struct {
	fs           afero.Fs
	logoStoreDir string
	logger       port.Logger

	resourceDirs map[string]struct{}
	logoBytes    *cache.Cache // resource id -> []byte, lives for one run
}

// NewCopier creates a FileCopier reading logos from logoStoreDir.
func NewCopier(fs afero.Fs, logoStoreDir string, logger port.Logger) *FileCopier {
	if logoStoreDir == "" {
		logoStoreDir = defaultLogoStoreDir
	}
	return &FileCopier{
		fs:           fs,
		logoStoreDir: logoStoreDir,
		logger:       logger,
		logoBytes:    cache.New(cache.NoExpiration, 0),
	}
}

// LoadResourceLogoSet enumerates the resource id directories in the logo store.
func (c *FileCopier) LoadResourceLogoSet() error {
	entries, err := afero.ReadDir(c.fs, c.logoStoreDir)
	if err != nil {
		return fmt.Errorf("failed to read logo store %s: %w", c.logoStoreDir, err)
	}

	dirs := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			dirs[entry.Name()] = struct{}{}
		}
	}
	c.resourceDirs = dirs
	c.logger.Info("Resource logo directories loaded", "count", len(dirs), "path", c.logoStoreDir)
	return nil
}

// HasResource reports whether resourceID has a directory in the logo store.
func (c *FileCopier) HasResource(resourceID string) bool {
	_, ok := c.resourceDirs[resourceID]
	return ok
}

// DestDir returns <chain.LogoDir>/<lower-cased address>.
func DestDir(chain entity.ChainDefinition, address string) string {
	return filepath.Join(chain.LogoDir, strings.ToLower(address))
}

// CopyTokenLogos copies each record's logo into every chain where the record has an address.
// Every resource id is checked against the logo store before anything is written.
func (c *FileCopier) CopyTokenLogos(records []entity.MappingRecord, chains []entity.ChainDefinition) ([]entity.CopyOutcome, error) {
	if c.resourceDirs == nil {
		if err := c.LoadResourceLogoSet(); err != nil {
			return nil, err
		}
	}

	for _, record := range records {
		if !hasAnyAddress(record, chains) {
			continue
		}
		if resourceID := record.ResourceID(); !c.HasResource(resourceID) {
			return nil, c.notFound(resourceID)
		}
	}

	var outcomes []entity.CopyOutcome
	for _, record := range records {
		resourceID := record.ResourceID()
		for _, chain := range chains {
			address := record.String(chain.Fields.Address)
			if address == "" {
				continue
			}
			outcome, err := c.Copy(resourceID, DestDir(chain, address))
			if err != nil {
				return outcomes, fmt.Errorf("failed to copy logo for %s token %s: %w", chain.Identifier, address, err)
			}
			outcomes = append(outcomes, outcome)
		}
	}
	return outcomes, nil
}

// Copy places <logo store>/<resourceID>/logo.png into destDir unless a logo is already there.
// destDir is created when missing, but its parent must exist.
func (c *FileCopier) Copy(resourceID, destDir string) (entity.CopyOutcome, error) {
	outcome := entity.CopyOutcome{DestDir: destDir}

	if !c.HasResource(resourceID) {
		return outcome, c.notFound(resourceID)
	}

	dirExists, err := utils.Exists(c.fs, destDir)
	if err != nil {
		return outcome, fmt.Errorf("failed to stat %s: %w", destDir, err)
	}
	if dirExists {
		c.logger.Info("Destination exists, skip make", "path", destDir)
	} else {
		c.logger.Info("Destination doesn't exist, will make this dir", "path", destDir)
		if err := c.fs.Mkdir(destDir, dirPerm); err != nil {
			return outcome, fmt.Errorf("failed to create %s: %w", destDir, err)
		}
		outcome.DirCreated = true
	}

	logoPath := filepath.Join(destDir, logoFileName)
	logoExists, err := utils.Exists(c.fs, logoPath)
	if err != nil {
		return outcome, fmt.Errorf("failed to stat %s: %w", logoPath, err)
	}
	if logoExists {
		c.logger.Info("Logo exists, skip write logo", "logo", logoPath)
		return outcome, nil
	}

	c.logger.Info("Logo doesn't exist, will write logo in", "logo", logoPath, "resource_id", resourceID)
	logo, err := c.sourceLogo(resourceID)
	if err != nil {
		return outcome, err
	}
	if err := afero.WriteFile(c.fs, logoPath, logo, filePerm); err != nil {
		return outcome, fmt.Errorf("failed to write %s: %w", logoPath, err)
	}
	outcome.LogoCopied = true
	return outcome, nil
}

func (c *FileCopier) sourceLogo(resourceID string) ([]byte, error) {
	if cached, ok := c.logoBytes.Get(resourceID); ok {
		return cached.([]byte), nil
	}
	src := filepath.Join(c.logoStoreDir, resourceID, logoFileName)
	logo, err := afero.ReadFile(c.fs, src)
	if err != nil {
		return nil, fmt.Errorf("failed to read source logo %s: %w", src, err)
	}
	c.logoBytes.Set(resourceID, logo, cache.NoExpiration)
	return logo, nil
}

func (c *FileCopier) notFound(resourceID string) error {
	return fmt.Errorf("can not find the %q directory in %s: %w", resourceID, c.logoStoreDir, entity.ErrResourceNotFound)
}

func hasAnyAddress(record entity.MappingRecord, chains []entity.ChainDefinition) bool {
	for _, chain := range chains {
		if record.String(chain.Fields.Address) != "" {
			return true
		}
	}
	return false
}

var _ port.LogoCopier = (*FileCopier)(nil)
