package provider

import (
	"bridge_tokens/internal/app/port"
	"bridge_tokens/internal/domain/entity"
)

type mappingProviderImpl struct {
	source       port.MappingProvider
	logger       port.Logger
	mappingCache []entity.MappingRecord
}

// NewMappingProvider wraps source so the mappings are read from disk once per process.
func NewMappingProvider(source port.MappingProvider, logger port.Logger) port.MappingProvider {
	return &mappingProviderImpl{
		source: source,
		logger: logger,
	}
}

// LoadMappings returns the cached records, loading them on first use.
// A failed load is not cached.
func (p *mappingProviderImpl) LoadMappings() ([]entity.MappingRecord, error) {
	if p.mappingCache != nil {
		p.logger.Debug("Returning cached token mappings", "count", len(p.mappingCache))
		return p.mappingCache, nil
	}

	records, err := p.source.LoadMappings()
	if err != nil {
		p.logger.Error("Failed to load token mappings", "error", err)
		return nil, err
	}

	p.mappingCache = records
	p.logger.Debug("Token mappings cached", "count", len(records))
	return records, nil
}
