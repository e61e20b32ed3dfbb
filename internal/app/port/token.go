package port

import "bridge_tokens/internal/domain/entity"

// MappingProvider loads the ordered set of token mapping records.
type MappingProvider interface {
	// LoadMappings returns one record per manifest entry, in manifest order.
	LoadMappings() ([]entity.MappingRecord, error)
}

// TokenListWriter persists generated token lists.
type TokenListWriter interface {
	WriteChainList(fileName string, list entity.ChainTokenList) error
	WriteSummary(fileName string, summary entity.TokenSummary) error
}

// LogoCopier places token logos into per-address output directories.
type LogoCopier interface {
	// LoadResourceLogoSet enumerates the resource ids present in the logo store.
	LoadResourceLogoSet() error
	// CopyTokenLogos copies the logo of every record into each chain where it has an address.
	CopyTokenLogos(records []entity.MappingRecord, chains []entity.ChainDefinition) ([]entity.CopyOutcome, error)
}
