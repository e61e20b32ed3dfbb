package port

import "bridge_tokens/internal/domain/entity"

// ChainDefinitionProvider defines the interface for providing chain definitions.
type ChainDefinitionProvider interface {
	// GetAllChainDefinitions returns the published chains in output order (ETH, MTR, BNB).
	GetAllChainDefinitions() []entity.ChainDefinition

	// GetChainDefinitionByName returns a chain by identifier or summary code.
	GetChainDefinitionByName(nameOrCode string) (entity.ChainDefinition, bool)
}
