package networkdefinition

import (
	"strings"

	"bridge_tokens/internal/app/port"
	"bridge_tokens/internal/domain/entity"
)

// ChainDefinitionProvider provides the chains token lists are generated for.
type ChainDefinitionProvider struct {
	logger    port.Logger
	chainDefs []entity.ChainDefinition
}

// Predefined chain definitions
var ( //nolint:gochecknoglobals // Global for definitions
	Ethereum = entity.ChainDefinition{
		Identifier:  "eth",
		Name:        "Ethereum",
		SummaryCode: "ETH",
		OutputFile:  "eth.json",
		LogoDir:     "tokens/eth",
		Fields: entity.FieldTitles{
			Address:    "Ethereum Token Address",
			Name:       "Ethereum Token Name",
			Symbol:     "Ethereum Token Symbol",
			ResourceID: entity.ResourceIDTitle,
		},
		NativeDecimalsField: "Ethereum Token Decimals",
	}
	Meter = entity.ChainDefinition{
		Identifier:  "meter",
		Name:        "Meter",
		SummaryCode: "MTR",
		OutputFile:  "meter.json",
		LogoDir:     "tokens/meter",
		Fields: entity.FieldTitles{
			Address:    "Meter Token Address",
			Name:       "Meter Token Name",
			Symbol:     "Meter Token Symbol",
			ResourceID: entity.ResourceIDTitle,
		},
	}
	BSC = entity.ChainDefinition{
		Identifier:  "bsc",
		Name:        "BNB Smart Chain",
		SummaryCode: "BNB",
		OutputFile:  "bsc.json",
		LogoDir:     "tokens/bsc",
		Fields: entity.FieldTitles{
			Address:    "BSC Token Address",
			Name:       "BSC Token Name",
			Symbol:     "BSC Token Symbol",
			ResourceID: entity.ResourceIDTitle,
		},
		TokenProxyField: "BSC Token Proxy",
	}
)

// NewChainDefinitionProvider creates a provider over Ethereum, Meter and BSC, in that order.
func NewChainDefinitionProvider(log port.Logger) *ChainDefinitionProvider {
	p := &ChainDefinitionProvider{
		logger:    log,
		chainDefs: []entity.ChainDefinition{Ethereum, Meter, BSC},
	}
	for _, def := range p.chainDefs {
		p.logger.Debug("Chain definition registered",
			"chain", def.Identifier,
			"summary_code", def.SummaryCode,
			"output_file", def.OutputFile,
			"native_decimals", def.HasNativeDecimals(),
			"token_proxy", def.HasTokenProxy())
	}
	return p
}

// GetAllChainDefinitions returns a copy of the chain definitions in output order.
func (p *ChainDefinitionProvider) GetAllChainDefinitions() []entity.ChainDefinition {
	if p == nil {
		return []entity.ChainDefinition{}
	}
	defsCopy := make([]entity.ChainDefinition, len(p.chainDefs))
	copy(defsCopy, p.chainDefs)
	return defsCopy
}

// GetChainDefinitionByName looks a chain up by identifier ("bsc") or summary code ("BNB"), case-insensitively.
func (p *ChainDefinitionProvider) GetChainDefinitionByName(nameOrCode string) (entity.ChainDefinition, bool) {
	if p == nil {
		return entity.ChainDefinition{}, false
	}
	for _, def := range p.chainDefs {
		if strings.EqualFold(def.Identifier, nameOrCode) || strings.EqualFold(def.SummaryCode, nameOrCode) {
			return def, true
		}
	}
	return entity.ChainDefinition{}, false
}
