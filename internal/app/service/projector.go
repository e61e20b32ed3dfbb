package service

import (
	"strings"

	"bridge_tokens/internal/app/port"
	"bridge_tokens/internal/domain/entity"

	"github.com/ethereum/go-ethereum/common"
)

const (
	nativeSymbol     = "ETH"
	tokenProxySymbol = "UTU"
	logoFileName     = "logo.png"
)

// ChainProjector turns mapping records into a chain's token list.
type ChainProjector struct {
	imageBaseURL string
	logger       port.Logger
}

// NewChainProjector creates a projector building image URIs under imageBaseURL.
func NewChainProjector(imageBaseURL string, logger port.Logger) *ChainProjector {
	return &ChainProjector{
		imageBaseURL: strings.TrimRight(imageBaseURL, "/"),
		logger:       logger,
	}
}

// ImageURI returns <base>/<resourceID>/logo.png.
func ImageURI(base, resourceID string) string {
	return strings.TrimRight(base, "/") + "/" + resourceID + "/" + logoFileName
}

// Project builds the token list for chain, preserving record order.
// Records with no address, name and symbol on this chain are left out.
func (p *ChainProjector) Project(records []entity.MappingRecord, chain entity.ChainDefinition) entity.ChainTokenList {
	list := entity.ChainTokenList{Data: make([]entity.TokenDescriptor, 0, len(records))}

	for i, record := range records {
		resourceID := record.String(chain.Fields.ResourceID)
		token := entity.TokenDescriptor{
			Address:    record.String(chain.Fields.Address),
			Name:       record.String(chain.Fields.Name),
			Symbol:     record.String(chain.Fields.Symbol),
			ImageURI:   ImageURI(p.imageBaseURL, resourceID),
			Native:     false,
			ResourceID: resourceID,
		}

		if token.Address == "" && token.Name == "" && token.Symbol == "" {
			p.logger.Debug("No address, name or symbol for chain, skipping record",
				"chain", chain.Identifier, "index", i, "resource_id", resourceID)
			continue
		}

		if token.Symbol == nativeSymbol {
			token.Native = true
			if chain.HasNativeDecimals() {
				if decimals, ok := record.Value(chain.NativeDecimalsField); ok {
					token.NativeDecimals = decimals
				}
			}
		}

		if token.Symbol == tokenProxySymbol && chain.HasTokenProxy() {
			if proxy, ok := record.Value(chain.TokenProxyField); ok {
				token.TokenProxy = proxy
			}
		}

		if token.Address != "" && !common.IsHexAddress(token.Address) {
			p.logger.Warn("Token address is not a 20-byte hex address",
				"chain", chain.Identifier, "symbol", token.Symbol, "address", token.Address)
		}

		list.Data = append(list.Data, token)
	}

	p.logger.Info("Token list projected",
		"chain", chain.Identifier,
		"tokens", len(list.Data),
		"skipped", len(records)-len(list.Data))
	return list
}
