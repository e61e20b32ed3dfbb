package entity

// FieldTitles maps the logical token fields to the titles used as keys in a MappingRecord.
type FieldTitles struct {
	Address    string `json:"address" yaml:"address"`
	Name       string `json:"name" yaml:"name"`
	Symbol     string `json:"symbol" yaml:"symbol"`
	ResourceID string `json:"resourceId" yaml:"resourceId"`
}

// ChainDefinition holds everything needed to project and publish one chain's token list.
// An empty NativeDecimalsField or TokenProxyField means the chain has no such capability.
type ChainDefinition struct {
	Identifier          string      `json:"identifier" yaml:"identifier"` // e.g. "eth", also the logo directory segment
	Name                string      `json:"name" yaml:"name"`
	SummaryCode         string      `json:"summaryCode" yaml:"summaryCode"` // key in tokens.json: ETH, MTR, BNB
	OutputFile          string      `json:"outputFile" yaml:"outputFile"`
	LogoDir             string      `json:"logoDir" yaml:"logoDir"`
	Fields              FieldTitles `json:"fields" yaml:"fields"`
	NativeDecimalsField string      `json:"nativeDecimalsField,omitempty" yaml:"nativeDecimalsField,omitempty"`
	TokenProxyField     string      `json:"tokenProxyField,omitempty" yaml:"tokenProxyField,omitempty"`
}

// HasNativeDecimals reports whether the chain publishes nativeDecimals for its native token.
func (c ChainDefinition) HasNativeDecimals() bool {
	return c.NativeDecimalsField != ""
}

// HasTokenProxy reports whether the chain publishes a token proxy address.
func (c ChainDefinition) HasTokenProxy() bool {
	return c.TokenProxyField != ""
}
