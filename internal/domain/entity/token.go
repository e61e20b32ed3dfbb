package entity

import (
	"fmt"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

// MappingRecord is one token's raw field data keyed by field title,
// e.g. "Ethereum Token Address" or "Resource ID".
type MappingRecord map[string]any

// ResourceIDTitle is the title shared by every chain to join a record with its logo.
const ResourceIDTitle = "Resource ID"

// Value returns the raw value stored under title.
func (r MappingRecord) Value(title string) (any, bool) {
	if title == "" {
		return nil, false
	}
	v, ok := r[title]
	return v, ok
}

// String returns the value stored under title as a string.
// Absent and null values yield "". Non-string scalars are rendered as JSON text.
func (r MappingRecord) String(title string) string {
	v, ok := r.Value(title)
	if !ok || v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case fmt.Stringer: // json.Number when decoded with UseNumber
		return val.String()
	default:
		b, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(val)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// ResourceID returns the record's logo join key.
func (r MappingRecord) ResourceID() string {
	return r.String(ResourceIDTitle)
}

// TokenDescriptor is the chain-specific output representation of a token.
// Field order matches the published token list format.
type TokenDescriptor struct {
	Address        string `json:"address"`
	Name           string `json:"name"`
	Symbol         string `json:"symbol"`
	ImageURI       string `json:"imageUri"`
	Native         bool   `json:"native"`
	ResourceID     string `json:"resourceId"`
	NativeDecimals any    `json:"nativeDecimals,omitempty"`
	TokenProxy     any    `json:"tokenProxy,omitempty"`
}

// ChainTokenList wraps the descriptors of one chain, as written to eth.json, meter.json and bsc.json.
type ChainTokenList struct {
	Data []TokenDescriptor `json:"data"`
}

// TokenSummary is the combined tokens.json document keyed by chain code.
type TokenSummary struct {
	ETH []TokenDescriptor `json:"ETH"`
	MTR []TokenDescriptor `json:"MTR"`
	BNB []TokenDescriptor `json:"BNB"`
}
