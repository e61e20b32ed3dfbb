package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMappingRecordString(t *testing.T) {
	r := MappingRecord{
		"Ethereum Token Symbol":   "FOO",
		"Ethereum Token Decimals": json.Number("18"),
		"Plain Float":             float64(6),
		"Flag":                    true,
		"Null":                    nil,
		"Resource ID":             "0xabc",
	}

	assert.Equal(t, "FOO", r.String("Ethereum Token Symbol"))
	assert.Equal(t, "18", r.String("Ethereum Token Decimals"))
	assert.Equal(t, "6", r.String("Plain Float"))
	assert.Equal(t, "true", r.String("Flag"))
	assert.Equal(t, "", r.String("Null"))
	assert.Equal(t, "", r.String("Missing"))
	assert.Equal(t, "0xabc", r.ResourceID())
}

func TestMappingRecordValue(t *testing.T) {
	r := MappingRecord{"BSC Token Proxy": "0xP"}

	v, ok := r.Value("BSC Token Proxy")
	assert.True(t, ok)
	assert.Equal(t, "0xP", v)

	_, ok = r.Value("")
	assert.False(t, ok)
}

func TestRunReportRecord(t *testing.T) {
	report := NewRunReport()
	report.Record(CopyOutcome{DirCreated: true, LogoCopied: true})
	report.Record(CopyOutcome{})

	assert.Equal(t, 1, report.DirsCreated)
	assert.Equal(t, 1, report.LogosCopied)
	assert.Equal(t, 1, report.LogosSkipped)
}
