package service_test

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"bridge_tokens/internal/app/service"
	"bridge_tokens/internal/domain/entity"
	"bridge_tokens/internal/infrastructure/logocopier"
	networkdefinition "bridge_tokens/internal/infrastructure/network/definition"
	"bridge_tokens/internal/infrastructure/tokenloader"
	"bridge_tokens/internal/infrastructure/tokenwriter"
	"bridge_tokens/internal/pkg/logger"
	"bridge_tokens/internal/pkg/metrics"
	"bridge_tokens/internal/pkg/utils"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const imageBase = "https://raw.githubusercontent.com/meterio/bridge-tokens/master/data/resource-logos"

type fixture struct {
	fs afero.Fs
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, dir := range []string{"data/token_mappings", "data/resource-logos", "tokens/eth", "tokens/meter", "tokens/bsc"} {
		require.NoError(t, fs.MkdirAll(dir, 0o755))
	}
	return &fixture{fs: fs}
}

func (f *fixture) file(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(f.fs, path, []byte(content), 0o644))
}

func (f *fixture) read(t *testing.T, path string) []byte {
	t.Helper()
	data, err := afero.ReadFile(f.fs, path)
	require.NoError(t, err)
	return data
}

func (f *fixture) service() *service.TokenConfigService {
	log := logger.NewSlogAdapter()
	return service.NewTokenConfigService(
		tokenloader.NewMappingLoader(f.fs, "data/token_mappings", "token-list.json", log),
		networkdefinition.NewChainDefinitionProvider(log),
		tokenwriter.NewWriter(f.fs, ".", log),
		logocopier.NewCopier(f.fs, "data/resource-logos", log),
		service.NewChainProjector(imageBase, log),
		metrics.Nop{},
		log,
		"tokens.json",
	)
}

func TestRunSingleEthereumToken(t *testing.T) {
	f := newFixture(t)
	f.file(t, "data/token_mappings/token-list.json", `["tok1"]`)
	f.file(t, "data/token_mappings/tok1.json", `{"Ethereum Token Address":"0xABC","Ethereum Token Name":"Foo","Ethereum Token Symbol":"FOO","Resource ID":"res1"}`)
	f.file(t, "data/resource-logos/res1/logo.png", "PNG")

	report, err := f.service().Run()
	require.NoError(t, err)
	assert.Equal(t, 1, report.RecordsLoaded)
	assert.Equal(t, 1, report.DescriptorsByChain["eth"])
	assert.Equal(t, 1, report.SkippedByChain["meter"])
	assert.Equal(t, 1, report.LogosCopied)

	var eth entity.ChainTokenList
	require.NoError(t, utils.JSON.Unmarshal(f.read(t, "eth.json"), &eth))
	require.Len(t, eth.Data, 1)
	assert.Equal(t, "0xABC", eth.Data[0].Address)
	assert.Equal(t, "Foo", eth.Data[0].Name)
	assert.Equal(t, "FOO", eth.Data[0].Symbol)
	assert.False(t, eth.Data[0].Native)
	assert.Equal(t, imageBase+"/res1/logo.png", eth.Data[0].ImageURI)

	assert.JSONEq(t, `{"data": []}`, string(f.read(t, "meter.json")))
	assert.JSONEq(t, `{"data": []}`, string(f.read(t, "bsc.json")))

	var summary map[string][]entity.TokenDescriptor
	require.NoError(t, utils.JSON.Unmarshal(f.read(t, "tokens.json"), &summary))
	assert.Len(t, summary["ETH"], 1)
	assert.Empty(t, summary["MTR"])
	assert.Empty(t, summary["BNB"])

	assert.Equal(t, "PNG", string(f.read(t, filepath.Join("tokens/eth/0xabc", "logo.png"))))
}

func TestRunIsIdempotent(t *testing.T) {
	f := newFixture(t)
	f.file(t, "data/token_mappings/token-list.json", `["eth", "utu"]`)
	f.file(t, "data/token_mappings/eth.json", `{"Ethereum Token Address":"0x0000000000000000000000000000000000000000","Ethereum Token Name":"Ether","Ethereum Token Symbol":"ETH","Ethereum Token Decimals":18,"Meter Token Address":"0x983147FB73A45FC7F8B4DFA1cd61Bdc7b111E5b6","Meter Token Name":"Ether","Meter Token Symbol":"ETH","Resource ID":"0x01"}`)
	f.file(t, "data/token_mappings/utu.json", `{"BSC Token Address":"0xed00fc7d48b57b81fe65d1ce71c0985e4cf442cb","BSC Token Name":"UTU Coin","BSC Token Symbol":"UTU","BSC Token Proxy":"0xProxy","Resource ID":"0x02"}`)
	f.file(t, "data/resource-logos/0x01/logo.png", "ETH-LOGO")
	f.file(t, "data/resource-logos/0x02/logo.png", "UTU-LOGO")

	first, err := f.service().Run()
	require.NoError(t, err)
	assert.Equal(t, 3, first.LogosCopied)
	assert.Equal(t, 3, first.DirsCreated)

	outputs := map[string][]byte{}
	for _, name := range []string{"tokens.json", "eth.json", "meter.json", "bsc.json"} {
		outputs[name] = f.read(t, name)
	}

	// A changed source logo must not replace one already placed.
	f.file(t, "data/resource-logos/0x01/logo.png", "NEW-ETH-LOGO")

	second, err := f.service().Run()
	require.NoError(t, err)
	assert.Equal(t, 0, second.LogosCopied)
	assert.Equal(t, 3, second.LogosSkipped)
	assert.Equal(t, 0, second.DirsCreated)

	for name, want := range outputs {
		assert.Equal(t, want, f.read(t, name), name)
	}
	assert.Equal(t, "ETH-LOGO", string(f.read(t, "tokens/eth/0x0000000000000000000000000000000000000000/logo.png")))
	assert.Equal(t, "ETH-LOGO", string(f.read(t, "tokens/meter/0x983147fb73a45fc7f8b4dfa1cd61bdc7b111e5b6/logo.png")))
	assert.Equal(t, "UTU-LOGO", string(f.read(t, "tokens/bsc/0xed00fc7d48b57b81fe65d1ce71c0985e4cf442cb/logo.png")))

	var eth, bsc entity.ChainTokenList
	require.NoError(t, utils.JSON.Unmarshal(outputs["eth.json"], &eth))
	require.NoError(t, utils.JSON.Unmarshal(outputs["bsc.json"], &bsc))
	require.Len(t, eth.Data, 1)
	assert.True(t, eth.Data[0].Native)
	assert.Equal(t, "18", fmt.Sprint(eth.Data[0].NativeDecimals))
	require.Len(t, bsc.Data, 1)
	assert.Equal(t, "0xProxy", bsc.Data[0].TokenProxy)
}

func TestRunMissingResourceFailsBeforeAnyLogo(t *testing.T) {
	f := newFixture(t)
	f.file(t, "data/token_mappings/token-list.json", `["a", "b"]`)
	f.file(t, "data/token_mappings/a.json", `{"Ethereum Token Address":"0xAAA","Ethereum Token Symbol":"A","Resource ID":"res-a"}`)
	f.file(t, "data/token_mappings/b.json", `{"Meter Token Address":"0xBBB","Meter Token Symbol":"B","Resource ID":"res-missing"}`)
	f.file(t, "data/resource-logos/res-a/logo.png", "A")

	_, err := f.service().Run()
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrResourceNotFound))
	assert.Contains(t, err.Error(), "res-missing")

	exists, _ := afero.Exists(f.fs, "tokens/eth/0xaaa/logo.png")
	assert.False(t, exists)
}

func TestRunMissingManifest(t *testing.T) {
	f := newFixture(t)

	_, err := f.service().Run()
	require.Error(t, err)

	exists, _ := afero.Exists(f.fs, "tokens.json")
	assert.False(t, exists)
}
