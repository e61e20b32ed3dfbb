package service

import (
	"fmt"

	"bridge_tokens/internal/app/port"
	"bridge_tokens/internal/domain/entity"
)

// TokenConfigService generates the per-chain token lists, the summary and the logo tree.
type TokenConfigService struct {
	mappingProvider port.MappingProvider
	chainProvider   port.ChainDefinitionProvider
	writer          port.TokenListWriter
	logoCopier      port.LogoCopier
	projector       *ChainProjector
	recorder        port.RunRecorder
	logger          port.Logger
	summaryFile     string
}

// NewTokenConfigService creates a new instance of TokenConfigService.
func NewTokenConfigService(
	mp port.MappingProvider,
	cp port.ChainDefinitionProvider,
	w port.TokenListWriter,
	lc port.LogoCopier,
	projector *ChainProjector,
	recorder port.RunRecorder,
	l port.Logger,
	summaryFile string,
) *TokenConfigService {
	if summaryFile == "" {
		summaryFile = "tokens.json"
	}
	return &TokenConfigService{
		mappingProvider: mp,
		chainProvider:   cp,
		writer:          w,
		logoCopier:      lc,
		projector:       projector,
		recorder:        recorder,
		logger:          l,
		summaryFile:     summaryFile,
	}
}

// Run executes the whole pipeline and stops at the first error.
func (s *TokenConfigService) Run() (entity.RunReport, error) {
	report := entity.NewRunReport()

	records, err := s.mappingProvider.LoadMappings()
	if err != nil {
		return report, fmt.Errorf("failed to load token mappings: %w", err)
	}
	report.RecordsLoaded = len(records)
	s.recorder.ObserveRecords(len(records))

	chains := s.chainProvider.GetAllChainDefinitions()
	lists := make(map[string]entity.ChainTokenList, len(chains))
	for _, chain := range chains {
		list := s.projector.Project(records, chain)
		lists[chain.SummaryCode] = list

		skipped := len(records) - len(list.Data)
		report.DescriptorsByChain[chain.Identifier] = len(list.Data)
		report.SkippedByChain[chain.Identifier] = skipped
		s.recorder.ObserveDescriptors(chain.Identifier, len(list.Data))
		s.recorder.ObserveSkipped(chain.Identifier, skipped)
	}

	summary := entity.TokenSummary{
		ETH: lists["ETH"].Data,
		MTR: lists["MTR"].Data,
		BNB: lists["BNB"].Data,
	}
	if err := s.writer.WriteSummary(s.summaryFile, summary); err != nil {
		return report, err
	}
	for _, chain := range chains {
		if err := s.writer.WriteChainList(chain.OutputFile, lists[chain.SummaryCode]); err != nil {
			return report, err
		}
	}

	if err := s.logoCopier.LoadResourceLogoSet(); err != nil {
		return report, fmt.Errorf("failed to enumerate resource logos: %w", err)
	}
	outcomes, err := s.logoCopier.CopyTokenLogos(records, chains)
	for _, o := range outcomes {
		report.Record(o)
		s.recorder.ObserveCopy(o.DirCreated, o.LogoCopied)
	}
	if err != nil {
		return report, fmt.Errorf("failed to copy token logos: %w", err)
	}

	s.logger.Info("Token config generated",
		"records", report.RecordsLoaded,
		"dirs_created", report.DirsCreated,
		"logos_copied", report.LogosCopied,
		"logos_skipped", report.LogosSkipped)
	return report, nil
}
