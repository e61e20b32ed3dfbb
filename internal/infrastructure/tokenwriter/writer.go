package tokenwriter

import (
	"fmt"
	"path/filepath"

	"bridge_tokens/internal/app/port"
	"bridge_tokens/internal/domain/entity"
	"bridge_tokens/internal/pkg/utils"

	"github.com/spf13/afero"
)

// FileWriter implements port.TokenListWriter on an afero filesystem.
type FileWriter struct {
	fs        afero.Fs
	outputDir string
	logger    port.Logger
}

// NewWriter creates a FileWriter placing files under outputDir.
func NewWriter(fs afero.Fs, outputDir string, logger port.Logger) port.TokenListWriter {
	if outputDir == "" {
		outputDir = "."
	}
	return &FileWriter{fs: fs, outputDir: outputDir, logger: logger}
}

// WriteChainList writes {"data": [...]} to fileName.
func (w *FileWriter) WriteChainList(fileName string, list entity.ChainTokenList) error {
	if list.Data == nil {
		list.Data = []entity.TokenDescriptor{}
	}
	return w.write(fileName, list)
}

// WriteSummary writes {"ETH": [...], "MTR": [...], "BNB": [...]} to fileName.
func (w *FileWriter) WriteSummary(fileName string, summary entity.TokenSummary) error {
	if summary.ETH == nil {
		summary.ETH = []entity.TokenDescriptor{}
	}
	if summary.MTR == nil {
		summary.MTR = []entity.TokenDescriptor{}
	}
	if summary.BNB == nil {
		summary.BNB = []entity.TokenDescriptor{}
	}
	return w.write(fileName, summary)
}

func (w *FileWriter) write(fileName string, v any) error {
	path := filepath.Join(w.outputDir, fileName)
	if err := utils.WriteJSON(w.fs, path, v); err != nil {
		return fmt.Errorf("failed to generate %s: %w", fileName, err)
	}
	w.logger.Info(fmt.Sprintf("generate %s success.", fileName), "path", path)
	return nil
}
