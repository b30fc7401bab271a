package rules

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/pihole2adguard/teleporter-importer/types"
)

type IRuleFileClient interface {
	Export(ruleEntries []types.RuleEntry, fileName string, header string) error
}

type RuleFileClient struct {
	WorkingFolderPath string
	Logger            *logrus.Logger
}

func NewRuleFileClient(workingFolderPath string, logger *logrus.Logger) *RuleFileClient {
	return &RuleFileClient{
		WorkingFolderPath: workingFolderPath,
		Logger:            logger,
	}
}

// Export writes one Adblock rule per line. The header becomes a leading
// comment using Adblock's "!" comment syntax so the whole file can be
// pasted into Custom Filtering Rules as-is.
func (ruleFileClient *RuleFileClient) Export(ruleEntries []types.RuleEntry, fileName string, header string) error {
	buffer := &bytes.Buffer{}
	if header != "" {
		fmt.Fprintf(buffer, "! %s\n", header)
	}
	for _, ruleEntry := range ruleEntries {
		fmt.Fprintf(buffer, "%s\n", ruleEntry)
	}

	ruleFilePath := filepath.Join(ruleFileClient.WorkingFolderPath, fileName)
	if err := os.WriteFile(ruleFilePath, buffer.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, "writing %s", ruleFilePath)
	}

	ruleFileClient.Logger.Infof("%d rules written to %s", len(ruleEntries), ruleFilePath)
	return nil
}
