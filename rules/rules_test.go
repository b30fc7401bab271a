package rules

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pihole2adguard/teleporter-importer/types"
)

func TestRuleFileClient_Export(t *testing.T) {
	workingFolder := t.TempDir()
	ruleFileClient := NewRuleFileClient(workingFolder, logrus.New())

	ruleEntries := []types.RuleEntry{
		"@@||a.example.com^",
		"@@||b.example.com^",
		"@@||c.example.com^",
		"||d.example.com^",
		"||e.example.com^",
		"||f.example.com^",
		"||g.example.com^",
		"||h.example.com^",
	}

	err := ruleFileClient.Export(ruleEntries, "custom_filters.txt", "Custom filtering rules (8 rules)")
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(workingFolder, "custom_filters.txt"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "! Custom filtering rules (8 rules)", lines[0])
	assert.Equal(t, "@@||a.example.com^", lines[1])
	assert.Equal(t, "||h.example.com^", lines[8])

	ruleLines := lines[1:]
	assert.Len(t, ruleLines, 8, "3 allow + 5 block entries must produce 8 rule lines")
}

func TestRuleFileClient_Export_NoHeader(t *testing.T) {
	workingFolder := t.TempDir()
	ruleFileClient := NewRuleFileClient(workingFolder, logrus.New())

	err := ruleFileClient.Export([]types.RuleEntry{"||ads.example.com^"}, "custom_filters.txt", "")
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(workingFolder, "custom_filters.txt"))
	require.NoError(t, err)
	assert.Equal(t, "||ads.example.com^\n", string(content))
}

func TestRuleFileClient_Export_UnwritableFolder(t *testing.T) {
	ruleFileClient := NewRuleFileClient(filepath.Join(t.TempDir(), "missing"), logrus.New())

	err := ruleFileClient.Export([]types.RuleEntry{"||ads.example.com^"}, "custom_filters.txt", "")

	assert.Error(t, err)
}
