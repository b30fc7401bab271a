package yamlout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pihole2adguard/teleporter-importer/types"
)

func TestYamlClient_Export_FilterEntries(t *testing.T) {
	workingFolder := t.TempDir()
	yamlClient := NewYamlClient(workingFolder, logrus.New())

	err := yamlClient.Export([]types.FilterEntry{
		{Enabled: true, URL: "https://lists.example.com/hosts.txt", Name: "main list"},
	}, "adlists.yaml", "AdGuard Home blocklists (1 entries)")

	require.NoError(t, err)
	content, err := os.ReadFile(filepath.Join(workingFolder, "adlists.yaml"))
	require.NoError(t, err)

	expected := `# AdGuard Home blocklists (1 entries)
- enabled: true
  url: https://lists.example.com/hosts.txt
  name: main list
`
	assert.Equal(t, expected, string(content))
}

func TestYamlClient_Export_NestedSettings(t *testing.T) {
	workingFolder := t.TempDir()
	yamlClient := NewYamlClient(workingFolder, logrus.New())

	err := yamlClient.Export(map[string]any{
		"dns": map[string]any{
			"dnssec_enabled": true,
			"upstream_dns":   []string{"9.9.9.9"},
		},
	}, "settings.yaml", "Settings fragment")

	require.NoError(t, err)
	content, err := os.ReadFile(filepath.Join(workingFolder, "settings.yaml"))
	require.NoError(t, err)

	expected := `# Settings fragment
dns:
  dnssec_enabled: true
  upstream_dns:
    - 9.9.9.9
`
	assert.Equal(t, expected, string(content))
}

func TestYamlClient_Export_Idempotent(t *testing.T) {
	workingFolder := t.TempDir()
	yamlClient := NewYamlClient(workingFolder, logrus.New())
	data := map[string]any{
		"dhcp": map[string]any{"enabled": false},
		"dns":  map[string]any{"dnssec_enabled": true},
	}

	require.NoError(t, yamlClient.Export(data, "settings.yaml", "Settings fragment"))
	first, err := os.ReadFile(filepath.Join(workingFolder, "settings.yaml"))
	require.NoError(t, err)

	require.NoError(t, yamlClient.Export(data, "settings.yaml", "Settings fragment"))
	second, err := os.ReadFile(filepath.Join(workingFolder, "settings.yaml"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestYamlClient_Export_UnwritableFolder(t *testing.T) {
	yamlClient := NewYamlClient(filepath.Join(t.TempDir(), "missing"), logrus.New())

	err := yamlClient.Export(map[string]any{"a": 1}, "settings.yaml", "Settings fragment")

	assert.Error(t, err)
}
