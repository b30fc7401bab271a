package yamlout

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type IYamlClient interface {
	Export(data any, fileName string, header string) error
}

type YamlClient struct {
	WorkingFolderPath string
	Logger            *logrus.Logger
}

func NewYamlClient(workingFolderPath string, logger *logrus.Logger) *YamlClient {
	return &YamlClient{
		WorkingFolderPath: workingFolderPath,
		Logger:            logger,
	}
}

// Export writes data as a YAML fragment meant for manual splicing into
// AdGuardHome.yaml. The header becomes a leading comment line.
func (yamlClient *YamlClient) Export(data any, fileName string, header string) error {
	buffer := &bytes.Buffer{}
	if header != "" {
		fmt.Fprintf(buffer, "# %s\n", header)
	}

	encoder := yaml.NewEncoder(buffer)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return errors.Wrap(err, "encoding YAML")
	}
	if err := encoder.Close(); err != nil {
		return errors.Wrap(err, "encoding YAML")
	}

	yamlFilePath := filepath.Join(yamlClient.WorkingFolderPath, fileName)
	if err := os.WriteFile(yamlFilePath, buffer.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, "writing %s", yamlFilePath)
	}

	yamlClient.Logger.Infof("%s written to %s", header, yamlFilePath)
	return nil
}
