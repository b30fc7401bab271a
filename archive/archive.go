package archive

import (
	zipreader "archive/zip"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/pihole2adguard/teleporter-importer/types"
)

type IArchiveClient interface {
	Extract(archivePath string) (*types.ExportContents, error)
}

type ArchiveClient struct {
	WorkingFolderPath string
	Logger            *logrus.Logger
}

func NewArchiveClient(workingFolderPath string, logger *logrus.Logger) *ArchiveClient {
	return &ArchiveClient{
		WorkingFolderPath: workingFolderPath,
		Logger:            logger,
	}
}

// knownMembers maps a Teleporter member base name to its kind. Members are
// matched on base name only, so both v5 flat archives and v6 archives with
// the etc/pihole/ prefix are recognized.
var knownMembers = map[string]types.MemberKind{
	"gravity.db":     types.MemberGravityDB,
	"pihole.toml":    types.MemberPiholeToml,
	"setupVars.conf": types.MemberSetupVars,
	"adlists.list":   types.MemberAdlists,
	"adlist.list":    types.MemberAdlists,
	"whitelist.txt":  types.MemberWhitelist,
	"blacklist.txt":  types.MemberBlacklist,
	"regex.list":     types.MemberRegexList,
	"custom.list":    types.MemberCustomList,
}

const extractSubfolder = "teleporter"

func (archiveClient *ArchiveClient) Extract(archivePath string) (*types.ExportContents, error) {
	reader, err := zipreader.OpenReader(archivePath)
	if err != nil {
		return nil, errors.Wrapf(err, "opening Teleporter archive %s", archivePath)
	}
	defer reader.Close()

	extractFolder := filepath.Join(archiveClient.WorkingFolderPath, extractSubfolder)
	if err := os.MkdirAll(extractFolder, 0755); err != nil {
		return nil, errors.Wrapf(err, "creating extraction folder %s", extractFolder)
	}

	contents := &types.ExportContents{
		Format: types.ExportFormatNone,
		Files:  map[types.MemberKind]string{},
	}

	for _, member := range reader.File {
		kind, ok := knownMembers[filepath.Base(member.Name)]
		if !ok {
			archiveClient.Logger.Debugf("Skipping archive member %s", member.Name)
			continue
		}

		// Members are extracted under their base name only, so a
		// crafted member path can never escape the extraction folder.
		extractedPath := filepath.Join(extractFolder, string(kind))
		if err := extractMember(member, extractedPath); err != nil {
			return nil, errors.Wrapf(err, "extracting archive member %s", member.Name)
		}
		archiveClient.Logger.Debugf("Extracted %s to %s", member.Name, extractedPath)
		contents.Files[kind] = extractedPath
	}

	switch {
	case contents.Has(types.MemberGravityDB):
		contents.Format = types.ExportFormatV6
	case contents.Has(types.MemberSetupVars):
		contents.Format = types.ExportFormatV5
	default:
		return nil, errors.Wrapf(ErrNotATeleporterExport, "archive %s", archivePath)
	}

	archiveClient.Logger.Infof("Detected %s Teleporter export with %d recognized members", contents.Format, len(contents.Files))
	return contents, nil
}

func extractMember(member *zipreader.File, extractedPath string) error {
	memberReader, err := member.Open()
	if err != nil {
		return err
	}
	defer memberReader.Close()

	outFile, err := os.Create(extractedPath)
	if err != nil {
		return err
	}
	defer outFile.Close()

	_, err = io.Copy(outFile, memberReader)
	return err
}
