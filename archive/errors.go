package archive

import (
	"errors"
)

var (
	// ErrNotATeleporterExport error if the zip contains neither a gravity.db
	// nor a setupVars.conf member.
	ErrNotATeleporterExport = errors.New("archive contains neither gravity.db (v6) nor setupVars.conf (v5)")
)
