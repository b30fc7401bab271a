package types

type ExportFormat string

const (
	ExportFormatNone ExportFormat = "none"
	ExportFormatV5   ExportFormat = "v5"
	ExportFormatV6   ExportFormat = "v6"
)

type MemberKind string

const (
	MemberGravityDB  MemberKind = "gravity.db"
	MemberPiholeToml MemberKind = "pihole.toml"
	MemberSetupVars  MemberKind = "setupVars.conf"
	MemberAdlists    MemberKind = "adlists.list"
	MemberWhitelist  MemberKind = "whitelist.txt"
	MemberBlacklist  MemberKind = "blacklist.txt"
	MemberRegexList  MemberKind = "regex.list"
	MemberCustomList MemberKind = "custom.list"
)

// ExportContents describes a Teleporter archive after extraction: the
// detected export format and the on-disk path of each recognized member.
type ExportContents struct {
	Format ExportFormat
	Files  map[MemberKind]string
}

func (contents *ExportContents) Has(kind MemberKind) bool {
	_, ok := contents.Files[kind]
	return ok
}
