package types

// DomainRule is a single allow/block entry from a Pi-hole export. TypeCode
// carries the gravity.db domainlist type column; v5 flat list files are
// assigned the matching code when parsed.
type DomainRule struct {
	TypeCode int
	Domain   string
	Comment  string
}

const (
	DomainTypeExactAllow     = 0
	DomainTypeExactBlacklist = 1
	DomainTypeRegexAllow     = 2
	DomainTypeRegexBlacklist = 3
)

// RuleEntry is one Adblock-syntax rule line ready for the Custom Filtering
// Rules output file.
type RuleEntry = string

type Adlist struct {
	Address string
	Comment string
}

// FilterEntry is the AdGuard Home filters list representation of an adlist.
type FilterEntry struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
	Name    string `yaml:"name"`
}

// Rewrite is one entry for the rewrites key of AdGuardHome.yaml.
type Rewrite struct {
	Domain string `yaml:"domain"`
	Answer string `yaml:"answer"`
}
