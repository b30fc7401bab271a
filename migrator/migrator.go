package migrator

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/pihole2adguard/teleporter-importer/archive"
	"github.com/pihole2adguard/teleporter-importer/gravity"
	"github.com/pihole2adguard/teleporter-importer/mapper"
	"github.com/pihole2adguard/teleporter-importer/piholeconf"
	"github.com/pihole2adguard/teleporter-importer/rules"
	"github.com/pihole2adguard/teleporter-importer/types"
	"github.com/pihole2adguard/teleporter-importer/yamlout"
)

const (
	SettingsFileName = "settings.yaml"
	AdlistsFileName  = "adlists.yaml"
	RewritesFileName = "dns_rewrites.yaml"
	RulesFileName    = "custom_filters.txt"
)

type MigrationClient struct {
	WorkingFolderPath string
	ArchiveClient     archive.IArchiveClient
	GravityClient     gravity.IGravityClient
	ConfClient        piholeconf.IPiholeConfClient
	MapperClient      mapper.IMapperClient
	YamlClient        yamlout.IYamlClient
	RuleFileClient    rules.IRuleFileClient
	Logger            *logrus.Logger
}

func NewMigrationClient(workingFolderPath string, archiveClient archive.IArchiveClient, gravityClient gravity.IGravityClient, confClient piholeconf.IPiholeConfClient, mapperClient mapper.IMapperClient, yamlClient yamlout.IYamlClient, ruleFileClient rules.IRuleFileClient, logger *logrus.Logger) *MigrationClient {
	return &MigrationClient{
		WorkingFolderPath: workingFolderPath,
		ArchiveClient:     archiveClient,
		GravityClient:     gravityClient,
		ConfClient:        confClient,
		MapperClient:      mapperClient,
		YamlClient:        yamlClient,
		RuleFileClient:    ruleFileClient,
		Logger:            logger,
	}
}

// Migrate runs the whole pipeline: extract the Teleporter archive, read its
// configuration and lists, map everything into AdGuard Home form and write
// the output fragments. Strictly linear, any error aborts the run.
func (migrationClient *MigrationClient) Migrate(archivePath string) error {
	migrationClient.Logger.Info("Starting Pi-hole to AdGuard Home migration")

	contents, err := migrationClient.ArchiveClient.Extract(archivePath)
	if err != nil {
		return err
	}

	settings := []types.Setting{}
	adlists := []types.Adlist{}
	domainRules := []types.DomainRule{}
	hosts := []types.HostRecord{}
	cnames := []types.CnameRecord{}

	switch contents.Format {
	case types.ExportFormatV6:
		gravityData, err := migrationClient.GravityClient.Read(contents.Files[types.MemberGravityDB])
		if err != nil {
			return err
		}
		adlists = gravityData.Adlists
		domainRules = gravityData.DomainRules

		if contents.Has(types.MemberPiholeToml) {
			piholeConfig, err := migrationClient.ConfClient.ParseToml(contents.Files[types.MemberPiholeToml])
			if err != nil {
				return err
			}
			settings = piholeConfig.Settings
			hosts = piholeConfig.Hosts
			cnames = piholeConfig.Cnames
		} else {
			migrationClient.Logger.Warn("Export has no pihole.toml, skipping settings and DNS rewrites")
		}

	case types.ExportFormatV5:
		settings, err = migrationClient.ConfClient.ParseSetupVars(contents.Files[types.MemberSetupVars])
		if err != nil {
			return err
		}

		if contents.Has(types.MemberAdlists) {
			adlists, err = migrationClient.ConfClient.ParseAdlists(contents.Files[types.MemberAdlists])
			if err != nil {
				return err
			}
		}

		listMembers := []struct {
			Kind     types.MemberKind
			TypeCode int
		}{
			{Kind: types.MemberWhitelist, TypeCode: types.DomainTypeRegexAllow},
			{Kind: types.MemberBlacklist, TypeCode: types.DomainTypeRegexBlacklist},
			{Kind: types.MemberRegexList, TypeCode: types.DomainTypeRegexBlacklist},
		}
		for _, listMember := range listMembers {
			if !contents.Has(listMember.Kind) {
				continue
			}
			listRules, err := migrationClient.ConfClient.ParseDomainList(contents.Files[listMember.Kind], listMember.TypeCode)
			if err != nil {
				return err
			}
			domainRules = append(domainRules, listRules...)
		}

		if contents.Has(types.MemberCustomList) {
			hosts, err = migrationClient.ConfClient.ParseCustomList(contents.Files[types.MemberCustomList])
			if err != nil {
				return err
			}
		}
	}

	mappedSettings := migrationClient.MapperClient.MapSettings(settings)
	filterEntries := migrationClient.MapperClient.MapAdlists(adlists)
	ruleEntries := migrationClient.MapperClient.MapDomainRules(domainRules)
	rewrites := migrationClient.MapperClient.MapHosts(hosts)
	rewrites = append(rewrites, migrationClient.MapperClient.MapCnames(cnames)...)

	if err := migrationClient.writeOutputs(mappedSettings, filterEntries, ruleEntries, rewrites); err != nil {
		return err
	}

	migrationClient.Logger.Info("Conversion completed successfully")
	migrationClient.printInstructions()
	return nil
}

func (migrationClient *MigrationClient) writeOutputs(mappedSettings map[string]any, filterEntries []types.FilterEntry, ruleEntries []types.RuleEntry, rewrites []types.Rewrite) error {
	if len(mappedSettings) > 0 {
		header := fmt.Sprintf("AdGuard Home settings fragment (%d top-level keys)", len(mappedSettings))
		if err := migrationClient.YamlClient.Export(mappedSettings, SettingsFileName, header); err != nil {
			return err
		}
	} else {
		migrationClient.Logger.Info("No settings to migrate")
	}

	if len(filterEntries) > 0 {
		header := fmt.Sprintf("AdGuard Home blocklists (%d entries)", len(filterEntries))
		if err := migrationClient.YamlClient.Export(filterEntries, AdlistsFileName, header); err != nil {
			return err
		}
	} else {
		migrationClient.Logger.Info("No adlists found")
	}

	if len(rewrites) > 0 {
		header := fmt.Sprintf("DNS rewrites (%d total entries)", len(rewrites))
		if err := migrationClient.YamlClient.Export(rewrites, RewritesFileName, header); err != nil {
			return err
		}
	} else {
		migrationClient.Logger.Info("No custom DNS entries or CNAME records found")
	}

	if len(ruleEntries) > 0 {
		header := fmt.Sprintf("Custom filtering rules (%d rules)", len(ruleEntries))
		if err := migrationClient.RuleFileClient.Export(ruleEntries, RulesFileName, header); err != nil {
			return err
		}
	} else {
		migrationClient.Logger.Info("No domain rules found")
	}

	return nil
}

func (migrationClient *MigrationClient) printInstructions() {
	separator := "============================================================"
	fmt.Println()
	fmt.Println(separator)
	fmt.Println("CONVERSION COMPLETE - Next Steps:")
	fmt.Println(separator)
	fmt.Println("1. Stop AdGuard Home: AdGuardHome -s stop")
	fmt.Printf("2. Merge %s into AdGuardHome.yaml (top-level keys)\n", SettingsFileName)
	fmt.Printf("3. Copy the contents of %s into AdGuardHome.yaml under 'filters'\n", AdlistsFileName)
	fmt.Printf("4. Copy the contents of %s into AdGuardHome.yaml under 'rewrites'\n", RewritesFileName)
	fmt.Printf("5. Paste the rules from %s into Custom Filtering Rules\n", RulesFileName)
	fmt.Println("6. Start AdGuard Home again: AdGuardHome -s start")
	fmt.Println(separator)
}
