/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/sirupsen/logrus"

	"github.com/pihole2adguard/teleporter-importer/archive"
	"github.com/pihole2adguard/teleporter-importer/gravity"
	"github.com/pihole2adguard/teleporter-importer/mapper"
	"github.com/pihole2adguard/teleporter-importer/migrator"
	"github.com/pihole2adguard/teleporter-importer/paths"
	"github.com/pihole2adguard/teleporter-importer/piholeconf"
	"github.com/pihole2adguard/teleporter-importer/resolver"
	"github.com/pihole2adguard/teleporter-importer/rules"
	"github.com/pihole2adguard/teleporter-importer/yamlout"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "teleporter-importer <path-to-teleporter-zip>",
	Short: "Convert a Pi-hole Teleporter export into AdGuard Home configuration fragments",
	Long: `teleporter-importer reads a Pi-hole Teleporter backup archive and emits
AdGuard Home configuration fragments:

  settings.yaml      - DNS/DHCP settings for manual merge into AdGuardHome.yaml
  adlists.yaml       - blocklist subscriptions for the 'filters' key
  dns_rewrites.yaml  - custom hosts and CNAME records for the 'rewrites' key
  custom_filters.txt - allow/block rules for Custom Filtering Rules

Both v5 (setupVars.conf and flat list files) and v6 (gravity.db and
pihole.toml) exports are supported; the format is detected from the archive
members. AdGuard Home is never touched directly - the tool prints the manual
merge steps when it finishes.

Examples:
  # Convert an export, write fragments to the current folder
  teleporter-importer ./pi-hole-backup.zip

  # Write fragments elsewhere and resolve CNAME targets to IPs
  teleporter-importer ./pi-hole-backup.zip --workingFolderPath ./out --resolveCnames`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logVerbosity, _ := cmd.Flags().GetString("verbosity")
		logLevel, err := logrus.ParseLevel(logVerbosity)
		if err != nil {
			log.Fatalf("Invalid log level: %s", logVerbosity)
		}
		log.SetLevel(logLevel)
		log.SetFormatter(&logrus.TextFormatter{})
		if viper.GetBool("structuredLogs") {
			log.SetFormatter(&logrus.JSONFormatter{})
		}

		for key, value := range viper.GetViper().AllSettings() {
			log.Debugf("Command Flag: %s = %v", key, value)
		}

		archivePath, err := paths.ParsePath(args[0])
		if err != nil {
			log.Fatalf("Error getting archive path: %v", err)
		}
		workingFolderPath, err := paths.ParsePath(viper.GetString("workingFolderPath"))
		if err != nil {
			log.Fatalf("Error getting working folder path: %v", err)
		}
		if err := paths.EnsureDir(workingFolderPath); err != nil {
			log.Fatalf("Error creating working folder: %v", err)
		}

		resolverClient := resolver.NewResolverClient(
			viper.GetStringSlice("dnsServer"),
			log,
		)

		mapperClient := mapper.NewMapperClient(
			resolverClient,
			viper.GetBool("resolveCnames"),
			log,
		)

		migrationClient := migrator.NewMigrationClient(
			workingFolderPath,
			archive.NewArchiveClient(workingFolderPath, log),
			gravity.NewGravityClient(log),
			piholeconf.NewPiholeConfClient(log),
			mapperClient,
			yamlout.NewYamlClient(workingFolderPath, log),
			rules.NewRuleFileClient(workingFolderPath, log),
			log,
		)

		if err := migrationClient.Migrate(archivePath); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("workingFolderPath", "w", ".", "Working folder path to use")
	viper.BindPFlag("workingFolderPath", rootCmd.PersistentFlags().Lookup("workingFolderPath"))
	rootCmd.PersistentFlags().StringP("verbosity", "v", "info", "Log verbosity (trace, debug, info, warn, error)")
	viper.BindPFlag("verbosity", rootCmd.PersistentFlags().Lookup("verbosity"))
	rootCmd.PersistentFlags().Bool("structuredLogs", false, "Emit logs as JSON")
	viper.BindPFlag("structuredLogs", rootCmd.PersistentFlags().Lookup("structuredLogs"))
	rootCmd.PersistentFlags().Bool("resolveCnames", false, "Resolve CNAME targets to IP addresses for DNS rewrites")
	viper.BindPFlag("resolveCnames", rootCmd.PersistentFlags().Lookup("resolveCnames"))
	rootCmd.PersistentFlags().StringSlice("dnsServer", []string{"1.1.1.1:53"}, "DNS servers used with --resolveCnames")
	viper.BindPFlag("dnsServer", rootCmd.PersistentFlags().Lookup("dnsServer"))
}
