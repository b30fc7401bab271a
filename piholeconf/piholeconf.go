// Package piholeconf parses the Pi-hole configuration members of a
// Teleporter export: pihole.toml (v6), setupVars.conf (v5) and the flat
// list files both formats can carry.
package piholeconf

import (
	"bufio"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/ini.v1"

	"github.com/pihole2adguard/teleporter-importer/types"
)

type IPiholeConfClient interface {
	ParseToml(path string) (*PiholeConfig, error)
	ParseSetupVars(path string) ([]types.Setting, error)
	ParseAdlists(path string) ([]types.Adlist, error)
	ParseDomainList(path string, typeCode int) ([]types.DomainRule, error)
	ParseCustomList(path string) ([]types.HostRecord, error)
}

type PiholeConfClient struct {
	Logger *logrus.Logger
}

// PiholeConfig is the parsed pihole.toml content relevant to a migration.
type PiholeConfig struct {
	Settings []types.Setting
	Hosts    []types.HostRecord
	Cnames   []types.CnameRecord
}

func NewPiholeConfClient(logger *logrus.Logger) *PiholeConfClient {
	return &PiholeConfClient{
		Logger: logger,
	}
}

// tomlSettingKeys are the pihole.toml paths carried over as settings. The
// mapper decides what each one becomes; anything not listed here has no
// AdGuard Home equivalent worth guessing at.
var tomlSettingKeys = []struct {
	Key    string
	IsList bool
}{
	{Key: "dns.upstreams", IsList: true},
	{Key: "dns.dnssec"},
	{Key: "dns.queryLogging"},
	{Key: "dns.interface"},
	{Key: "dns.domain"},
	{Key: "dhcp.active"},
	{Key: "dhcp.start"},
	{Key: "dhcp.end"},
	{Key: "dhcp.router"},
	{Key: "dhcp.leaseTime"},
}

func (confClient *PiholeConfClient) ParseToml(path string) (*PiholeConfig, error) {
	tomlViper := viper.New()
	tomlViper.SetConfigFile(path)
	tomlViper.SetConfigType("toml")
	if err := tomlViper.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}

	config := &PiholeConfig{}

	for _, settingKey := range tomlSettingKeys {
		if !tomlViper.IsSet(settingKey.Key) {
			continue
		}
		if settingKey.IsList {
			config.Settings = append(config.Settings, types.Setting{
				Key:    settingKey.Key,
				Values: tomlViper.GetStringSlice(settingKey.Key),
				IsList: true,
			})
			continue
		}
		config.Settings = append(config.Settings, types.Setting{
			Key:   settingKey.Key,
			Value: tomlViper.GetString(settingKey.Key),
		})
	}

	for _, hostEntry := range tomlViper.GetStringSlice("dns.hosts") {
		fields := strings.Fields(hostEntry)
		if len(fields) < 2 {
			confClient.Logger.Infof("Skipping malformed dns.hosts entry: %q", hostEntry)
			continue
		}
		config.Hosts = append(config.Hosts, types.HostRecord{
			Domain: fields[1],
			IP:     fields[0],
		})
	}

	for _, cnameEntry := range tomlViper.GetStringSlice("dns.cnameRecords") {
		parts := strings.Split(cnameEntry, ",")
		if len(parts) < 2 {
			confClient.Logger.Infof("Skipping malformed dns.cnameRecords entry: %q", cnameEntry)
			continue
		}
		config.Cnames = append(config.Cnames, types.CnameRecord{
			Domain: strings.TrimSpace(parts[0]),
			Target: strings.TrimSpace(parts[1]),
		})
	}

	return config, nil
}

const upstreamDNSPrefix = "PIHOLE_DNS_"

func (confClient *PiholeConfClient) ParseSetupVars(path string) ([]types.Setting, error) {
	setupVars, err := ini.Load(path)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}

	settings := []types.Setting{}
	upstreams := map[int]string{}

	for _, key := range setupVars.Section("").Keys() {
		if strings.HasPrefix(key.Name(), upstreamDNSPrefix) {
			index, err := strconv.Atoi(strings.TrimPrefix(key.Name(), upstreamDNSPrefix))
			if err != nil {
				confClient.Logger.Infof("Skipping malformed upstream key: %s", key.Name())
				continue
			}
			upstreams[index] = key.Value()
			continue
		}

		settings = append(settings, types.Setting{
			Key:   key.Name(),
			Value: key.Value(),
		})
	}

	if len(upstreams) > 0 {
		indexes := make([]int, 0, len(upstreams))
		for index := range upstreams {
			indexes = append(indexes, index)
		}
		sort.Ints(indexes)

		values := make([]string, 0, len(indexes))
		for _, index := range indexes {
			values = append(values, upstreams[index])
		}
		settings = append(settings, types.Setting{
			Key:    "PIHOLE_DNS",
			Values: values,
			IsList: true,
		})
	}

	return settings, nil
}

func (confClient *PiholeConfClient) ParseAdlists(path string) ([]types.Adlist, error) {
	lines, err := readListLines(path)
	if err != nil {
		return nil, err
	}

	adlists := []types.Adlist{}
	for _, line := range lines {
		adlists = append(adlists, types.Adlist{
			Address: line,
			Comment: "Migrated from Pi-hole",
		})
	}
	return adlists, nil
}

func (confClient *PiholeConfClient) ParseDomainList(path string, typeCode int) ([]types.DomainRule, error) {
	lines, err := readListLines(path)
	if err != nil {
		return nil, err
	}

	rules := []types.DomainRule{}
	for _, line := range lines {
		rules = append(rules, types.DomainRule{
			TypeCode: typeCode,
			Domain:   line,
		})
	}
	return rules, nil
}

func (confClient *PiholeConfClient) ParseCustomList(path string) ([]types.HostRecord, error) {
	lines, err := readListLines(path)
	if err != nil {
		return nil, err
	}

	hosts := []types.HostRecord{}
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			confClient.Logger.Infof("Skipping malformed custom.list entry: %q", line)
			continue
		}
		hosts = append(hosts, types.HostRecord{
			Domain: fields[1],
			IP:     fields[0],
		})
	}
	return hosts, nil
}

func readListLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	defer file.Close()

	lines := []string{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return lines, nil
}
