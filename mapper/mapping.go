// Package mapper translates Pi-hole settings and list entries into their
// AdGuard Home representations. The translation tables are package data so
// they stay auditable and testable in isolation.
package mapper

import (
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pihole2adguard/teleporter-importer/resolver"
	"github.com/pihole2adguard/teleporter-importer/types"
)

type IMapperClient interface {
	MapSettings(settings []types.Setting) map[string]any
	MapDomainRules(rules []types.DomainRule) []types.RuleEntry
	MapAdlists(adlists []types.Adlist) []types.FilterEntry
	MapHosts(hosts []types.HostRecord) []types.Rewrite
	MapCnames(cnames []types.CnameRecord) []types.Rewrite
}

type MapperClient struct {
	ResolverClient resolver.IResolverClient
	ResolveCnames  bool
	Logger         *logrus.Logger
}

func NewMapperClient(resolverClient resolver.IResolverClient, resolveCnames bool, logger *logrus.Logger) *MapperClient {
	return &MapperClient{
		ResolverClient: resolverClient,
		ResolveCnames:  resolveCnames,
		Logger:         logger,
	}
}

// fieldMappings is the static translation table from Pi-hole setting keys to
// AdGuard Home YAML paths. Both v5 setupVars.conf keys and v6 pihole.toml
// paths appear here; a source key not in this table has no known AdGuard
// Home equivalent and is skipped.
var fieldMappings = []types.FieldMapping{
	{Source: "PIHOLE_DNS", Target: "dns.upstream_dns", Transform: types.TransformList},
	{Source: "dns.upstreams", Target: "dns.upstream_dns", Transform: types.TransformList},
	{Source: "DNSSEC", Target: "dns.dnssec_enabled", Transform: types.TransformBoolean},
	{Source: "dns.dnssec", Target: "dns.dnssec_enabled", Transform: types.TransformBoolean},
	{Source: "QUERY_LOGGING", Target: "querylog.enabled", Transform: types.TransformBoolean},
	{Source: "dns.queryLogging", Target: "querylog.enabled", Transform: types.TransformBoolean},
	{Source: "BLOCKING_ENABLED", Target: "dns.filtering_enabled", Transform: types.TransformBoolean},
	{Source: "PIHOLE_INTERFACE", Target: "dhcp.interface_name", Transform: types.TransformIdentity},
	{Source: "dns.interface", Target: "dhcp.interface_name", Transform: types.TransformIdentity},
	{Source: "PIHOLE_DOMAIN", Target: "dhcp.local_domain_name", Transform: types.TransformIdentity},
	{Source: "dns.domain", Target: "dhcp.local_domain_name", Transform: types.TransformIdentity},
	{Source: "DHCP_ACTIVE", Target: "dhcp.enabled", Transform: types.TransformBoolean},
	{Source: "dhcp.active", Target: "dhcp.enabled", Transform: types.TransformBoolean},
	{Source: "DHCP_START", Target: "dhcp.dhcpv4.range_start", Transform: types.TransformIdentity},
	{Source: "dhcp.start", Target: "dhcp.dhcpv4.range_start", Transform: types.TransformIdentity},
	{Source: "DHCP_END", Target: "dhcp.dhcpv4.range_end", Transform: types.TransformIdentity},
	{Source: "dhcp.end", Target: "dhcp.dhcpv4.range_end", Transform: types.TransformIdentity},
	{Source: "DHCP_ROUTER", Target: "dhcp.dhcpv4.gateway_ip", Transform: types.TransformIdentity},
	{Source: "dhcp.router", Target: "dhcp.dhcpv4.gateway_ip", Transform: types.TransformIdentity},
	{Source: "DHCP_LEASETIME", Target: "dhcp.dhcpv4.lease_duration", Transform: types.TransformLeaseHours},
	{Source: "dhcp.leaseTime", Target: "dhcp.dhcpv4.lease_duration", Transform: types.TransformLeaseHours},
}

// FieldMappings exposes the translation table for inspection.
func FieldMappings() []types.FieldMapping {
	return fieldMappings
}

func (mapperClient *MapperClient) MapSettings(settings []types.Setting) map[string]any {
	mapped := map[string]any{}

	for _, setting := range settings {
		fieldMapping, found := lookupFieldMapping(setting.Key)
		if !found {
			mapperClient.Logger.Infof("No AdGuard Home mapping for setting %s, skipping", setting.Key)
			continue
		}

		value, ok := mapperClient.applyTransform(fieldMapping, setting)
		if !ok {
			continue
		}

		setByPath(mapped, fieldMapping.Target, value)
		mapperClient.Logger.Debugf("Mapped setting %s to %s", setting.Key, fieldMapping.Target)
	}

	return mapped
}

func lookupFieldMapping(sourceKey string) (types.FieldMapping, bool) {
	for _, fieldMapping := range fieldMappings {
		if fieldMapping.Source == sourceKey {
			return fieldMapping, true
		}
	}
	return types.FieldMapping{}, false
}

func (mapperClient *MapperClient) applyTransform(fieldMapping types.FieldMapping, setting types.Setting) (any, bool) {
	switch fieldMapping.Transform {
	case types.TransformIdentity:
		return setting.Value, true
	case types.TransformList:
		return setting.Values, true
	case types.TransformBoolean:
		value, ok := normalizeBoolean(setting.Value)
		if !ok {
			mapperClient.Logger.Infof("Setting %s has non-boolean value %q, skipping", setting.Key, setting.Value)
			return nil, false
		}
		return value, true
	case types.TransformLeaseHours:
		seconds, ok := leaseToSeconds(setting.Value)
		if !ok {
			mapperClient.Logger.Infof("Setting %s has unparseable lease time %q, skipping", setting.Key, setting.Value)
			return nil, false
		}
		return seconds, true
	default:
		mapperClient.Logger.Infof("Setting %s has unknown transform %s, skipping", setting.Key, fieldMapping.Transform)
		return nil, false
	}
}

func normalizeBoolean(value string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "1", "on":
		return true, true
	case "false", "no", "0", "off":
		return false, true
	default:
		return false, false
	}
}

// leaseToSeconds accepts the v5 plain-hours form ("24") and the v6 duration
// form ("24h", "30m").
func leaseToSeconds(value string) (int, bool) {
	value = strings.TrimSpace(value)
	if hours, err := strconv.Atoi(value); err == nil {
		return hours * 3600, true
	}
	if duration, err := time.ParseDuration(value); err == nil {
		return int(duration.Seconds()), true
	}
	return 0, false
}

func setByPath(mapped map[string]any, target string, value any) {
	segments := strings.Split(target, ".")
	current := mapped
	for _, segment := range segments[:len(segments)-1] {
		next, ok := current[segment].(map[string]any)
		if !ok {
			next = map[string]any{}
			current[segment] = next
		}
		current = next
	}
	current[segments[len(segments)-1]] = value
}
