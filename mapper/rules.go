package mapper

import (
	"fmt"

	"github.com/pihole2adguard/teleporter-importer/types"
)

type ruleSyntax struct {
	Prefix      string
	Suffix      string
	Description string
}

// domainTypeSyntax maps the gravity.db domainlist type codes to the Adblock
// rule convention AdGuard Home expects in Custom Filtering Rules.
var domainTypeSyntax = map[int]ruleSyntax{
	types.DomainTypeExactAllow:     {Prefix: "@@|", Suffix: "^$important", Description: "Exact allow"},
	types.DomainTypeExactBlacklist: {Prefix: "0.0.0.0 ", Suffix: "", Description: "Exact blacklist"},
	types.DomainTypeRegexAllow:     {Prefix: "@@||", Suffix: "^", Description: "Regex allow"},
	types.DomainTypeRegexBlacklist: {Prefix: "||", Suffix: "^", Description: "Regex blacklist"},
}

func (mapperClient *MapperClient) MapDomainRules(rules []types.DomainRule) []types.RuleEntry {
	ruleEntries := []types.RuleEntry{}

	for _, rule := range rules {
		syntax, known := domainTypeSyntax[rule.TypeCode]
		if !known {
			mapperClient.Logger.Infof("Unknown domain rule type %d for %s, passing domain through unprefixed", rule.TypeCode, rule.Domain)
		}

		ruleEntries = append(ruleEntries, fmt.Sprintf("%s%s%s", syntax.Prefix, rule.Domain, syntax.Suffix))

		if rule.Comment != "" {
			mapperClient.Logger.Debugf("Converted %s rule: %s (%s)", syntax.Description, rule.Domain, rule.Comment)
		}
	}

	return ruleEntries
}

func (mapperClient *MapperClient) MapAdlists(adlists []types.Adlist) []types.FilterEntry {
	filterEntries := []types.FilterEntry{}

	for _, adlist := range adlists {
		filterEntries = append(filterEntries, types.FilterEntry{
			Enabled: true,
			URL:     adlist.Address,
			Name:    adlist.Comment,
		})
	}

	return filterEntries
}

func (mapperClient *MapperClient) MapHosts(hosts []types.HostRecord) []types.Rewrite {
	rewrites := []types.Rewrite{}

	for _, host := range hosts {
		rewrites = append(rewrites, types.Rewrite{
			Domain: host.Domain,
			Answer: host.IP,
		})
	}

	return rewrites
}

// MapCnames emits one rewrite per CNAME record. By default the target
// domain is kept as the answer, which AdGuard Home accepts and keeps the
// output deterministic. With ResolveCnames set the target is resolved to an
// IP first and unresolvable targets are skipped.
func (mapperClient *MapperClient) MapCnames(cnames []types.CnameRecord) []types.Rewrite {
	rewrites := []types.Rewrite{}

	for _, cname := range cnames {
		answer := cname.Target

		if mapperClient.ResolveCnames {
			ip, err := mapperClient.ResolverClient.ResolveToIP(cname.Target)
			if err != nil {
				mapperClient.Logger.Warnf("Skipping CNAME %s - could not resolve target %s: %v", cname.Domain, cname.Target, err)
				continue
			}
			answer = ip
		}

		rewrites = append(rewrites, types.Rewrite{
			Domain: cname.Domain,
			Answer: answer,
		})
	}

	return rewrites
}
