package resolver

import (
	"strings"

	"github.com/miekg/dns"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type IResolverClient interface {
	ResolveToIP(hostname string) (string, error)
}

// ResolverClient resolves CNAME targets to IP addresses so they can be
// written as AdGuard Home rewrites. A CNAME lookup runs first so chained
// aliases land on the final name before the A lookup.
type ResolverClient struct {
	Servers []string
	Logger  *logrus.Logger

	client   *dns.Client
	exchange func(msg *dns.Msg, server string) (*dns.Msg, error)
}

func NewResolverClient(servers []string, logger *logrus.Logger) *ResolverClient {
	client := new(dns.Client)
	return &ResolverClient{
		Servers: servers,
		Logger:  logger,
		client:  client,
		exchange: func(msg *dns.Msg, server string) (*dns.Msg, error) {
			response, _, err := client.Exchange(msg, server)
			return response, err
		},
	}
}

func (resolverClient *ResolverClient) ResolveToIP(hostname string) (string, error) {
	target := hostname

	cnameResponse, err := resolverClient.query(hostname, dns.TypeCNAME)
	if err == nil {
		for _, answer := range cnameResponse.Answer {
			if cname, ok := answer.(*dns.CNAME); ok {
				target = strings.TrimSuffix(cname.Target, ".")
				resolverClient.Logger.Infof("%s is a CNAME for %s", hostname, target)
				break
			}
		}
	}

	aResponse, err := resolverClient.query(target, dns.TypeA)
	if err != nil {
		return "", errors.Wrapf(err, "resolving %s", target)
	}

	for _, answer := range aResponse.Answer {
		if aRecord, ok := answer.(*dns.A); ok {
			return aRecord.A.String(), nil
		}
	}

	return "", errors.Errorf("no A record for %s", target)
}

func (resolverClient *ResolverClient) query(name string, qtype uint16) (*dns.Msg, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(name), qtype)

	var response *dns.Msg
	var err error
	for _, server := range resolverClient.Servers {
		response, err = resolverClient.exchange(msg, server)
		if err == nil {
			return response, nil
		}
		resolverClient.Logger.Debugf("Failed to query %s: %v, trying next server", server, err)
	}

	return nil, err
}
