package export

import (
	"context"
	"fmt"
	"strings"

	"github.com/miekg/dns"

	"github.com/extremtechniker/dnsmigrate/model"
)

// Resolver issues one DNS question per (domain, type) pair against a single
// upstream server and shapes the answers into export records.
type Resolver struct {
	Server string
	client *dns.Client
}

func NewResolver(server string) *Resolver {
	return &Resolver{Server: server, client: new(dns.Client)}
}

func (r *Resolver) exchange(ctx context.Context, domain, qtype string) (*dns.Msg, error) {
	t, ok := dns.StringToType[strings.ToUpper(qtype)]
	if !ok {
		return nil, fmt.Errorf("unsupported record type: %s", qtype)
	}

	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(domain), t)
	m.RecursionDesired = true

	resp, _, err := r.client.ExchangeContext(ctx, m, r.Server)
	if err != nil {
		return nil, fmt.Errorf("query %s %s: %w", domain, qtype, err)
	}

	switch resp.Rcode {
	case dns.RcodeSuccess, dns.RcodeNameError:
		// NXDOMAIN is an empty contribution, not a failure.
		return resp, nil
	default:
		return nil, fmt.Errorf("query %s %s: server returned %s", domain, qtype, dns.RcodeToString[resp.Rcode])
	}
}

// Lookup returns the records answering one (domain, type) question. Only
// rdata of the asked type is kept: recursive resolvers prepend the CNAME
// chain to A and AAAA answers, and collecting it here would duplicate the
// CNAME once per question. An empty answer is an empty contribution.
func (r *Resolver) Lookup(ctx context.Context, domain, qtype string) ([]model.Record, error) {
	resp, err := r.exchange(ctx, domain, qtype)
	if err != nil {
		return nil, err
	}

	var recs []model.Record
	for _, rr := range resp.Answer {
		t, rec := recordFromRR(rr)
		if t != strings.ToUpper(qtype) {
			continue
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// RawLookup returns the unprocessed answer text for one (domain, type)
// question, for --raw debugging output.
func (r *Resolver) RawLookup(ctx context.Context, domain, qtype string) ([]string, error) {
	resp, err := r.exchange(ctx, domain, qtype)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, rr := range resp.Answer {
		out = append(out, rr.String())
	}
	return out, nil
}

// recordFromRR converts one resource record into its export shape. Ordered
// types keep their priority in prio; everything else is plain content + ttl.
func recordFromRR(rr dns.RR) (string, model.Record) {
	hdr := rr.Header()
	rec := model.Record{TTL: model.FlexInt(hdr.Ttl)}

	switch v := rr.(type) {
	case *dns.MX:
		rec.Content = v.Mx
		rec.Priority = model.Prio(int(v.Preference))
	case *dns.SRV:
		rec.Content = fmt.Sprintf("%d %d %s", v.Weight, v.Port, v.Target)
		rec.Priority = model.Prio(int(v.Priority))
	case *dns.NAPTR:
		rec.Content = v.Replacement
		rec.Order = model.FlexInt(v.Order)
		rec.Preference = model.FlexInt(v.Preference)
		rec.Priority = model.Prio(int(v.Preference))
	case *dns.TXT:
		rec.Content = strings.Join(v.Txt, "")
	case *dns.SPF:
		rec.Content = strings.Join(v.Txt, "")
	case *dns.CNAME:
		rec.Content = v.Target
	case *dns.NS:
		rec.Content = v.Ns
	case *dns.A:
		rec.Content = v.A.String()
	case *dns.AAAA:
		rec.Content = v.AAAA.String()
	default:
		rec.Content = strings.TrimSpace(strings.TrimPrefix(rr.String(), hdr.String()))
	}

	return dns.TypeToString[hdr.Rrtype], rec
}
