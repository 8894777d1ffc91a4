package importer

import (
	"context"
	"sort"
	"strings"

	"github.com/extremtechniker/dnsmigrate/logger"
	"github.com/extremtechniker/dnsmigrate/model"
	"github.com/extremtechniker/dnsmigrate/porkbun"
)

// Syncer pushes a validated document into Porkbun, one record at a time.
// Failures are isolated per record: each one lands in the summary and the
// sweep continues.
type Syncer struct {
	Client *porkbun.Client
	Force  bool
}

// Run performs the best-effort sweep over the whole document and returns
// the per-record outcomes.
func (s *Syncer) Run(ctx context.Context, doc model.Document) *model.Summary {
	sum := &model.Summary{}

	for _, entry := range doc {
		for domain, set := range entry {
			logger.Logger.Infof("processing domain: %s", domain)
			for _, qtype := range sortedTypes(set) {
				for _, rec := range set[qtype] {
					sum.Add(s.syncRecord(ctx, domain, qtype, rec))
				}
			}
		}
	}
	return sum
}

func (s *Syncer) syncRecord(ctx context.Context, domain, qtype string, rec model.Record) model.Outcome {
	root, sub := resolveName(domain, rec.Name)
	name := sub
	if name == "" {
		name = "@"
	}
	out := model.Outcome{Domain: root, QType: qtype, Name: name}

	existing, err := s.Client.RetrieveByNameType(ctx, root, qtype, sub)
	if err != nil {
		out.Status = model.StatusFailed
		out.Reason = err.Error()
		return out
	}

	action, reason := Decide(match(existing, rec, qtype), rec, qtype, s.Force)
	out.Reason = reason

	req := porkbun.Request{
		Name:    name,
		Type:    qtype,
		Content: rec.Content,
		TTL:     rec.TTL.Int(),
	}
	if rec.Priority != nil {
		p := rec.Priority.Int()
		req.Prio = &p
	}

	switch action {
	case Create:
		id, err := s.Client.Create(ctx, root, req)
		if err != nil {
			out.Status = model.StatusFailed
			out.Reason = err.Error()
			return out
		}
		logger.Logger.Infof("created record: %s %s (id %s)", name, qtype, id)
		out.Status = model.StatusCreated
	case Update:
		target := match(existing, rec, qtype)
		if err := s.Client.Edit(ctx, root, target.ID, req); err != nil {
			out.Status = model.StatusFailed
			out.Reason = err.Error()
			return out
		}
		logger.Logger.Infof("updated record: %s %s (id %s)", name, qtype, target.ID)
		out.Status = model.StatusUpdated
	default:
		logger.Logger.Infof("skipping record: %s %s: %s", name, qtype, reason)
		out.Status = model.StatusSkipped
	}
	return out
}

// resolveName maps a document domain plus optional per-record name onto the
// provider's (root domain, subdomain) identity. "@" and an empty name mean
// the apex of the domain key.
func resolveName(domain, name string) (root, sub string) {
	root, sub = porkbun.SplitDomain(domain)
	switch name = strings.TrimSuffix(name, "."); name {
	case "", "@", strings.TrimSuffix(domain, "."):
	default:
		sub = name
	}
	return root, sub
}

// Map iteration order is random; the sweep promises document order per
// domain, so types are walked alphabetically.
func sortedTypes(set model.RecordSet) []string {
	types := make([]string, 0, len(set))
	for t := range set {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
