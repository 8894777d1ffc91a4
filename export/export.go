package export

import (
	"context"

	"github.com/extremtechniker/dnsmigrate/logger"
	"github.com/extremtechniker/dnsmigrate/model"
)

// Querier is the lookup layer behind an export run. Resolver implements it;
// tests substitute their own.
type Querier interface {
	Lookup(ctx context.Context, domain, qtype string) ([]model.Record, error)
	RawLookup(ctx context.Context, domain, qtype string) ([]string, error)
}

// Exporter walks (domain, type) pairs in order, collecting records into a
// Document. Lookup failures are isolated per pair: they land in the summary
// and never abort the remaining pairs.
type Exporter struct {
	Querier  Querier
	KeepAAAA bool
}

func (e *Exporter) Export(ctx context.Context, domains, types []string) (model.Document, *model.Summary) {
	doc := model.Document{}
	sum := &model.Summary{}

	for _, domain := range domains {
		logger.Logger.Infof("fetching DNS records for %s", domain)

		set := model.RecordSet{}
		for _, qtype := range types {
			recs, err := e.Querier.Lookup(ctx, domain, qtype)
			if err != nil {
				logger.Logger.Warnf("lookup failed: %v", err)
				sum.Add(model.Outcome{Domain: domain, QType: qtype, Status: model.StatusFailed, Reason: err.Error()})
				continue
			}
			if len(recs) > 0 {
				set[qtype] = append(set[qtype], recs...)
			}
		}

		// A CNAME shadows address records at the same name; keep them only
		// when explicitly asked to.
		if _, hasCNAME := set["CNAME"]; hasCNAME && !e.KeepAAAA {
			delete(set, "A")
			delete(set, "AAAA")
		}

		doc = append(doc, map[string]model.RecordSet{domain: set})
	}

	return doc, sum
}

// ExportRaw is the --raw pipeline: same pair walk and failure isolation, but
// answers pass through unshaped.
func (e *Exporter) ExportRaw(ctx context.Context, domains, types []string) (model.RawDocument, *model.Summary) {
	doc := model.RawDocument{}
	sum := &model.Summary{}

	for _, domain := range domains {
		logger.Logger.Infof("fetching raw DNS records for %s", domain)

		answers := map[string][]string{}
		for _, qtype := range types {
			lines, err := e.Querier.RawLookup(ctx, domain, qtype)
			if err != nil {
				logger.Logger.Warnf("lookup failed: %v", err)
				sum.Add(model.Outcome{Domain: domain, QType: qtype, Status: model.StatusFailed, Reason: err.Error()})
				continue
			}
			if len(lines) > 0 {
				answers[qtype] = lines
			}
		}

		doc = append(doc, map[string]map[string][]string{domain: answers})
	}

	return doc, sum
}
