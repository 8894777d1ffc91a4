package importer

import (
	"fmt"

	"github.com/extremtechniker/dnsmigrate/model"
)

// FieldError identifies exactly which record and which field failed
// validation.
type FieldError struct {
	Domain string
	QType  string
	Index  int
	Field  string
	Msg    string
}

func (e FieldError) Error() string {
	if e.QType == "" {
		return fmt.Sprintf("domain %q: %s: %s", e.Domain, e.Field, e.Msg)
	}
	return fmt.Sprintf("%s %s record #%d: %s: %s", e.Domain, e.QType, e.Index, e.Field, e.Msg)
}

// Validate checks every record in the document against the schema and
// returns all violations, so one pass tells the caller everything to fix.
// It runs before the first API call; any violation aborts the import.
func Validate(doc model.Document) []FieldError {
	var errs []FieldError

	for _, entry := range doc {
		for domain, set := range entry {
			if domain == "" {
				errs = append(errs, FieldError{Field: "domain", Msg: "must not be empty"})
				continue
			}
			for qtype, recs := range set {
				if !model.IsSupported(qtype) {
					errs = append(errs, FieldError{Domain: domain, QType: qtype, Field: "type", Msg: "unknown record type"})
					continue
				}
				for i, rec := range recs {
					if rec.Content == "" {
						errs = append(errs, FieldError{Domain: domain, QType: qtype, Index: i, Field: "content", Msg: "must not be empty"})
					}
					if rec.TTL < 0 {
						errs = append(errs, FieldError{Domain: domain, QType: qtype, Index: i, Field: "ttl", Msg: "must not be negative"})
					}
					if model.NeedsPriority(qtype) && rec.Priority == nil {
						errs = append(errs, FieldError{Domain: domain, QType: qtype, Index: i, Field: "prio", Msg: "required for " + qtype + " records"})
					}
				}
			}
		}
	}
	return errs
}
