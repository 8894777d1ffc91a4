package export

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/extremtechniker/dnsmigrate/model"
)

// TypePolicy is the record-type selection for one export run: an explicit
// inclusion set, or the full universe (--all) minus an exclusion set, or the
// default subset. Include is mutually exclusive with All and Exclude.
type TypePolicy struct {
	Include []string
	All     bool
	Exclude []string
}

// SelectTypes resolves a TypePolicy into the ordered, de-duplicated list of
// record types to query. It fails before any query is issued when the policy
// is contradictory or names an unknown type.
func SelectTypes(p TypePolicy) ([]string, error) {
	if len(p.Include) > 0 && (p.All || len(p.Exclude) > 0) {
		return nil, fmt.Errorf("--types cannot be combined with --all or --exclude")
	}

	include := upper(p.Include)
	exclude := upper(p.Exclude)
	for _, t := range append(include, exclude...) {
		if !model.IsSupported(t) {
			return nil, fmt.Errorf("unsupported record type: %s", t)
		}
	}

	var types []string
	switch {
	case len(include) > 0:
		types = include
	case p.All:
		types = model.SupportedTypes
	default:
		types = model.DefaultTypes
	}

	types = lo.Uniq(types)
	if len(exclude) > 0 {
		types = lo.Filter(types, func(t string, _ int) bool {
			return !lo.Contains(exclude, t)
		})
	}
	return types, nil
}

func upper(in []string) []string {
	return lo.Map(in, func(s string, _ int) string {
		return strings.ToUpper(strings.TrimSpace(s))
	})
}
