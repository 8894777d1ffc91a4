package importer

import (
	"strconv"

	"github.com/extremtechniker/dnsmigrate/model"
	"github.com/extremtechniker/dnsmigrate/porkbun"
)

// Action is the three-way outcome of the create/update/skip decision.
type Action int

const (
	Create Action = iota
	Update
	Skip
)

func (a Action) String() string {
	switch a {
	case Create:
		return "create"
	case Update:
		return "update"
	default:
		return "skip"
	}
}

// Decide maps (existing record state, desired record, force) to an Action.
// No existing record means create; identical content means the target is
// already in sync; diverging content is only overwritten under force. Pure
// so the decision stays testable apart from the API call executing it.
func Decide(existing *porkbun.Record, desired model.Record, qtype string, force bool) (Action, string) {
	if existing == nil {
		return Create, ""
	}
	if inSync(existing, desired, qtype) {
		return Skip, "already in sync"
	}
	if force {
		return Update, ""
	}
	return Skip, "would overwrite, use --force"
}

func inSync(existing *porkbun.Record, desired model.Record, qtype string) bool {
	if existing.Content != desired.Content {
		return false
	}
	if model.NeedsPriority(qtype) && desired.Priority != nil {
		return existing.Prio == strconv.Itoa(desired.Priority.Int())
	}
	return true
}

// match picks the provider record the desired one maps onto: an exact
// content match wins (in sync), otherwise the first record under the same
// (name, type) identity is the one to diverge from.
func match(existing []porkbun.Record, desired model.Record, qtype string) *porkbun.Record {
	for i := range existing {
		if inSync(&existing[i], desired, qtype) {
			return &existing[i]
		}
	}
	if len(existing) > 0 {
		return &existing[0]
	}
	return nil
}
