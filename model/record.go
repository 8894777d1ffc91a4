package model

import (
	"bytes"
	"fmt"
	"strconv"
)

// FlexInt decodes from either a JSON number or a quoted number. Porkbun
// returns ttl and prio as strings while exported documents may carry
// numbers; both must parse to the same value. It always encodes as a number.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(string(b))
	if err != nil {
		return fmt.Errorf("not an integer: %q", string(b))
	}
	*f = FlexInt(n)
	return nil
}

func (f FlexInt) Int() int {
	return int(f)
}

// Prio wraps an int into an optional priority value.
func Prio(n int) *FlexInt {
	f := FlexInt(n)
	return &f
}

// Record is one DNS resource record as it appears in the export document.
// The record type is the key of the enclosing RecordSet, and the owning
// domain is the key of the enclosing Document entry.
type Record struct {
	Name       string   `json:"name,omitempty"`
	Content    string   `json:"content"`
	TTL        FlexInt  `json:"ttl,omitempty"`
	Priority   *FlexInt `json:"prio,omitempty"`
	Order      FlexInt  `json:"order,omitempty"`
	Preference FlexInt  `json:"preference,omitempty"`
}

// RecordSet groups the records of one domain by record type.
type RecordSet map[string][]Record

// Document is the interchange format between export and import: one
// single-key entry per domain, in export order. This is the only artifact
// the tool persists.
//
//	[{"example.com": {"A": [{"content": "1.2.3.4", "ttl": 600}]}}]
type Document []map[string]RecordSet

// RawDocument is the --raw counterpart: unprocessed answer text per
// (domain, type), for debugging what the resolver actually returned.
type RawDocument []map[string]map[string][]string
