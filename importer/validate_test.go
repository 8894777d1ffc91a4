package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extremtechniker/dnsmigrate/model"
)

func TestReadDocument(t *testing.T) {
	doc, err := ReadDocument(strings.NewReader(`[{"example.com":{"A":[{"content":"1.2.3.4","ttl":600}]}}]`))
	require.NoError(t, err)
	require.Len(t, doc, 1)
	assert.Equal(t, "1.2.3.4", doc[0]["example.com"]["A"][0].Content)
}

func TestReadDocumentBadJSON(t *testing.T) {
	_, err := ReadDocument(strings.NewReader(`[{"example.com": {`))
	require.Error(t, err)

	_, err = ReadDocument(strings.NewReader(`[}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "offset")
}

func TestValidateAcceptsWellFormedDocument(t *testing.T) {
	doc := model.Document{
		{"example.com": model.RecordSet{
			"A":  {{Content: "1.2.3.4", TTL: 600}},
			"MX": {{Content: "mail.example.com.", TTL: 3600, Priority: model.Prio(10)}},
		}},
	}
	assert.Empty(t, Validate(doc))
}

func TestValidateIsExhaustive(t *testing.T) {
	doc := model.Document{
		{"example.com": model.RecordSet{
			"A":     {{Content: "", TTL: 600}},                 // empty content
			"MX":    {{Content: "mail.example.com.", TTL: 60}}, // missing prio
			"BOGUS": {{Content: "x"}},                          // unknown type
		}},
		{"": model.RecordSet{ // empty domain
			"A": {{Content: "1.2.3.4"}},
		}},
		{"example.org": model.RecordSet{
			"TXT": {{Content: "ok", TTL: -5}}, // negative ttl
		}},
	}

	errs := Validate(doc)
	require.Len(t, errs, 5)

	byField := map[string]int{}
	for _, e := range errs {
		byField[e.Field]++
	}
	assert.Equal(t, 1, byField["content"])
	assert.Equal(t, 1, byField["prio"])
	assert.Equal(t, 1, byField["type"])
	assert.Equal(t, 1, byField["domain"])
	assert.Equal(t, 1, byField["ttl"])
}

func TestFieldErrorIdentifiesRecord(t *testing.T) {
	doc := model.Document{
		{"example.com": model.RecordSet{
			"A": {
				{Content: "1.2.3.4"},
				{Content: ""},
			},
		}},
	}

	errs := Validate(doc)
	require.Len(t, errs, 1)
	assert.Equal(t, "example.com", errs[0].Domain)
	assert.Equal(t, "A", errs[0].QType)
	assert.Equal(t, 1, errs[0].Index)
	assert.Equal(t, "content", errs[0].Field)
	assert.Contains(t, errs[0].Error(), "example.com A record #1")
}
