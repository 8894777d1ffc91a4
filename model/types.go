package model

import "strings"

// DefaultTypes is the record-type subset queried when neither --types nor
// --all is given.
var DefaultTypes = []string{"A", "AAAA", "CNAME", "MX", "TXT", "SPF"}

// SupportedTypes is the full --all universe.
var SupportedTypes = []string{
	"A", "AAAA", "AFSDB", "APL", "CAA", "CDNSKEY", "CDS", "CERT", "CNAME",
	"DHCID", "DLV", "DNAME", "DNSKEY", "DS", "EUI48", "EUI64", "HINFO",
	"HIP", "IPSECKEY", "KEY", "KX", "LOC", "MX", "NAPTR", "NS", "NSEC",
	"NSEC3", "NSEC3PARAM", "PTR", "RP", "SIG", "SMIMEA", "SOA", "SPF",
	"SRV", "SSHFP", "SVCB", "TLSA", "TXT", "URI", "ZONEMD",
}

var supported = func() map[string]bool {
	m := make(map[string]bool, len(SupportedTypes))
	for _, t := range SupportedTypes {
		m[t] = true
	}
	return m
}()

// IsSupported reports whether qtype (case-insensitive) is a known record type.
func IsSupported(qtype string) bool {
	return supported[strings.ToUpper(qtype)]
}

// NeedsPriority reports whether records of this type carry a prio field.
func NeedsPriority(qtype string) bool {
	switch strings.ToUpper(qtype) {
	case "MX", "SRV", "NAPTR":
		return true
	}
	return false
}
