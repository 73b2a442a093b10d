package pii

import "strings"

// Kind identifies a category of personally identifiable information
type Kind string

const (
	KindEmail      Kind = "email"
	KindPhone      Kind = "phone"
	KindSSN        Kind = "ssn"
	KindCreditCard Kind = "credit_card"
	KindURL        Kind = "url"
	KindAddress    Kind = "address"
	KindPersonName Kind = "person_name"
)

// AllKinds lists every supported kind in detection priority order
var AllKinds = []Kind{
	KindEmail,
	KindPhone,
	KindSSN,
	KindCreditCard,
	KindURL,
	KindAddress,
	KindPersonName,
}

// KindSet is the set of PII kinds enabled for a detection run
type KindSet map[Kind]bool

// Enabled reports whether the given kind is in the set
func (ks KindSet) Enabled(kind Kind) bool {
	return ks[kind]
}

// AllEnabled returns a KindSet containing every supported kind
func AllEnabled() KindSet {
	set := make(KindSet, len(AllKinds))
	for _, kind := range AllKinds {
		set[kind] = true
	}
	return set
}

// policySynonyms maps alternate policy names onto canonical kinds
var policySynonyms = map[string]Kind{
	"email":           KindEmail,
	"e-mail":          KindEmail,
	"phone":           KindPhone,
	"phone_number":    KindPhone,
	"telephone":       KindPhone,
	"ssn":             KindSSN,
	"social_security": KindSSN,
	"credit_card":     KindCreditCard,
	"creditcard":      KindCreditCard,
	"card":            KindCreditCard,
	"url":             KindURL,
	"website":         KindURL,
	"address":         KindAddress,
	"location":        KindAddress,
	"person_name":     KindPersonName,
	"name":            KindPersonName,
	"person":          KindPersonName,
}

// ParsePolicy converts an inbound redaction policy value into a KindSet.
// The literal "all" (or an empty policy) enables every kind; otherwise only
// explicitly named kinds and their recognized synonyms are enabled.
func ParsePolicy(policy string) KindSet {
	policy = strings.TrimSpace(strings.ToLower(policy))
	if policy == "" || policy == "all" {
		return AllEnabled()
	}

	set := make(KindSet)
	for _, name := range strings.Split(policy, ",") {
		name = strings.TrimSpace(name)
		if kind, ok := policySynonyms[name]; ok {
			set[kind] = true
		}
	}
	return set
}
