// Package classify maps the text of a failed push to a FailureKind.
//
// Classification is a pure function over an ordered rule table. The first rule
// with a matching pattern wins, so the order of Rules is part of the behavior:
// broad patterns such as "rejected" sit below the specific ones they overlap.
package classify

import (
	"fmt"
	"strings"
)

// FailureKind is the closed set of push failure categories
type FailureKind int

const (
	// Unknown is returned when no rule matches
	Unknown FailureKind = iota
	MergeWouldOverwrite
	MissingRefspec
	RepositoryNotFound
	AuthenticationFailed
	RejectedNonFastForward
	UnrelatedHistories
	IndexLocked
	TLSCertificateError
	NetworkUnreachable
	DetachedHead
)

var kindNames = map[FailureKind]string{
	Unknown:                "Unknown",
	MergeWouldOverwrite:    "MergeWouldOverwrite",
	MissingRefspec:         "MissingRefspec",
	RepositoryNotFound:     "RepositoryNotFound",
	AuthenticationFailed:   "AuthenticationFailed",
	RejectedNonFastForward: "RejectedNonFastForward",
	UnrelatedHistories:     "UnrelatedHistories",
	IndexLocked:            "IndexLocked",
	TLSCertificateError:    "TlsCertificateError",
	NetworkUnreachable:     "NetworkUnreachable",
	DetachedHead:           "DetachedHead",
}

func (k FailureKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("FailureKind(%d)", int(k))
}

// AllKinds lists every kind in declaration order, Unknown last.
func AllKinds() []FailureKind {
	return []FailureKind{
		MergeWouldOverwrite,
		MissingRefspec,
		RepositoryNotFound,
		AuthenticationFailed,
		RejectedNonFastForward,
		UnrelatedHistories,
		IndexLocked,
		TLSCertificateError,
		NetworkUnreachable,
		DetachedHead,
		Unknown,
	}
}

// ParseKind resolves a kind from its name, case-insensitively.
func ParseKind(name string) (FailureKind, error) {
	for kind, kindName := range kindNames {
		if strings.EqualFold(kindName, name) {
			return kind, nil
		}
	}
	return Unknown, fmt.Errorf("unknown failure kind %q", name)
}

// Rule matches when any of its lowercase patterns is a substring of the output
type Rule struct {
	Kind     FailureKind
	Patterns []string
}

// Matches reports whether lowered contains one of the rule's patterns.
func (r Rule) Matches(lowered string) bool {
	for _, p := range r.Patterns {
		if strings.Contains(lowered, p) {
			return true
		}
	}
	return false
}

// Rules is the classification table in priority order.
var Rules = []Rule{
	{Kind: MergeWouldOverwrite, Patterns: []string{"would be overwritten by merge"}},
	{Kind: MissingRefspec, Patterns: []string{"src refspec", "bad revision 'head'"}},
	{Kind: RepositoryNotFound, Patterns: []string{"repository not found"}},
	{Kind: AuthenticationFailed, Patterns: []string{"authentication failed", "password authentication was removed"}},
	{Kind: RejectedNonFastForward, Patterns: []string{"rejected", "behind"}},
	{Kind: UnrelatedHistories, Patterns: []string{"refusing to merge unrelated histories"}},
	{Kind: IndexLocked, Patterns: []string{"index.lock"}},
	{Kind: TLSCertificateError, Patterns: []string{"ssl certificate problem"}},
	{Kind: NetworkUnreachable, Patterns: []string{"unable to access", "could not resolve host"}},
	{Kind: DetachedHead, Patterns: []string{"detached head"}},
	// No push rights on an otherwise reachable remote
	{Kind: RepositoryNotFound, Patterns: []string{"permission denied"}},
}

// Classify returns the kind of the first rule matching output. Matching is
// case-insensitive; output may be passed raw or already lowercased.
func Classify(output string) FailureKind {
	return ClassifyWith(Rules, output)
}

// ClassifyWith classifies output against a custom rule table.
func ClassifyWith(rules []Rule, output string) FailureKind {
	lowered := strings.ToLower(output)
	for _, rule := range rules {
		if rule.Matches(lowered) {
			return rule.Kind
		}
	}
	return Unknown
}
