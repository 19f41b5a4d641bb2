package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   FailureKind
	}{
		{"merge overwrite", "error: Your local changes to the following files would be overwritten by merge:\n\tREADME.md", MergeWouldOverwrite},
		{"src refspec", "error: src refspec main does not match any", MissingRefspec},
		{"bad revision", "fatal: bad revision 'HEAD'", MissingRefspec},
		{"repository not found", "remote: Repository not found.\nfatal: repository 'https://github.com/me/nope.git/' not found", RepositoryNotFound},
		{"authentication failed", "fatal: Authentication failed for 'https://github.com/me/repo.git/'", AuthenticationFailed},
		{"password removed", "remote: Support for password authentication was removed on August 13, 2021.", AuthenticationFailed},
		{"rejected", " ! [rejected]        main -> main (fetch first)", RejectedNonFastForward},
		{"behind", "hint: Updates were rejected because the tip of your current branch is behind", RejectedNonFastForward},
		{"unrelated histories", "fatal: refusing to merge unrelated histories", UnrelatedHistories},
		{"index lock", "fatal: Unable to create '/repo/.git/index.lock': File exists.", IndexLocked},
		{"tls", "fatal: unable to access 'https://github.com/me/repo.git/': SSL certificate problem: self signed certificate", TLSCertificateError},
		{"unable to access", "fatal: unable to access 'https://github.com/me/repo.git/': Failed to connect to github.com port 443", NetworkUnreachable},
		{"dns", "ssh: Could not resolve host: github.com", NetworkUnreachable},
		{"detached head", "You are in 'detached HEAD' state.", DetachedHead},
		{"permission denied", "git@github.com: Permission denied (publickey).", RepositoryNotFound},
		{"unknown", "fatal: the remote end hung up unexpectedly", Unknown},
		{"empty", "", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.output))
		})
	}
}

func TestClassify_AuthenticationIsCaseInsensitive(t *testing.T) {
	phrases := []string{"authentication failed", "password authentication was removed"}
	surroundings := [][2]string{
		{"", ""},
		{"remote: ", "."},
		{"fatal: ", " for 'https://example.com/x.git'"},
		{"some noise\n", "\nmore noise"},
	}

	for _, phrase := range phrases {
		for _, variant := range []string{phrase, strings.ToUpper(phrase), strings.ToUpper(phrase[:1]) + phrase[1:]} {
			for _, s := range surroundings {
				output := s[0] + variant + s[1]
				assert.Equal(t, AuthenticationFailed, Classify(output), "output %q", output)
			}
		}
	}
}

func TestClassify_DeclaredOrderWins(t *testing.T) {
	// Every pair of rules: text containing a pattern from each must classify
	// as the earlier rule, unless an even earlier rule also matches.
	for i, earlier := range Rules {
		for _, later := range Rules[i+1:] {
			output := earlier.Patterns[0] + " and " + later.Patterns[0]
			want := ClassifyWith(Rules[:i+1], output)
			assert.Equal(t, want, Classify(output), "output %q", output)
			assert.NotEqual(t, Unknown, want)
		}
	}

	assert.Equal(t, MissingRefspec, Classify("! [rejected] ... error: src refspec main does not match any"))
	assert.Equal(t, MergeWouldOverwrite, Classify("rejected: would be overwritten by merge"))
	assert.Equal(t, RejectedNonFastForward, Classify("rejected and permission denied"))
}

func TestRules_MatchTableOrder(t *testing.T) {
	want := []struct {
		kind     FailureKind
		patterns []string
	}{
		{MergeWouldOverwrite, []string{"would be overwritten by merge"}},
		{MissingRefspec, []string{"src refspec", "bad revision 'head'"}},
		{RepositoryNotFound, []string{"repository not found"}},
		{AuthenticationFailed, []string{"authentication failed", "password authentication was removed"}},
		{RejectedNonFastForward, []string{"rejected", "behind"}},
		{UnrelatedHistories, []string{"refusing to merge unrelated histories"}},
		{IndexLocked, []string{"index.lock"}},
		{TLSCertificateError, []string{"ssl certificate problem"}},
		{NetworkUnreachable, []string{"unable to access", "could not resolve host"}},
		{DetachedHead, []string{"detached head"}},
		{RepositoryNotFound, []string{"permission denied"}},
	}

	require.Len(t, Rules, len(want))
	for i, w := range want {
		assert.Equal(t, w.kind, Rules[i].Kind, "rule %d", i)
		assert.Equal(t, w.patterns, Rules[i].Patterns, "rule %d", i)
		for _, p := range Rules[i].Patterns {
			assert.Equal(t, strings.ToLower(p), p, "patterns must be lowercase")
		}
	}
}

func TestClassifyWith(t *testing.T) {
	rules := []Rule{
		{Kind: IndexLocked, Patterns: []string{"rejected"}},
		{Kind: RejectedNonFastForward, Patterns: []string{"rejected"}},
	}
	assert.Equal(t, IndexLocked, ClassifyWith(rules, "REJECTED"))
	assert.Equal(t, Unknown, ClassifyWith(nil, "rejected"))
}

func TestKindNames(t *testing.T) {
	assert.Equal(t, "TlsCertificateError", TLSCertificateError.String())
	assert.Len(t, AllKinds(), 11)
	assert.Equal(t, Unknown, AllKinds()[len(AllKinds())-1])

	for _, kind := range AllKinds() {
		parsed, err := ParseKind(strings.ToLower(kind.String()))
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	_, err := ParseKind("Gremlins")
	require.Error(t, err)
}
