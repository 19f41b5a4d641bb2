package remedy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartpush.dev/smartpush/internal/classify"
)

func TestTable(t *testing.T) {
	t.Run("covers every kind", func(t *testing.T) {
		for _, kind := range classify.AllKinds() {
			r, ok := Table[kind]
			require.True(t, ok, "missing remediation for %s", kind)
			assert.Equal(t, kind, r.Kind)
			assert.NotEmpty(t, r.Title)
			assert.NotEmpty(t, r.Description)
			assert.NotEmpty(t, r.RecommendedAction)
			assert.NotEmpty(t, r.Options)
			assert.LessOrEqual(t, len(r.Options), 2)
		}
	})

	t.Run("only four kinds can retry", func(t *testing.T) {
		retryable := []classify.FailureKind{}
		for _, kind := range classify.AllKinds() {
			if Lookup(kind).Retryable() {
				retryable = append(retryable, kind)
			}
		}
		assert.ElementsMatch(t, []classify.FailureKind{
			classify.MergeWouldOverwrite,
			classify.MissingRefspec,
			classify.RejectedNonFastForward,
			classify.Unknown,
		}, retryable)
	})

	t.Run("terminal kinds offer a single abort", func(t *testing.T) {
		for _, kind := range classify.AllKinds() {
			r := Lookup(kind)
			if r.Retryable() {
				assert.Len(t, r.Options, 2, "kind %s", kind)
				assert.Equal(t, ActionAbort, r.Options[1].Action, "kind %s", kind)
				continue
			}
			require.Len(t, r.Options, 1, "kind %s", kind)
			assert.Equal(t, ActionAbort, r.Options[0].Action)
		}
	})

	t.Run("actions per kind", func(t *testing.T) {
		assert.Equal(t, ActionStash, Lookup(classify.MergeWouldOverwrite).Options[0].Action)
		assert.Equal(t, ActionSetUpstream, Lookup(classify.MissingRefspec).Options[0].Action)
		assert.Equal(t, ActionPullRebase, Lookup(classify.RejectedNonFastForward).Options[0].Action)
		assert.Equal(t, ActionRetry, Lookup(classify.Unknown).Options[0].Action)
	})

	t.Run("authentication guidance names the token page", func(t *testing.T) {
		assert.Contains(t, Lookup(classify.AuthenticationFailed).RecommendedAction, "https://github.com/settings/tokens")
	})

	t.Run("unknown kinds fall back", func(t *testing.T) {
		assert.Equal(t, classify.Unknown, Lookup(classify.FailureKind(99)).Kind)
	})
}

func TestRemediationChoice(t *testing.T) {
	choice := Lookup(classify.RejectedNonFastForward).Choice()

	assert.Equal(t, "Remote has newer commits", choice.Title)
	assert.Equal(t, []string{
		"Pull with rebase (git pull --rebase) and retry the push",
		"Abort",
	}, choice.Options)
}

func TestStateTerminal(t *testing.T) {
	assert.True(t, Aborted.Terminal())
	assert.True(t, Succeeded.Terminal())
	for _, s := range []State{Classifying, PresentingChoice, ExecutingRemedy, RetryPush} {
		assert.False(t, s.Terminal(), s.String())
	}
}
