package git_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"smartpush.dev/smartpush/internal/audit"
	"smartpush.dev/smartpush/internal/git"
	"smartpush.dev/smartpush/testhelpers"
)

func TestResolveBranch(t *testing.T) {
	newRunner := func(t *testing.T, exec *testhelpers.ScriptedExecutor) git.Runner {
		return git.NewCommandRunner(audit.New(filepath.Join(t.TempDir(), "audit.log")), git.WithExecutor(exec))
	}

	tests := []struct {
		name    string
		current testhelpers.ScriptedResponse
		listing string
		want    string
	}{
		{
			name:    "uses the checked-out branch",
			current: testhelpers.ScriptedResponse{Output: "feature/login\n"},
			want:    "feature/login",
		},
		{
			name:    "falls back to master when main is absent",
			current: testhelpers.ScriptedResponse{Fail: true, Output: "error: unknown option `show-current'"},
			listing: "  develop\n* master\n",
			want:    "master",
		},
		{
			name:    "prefers main when both are listed",
			current: testhelpers.ScriptedResponse{Output: ""},
			listing: "  main\n  master\n",
			want:    "main",
		},
		{
			name:    "defaults to main when neither is listed",
			current: testhelpers.ScriptedResponse{Output: "   "},
			listing: "  develop\n",
			want:    "main",
		},
		{
			name:    "defaults to main on an empty listing",
			current: testhelpers.ScriptedResponse{Fail: true},
			listing: "",
			want:    "main",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := testhelpers.NewScriptedExecutor().
				On("branch --show-current", tt.current).
				Succeed("branch", tt.listing)

			assert.Equal(t, tt.want, git.ResolveBranch(context.Background(), newRunner(t, exec)))
		})
	}
}

func TestResolveBranch_RealRepository(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	runner := git.NewCommandRunner(audit.New(filepath.Join(t.TempDir(), "audit.log")), git.WithWorkingDir(scene.Dir))

	assert.Equal(t, "main", git.ResolveBranch(context.Background(), runner))
}
