package github

import (
	"context"
	"time"

	"smartpush.dev/smartpush/internal/classify"
)

// diagnoseTimeout bounds the API calls so diagnostics never stall the prompt
const diagnoseTimeout = 10 * time.Second

// Advisor turns a Diagnoser report into remediation hints for credential and
// repository failures. Other kinds, non-GitHub remotes and API errors yield no hints.
type Advisor struct {
	Diagnoser Diagnoser
	RemoteURL string
	// Debug receives diagnostic failures; may be nil
	Debug func(format string, args ...interface{})
}

// Advise implements remedy.Advisor.
func (a *Advisor) Advise(ctx context.Context, kind classify.FailureKind) []string {
	if a == nil || a.Diagnoser == nil || a.RemoteURL == "" {
		return nil
	}
	if kind != classify.AuthenticationFailed && kind != classify.RepositoryNotFound {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, diagnoseTimeout)
	defer cancel()

	report, err := a.Diagnoser.Diagnose(ctx, a.RemoteURL)
	if err != nil {
		if a.Debug != nil {
			a.Debug("GitHub diagnostics skipped: %v", err)
		}
		return nil
	}
	return report.Lines()
}
