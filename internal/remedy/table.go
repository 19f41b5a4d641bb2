// Package remedy implements the interactive remediation flow that runs after a failed push.
package remedy

import (
	"smartpush.dev/smartpush/internal/classify"
)

// Action is what the engine does when an option is chosen
type Action int

const (
	// ActionAbort ends the session, optionally after showing guidance
	ActionAbort Action = iota
	// ActionStash stashes local changes, then retries the push
	ActionStash
	// ActionSetUpstream force-names the branch and pushes with upstream tracking
	ActionSetUpstream
	// ActionPullRebase rebases onto the remote branch, then retries the push
	ActionPullRebase
	// ActionRetry retries the push unchanged
	ActionRetry
)

func (a Action) String() string {
	switch a {
	case ActionStash:
		return "stash"
	case ActionSetUpstream:
		return "set-upstream"
	case ActionPullRebase:
		return "pull-rebase"
	case ActionRetry:
		return "retry"
	default:
		return "abort"
	}
}

// Option is one numbered entry of a remediation menu
type Option struct {
	Label  string
	Action Action
}

// Remediation describes how one FailureKind is explained and handled
type Remediation struct {
	Kind              classify.FailureKind
	Title             string
	Description       string
	RecommendedAction string
	Options           []Option
}

// Choice is what the user is shown: a title, a description, the recommended
// action and the ordered option labels. It lives for one failure only.
type Choice struct {
	Title             string
	Description       string
	RecommendedAction string
	Options           []string
}

// Choice renders the remediation as a Choice for presentation.
func (r Remediation) Choice() Choice {
	labels := make([]string, len(r.Options))
	for i, opt := range r.Options {
		labels[i] = opt.Label
	}
	return Choice{
		Title:             r.Title,
		Description:       r.Description,
		RecommendedAction: r.RecommendedAction,
		Options:           labels,
	}
}

// Retryable reports whether any option leads back to a push.
func (r Remediation) Retryable() bool {
	for _, opt := range r.Options {
		if opt.Action != ActionAbort {
			return true
		}
	}
	return false
}

const tokenSettingsURL = "https://github.com/settings/tokens"

var abortOption = Option{Label: "Abort", Action: ActionAbort}

// Table is the fixed remediation table. Kinds whose root cause cannot be fixed
// safely from here (credentials, DNS/TLS, lock files, detached HEAD, unrelated
// histories) only offer guidance followed by an abort.
var Table = map[classify.FailureKind]Remediation{
	classify.MergeWouldOverwrite: {
		Kind:              classify.MergeWouldOverwrite,
		Title:             "Local changes block the update",
		Description:       "Git cannot update because local files would be overwritten by the merge.",
		RecommendedAction: "Stash your local changes (git stash), then push again.",
		Options: []Option{
			{Label: "Stash local changes (git stash) and retry the push", Action: ActionStash},
			abortOption,
		},
	},
	classify.MissingRefspec: {
		Kind:              classify.MissingRefspec,
		Title:             "Branch does not exist",
		Description:       "Git could not find the branch to push.",
		RecommendedAction: "Create the branch under the expected name and push it with upstream tracking.",
		Options: []Option{
			{Label: "Create the branch and push with upstream tracking (git push -u)", Action: ActionSetUpstream},
			abortOption,
		},
	},
	classify.RepositoryNotFound: {
		Kind:              classify.RepositoryNotFound,
		Title:             "Repository not found",
		Description:       "The remote repository does not exist or you have no rights to push to it.",
		RecommendedAction: "Check the remote URL (git remote -v) and your permissions on the repository.",
		Options: []Option{
			{Label: "Abort and check the remote URL and permissions", Action: ActionAbort},
		},
	},
	classify.AuthenticationFailed: {
		Kind:              classify.AuthenticationFailed,
		Title:             "Authentication failed",
		Description:       "GitHub no longer accepts account passwords for git operations.",
		RecommendedAction: "Create a personal access token at " + tokenSettingsURL + " and use it as your password.",
		Options: []Option{
			{Label: "Abort and set up a personal access token", Action: ActionAbort},
		},
	},
	classify.RejectedNonFastForward: {
		Kind:              classify.RejectedNonFastForward,
		Title:             "Remote has newer commits",
		Description:       "The remote branch contains commits you do not have locally.",
		RecommendedAction: "Rebase your commits onto the remote branch (git pull --rebase), then push again.",
		Options: []Option{
			{Label: "Pull with rebase (git pull --rebase) and retry the push", Action: ActionPullRebase},
			abortOption,
		},
	},
	classify.UnrelatedHistories: {
		Kind:              classify.UnrelatedHistories,
		Title:             "Unrelated histories",
		Description:       "The local and remote branches share no common commit.",
		RecommendedAction: "Review the remote history, then run git pull --allow-unrelated-histories yourself.",
		Options: []Option{
			{Label: "Abort and merge the histories manually", Action: ActionAbort},
		},
	},
	classify.IndexLocked: {
		Kind:              classify.IndexLocked,
		Title:             "Git lock file present",
		Description:       "Git believes another operation is still running in this repository.",
		RecommendedAction: "Make sure no other git process is running, then delete .git/index.lock.",
		Options: []Option{
			{Label: "Abort and remove .git/index.lock manually", Action: ActionAbort},
		},
	},
	classify.TLSCertificateError: {
		Kind:              classify.TLSCertificateError,
		Title:             "SSL certificate problem",
		Description:       "The server certificate could not be verified, often because of a proxy or corporate network.",
		RecommendedAction: "Check your network, proxy or VPN settings and the system certificate store.",
		Options: []Option{
			{Label: "Abort and check the network or VPN", Action: ActionAbort},
		},
	},
	classify.NetworkUnreachable: {
		Kind:              classify.NetworkUnreachable,
		Title:             "Remote unreachable",
		Description:       "The remote could not be reached because of a network, VPN or DNS problem.",
		RecommendedAction: "Check your internet connection, then run smartpush again.",
		Options: []Option{
			{Label: "Abort and check the connection", Action: ActionAbort},
		},
	},
	classify.DetachedHead: {
		Kind:              classify.DetachedHead,
		Title:             "Detached HEAD",
		Description:       "You are not on a branch.",
		RecommendedAction: "Check out main or master (git checkout main), then run smartpush again.",
		Options: []Option{
			{Label: "Abort and check out a branch", Action: ActionAbort},
		},
	},
	classify.Unknown: {
		Kind:              classify.Unknown,
		Title:             "Unrecognized error",
		Description:       "Git returned an error smartpush does not recognize.",
		RecommendedAction: "Read the output above; retry if the cause was transient.",
		Options: []Option{
			{Label: "Retry the push", Action: ActionRetry},
			abortOption,
		},
	},
}

// Lookup returns the remediation for kind, falling back to Unknown.
func Lookup(kind classify.FailureKind) Remediation {
	if r, ok := Table[kind]; ok {
		return r
	}
	return Table[classify.Unknown]
}
