// Package actions provides the high-level flows behind CLI commands.
//
// PushAction is the push session: it validates the repository, resolves the
// branch, commits with a timestamped message and then loops push, classify
// and remediate until the push succeeds or the session is aborted.
//
// Actions accept a runtime.Context which provides the runner, prompter,
// audit log and console output.
package actions
