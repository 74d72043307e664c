// Package sessions defines the agent-session notification capability consumed
// by the focus sagas. Session transport and protocol adapters live outside
// this module; twig only requires this request/response surface.
package sessions

import "context"

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=sessions.go -destination=mocks/sessions.gen.go -package=mocks

// Session describes an agent session bound to a repository or worktree path.
type Session struct {
	ID      string `json:"id"`
	Path    string `json:"path"`
	Running bool   `json:"running"`
}

// BranchContext describes the branch state a session should be told about.
type BranchContext struct {
	Branch   string `json:"branch"`
	Detached bool   `json:"detached"`
}

// Notifier provides agent-session lookup and notification.
type Notifier interface {
	// ListSessions lists agent sessions bound to the given path.
	ListSessions(ctx context.Context, path string) ([]Session, error)

	// NotifyBranchContext tells a session that its branch context changed.
	NotifyBranchContext(ctx context.Context, sessionID string, branchContext BranchContext) error

	// CancelSession interrupts a running session.
	CancelSession(ctx context.Context, sessionID string) error
}

// noopNotifier accepts every call without doing anything.
type noopNotifier struct{}

// NewNoopNotifier creates a Notifier that accepts every call.
func NewNoopNotifier() Notifier {
	return &noopNotifier{}
}

// ListSessions returns no sessions for noop notifier.
func (n *noopNotifier) ListSessions(_ context.Context, _ string) ([]Session, error) {
	return nil, nil
}

// NotifyBranchContext does nothing for noop notifier.
func (n *noopNotifier) NotifyBranchContext(_ context.Context, _ string, _ BranchContext) error {
	return nil
}

// CancelSession does nothing for noop notifier.
func (n *noopNotifier) CancelSession(_ context.Context, _ string) error {
	return nil
}
