package process

import (
	"context"
	"os/exec"
	"sync"
)

// MockManager is a test double for Manager.
//
// Configure it by setting the function fields. When LookPathFunc is nil,
// LookPath succeeds for every name. When RunFunc is nil, Run panics.
type MockManager struct {
	// RunFunc is called when Run is invoked.
	RunFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

	// LookPathFunc is called when LookPath is invoked.
	LookPathFunc func(name string) (string, error)

	calls []Call
	mu    sync.Mutex
}

// Call records a single method invocation.
type Call struct {
	Method string
	Name   string
	Args   []string
}

// Run records the call and delegates to RunFunc.
func (m *MockManager) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	m.record(Call{Method: "Run", Name: name, Args: append([]string(nil), args...)})
	if m.RunFunc == nil {
		panic("MockManager.RunFunc not set")
	}
	return m.RunFunc(ctx, name, args...)
}

// LookPath records the call and delegates to LookPathFunc.
func (m *MockManager) LookPath(name string) (string, error) {
	m.record(Call{Method: "LookPath", Name: name})
	if m.LookPathFunc == nil {
		return "/usr/local/bin/" + name, nil
	}
	return m.LookPathFunc(name)
}

// Calls returns a copy of all recorded calls.
func (m *MockManager) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}

// RunCalls returns only the recorded Run calls.
func (m *MockManager) RunCalls() []Call {
	var out []Call
	for _, call := range m.Calls() {
		if call.Method == "Run" {
			out = append(out, call)
		}
	}
	return out
}

// Reset clears recorded calls.
func (m *MockManager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}

func (m *MockManager) record(call Call) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

// NotFound builds the error exec.LookPath returns for a missing executable.
func NotFound(name string) error {
	return &exec.Error{Name: name, Err: exec.ErrNotFound}
}

// Compile-time interface compliance check.
var (
	_ Manager = (*DefaultManager)(nil)
	_ Manager = (*MockManager)(nil)
)
