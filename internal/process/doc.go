/*
Package process abstracts external process execution so the analyzer
invocation and the installer can be exercised in tests without spawning
real programs.

	mgr := process.NewDefaultManager()
	out, err := mgr.Run(ctx, "pyright", ".", "--outputjson")

Commands are always built from an explicit argument list. Nothing is ever
passed through a shell, so paths containing spaces or metacharacters reach
the child process verbatim.

For tests, use MockManager:

	mock := &process.MockManager{
		RunFunc: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return []byte(`{"generalDiagnostics": []}`), nil
		},
	}
*/
package process
