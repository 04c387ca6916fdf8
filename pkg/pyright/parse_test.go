package pyright_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gopyright/pkg/diagnostic"
	"github.com/yaklabco/gopyright/pkg/pyright"
)

func intPtr(v int) *int { return &v }

func TestParse_EmptyOutput(t *testing.T) {
	t.Parallel()

	for _, output := range []string{"", "   ", "\n\t\n"} {
		set, source := pyright.ParseWithSource(output)
		assert.Empty(t, set)
		assert.NotNil(t, set)
		assert.Equal(t, pyright.SourceNone, source)
	}
}

func TestParseJSON_PreservesOrderAndFields(t *testing.T) {
	t.Parallel()

	output := `{
  "version": "1.1.350",
  "generalDiagnostics": [
    {
      "file": "/repo/src/app.py",
      "severity": "error",
      "message": "Cannot access member \"foo\"",
      "range": {"start": {"line": 9, "character": 4}, "end": {"line": 9, "character": 7}},
      "rule": "reportAttributeAccessIssue"
    },
    {
      "file": "/repo/src/util.py",
      "severity": "warning",
      "message": "Import 'os' is not accessed",
      "range": {"start": {"line": 0, "character": 7}}
    },
    {
      "file": "/repo/src/cli.py",
      "severity": "information",
      "message": "Type of x is partially unknown",
      "range": {"start": {"line": 3, "character": 0}}
    }
  ],
  "summary": {"filesAnalyzed": 3, "errorCount": 1}
}`

	set, err := pyright.ParseJSON(output)
	require.NoError(t, err)
	require.Len(t, set, 3)

	assert.Equal(t, diagnostic.New("/repo/src/app.py", 9, 4, "error", `Cannot access member "foo"`), set[0])
	assert.Equal(t, diagnostic.New("/repo/src/util.py", 0, 7, "warning", "Import 'os' is not accessed"), set[1])
	assert.Equal(t, diagnostic.New("/repo/src/cli.py", 3, 0, "information", "Type of x is partially unknown"), set[2])

	parsed, source := pyright.ParseWithSource(output)
	assert.Equal(t, pyright.SourceJSON, source)
	assert.Equal(t, set, parsed)
}

func TestParseJSON_MissingFields(t *testing.T) {
	t.Parallel()

	set, err := pyright.ParseJSON(`{"generalDiagnostics":[{"file":"a.py","message":"boom"}]}`)
	require.NoError(t, err)
	require.Len(t, set, 1)

	assert.Equal(t, "a.py", set[0].File)
	assert.Equal(t, diagnostic.SeverityError, set[0].Severity)
	assert.Equal(t, "boom", set[0].Message)
	assert.Nil(t, set[0].Line)
	assert.Nil(t, set[0].Column)
}

func TestParseJSON_NullSeverityDefaultsToError(t *testing.T) {
	t.Parallel()

	set, err := pyright.ParseJSON(`{"generalDiagnostics":[{"file":"a.py","severity":null,"message":"m","range":{"start":{"line":1}}}]}`)
	require.NoError(t, err)
	require.Len(t, set, 1)
	assert.Equal(t, diagnostic.SeverityError, set[0].Severity)
	assert.Equal(t, intPtr(1), set[0].Line)
	assert.Nil(t, set[0].Column)
}

func TestParseJSON_NoDiagnosticsKey(t *testing.T) {
	t.Parallel()

	for _, output := range []string{`{}`, `{"summary":{}}`, `{"generalDiagnostics":null}`, `{"generalDiagnostics":[]}`} {
		set, err := pyright.ParseJSON(output)
		require.NoError(t, err, output)
		assert.Empty(t, set, output)
	}
}

func TestParseJSON_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		output string
	}{
		{name: "not json", output: "No configuration file found."},
		{name: "truncated", output: `{"generalDiagnostics":[`},
		{name: "trailing data", output: `{"generalDiagnostics":[]} extra`},
		{name: "top level null", output: `null`},
		{name: "top level array", output: `[]`},
		{name: "top level string", output: `"text"`},
		{name: "diagnostics not array", output: `{"generalDiagnostics":{}}`},
		{name: "entry not object", output: `{"generalDiagnostics":[1]}`},
		{name: "null entry", output: `{"generalDiagnostics":[null]}`},
		{name: "file not string", output: `{"generalDiagnostics":[{"file":1}]}`},
		{name: "severity not string", output: `{"generalDiagnostics":[{"severity":true}]}`},
		{name: "message not string", output: `{"generalDiagnostics":[{"message":[]}]}`},
		{name: "range not object", output: `{"generalDiagnostics":[{"range":"x"}]}`},
		{name: "start not object", output: `{"generalDiagnostics":[{"range":{"start":3}}]}`},
		{name: "line not integer", output: `{"generalDiagnostics":[{"range":{"start":{"line":1.5}}}]}`},
		{name: "character not integer", output: `{"generalDiagnostics":[{"range":{"start":{"character":"2"}}}]}`},
		{name: "report key case", output: `{"GENERALDIAGNOSTICS":[{"file":"a.py"}]}`},
		{name: "diagnostic key case", output: `{"generalDiagnostics":[{"FILE":"a.py"}]}`},
		{name: "range key case", output: `{"generalDiagnostics":[{"Range":{"start":{"line":1}}}]}`},
		{name: "start key case", output: `{"generalDiagnostics":[{"range":{"Start":{"line":1}}}]}`},
		{name: "position key case", output: `{"generalDiagnostics":[{"range":{"start":{"Line":1}}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			set, err := pyright.ParseJSON(tt.output)
			require.ErrorIs(t, err, pyright.ErrMalformedOutput)
			assert.Nil(t, set)
		})
	}
}

func TestParseJSON_IgnoresUnknownKeys(t *testing.T) {
	t.Parallel()

	output := `{"version":"1.1.380","summary":{"errorCount":1},"generalDiagnostics":[` +
		`{"file":"a.py","severity":"error","message":"m","rule":"reportX",` +
		`"range":{"start":{"line":2,"character":3},"end":{"line":2,"character":5}}}]}`

	set, err := pyright.ParseJSON(output)
	require.NoError(t, err)
	require.Len(t, set, 1)
	assert.Equal(t, 2, set[0].LineNumber())
	assert.Equal(t, "a.py", set[0].File)
}

func TestParse_CaseMismatchedKeysFallBackToPlain(t *testing.T) {
	t.Parallel()

	set, source := pyright.ParseWithSource(`{"GENERALDIAGNOSTICS":[{"FILE":"a.py"}]}`)
	assert.Equal(t, pyright.SourcePlain, source)
	assert.Empty(t, set)
}

func TestParse_FallsBackToPlain(t *testing.T) {
	t.Parallel()

	set, source := pyright.ParseWithSource("a.py:3:4 - warning: Unused import\n")
	assert.Equal(t, pyright.SourcePlain, source)
	require.Len(t, set, 1)
	assert.Equal(t, diagnostic.New("a.py", 3, 4, "warning", "Unused import"), set[0])

	assert.Equal(t, set, pyright.Parse("a.py:3:4 - warning: Unused import\n"))
}

func TestParsePlain(t *testing.T) {
	t.Parallel()

	output := "No configuration file found.\n" +
		"/repo/src/app.py\n" +
		"  /repo/src/app.py:10:5 - error: \"foo\" is not defined (reportUndefinedVariable)\n" +
		"  /repo/src/app.py:12:1 - WARNING:   Import \"os\" is not accessed  \r\n" +
		"src/x.py:1:2-information:tight\n" +
		"bad.py:x:2 - error: not a line number\n" +
		"huge.py:99999999999999999999:1 - error: overflow\n" +
		"1 error, 1 warning, 0 informations\n"

	set := pyright.ParsePlain(output)
	require.Len(t, set, 3)

	assert.Equal(t, diagnostic.New("/repo/src/app.py", 10, 5, "error",
		`"foo" is not defined (reportUndefinedVariable)`), set[0])
	assert.Equal(t, diagnostic.New("/repo/src/app.py", 12, 1, "warning",
		`Import "os" is not accessed`), set[1])
	assert.Equal(t, diagnostic.New("src/x.py", 1, 2, "information", "tight"), set[2])
}

func TestParsePlain_NoMatches(t *testing.T) {
	t.Parallel()

	set := pyright.ParsePlain("everything is fine\n0 errors\n")
	assert.NotNil(t, set)
	assert.Empty(t, set)
}
