package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jamesprial/unraid-cli/internal/catalog"
	"github.com/jamesprial/unraid-cli/internal/config"
	"github.com/jamesprial/unraid-cli/internal/graphql"
)

// stubClient is the graphql.Client substitute used across command tests.
type stubClient struct {
	calls     int
	lastQuery string
	lastVars  map[string]any
	doc       map[string]any
	err       error
}

func (s *stubClient) Execute(ctx context.Context, query string, variables map[string]any) (map[string]any, error) {
	s.calls++
	s.lastQuery = query
	s.lastVars = variables
	return s.doc, s.err
}

// testEnv isolates a command run from the host: empty working directory (no
// stray .env), cleared UNRAID_* variables, and a stub session factory so no
// network traffic can occur.
type testEnv struct {
	stub        *stubClient
	constructed int
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, v := range []string{"UNRAID_ADDRESS", "UNRAID_PORT", "UNRAID_API_KEY", "UNRAID_TIMEOUT", "UNRAID_DIRECT"} {
		t.Setenv(v, "")
	}
	return &testEnv{stub: &stubClient{doc: map[string]any{"data": map[string]any{}}}}
}

func (e *testEnv) run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	opts := &rootOptions{
		logger: zap.NewNop(),
		newClient: func(cfg config.ServerConfig, logger *zap.Logger) (graphql.Client, string, error) {
			e.constructed++
			return e.stub, cfg.Address + "/graphql", nil
		},
	}

	root := newRootCmd(opts)
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func connFlags(extra ...string) []string {
	return append([]string{"--address", "tower.local", "--api-key", "test-key"}, extra...)
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

func Test_QueryCommand_PrintsDocument(t *testing.T) {
	env := newTestEnv(t)
	env.stub.doc = map[string]any{"data": map[string]any{"info": map[string]any{"os": map[string]any{"platform": "linux"}}}}

	stdout, _, err := env.run(t, "", append(connFlags(), "query", "info")...)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc), "output must be valid JSON")
	assert.Contains(t, stdout, "\n  \"data\"", "output must be indented")

	assert.Equal(t, 1, env.stub.calls)
	op, _ := catalog.Lookup("info")
	assert.Equal(t, op.Document, env.stub.lastQuery)
}

func Test_QueryCommand_UnknownName(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.run(t, "", append(connFlags(), "query", "bogus")...)
	require.Error(t, err)
	assert.Zero(t, env.constructed)
}

func Test_QueryCommand_All(t *testing.T) {
	env := newTestEnv(t)

	stdout, _, err := env.run(t, "", append(connFlags(), "query", "all")...)
	require.NoError(t, err)

	queries := catalog.Queries()
	assert.Equal(t, len(queries), env.stub.calls, "one request per category")
	assert.Equal(t, 1, env.constructed, "one session reused across the walk")
	for _, op := range queries {
		assert.Contains(t, stdout, "=== "+strings.ToUpper(op.Name)+" ===")
	}
}

func Test_QueryCommand_AllContinuesPastErrorRecords(t *testing.T) {
	env := newTestEnv(t)
	env.stub.doc = nil
	env.stub.err = graphql.NewHTTPStatusError(500, "boom")

	stdout, _, err := env.run(t, "", append(connFlags(), "query", "all")...)
	require.NoError(t, err, "executor error records do not abort the walk")

	assert.Equal(t, len(catalog.Queries()), env.stub.calls)
	assert.Contains(t, stdout, `"status": 500`)
}

func Test_QueryCommand_NotificationFlags(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.run(t, "", append(connFlags(),
		"query", "notifications", "--type", "ARCHIVE", "--importance", "WARNING", "--limit", "5")...)
	require.NoError(t, err)

	assert.Equal(t, "ARCHIVE", env.stub.lastVars["type"])
	assert.Equal(t, "WARNING", env.stub.lastVars["importance"])
	assert.Equal(t, 5, env.stub.lastVars["limit"])
}

func Test_QueryCommand_MissingConfigFails(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.run(t, "", "query", "info")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "address is required")
	assert.Zero(t, env.stub.calls)
}

// ---------------------------------------------------------------------------
// Raw documents
// ---------------------------------------------------------------------------

func Test_RawCommand(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.run(t, "", append(connFlags(),
		"raw", "query { online }", "--variables", `{"id":"x"}`)...)
	require.NoError(t, err)

	assert.Equal(t, "query { online }", env.stub.lastQuery)
	assert.Equal(t, map[string]any{"id": "x"}, env.stub.lastVars)
}

func Test_RawCommand_BadVariablesJSON(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.run(t, "", append(connFlags(),
		"raw", "query { online }", "--variables", "{not json")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse --variables")
	assert.Zero(t, env.constructed, "no session for a usage error")
}

// ---------------------------------------------------------------------------
// Mutations and confirmation
// ---------------------------------------------------------------------------

func Test_SystemReboot_DeclinedConfirmation(t *testing.T) {
	env := newTestEnv(t)

	stdout, stderr, err := env.run(t, "n\n", append(connFlags(), "system", "reboot")...)
	require.NoError(t, err)

	assert.Contains(t, stderr, "aborted")
	assert.Zero(t, env.stub.calls, "declined confirmation must not execute")
	assert.Empty(t, stdout)
}

func Test_SystemReboot_AssumeYes(t *testing.T) {
	env := newTestEnv(t)

	_, stderr, err := env.run(t, "", append(connFlags(), "--yes", "system", "reboot")...)
	require.NoError(t, err)

	assert.Equal(t, 1, env.stub.calls)
	assert.NotContains(t, stderr, "Continue?")
}

func Test_SystemReboot_AcceptedAtPrompt(t *testing.T) {
	env := newTestEnv(t)

	_, stderr, err := env.run(t, "y\n", append(connFlags(), "system", "reboot")...)
	require.NoError(t, err)

	assert.Contains(t, stderr, "system.reboot")
	assert.Contains(t, stderr, "tower.local")
	assert.Equal(t, 1, env.stub.calls)
}

func Test_ParityStart_CorrectFlagAlwaysSent(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.run(t, "", append(connFlags(), "parity", "start")...)
	require.NoError(t, err)
	assert.Equal(t, false, env.stub.lastVars["correct"], "false is a real value, not an omission")

	_, _, err = env.run(t, "", append(connFlags(), "parity", "start", "--correct")...)
	require.NoError(t, err)
	assert.Equal(t, true, env.stub.lastVars["correct"])
}

func Test_UserAdd_PasswordTravelsInVariables(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.run(t, "y\n", append(connFlags(),
		"user", "add", "--name", "alice", "--password", `pa"ss{word`)...)
	require.NoError(t, err)

	op, _ := catalog.Lookup("user.add")
	assert.Equal(t, op.Document, env.stub.lastQuery, "credentials never enter the document")

	input := env.stub.lastVars["input"].(map[string]any)
	assert.Equal(t, "alice", input["name"])
	assert.Equal(t, `pa"ss{word`, input["password"])
}

func Test_UserAdd_RequiredFlags(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.run(t, "", append(connFlags(), "user", "add", "--name", "alice")...)
	require.Error(t, err)
	assert.Zero(t, env.constructed)
}

// ---------------------------------------------------------------------------
// Unsupported control surfaces
// ---------------------------------------------------------------------------

func Test_DockerControl_StaticRecordNoSession(t *testing.T) {
	env := newTestEnv(t)

	for _, args := range [][]string{
		{"docker", "start", "abc123"},
		{"docker", "stop", "abc123"},
		{"docker", "restart", "abc123"},
	} {
		stdout, _, err := env.run(t, "", args...)
		require.NoError(t, err, strings.Join(args, " "))

		var record map[string]any
		require.NoError(t, json.Unmarshal([]byte(stdout), &record))
		assert.Contains(t, record["error"], "Docker container control operations are not currently supported")
	}

	assert.Zero(t, env.constructed, "no session may be built for unsupported operations")
	assert.Zero(t, env.stub.calls)
}

func Test_VMControl_StaticRecordNoSession(t *testing.T) {
	env := newTestEnv(t)

	for _, args := range [][]string{
		{"vm", "start", "uuid-1"},
		{"vm", "stop", "uuid-1", "--force"},
		{"vm", "pause", "uuid-1"},
		{"vm", "resume", "uuid-1"},
	} {
		stdout, _, err := env.run(t, "", args...)
		require.NoError(t, err, strings.Join(args, " "))

		var record map[string]any
		require.NoError(t, json.Unmarshal([]byte(stdout), &record))
		assert.Contains(t, record["error"], "VM control operations are not currently supported")
	}

	assert.Zero(t, env.constructed)
	assert.Zero(t, env.stub.calls)
}

// Unsupported operations work even with no connection details at all: the
// config is never validated because no session is needed.
func Test_DockerControl_NoConfigRequired(t *testing.T) {
	env := newTestEnv(t)

	stdout, _, err := env.run(t, "", "docker", "start", "abc123")
	require.NoError(t, err)
	assert.Contains(t, stdout, "not currently supported")
}

// ---------------------------------------------------------------------------
// Output contract
// ---------------------------------------------------------------------------

func Test_ExecutorErrorsPrintAsJSONRecords(t *testing.T) {
	env := newTestEnv(t)
	env.stub.doc = nil
	env.stub.err = graphql.NewHTTPStatusError(401, `{"errors":[{"message":"unauthorized"}]}`)

	stdout, _, err := env.run(t, "", append(connFlags(), "query", "me")...)
	require.NoError(t, err, "error records are data, not command failures")

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &record))
	assert.Equal(t, float64(401), record["status"])
	assert.Contains(t, record["error"], "401")
	assert.Contains(t, record["body"], "unauthorized")
}

func Test_FullDocumentPassedThrough(t *testing.T) {
	env := newTestEnv(t)
	env.stub.doc = map[string]any{
		"data":   map[string]any{"online": true},
		"errors": []any{map[string]any{"message": "partial failure"}},
	}

	stdout, _, err := env.run(t, "", append(connFlags(), "query", "info")...)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	assert.Contains(t, doc, "data")
	assert.Contains(t, doc, "errors", "server-reported errors are preserved verbatim")
}

// ---------------------------------------------------------------------------
// Flag plumbing
// ---------------------------------------------------------------------------

func Test_ConnectionFlagsReachSessionFactory(t *testing.T) {
	env := newTestEnv(t)

	var got config.ServerConfig
	opts := &rootOptions{
		logger: zap.NewNop(),
		newClient: func(cfg config.ServerConfig, logger *zap.Logger) (graphql.Client, string, error) {
			got = cfg
			return env.stub, "", nil
		},
	}

	root := newRootCmd(opts)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{
		"--address", "10.0.0.2", "--port", "8443", "--api-key", "k",
		"--timeout", "30", "--direct", "query", "info",
	})
	require.NoError(t, root.Execute())

	assert.Equal(t, "10.0.0.2", got.Address)
	assert.Equal(t, 8443, got.Port)
	assert.Equal(t, "k", got.APIKey)
	assert.Equal(t, 30, got.Timeout)
	assert.True(t, got.Direct)
}
