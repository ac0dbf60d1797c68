package host

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gobuffalo/nulls"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/lispy/internal/eval"
	"github.com/conneroisu/lispy/internal/value"
)

func dictMember(t *testing.T, d *value.Dict, name string) value.Value {
	t.Helper()
	v, err := d.MemberGet(name)
	require.NoError(t, err)

	return v
}

func callProc(t *testing.T, d *value.Dict, name string, args ...value.Value) (value.Value, error) {
	t.Helper()
	member := dictMember(t, d, name)
	proc, ok := member.(*value.Procedure)
	require.True(t, ok)

	return proc.Fn(args)
}

func TestFSResolveWithoutRoot(t *testing.T) {
	cfg := FSConfig{}
	require.Equal(t, "a.lsp", cfg.resolve("a.lsp"))
}

func TestFSResolveWithRoot(t *testing.T) {
	cfg := FSConfig{Root: nulls.NewString("/tmp/jail")}
	require.Equal(t, filepath.Join("/tmp/jail", "a.lsp"), cfg.resolve("a.lsp"))
}

func TestFSWriteReadExistsRemoveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	fs := NewFS(FSConfig{Root: nulls.NewString(dir)})

	path := "note.txt"

	_, err := callProc(t, fs, "writeFileSync", value.String(path), value.String("hello"))
	require.NoError(t, err)

	exists, err := callProc(t, fs, "existsSync", value.String(path))
	require.NoError(t, err)
	require.Equal(t, value.Bool(true), exists)

	contents, err := callProc(t, fs, "readFileSync", value.String(path))
	require.NoError(t, err)
	require.Equal(t, value.String("hello"), contents)

	_, err = callProc(t, fs, "removeSync", value.String(path))
	require.NoError(t, err)

	exists2, err := callProc(t, fs, "existsSync", value.String(path))
	require.NoError(t, err)
	require.Equal(t, value.Bool(false), exists2)
}

func TestFSReadMissingFileRaisesHostError(t *testing.T) {
	dir := t.TempDir()
	fs := NewFS(FSConfig{Root: nulls.NewString(dir)})

	_, err := callProc(t, fs, "readFileSync", value.String("missing.txt"))
	require.Error(t, err)

	var evalErr *eval.EvalError
	require.ErrorAs(t, err, &evalErr)
	errVal, ok := evalErr.Payload.(*value.Error)
	require.True(t, ok)
	require.Equal(t, value.Symbol("FSError"), errVal.Name)
}

func TestClockNowIsPositiveMillis(t *testing.T) {
	clock := NewClock()
	now, err := callProc(t, clock, "now")
	require.NoError(t, err)
	n, ok := now.(value.Number)
	require.True(t, ok)
	require.Greater(t, float64(n), float64(0))
}

func TestClockMonotonicNeverGoesBackward(t *testing.T) {
	clock := NewClock()
	first, err := callProc(t, clock, "monotonic")
	require.NoError(t, err)
	second, err := callProc(t, clock, "monotonic")
	require.NoError(t, err)
	require.GreaterOrEqual(t, float64(second.(value.Number)), float64(first.(value.Number)))
}

func TestConsoleLogWritesSpaceJoinedLine(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf)

	_, err := callProc(t, console, "log", value.String("a"), value.Number(1))
	require.NoError(t, err)
	require.Equal(t, "a 1\n", buf.String())
}

func TestReadLineFuncTrimsNewline(t *testing.T) {
	fn := ReadLineFunc(strings.NewReader("hello world\n"))
	result, err := fn(nil, nil)
	require.NoError(t, err)
	require.Equal(t, value.String("hello world"), result)
}

func TestReadLineFuncRejectsArguments(t *testing.T) {
	fn := ReadLineFunc(strings.NewReader("x\n"))
	_, err := fn([]value.Value{value.Number(1)}, nil)
	require.Error(t, err)
}

func TestInstallDefinesAllFacilitiesByDefault(t *testing.T) {
	env := value.NewEnvironment(nil)
	Install(env, Config{})

	require.True(t, env.Present("fs"))
	require.True(t, env.Present("clock"))
	require.True(t, env.Present("console"))
	require.True(t, env.Present("console:read-line"))
}

func TestInstallHonorsDisableFlags(t *testing.T) {
	env := value.NewEnvironment(nil)
	Install(env, Config{NoFS: true, NoClock: true, NoConsole: true})

	require.False(t, env.Present("fs"))
	require.False(t, env.Present("clock"))
	require.False(t, env.Present("console"))
	require.False(t, env.Present("console:read-line"))
}

func TestInstallAcceptsExplicitStdoutAndStdin(t *testing.T) {
	env := value.NewEnvironment(nil)
	Install(env, Config{Stdout: os.Stdout, Stdin: os.Stdin})
	require.True(t, env.Present("console"))
}
