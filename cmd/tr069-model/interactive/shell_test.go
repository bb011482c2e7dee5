package interactive

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tr069-model/tr069-go/cmd/tr069-model/commands"
	"github.com/tr069-model/tr069-go/internal/config"
	"github.com/tr069-model/tr069-go/pkg/datamodel"
	"github.com/tr069-model/tr069-go/pkg/wire"
)

func newTestShell(t *testing.T) (*Shell, *bytes.Buffer) {
	t.Helper()
	d := datamodel.NewDevice()
	require.NoError(t, d.DeviceInfo().WithManufacturer("ACME").WithUpTime(3600).Err())

	client := datamodel.NewDHCPv4Client().WithEnable(true).WithAlias("cpe-wan")
	require.NoError(t, client.Err())
	require.NoError(t, d.DHCPv4().AddClient(client))

	env := commands.NewEnv(config.DefaultConfig())
	doc := &commands.Document{
		Path:   filepath.Join(t.TempDir(), "cpe.xml"),
		Format: wire.FormatXML,
		Schema: datamodel.DeviceSchema,
		Root:   d.Object,
	}
	out := &bytes.Buffer{}
	return newShell(env, doc, out), out
}

func run(s *Shell, out *bytes.Buffer, line string) string {
	out.Reset()
	s.Exec(line)
	return out.String()
}

func TestShellNavigation(t *testing.T) {
	s, out := newTestShell(t)

	assert.Equal(t, "Device.\n", run(s, out, "pwd"))

	assert.Empty(t, run(s, out, "cd DHCPv4.Client.1"))
	assert.Equal(t, "Device.DHCPv4.Client.1.", s.cwd)
	assert.Equal(t, "Device.DHCPv4.Client.1.> ", s.prompt())

	run(s, out, "cd ..")
	assert.Equal(t, "Device.DHCPv4.", s.cwd)

	run(s, out, "cd /")
	assert.Equal(t, "Device.", s.cwd)

	got := run(s, out, "cd DHCPv4.Client.7.")
	assert.True(t, strings.HasPrefix(got, "Error:"), got)
	assert.Equal(t, "Device.", s.cwd)

	got = run(s, out, "cd DeviceInfo.UpTime")
	assert.Contains(t, got, "Error:")
	assert.Equal(t, "Device.", s.cwd)
}

func TestShellList(t *testing.T) {
	s, out := newTestShell(t)

	got := run(s, out, "ls DHCPv4")
	assert.Contains(t, got, "Device.DHCPv4.\n")
	assert.Contains(t, got, "Client.{i}. [1]")

	got = run(s, out, "ls DHCPv4.Client.")
	assert.Contains(t, got, "Device.DHCPv4.Client.{i}. (1 rows)")
	assert.Contains(t, got, "  1.\n")

	run(s, out, "cd DHCPv4.Client.1.")
	got = run(s, out, "ls")
	assert.Contains(t, got, `Alias = "cpe-wan"`)
	assert.Contains(t, got, `Status = "Disabled" (default)`)
}

func TestShellGetSet(t *testing.T) {
	s, out := newTestShell(t)

	assert.Equal(t, "Device.DeviceInfo.UpTime = 3600 seconds (1h0m0s)\n", run(s, out, "get DeviceInfo.UpTime"))
	assert.Contains(t, run(s, out, "get DeviceInfo."), "Error:")
	assert.Contains(t, run(s, out, "get"), "Usage: get")

	run(s, out, "cd DHCPv4.Client.1")
	assert.Equal(t, "OK\n", run(s, out, "set Alias cpe-lan"))
	assert.Equal(t, "Device.DHCPv4.Client.1.Alias = \"cpe-lan\"\n", run(s, out, "get Alias"))
	assert.True(t, s.modified)

	assert.Equal(t, "OK\n", run(s, out, "set Renew=true"))
	assert.Equal(t, "Device.DHCPv4.Client.1.Renew = true\n", run(s, out, "get Renew"))

	assert.Contains(t, run(s, out, "set ../../DeviceInfo.UpTime 5"), "Error:")
	assert.Contains(t, run(s, out, "set Alias 1-bad"), "Error:")
	assert.Contains(t, run(s, out, "set Alias"), "Usage: set")
}

func TestShellAddDelete(t *testing.T) {
	s, out := newTestShell(t)

	assert.Equal(t, "Added Device.DHCPv4.Client.2.\n", run(s, out, "add DHCPv4.Client"))

	run(s, out, "cd DHCPv4.Client.2.")
	assert.Equal(t, "Deleted Device.DHCPv4.Client.2.\n", run(s, out, "del ../Client.2"))
	assert.Equal(t, "Device.DHCPv4.", s.cwd)

	assert.Contains(t, run(s, out, "del Client.2."), "Error:")
	assert.Equal(t, "Added Device.DHCPv4.Client.3.\n", run(s, out, "add Client."))

	got := run(s, out, "add Device.SoftwareModules.DeploymentUnit")
	assert.Contains(t, got, "Error:")
	assert.Contains(t, got, "not writable")
}

func TestShellTreeAndParams(t *testing.T) {
	s, out := newTestShell(t)

	got := run(s, out, "tree")
	assert.Contains(t, got, "Device.\n")
	assert.Contains(t, got, "  DeviceInfo.\n")
	assert.Contains(t, got, "    Client.1.\n")
	assert.NotContains(t, got, "read-only")

	got = run(s, out, "params DHCPv4.")
	assert.Contains(t, got, "  Device.DHCPv4.Client.1.Alias: cpe-wan (xsd:string)")
	assert.NotContains(t, got, "DeviceInfo")
}

func TestShellValidateAndSave(t *testing.T) {
	s, out := newTestShell(t)
	assert.Equal(t, "OK\n", run(s, out, "validate"))

	run(s, out, "set DHCPv4.Client.1.Enable false")
	got := run(s, out, "save")
	assert.Equal(t, "Saved "+s.doc.Path+" (xml)\n", got)
	assert.False(t, s.modified)

	data, err := os.ReadFile(s.doc.Path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<?xml"))

	target := filepath.Join(filepath.Dir(s.doc.Path), "cpe.json")
	run(s, out, "save "+target)
	assert.Equal(t, target, s.doc.Path)
	assert.Equal(t, wire.FormatJSON, s.doc.Format)
}

func TestShellQuit(t *testing.T) {
	s, out := newTestShell(t)
	assert.False(t, s.Exec(""))
	assert.Contains(t, run(s, out, "frobnicate"), "Unknown command: frobnicate")
	assert.True(t, s.Exec("quit"))
	assert.True(t, s.Exec("exit"))

	run(s, out, "set DHCPv4.Client.1.Enable false")
	out.Reset()
	s.exit()
	assert.Equal(t, "Unsaved changes discarded.\nExiting...\n", out.String())
}

func TestCompleter(t *testing.T) {
	s, _ := newTestShell(t)
	c := &completer{shell: s}

	complete := func(line string) []string {
		cands, _ := c.Do([]rune(line), len([]rune(line)))
		out := make([]string, len(cands))
		for i, r := range cands {
			out[i] = string(r)
		}
		return out
	}

	assert.ElementsMatch(t, []string{"rams"}, complete("pa"))
	assert.ElementsMatch(t, []string{"dd"}, complete("a"))
	assert.ElementsMatch(t, []string{"eviceInfo.", "HCPv4."}, complete("ls D"))
	assert.Contains(t, complete("ls "), "DHCPv4.")
	assert.ElementsMatch(t, []string{"ientNumberOfEntries", "ient.", "ient.1."}, complete("cd DHCPv4.Cl"))
	assert.ElementsMatch(t, []string{"1."}, complete("cd DHCPv4.Client."))
	assert.Contains(t, complete("get DeviceInfo.Up"), "Time")
	assert.Empty(t, complete("get Nope.X"))

	_, n := c.Do([]rune("cd DHCPv4.Cl"), 12)
	assert.Equal(t, 9, n)
}
