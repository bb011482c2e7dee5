package commands

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tr069-model/tr069-go/internal/config"
	"github.com/tr069-model/tr069-go/pkg/datamodel"
	"github.com/tr069-model/tr069-go/pkg/model"
	"github.com/tr069-model/tr069-go/pkg/wire"
)

type testEnv struct {
	*Env
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	te := &testEnv{Env: NewEnv(config.DefaultConfig()), stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	te.Stdout = te.stdout
	te.Stderr = te.stderr
	te.Stdin = strings.NewReader("")
	return te
}

func sampleDevice(t *testing.T) *datamodel.Device {
	t.Helper()
	d := datamodel.NewDevice()
	require.NoError(t, d.DeviceInfo().WithManufacturer("ACME").WithUpTime(3600).Err())

	client := datamodel.NewDHCPv4Client().
		WithEnable(true).
		WithAlias("cpe-wan").
		WithLeaseTimeRemaining(datamodel.LeaseInfinite)
	require.NoError(t, client.Err())
	require.NoError(t, client.DNSServers().Append("8.8.8.8", "8.8.4.4"))
	require.NoError(t, d.DHCPv4().AddClient(client))
	return d
}

// writeDocument encodes obj into dir/name using the format of the extension.
func writeDocument(t *testing.T, dir, name string, obj *model.Object) string {
	t.Helper()
	f, err := wire.FormatFromExt(name)
	require.NoError(t, err)
	data, err := wire.Encode(obj, f, wire.EncodeOptions{Indent: "  ", Header: f == wire.FormatXML})
	require.NoError(t, err)
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, data, 0o644))
	return p
}

func writeRaw(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestExitCode(t *testing.T) {
	verr := &model.ValidationError{Parameter: "Alias", Err: model.ErrInvalidFormat}
	assert.Equal(t, ExitInvalid, exitCode(verr))
	assert.Equal(t, ExitInvalid, exitCode(fmt.Errorf("cpe.xml: %w", verr)))
	assert.Equal(t, ExitInvalid, exitCode(fmt.Errorf("encode: %w", wire.ErrInvalidRecord)))
	assert.Equal(t, ExitError, exitCode(errors.New("boom")))
	assert.Equal(t, ExitError, exitCode(os.ErrNotExist))
}

func TestEnvFormat(t *testing.T) {
	env := newTestEnv(t)
	env.Config.Format = "yaml"

	f, err := env.Format("json", "cpe.xml")
	require.NoError(t, err)
	assert.Equal(t, wire.FormatJSON, f)

	f, err = env.Format("", "cpe.cbor")
	require.NoError(t, err)
	assert.Equal(t, wire.FormatCBOR, f)

	f, err = env.Format("", "cpe.dump")
	require.NoError(t, err)
	assert.Equal(t, wire.FormatYAML, f)

	f, err = env.Format("", "-")
	require.NoError(t, err)
	assert.Equal(t, wire.FormatYAML, f)

	_, err = env.Format("toml", "")
	assert.ErrorIs(t, err, wire.ErrUnknownFormat)
}

func TestEnvLoad(t *testing.T) {
	dir := t.TempDir()
	d := sampleDevice(t)
	env := newTestEnv(t)

	for _, name := range []string{"cpe.xml", "cpe.yaml", "cpe.json", "cpe.cbor", "cpe.bson"} {
		t.Run(name, func(t *testing.T) {
			doc, err := env.Load(writeDocument(t, dir, name, d.Object), "")
			require.NoError(t, err)
			assert.Same(t, datamodel.DeviceSchema, doc.Schema)
			assert.True(t, d.Equal(doc.Root))
		})
	}

	t.Run("stdin", func(t *testing.T) {
		data, err := wire.Encode(d.Object, wire.FormatJSON, wire.EncodeOptions{})
		require.NoError(t, err)
		env.Stdin = bytes.NewReader(data)
		doc, err := env.Load("-", "json")
		require.NoError(t, err)
		assert.Equal(t, wire.FormatJSON, doc.Format)
		assert.True(t, d.Equal(doc.Root))
	})

	t.Run("unknown model", func(t *testing.T) {
		_, err := env.Load(writeRaw(t, dir, "other.json", `{"Gateway":{}}`), "")
		assert.ErrorIs(t, err, datamodel.ErrUnknownModel)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := env.Load(filepath.Join(dir, "missing.xml"), "")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestEnvNew(t *testing.T) {
	env := newTestEnv(t)
	env.Config.Model = "InternetGatewayDevice"

	doc, err := env.New("igd.yaml")
	require.NoError(t, err)
	assert.Equal(t, wire.FormatYAML, doc.Format)
	assert.Equal(t, "InternetGatewayDevice.", doc.Root.Path())
	assert.True(t, doc.Root.IsEmpty())
}

func TestEnvOpen(t *testing.T) {
	dir := t.TempDir()
	env := newTestEnv(t)

	doc, err := env.Open(filepath.Join(dir, "new.json"), "")
	require.NoError(t, err)
	assert.True(t, doc.Root.IsEmpty())
	assert.Equal(t, wire.FormatJSON, doc.Format)

	d := sampleDevice(t)
	doc, err = env.Open(writeDocument(t, dir, "cpe.yaml", d.Object), "")
	require.NoError(t, err)
	assert.True(t, d.Equal(doc.Root))

	_, err = env.Open(writeRaw(t, dir, "broken.json", `{"Device":`), "")
	assert.ErrorIs(t, err, model.ErrMalformedValue)
}

func TestEnvEncodeVersion(t *testing.T) {
	env := newTestEnv(t)
	d := sampleDevice(t)
	require.NoError(t, d.WithRootDataModelVersion("2.12").Err())
	doc := &Document{Format: wire.FormatJSON, Schema: datamodel.DeviceSchema, Root: d.Object}

	data, err := env.Encode(doc, wire.FormatJSON, "", "")
	require.NoError(t, err)
	assert.Contains(t, string(data), "RootDataModelVersion")
	assert.True(t, strings.HasSuffix(string(data), "\n"))

	data, err = env.Encode(doc, wire.FormatJSON, "Device:2.3", "")
	require.NoError(t, err)
	assert.NotContains(t, string(data), "RootDataModelVersion")

	_, err = env.Encode(doc, wire.FormatJSON, "two", "")
	assert.Error(t, err)
}

func TestRunValidate(t *testing.T) {
	dir := t.TempDir()
	good := writeDocument(t, dir, "good.json", sampleDevice(t).Object)
	bad := writeRaw(t, dir, "bad.json", `{"Device":{"DHCPv4":{"Client":[{"Alias":"1-bad"}]}}}`)

	env := newTestEnv(t)
	assert.Equal(t, ExitOK, RunValidate(env.Env, []string{good}, ""))
	assert.Contains(t, env.stdout.String(), good+": OK (Device:2.12, json, ")

	env = newTestEnv(t)
	code := RunValidate(env.Env, []string{good, bad, filepath.Join(dir, "missing.json")}, "")
	assert.Equal(t, ExitInvalid, code)
	out := env.stdout.String()
	assert.Contains(t, out, good+": OK")
	assert.Contains(t, out, bad+": FAIL")
	assert.Contains(t, out, "missing.json: FAIL")

	env = newTestEnv(t)
	assert.Equal(t, ExitError, RunValidate(env.Env, []string{filepath.Join(dir, "missing.json")}, ""))
}

func TestRunShow(t *testing.T) {
	dir := t.TempDir()
	p := writeDocument(t, dir, "cpe.xml", sampleDevice(t).Object)

	t.Run("tree", func(t *testing.T) {
		env := newTestEnv(t)
		require.Equal(t, ExitOK, RunShow(env.Env, p, ShowOptions{}))
		out := env.stdout.String()
		assert.True(t, strings.HasPrefix(out, "Device.\n"), out)
		assert.Contains(t, out, "    Client.1.\n")
		assert.Contains(t, out, `Alias = "cpe-wan"`)
		assert.NotContains(t, out, "Status")
	})

	t.Run("tree unset", func(t *testing.T) {
		env := newTestEnv(t)
		require.Equal(t, ExitOK, RunShow(env.Env, p, ShowOptions{Path: "DHCPv4.Client.1.", Unset: true}))
		out := env.stdout.String()
		assert.True(t, strings.HasPrefix(out, "Client.1.\n"), out)
		assert.Contains(t, out, `Status = "Disabled" (default)`)
	})

	t.Run("params", func(t *testing.T) {
		env := newTestEnv(t)
		require.Equal(t, ExitOK, RunShow(env.Env, p, ShowOptions{View: "params", Path: "DeviceInfo."}))
		assert.Equal(t,
			"  Device.DeviceInfo.Manufacturer: ACME (xsd:string)\n"+
				"  Device.DeviceInfo.UpTime: 3600 (xsd:unsignedInt)\n",
			env.stdout.String())
	})

	t.Run("format view", func(t *testing.T) {
		env := newTestEnv(t)
		require.Equal(t, ExitOK, RunShow(env.Env, p, ShowOptions{View: "json"}))
		assert.Contains(t, env.stdout.String(), `"Manufacturer"`)
	})

	t.Run("format view with path", func(t *testing.T) {
		env := newTestEnv(t)
		assert.Equal(t, ExitError, RunShow(env.Env, p, ShowOptions{View: "yaml", Path: "DeviceInfo."}))
		assert.Contains(t, env.stderr.String(), "-path is only supported")
	})

	t.Run("bad view", func(t *testing.T) {
		env := newTestEnv(t)
		assert.Equal(t, ExitError, RunShow(env.Env, p, ShowOptions{View: "html"}))
	})

	t.Run("parameter path", func(t *testing.T) {
		env := newTestEnv(t)
		assert.Equal(t, ExitError, RunShow(env.Env, p, ShowOptions{Path: "DeviceInfo.UpTime"}))
	})
}

func TestRunConvert(t *testing.T) {
	dir := t.TempDir()
	d := sampleDevice(t)
	in := writeDocument(t, dir, "cpe.xml", d.Object)

	env := newTestEnv(t)
	out := filepath.Join(dir, "cpe.yaml")
	require.Equal(t, ExitOK, RunConvert(env.Env, in, ConvertOptions{Output: out}))

	doc, err := env.Load(out, "")
	require.NoError(t, err)
	assert.Equal(t, wire.FormatYAML, doc.Format)
	assert.True(t, d.Equal(doc.Root))

	env = newTestEnv(t)
	require.Equal(t, ExitOK, RunConvert(env.Env, in, ConvertOptions{To: "json"}))
	assert.Contains(t, env.stdout.String(), `"Device"`)

	env = newTestEnv(t)
	assert.Equal(t, ExitError, RunConvert(env.Env, in, ConvertOptions{}))
	assert.Contains(t, env.stderr.String(), "-to")
}

func TestRunGet(t *testing.T) {
	p := writeDocument(t, t.TempDir(), "cpe.json", sampleDevice(t).Object)

	env := newTestEnv(t)
	require.Equal(t, ExitOK, RunGet(env.Env, p, "", []string{"DeviceInfo.UpTime", "Device.DHCPv4.Client.1.DNSServers"}))
	assert.Equal(t,
		"Device.DeviceInfo.UpTime = 3600 (xsd:unsignedInt)\n"+
			"Device.DHCPv4.Client.1.DNSServers = 8.8.8.8,8.8.4.4 (xsd:string)\n",
		env.stdout.String())

	env = newTestEnv(t)
	require.Equal(t, ExitOK, RunGet(env.Env, p, "", []string{"DHCPv4.Client."}))
	out := env.stdout.String()
	assert.Contains(t, out, "Device.DHCPv4.Client.1.Alias = cpe-wan (xsd:string)\n")
	assert.Contains(t, out, "Device.DHCPv4.Client.1.LeaseTimeRemaining = -1 (xsd:int)\n")
	assert.NotContains(t, out, "DeviceInfo")

	env = newTestEnv(t)
	assert.Equal(t, ExitError, RunGet(env.Env, p, "", []string{"DHCPv4.Client.9."}))

	env = newTestEnv(t)
	assert.NotEqual(t, ExitOK, RunGet(env.Env, p, "", []string{"DeviceInfo.NoSuchThing"}))
}

func TestRunSet(t *testing.T) {
	dir := t.TempDir()
	p := writeDocument(t, dir, "cpe.json", sampleDevice(t).Object)

	env := newTestEnv(t)
	code := RunSet(env.Env, p, []string{"DHCPv4.Client.1.Alias=cpe-lan", "Device.DeviceInfo.ProvisioningCode=ACME.1"}, SetOptions{})
	require.Equal(t, ExitOK, code, env.stderr.String())
	assert.Equal(t, "Set 2 parameters in "+p+"\n", env.stderr.String())

	doc, err := env.Load(p, "")
	require.NoError(t, err)
	client := datamodel.AsDevice(doc.Root).DHCPv4().ClientRows()[0]
	alias, _ := client.Alias()
	assert.Equal(t, "cpe-lan", alias)

	t.Run("output elsewhere", func(t *testing.T) {
		env := newTestEnv(t)
		out := filepath.Join(dir, "cpe.cbor")
		require.Equal(t, ExitOK, RunSet(env.Env, p, []string{"DHCPv4.Client.1.Enable=false"}, SetOptions{Output: out}))
		doc, err := env.Load(out, "")
		require.NoError(t, err)
		assert.Equal(t, wire.FormatCBOR, doc.Format)
	})

	before, err := os.ReadFile(p)
	require.NoError(t, err)

	tests := []struct {
		name       string
		assignment string
		want       int
	}{
		{"read-only", "DeviceInfo.UpTime=5", ExitInvalid},
		{"pattern", "DHCPv4.Client.1.Alias=1-bad", ExitInvalid},
		{"no equals", "DHCPv4.Client.1.Alias", ExitError},
		{"malformed", "DHCPv4.Client.1.Enable=maybe", ExitError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			assert.Equal(t, tt.want, RunSet(env.Env, p, []string{tt.assignment}, SetOptions{}))
			after, err := os.ReadFile(p)
			require.NoError(t, err)
			assert.Equal(t, before, after, "document must not change")
		})
	}
}
