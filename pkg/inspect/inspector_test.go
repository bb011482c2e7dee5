package inspect

import (
	"errors"
	"strings"
	"testing"

	"github.com/tr069-model/tr069-go/pkg/datamodel"
	"github.com/tr069-model/tr069-go/pkg/model"
)

// createTestDevice creates a Device record with one DHCP client.
func createTestDevice(t *testing.T) *datamodel.Device {
	t.Helper()
	d := datamodel.NewDevice()
	info := d.DeviceInfo().
		WithManufacturer("ACME").
		WithUpTime(3600)
	if err := info.Err(); err != nil {
		t.Fatalf("device info: %v", err)
	}

	client := datamodel.NewDHCPv4Client().
		WithEnable(true).
		WithAlias("cpe-wan").
		WithLeaseTimeRemaining(datamodel.LeaseInfinite)
	if err := client.Err(); err != nil {
		t.Fatalf("client: %v", err)
	}
	if err := client.DNSServers().Append("8.8.8.8", "8.8.4.4"); err != nil {
		t.Fatalf("dns servers: %v", err)
	}
	if err := d.DHCPv4().AddClient(client); err != nil {
		t.Fatalf("add client: %v", err)
	}
	return d
}

func TestNewInspector(t *testing.T) {
	d := createTestDevice(t)
	insp := NewInspector(d.Object)

	if insp == nil {
		t.Fatal("NewInspector returned nil")
	}
	if insp.Root() != d.Object {
		t.Error("Root() should return the underlying record")
	}
	if got := insp.RootName(); got != "Device" {
		t.Errorf("RootName() = %q, want Device", got)
	}
}

func TestInspectObject(t *testing.T) {
	insp := NewInspector(createTestDevice(t).Object)

	info, err := insp.InspectObject("Device.DHCPv4.Client.1.")
	if err != nil {
		t.Fatalf("InspectObject failed: %v", err)
	}
	if info.Path != "Device.DHCPv4.Client.1." {
		t.Errorf("Path = %q", info.Path)
	}
	if info.Name != "Client" || info.Instance != 1 {
		t.Errorf("Name/Instance = %q/%d, want Client/1", info.Name, info.Instance)
	}
	if len(info.Parameters) != len(datamodel.DHCPv4ClientDef.Parameters) {
		t.Errorf("expected %d parameters, got %d", len(datamodel.DHCPv4ClientDef.Parameters), len(info.Parameters))
	}

	byName := make(map[string]ParameterInfo)
	for _, p := range info.Parameters {
		byName[p.Def.Name] = p
	}
	if p := byName["Enable"]; !p.Set || p.Value != true {
		t.Errorf("Enable = %v (set %v), want true (set)", p.Value, p.Set)
	}
	if p := byName["Status"]; p.Set || p.Value != "Disabled" {
		t.Errorf("Status = %v (set %v), want default Disabled", p.Value, p.Set)
	}
	if p := byName["DHCPServer"]; p.Set || p.Value != nil {
		t.Errorf("DHCPServer = %v, want unset", p.Value)
	}
	dns := byName["DNSServers"].Value.([]any)
	if len(dns) != 2 || dns[0] != "8.8.8.8" {
		t.Errorf("DNSServers = %v", dns)
	}
	if p := byName["DNSServers"]; p.Path != "Device.DHCPv4.Client.1.DNSServers" {
		t.Errorf("DNSServers path = %q", p.Path)
	}

	if len(info.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(info.Children))
	}
	for _, c := range info.Children {
		if !c.Table || !c.Empty || len(c.Rows) != 0 {
			t.Errorf("child %s = %+v, want empty table", c.Name, c)
		}
	}
}

func TestInspectObjectChildren(t *testing.T) {
	insp := NewInspector(createTestDevice(t).Object)

	info, err := insp.InspectObject("Device.")
	if err != nil {
		t.Fatalf("InspectObject failed: %v", err)
	}
	children := make(map[string]ChildInfo)
	for _, c := range info.Children {
		children[c.Name] = c
	}
	if c := children["DeviceInfo"]; c.Table || c.Empty {
		t.Errorf("DeviceInfo = %+v, want populated singleton", c)
	}
	if c := children["ManagementServer"]; !c.Empty {
		t.Errorf("ManagementServer should be empty")
	}

	info, err = insp.InspectObject("Device.DHCPv4.")
	if err != nil {
		t.Fatalf("InspectObject failed: %v", err)
	}
	if c := info.Children[0]; !c.Table || c.Empty || len(c.Rows) != 1 || c.Rows[0] != 1 {
		t.Errorf("Client = %+v, want table with row 1", c)
	}
}

func TestInspectObjectErrors(t *testing.T) {
	insp := NewInspector(createTestDevice(t).Object)

	tests := []struct {
		path string
		want error
	}{
		{"Device.DeviceInfo.UpTime", ErrNotObject},
		{"Device.DHCPv4.Client.7.", model.ErrNoSuchObject},
		{"Device.Bogus.", model.ErrNoSuchObject},
		{"InternetGatewayDevice.", model.ErrNoSuchObject},
	}
	for _, tt := range tests {
		if _, err := insp.InspectObject(tt.path); !errors.Is(err, tt.want) {
			t.Errorf("InspectObject(%q) error = %v, want %v", tt.path, err, tt.want)
		}
	}
}

func TestReadParameter(t *testing.T) {
	insp := NewInspector(createTestDevice(t).Object)

	p, err := insp.ReadParameter("Device.DeviceInfo.UpTime")
	if err != nil {
		t.Fatalf("ReadParameter failed: %v", err)
	}
	if p.Value != uint32(3600) || !p.Set {
		t.Errorf("UpTime = %v (set %v), want 3600", p.Value, p.Set)
	}
	if p.Def.Unit != "seconds" {
		t.Errorf("Def.Unit = %q", p.Def.Unit)
	}

	p, err = insp.ReadParameter("Device.DHCPv4.Client.1.Renew")
	if err != nil {
		t.Fatalf("ReadParameter failed: %v", err)
	}
	if p.Set || p.Value != false {
		t.Errorf("Renew = %v (set %v), want default false", p.Value, p.Set)
	}

	if _, err := insp.ReadParameter("Device.DeviceInfo."); !errors.Is(err, ErrNotParameter) {
		t.Errorf("object path error = %v, want ErrNotParameter", err)
	}
	if _, err := insp.ReadParameter("Device.DeviceInfo.Bogus"); !errors.Is(err, model.ErrUnknownParameter) {
		t.Errorf("unknown parameter error = %v, want ErrUnknownParameter", err)
	}
}

func TestWriteParameter(t *testing.T) {
	d := createTestDevice(t)
	insp := NewInspector(d.Object)

	if err := insp.WriteParameter("Device.DHCPv4.Client.1.Alias", "lan"); err != nil {
		t.Fatalf("WriteParameter failed: %v", err)
	}
	if alias, _ := d.DHCPv4().ClientRows()[0].Alias(); alias != "lan" {
		t.Errorf("Alias = %q, want lan", alias)
	}

	if err := insp.WriteParameter("Device.DHCPv4.Client.1.Enable", "0"); err != nil {
		t.Fatalf("WriteParameter failed: %v", err)
	}
	if d.DHCPv4().ClientRows()[0].Enable() {
		t.Error("Enable should be false")
	}

	tests := []struct {
		path  string
		value string
		want  error
	}{
		{"Device.DHCPv4.Client.1.Status", "Enabled", model.ErrNotWritable},
		{"Device.DHCPv4.Client.1.Alias", "1-bad", model.ErrInvalidFormat},
		{"Device.DHCPv4.Client.1.Enable", "yes", model.ErrMalformedValue},
		{"Device.DHCPv4.Client.1.", "x", model.ErrNotParameterPath},
	}
	for _, tt := range tests {
		if err := insp.WriteParameter(tt.path, tt.value); !errors.Is(err, tt.want) {
			t.Errorf("WriteParameter(%q, %q) error = %v, want %v", tt.path, tt.value, err, tt.want)
		}
	}
}

func TestAddDeleteRow(t *testing.T) {
	d := createTestDevice(t)
	insp := NewInspector(d.Object)

	row, err := insp.AddRow("Device.DHCPv4.Client.")
	if err != nil {
		t.Fatalf("AddRow failed: %v", err)
	}
	if row.Path() != "Device.DHCPv4.Client.2." {
		t.Errorf("new row path = %q", row.Path())
	}

	if err := insp.DeleteRow("Device.DHCPv4.Client.1."); err != nil {
		t.Fatalf("DeleteRow failed: %v", err)
	}
	rows := d.DHCPv4().ClientRows()
	if len(rows) != 1 || rows[0].Instance() != 2 {
		t.Fatalf("rows after delete = %d", len(rows))
	}

	row, err = insp.AddRow("Device.DHCPv4.Client.")
	if err != nil {
		t.Fatalf("AddRow failed: %v", err)
	}
	if row.Instance() != 3 {
		t.Errorf("instance = %d, want 3 (numbers are not reused)", row.Instance())
	}

	if err := insp.DeleteRow("Device.DHCPv4.Client.1."); !errors.Is(err, ErrRowNotFound) {
		t.Errorf("second delete error = %v, want ErrRowNotFound", err)
	}
	if _, err := insp.AddRow("Device.DHCPv4."); !errors.Is(err, model.ErrNotTable) {
		t.Errorf("AddRow on singleton error = %v, want ErrNotTable", err)
	}

	for _, p := range []string{"Device.DHCPv4.", "Device.DHCPv4.Client.2.Enable", "Device."} {
		if err := insp.DeleteRow(p); !errors.Is(err, ErrNotRow) {
			t.Errorf("DeleteRow(%q) error = %v, want ErrNotRow", p, err)
		}
	}
}

func TestAddDeleteRowReadOnlyTable(t *testing.T) {
	igd := datamodel.NewInternetGatewayDevice()
	lan := datamodel.NewLANDevice()
	if err := igd.AddLANDevice(lan); err != nil {
		t.Fatalf("add LAN device: %v", err)
	}
	if err := lan.Hosts().AddHost(datamodel.NewHost().WithMACAddress("00:11:22:33:44:55")); err != nil {
		t.Fatalf("add host: %v", err)
	}
	insp := NewInspector(igd.Object)

	if _, err := insp.AddRow("InternetGatewayDevice.LANDevice.1.Hosts.Host."); !errors.Is(err, model.ErrNotWritable) {
		t.Errorf("AddRow error = %v, want ErrNotWritable", err)
	}
	if err := insp.DeleteRow("InternetGatewayDevice.LANDevice.1.Hosts.Host.1."); !errors.Is(err, model.ErrNotWritable) {
		t.Errorf("DeleteRow error = %v, want ErrNotWritable", err)
	}
	if _, err := insp.AddRow("InternetGatewayDevice.LANDevice."); !errors.Is(err, model.ErrNotWritable) {
		t.Errorf("AddRow(LANDevice) error = %v, want ErrNotWritable", err)
	}
	if n := lan.Hosts().HostTable().Len(); n != 1 {
		t.Errorf("host rows = %d, want 1", n)
	}
}

func TestFormatObject(t *testing.T) {
	insp := NewInspector(createTestDevice(t).Object)

	info, err := insp.InspectObject("Device.DHCPv4.Client.1.")
	if err != nil {
		t.Fatalf("InspectObject failed: %v", err)
	}
	out := insp.FormatObject(info, nil)

	for _, want := range []string{
		"Device.DHCPv4.Client.1.\n",
		"  Enable = true (boolean, read-write)\n",
		`  Alias = "cpe-wan" (string(Alias), read-write)`,
		"  LeaseTimeRemaining = -1 (infinite) (int, read-only)\n",
		`  Status = "Disabled" (default) (string, read-only)`,
		`  DNSServers = ["8.8.8.8", "8.8.4.4"] (string(IPv4Address)[], read-only)`,
		"  SentOption.{i}. []\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "DHCPServer") {
		t.Errorf("unset parameter without default should be hidden:\n%s", out)
	}

	out = insp.FormatObject(info, &Formatter{ShowUnset: true})
	if !strings.Contains(out, "  DHCPServer = <unset>\n") {
		t.Errorf("ShowUnset output missing DHCPServer:\n%s", out)
	}
}

func TestFormatTree(t *testing.T) {
	d := createTestDevice(t)
	insp := NewInspector(d.Object)

	out := insp.FormatTree(d.Object, &Formatter{IndentWidth: 2})
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if lines[0] != "Device." {
		t.Errorf("first line = %q, want Device.", lines[0])
	}

	for _, want := range []string{
		"  DeviceInfo.\n",
		"    Manufacturer = \"ACME\"\n",
		"    UpTime = 3600 seconds (1h0m0s)\n",
		"  DHCPv4.\n",
		"    Client.1.\n",
		"      Enable = true\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("tree missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "ManagementServer") {
		t.Errorf("empty children should be left out:\n%s", out)
	}
	if strings.Contains(out, "Status") {
		t.Errorf("defaults should be hidden without ShowUnset:\n%s", out)
	}
}
