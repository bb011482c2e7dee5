package path

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		segments  []string
		parameter string
		wantErr   error
	}{
		{
			name:      "parameter path",
			input:     "InternetGatewayDevice.LANDevice.1.Hosts.Host.2.MACAddress",
			segments:  []string{"InternetGatewayDevice", "LANDevice", "1", "Hosts", "Host", "2"},
			parameter: "MACAddress",
		},
		{
			name:     "object path",
			input:    "Device.DHCPv4.Client.3.",
			segments: []string{"Device", "DHCPv4", "Client", "3"},
		},
		{
			name:     "template",
			input:    "Device.DHCPv4.Client.{i}.ReqOption.{i}.",
			segments: []string{"Device", "DHCPv4", "Client", "{i}", "ReqOption", "{i}"},
		},
		{
			name:      "vendor parameter",
			input:     "Device.DeviceInfo.X_ACME-COM_Color",
			segments:  []string{"Device", "DeviceInfo"},
			parameter: "X_ACME-COM_Color",
		},
		{name: "empty", input: "  ", wantErr: ErrEmptyPath},
		{name: "leading dot", input: ".Device.", wantErr: ErrInvalidPath},
		{name: "double dot", input: "Device..DeviceInfo.", wantErr: ErrInvalidPath},
		{name: "leading instance", input: "1.Device.", wantErr: ErrInvalidPath},
		{name: "zero instance", input: "Device.Hosts.Host.0.", wantErr: ErrInvalidNumber},
		{name: "leading zero", input: "Device.Hosts.Host.01.", wantErr: ErrInvalidNumber},
		{name: "bad name", input: "Device.Ho$ts.", wantErr: ErrInvalidPath},
		{name: "numeric parameter", input: "Device.Hosts.Host.1", wantErr: ErrInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if len(p.Segments) != len(tt.segments) {
				t.Fatalf("segments = %v, want %v", p.Segments, tt.segments)
			}
			for i := range tt.segments {
				if p.Segments[i] != tt.segments[i] {
					t.Errorf("segments[%d] = %q, want %q", i, p.Segments[i], tt.segments[i])
				}
			}
			if p.Parameter != tt.parameter {
				t.Errorf("parameter = %q, want %q", p.Parameter, tt.parameter)
			}
			if got := p.String(); got != tt.input {
				t.Errorf("String() = %q, want %q", got, tt.input)
			}
		})
	}
}

func TestTemplateAndMatch(t *testing.T) {
	concrete := MustParse("Device.DHCPv4.Client.3.ReqOption.7.Tag")
	tmpl := concrete.Template()

	if got := tmpl.String(); got != "Device.DHCPv4.Client.{i}.ReqOption.{i}.Tag" {
		t.Errorf("Template() = %q", got)
	}
	if !tmpl.IsTemplate() || concrete.IsTemplate() {
		t.Error("IsTemplate mismatch")
	}

	inst, ok := concrete.Match(tmpl)
	if !ok {
		t.Fatal("Match() = false, want true")
	}
	if len(inst) != 2 || inst[0] != 3 || inst[1] != 7 {
		t.Errorf("Match() instances = %v, want [3 7]", inst)
	}

	other := MustParse("Device.DHCPv4.Client.{i}.SentOption.{i}.Tag")
	if _, ok := concrete.Match(other); ok {
		t.Error("Match() against different template = true")
	}
}

func TestInstantiate(t *testing.T) {
	tmpl := MustParse("InternetGatewayDevice.LANDevice.{i}.Hosts.Host.{i}.")

	p, err := tmpl.Instantiate(1, 2)
	if err != nil {
		t.Fatalf("Instantiate failed: %v", err)
	}
	if got := p.String(); got != "InternetGatewayDevice.LANDevice.1.Hosts.Host.2." {
		t.Errorf("Instantiate = %q", got)
	}

	if _, err := tmpl.Instantiate(1); !errors.Is(err, ErrInstances) {
		t.Errorf("Instantiate with too few instances: err = %v", err)
	}
	if _, err := tmpl.Instantiate(1, 0); !errors.Is(err, ErrInvalidNumber) {
		t.Errorf("Instantiate with zero instance: err = %v", err)
	}
}

func TestFillRight(t *testing.T) {
	tmpl := MustParse("InternetGatewayDevice.LANDevice.{i}.Hosts.Host.{i}.")

	if got := tmpl.FillRight(4).String(); got != "InternetGatewayDevice.LANDevice.{i}.Hosts.Host.4." {
		t.Errorf("FillRight(4) = %q", got)
	}
	if got := tmpl.FillRight(1, 4).String(); got != "InternetGatewayDevice.LANDevice.1.Hosts.Host.4." {
		t.Errorf("FillRight(1, 4) = %q", got)
	}
	if got := tmpl.FillRight(0, 4).String(); got != "InternetGatewayDevice.LANDevice.{i}.Hosts.Host.4." {
		t.Errorf("FillRight(0, 4) = %q", got)
	}
}

func TestParentAndName(t *testing.T) {
	tests := []struct {
		input  string
		parent string
		name   string
	}{
		{"Device.DHCPv4.Client.{i}.ReqOption.{i}.", "Device.DHCPv4.Client.{i}.", "ReqOption"},
		{"Device.DHCPv4.Client.{i}.", "Device.DHCPv4.", "Client"},
		{"Device.DeviceInfo.", "Device.", "DeviceInfo"},
		{"Device.DeviceInfo.Manufacturer", "Device.DeviceInfo.", "Manufacturer"},
		{"Device.", "", "Device"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := MustParse(tt.input)
			parent := p.Parent()
			got := ""
			if parent != nil {
				got = parent.String()
			}
			if got != tt.parent {
				t.Errorf("Parent() = %q, want %q", got, tt.parent)
			}
			if p.Name() != tt.name {
				t.Errorf("Name() = %q, want %q", p.Name(), tt.name)
			}
		})
	}
}

func TestHasPrefix(t *testing.T) {
	p := MustParse("Device.DHCPv4.Client.1.Enable")
	if !p.HasPrefix(MustParse("Device.DHCPv4.")) {
		t.Error("HasPrefix(Device.DHCPv4.) = false")
	}
	if p.HasPrefix(MustParse("Device.IP.")) {
		t.Error("HasPrefix(Device.IP.) = true")
	}
}
