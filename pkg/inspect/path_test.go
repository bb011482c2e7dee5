package inspect

import (
	"errors"
	"testing"
)

func TestJoin(t *testing.T) {
	tests := []struct {
		name    string
		cwd     string
		input   string
		want    string
		wantErr error
	}{
		{name: "root", cwd: "Device.DHCPv4.", input: "/", want: "Device."},
		{name: "absolute object", cwd: "Device.DHCPv4.", input: "Device.IP.Diagnostics.", want: "Device.IP.Diagnostics."},
		{name: "absolute parameter", cwd: "Device.", input: "Device.DeviceInfo.UpTime", want: "Device.DeviceInfo.UpTime"},
		{name: "bare root name", cwd: "Device.IP.", input: "Device", want: "Device."},
		{name: "relative object", cwd: "Device.DHCPv4.", input: "Client.1.", want: "Device.DHCPv4.Client.1."},
		{name: "relative parameter", cwd: "Device.DeviceInfo.", input: "UpTime", want: "Device.DeviceInfo.UpTime"},
		{name: "root name prefix is relative", cwd: "Device.", input: "DeviceInfo.", want: "Device.DeviceInfo."},
		{name: "parent of row", cwd: "Device.DHCPv4.Client.1.", input: "..", want: "Device.DHCPv4."},
		{name: "parent with trailing slash", cwd: "Device.DHCPv4.", input: "../", want: "Device."},
		{name: "sibling", cwd: "Device.DHCPv4.", input: "../IP.", want: "Device.IP."},
		{name: "repeated parent", cwd: "Device.DHCPv4.Client.1.", input: "../../DeviceInfo.UpTime", want: "Device.DeviceInfo.UpTime"},
		{name: "surrounding space", cwd: "Device.", input: "  IP.  ", want: "Device.IP."},
		{name: "empty", cwd: "Device.", input: "", wantErr: ErrEmptyPath},
		{name: "blank", cwd: "Device.", input: "   ", wantErr: ErrEmptyPath},
		{name: "above root", cwd: "Device.", input: "..", wantErr: ErrAboveRoot},
		{name: "above root after rows", cwd: "Device.DHCPv4.Client.2.", input: "../../..", wantErr: ErrAboveRoot},
		{name: "template", cwd: "Device.DHCPv4.", input: "Client.{i}.", wantErr: ErrInvalidPath},
		{name: "double dot inside", cwd: "Device.", input: "IP..Diagnostics.", wantErr: ErrInvalidPath},
		{name: "zero instance", cwd: "Device.DHCPv4.", input: "Client.0.", wantErr: ErrInvalidPath},
		{name: "bad cwd", cwd: ".Device", input: "IP.", wantErr: ErrInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Join("Device", tt.cwd, tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Join(%q, %q) error = %v, want %v", tt.cwd, tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Join(%q, %q) unexpected error: %v", tt.cwd, tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Join(%q, %q) = %q, want %q", tt.cwd, tt.input, got, tt.want)
			}
		})
	}
}

func TestJoinOtherRoot(t *testing.T) {
	got, err := Join("InternetGatewayDevice", "InternetGatewayDevice.LANDevice.1.", "Hosts.Host.3.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "InternetGatewayDevice.LANDevice.1.Hosts.Host.3." {
		t.Errorf("got %q", got)
	}

	got, err = Join("InternetGatewayDevice", "InternetGatewayDevice.LANDevice.1.Hosts.", "../..")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "InternetGatewayDevice." {
		t.Errorf("got %q, want InternetGatewayDevice.", got)
	}
}
