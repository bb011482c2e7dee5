package persistence

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tr069-model/tr069-go/pkg/datamodel"
	"github.com/tr069-model/tr069-go/pkg/wire"
)

func testDevice(t *testing.T) *datamodel.Device {
	t.Helper()
	d := datamodel.NewDevice()
	if err := d.DeviceInfo().WithManufacturer("ACME").WithUpTime(3600).Err(); err != nil {
		t.Fatalf("device info: %v", err)
	}
	client := datamodel.NewDHCPv4Client().WithEnable(true).WithAlias("cpe-wan")
	if err := client.DNSServers().Append("8.8.8.8"); err != nil {
		t.Fatalf("dns servers: %v", err)
	}
	if err := d.DHCPv4().AddClient(client); err != nil {
		t.Fatalf("add client: %v", err)
	}
	return d
}

var deviceSchema = SchemaOf(datamodel.DeviceSchema)

func TestStore(t *testing.T) {
	t.Run("NewStore", func(t *testing.T) {
		store := NewStore(filepath.Join(t.TempDir(), "device.xml"), wire.FormatXML)
		if store == nil {
			t.Fatal("NewStore() returned nil")
		}
		if store.Format() != wire.FormatXML {
			t.Errorf("Format() = %v, want xml", store.Format())
		}
	})

	for _, f := range wire.Formats() {
		t.Run("SaveAndLoad/"+f.String(), func(t *testing.T) {
			dir := t.TempDir()
			store := NewStore(filepath.Join(dir, "nested", "device."+f.String()), f)
			d := testDevice(t)

			if err := store.Save(d.Object, wire.EncodeOptions{}); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			got, schema, err := store.Load(deviceSchema, wire.DecodeOptions{})
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if schema != datamodel.DeviceSchema {
				t.Errorf("schema = %s, want Device", schema.ModelVersion())
			}
			if !d.Equal(got) {
				t.Error("loaded record differs from saved record")
			}

			entries, err := os.ReadDir(filepath.Join(dir, "nested"))
			if err != nil {
				t.Fatalf("ReadDir() error = %v", err)
			}
			if len(entries) != 1 {
				t.Errorf("expected only the document in the directory, got %d entries", len(entries))
			}
		})
	}

	t.Run("TextEndsWithNewline", func(t *testing.T) {
		store := NewStore(filepath.Join(t.TempDir(), "device.json"), wire.FormatJSON)
		if err := store.Save(testDevice(t).Object, wire.EncodeOptions{}); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		data, err := os.ReadFile(store.Path())
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if !strings.HasSuffix(string(data), "}\n") {
			t.Errorf("expected trailing newline, got %q", data)
		}
	})

	t.Run("SaveInvalidKeepsFile", func(t *testing.T) {
		store := NewStore(filepath.Join(t.TempDir(), "device.xml"), wire.FormatXML)
		if err := store.Save(testDevice(t).Object, wire.EncodeOptions{}); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		before, _ := os.ReadFile(store.Path())

		bad := datamodel.NewDHCPv4Client().WithAlias("1-bad")
		if err := store.Save(bad.Object, wire.EncodeOptions{}); !errors.Is(err, wire.ErrInvalidRecord) {
			t.Fatalf("Save() error = %v, want ErrInvalidRecord", err)
		}
		after, _ := os.ReadFile(store.Path())
		if string(before) != string(after) {
			t.Error("failed save must leave the file unchanged")
		}
	})

	t.Run("LoadNonExistent", func(t *testing.T) {
		store := NewStore(filepath.Join(t.TempDir(), "nonexistent.xml"), wire.FormatXML)
		got, schema, err := store.Load(deviceSchema, wire.DecodeOptions{})
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if got != nil || schema != nil {
			t.Errorf("Load() = %v, want nil for non-existent file", got)
		}
	})

	t.Run("LoadWrongModel", func(t *testing.T) {
		store := NewStore(filepath.Join(t.TempDir(), "dev.json"), wire.FormatJSON)
		if err := store.Save(datamodel.NewDevice().Object, wire.EncodeOptions{}); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		if _, _, err := store.Load(SchemaOf(datamodel.InternetGatewayDeviceSchema), wire.DecodeOptions{}); err == nil {
			t.Error("Load() should reject a document of another model")
		}
		if _, _, err := store.Load(SchemaOf(datamodel.DeviceSchema), wire.DecodeOptions{}); err != nil {
			t.Errorf("Load() error = %v", err)
		}
	})

	t.Run("Clear", func(t *testing.T) {
		store := NewStore(filepath.Join(t.TempDir(), "device.yaml"), wire.FormatYAML)
		if err := store.Save(testDevice(t).Object, wire.EncodeOptions{}); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		if err := store.Clear(); err != nil {
			t.Fatalf("Clear() error = %v", err)
		}
		if _, err := os.Stat(store.Path()); !os.IsNotExist(err) {
			t.Error("file still exists after Clear()")
		}
		if err := store.Clear(); err != nil {
			t.Errorf("second Clear() error = %v", err)
		}
	})
}
