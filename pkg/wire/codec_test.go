package wire

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/tr069-model/tr069-go/pkg/datamodel"
	"github.com/tr069-model/tr069-go/pkg/log"
	"github.com/tr069-model/tr069-go/pkg/model"
)

func TestFormatNames(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"xml", FormatXML, false},
		{"XML", FormatXML, false},
		{"yaml", FormatYAML, false},
		{" yml ", FormatYAML, false},
		{"json", FormatJSON, false},
		{"cbor", FormatCBOR, false},
		{"bson", FormatBSON, false},
		{"toml", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}

	assert.Equal(t, "Format(9)", Format(9).String())
	assert.Len(t, Formats(), 5)
	assert.True(t, FormatCBOR.Binary())
	assert.True(t, FormatBSON.Binary())
	assert.False(t, FormatYAML.Binary())
}

func mustParse(t *testing.T, s string) Format {
	t.Helper()
	f, err := ParseFormat(s)
	require.NoError(t, err)
	return f
}

func TestFormatFromExt(t *testing.T) {
	f, err := FormatFromExt("dumps/cpe-42.json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = FormatFromExt("igd.YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = FormatFromExt("Makefile")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = FormatFromExt("notes.txt")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	d := sampleDevice(t)
	for _, f := range Formats() {
		t.Run(f.String(), func(t *testing.T) {
			rec := &recorder{}
			data, err := Encode(d.Object, f, EncodeOptions{Indent: "  ", Logger: rec, Source: "dump." + f.String()})
			require.NoError(t, err)

			docs := rec.byCategory(log.CategoryDocument)
			require.Len(t, docs, 1)
			assert.Equal(t, f.String(), docs[0].Format)
			assert.Equal(t, len(data), docs[0].Document.Size)
			assert.Equal(t, "Device", docs[0].Model)

			root, err := DetectRootFormat(data, f)
			require.NoError(t, err)
			assert.Equal(t, "Device", root)

			got := datamodel.DeviceSchema.New()
			require.NoError(t, Decode(data, f, got, DecodeOptions{}))
			assert.True(t, d.Equal(got), "decoded record differs:\n%s", data)
		})
	}
}

func TestEncodeHostScenario(t *testing.T) {
	h := scenarioHost(t)
	for _, f := range Formats() {
		t.Run(f.String(), func(t *testing.T) {
			data, err := Encode(h.Object, f, EncodeOptions{})
			require.NoError(t, err)

			got := datamodel.NewHost()
			require.NoError(t, Decode(data, f, got.Object, DecodeOptions{}))
			assert.True(t, h.Equal(got.Object))
		})
	}
}

func TestEncodeJSONDocument(t *testing.T) {
	data, err := Encode(scenarioHost(t).Object, FormatJSON, EncodeOptions{})
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"Host":{"AddressSource":"DHCP","LeaseTimeRemaining":-1,"MACAddress":"00:11:22:33:44:55"}}`,
		string(data))
}

func TestEncodeYAMLDocument(t *testing.T) {
	data, err := Encode(scenarioHost(t).Object, FormatYAML, EncodeOptions{Indent: "  "})
	require.NoError(t, err)
	assert.YAMLEq(t, `
Host:
  AddressSource: DHCP
  LeaseTimeRemaining: -1
  MACAddress: "00:11:22:33:44:55"
`, string(data))
}

func TestDecodeJSON(t *testing.T) {
	t.Run("lexical strings", func(t *testing.T) {
		doc := `{"Host":{"LeaseTimeRemaining":"-1","Active":"1","ClientID":"0a0b"}}`
		h := datamodel.NewHost()
		require.NoError(t, Decode([]byte(doc), FormatJSON, h.Object, DecodeOptions{}))
		assert.True(t, h.LeaseIsInfinite())
		active, _ := h.Active()
		assert.True(t, active)
		id, _ := h.ClientID()
		assert.Equal(t, []byte{0x0a, 0x0b}, id)
	})

	t.Run("unknown keys", func(t *testing.T) {
		rec := &recorder{}
		doc := `{"Host":{"MACAddress":"00:11:22:33:44:55","X_VENDOR":{"a":1}}}`
		require.NoError(t, Decode([]byte(doc), FormatJSON, datamodel.NewHost().Object, DecodeOptions{Logger: rec}))
		skipped := rec.byCategory(log.CategorySkipped)
		require.Len(t, skipped, 1)
		assert.Equal(t, "X_VENDOR", skipped[0].Skipped.Element)
		assert.Equal(t, "json", skipped[0].Format)
	})

	t.Run("root instance", func(t *testing.T) {
		h := datamodel.NewHost()
		require.NoError(t, Decode([]byte(`{"Host":{"@instance":12}}`), FormatJSON, h.Object, DecodeOptions{}))
		assert.Equal(t, uint32(12), h.Instance())
	})

	t.Run("out of range", func(t *testing.T) {
		err := Decode([]byte(`{"Host":{"LeaseTimeRemaining":-2}}`), FormatJSON, datamodel.NewHost().Object, DecodeOptions{})
		assert.ErrorIs(t, err, model.ErrOutOfRange)
	})
}

func TestDecodeTreeErrors(t *testing.T) {
	tests := []struct {
		name string
		f    Format
		doc  string
		want error
	}{
		{"wrong root", FormatJSON, `{"Device":{}}`, ErrUnexpectedElement},
		{"two roots", FormatJSON, `{"Host":{},"Hosts":{}}`, model.ErrMalformedValue},
		{"root not a map", FormatJSON, `{"Host":[1,2]}`, model.ErrMalformedValue},
		{"empty json", FormatJSON, ``, model.ErrMalformedValue},
		{"trailing data", FormatJSON, `{"Host":{}} {"Host":{}}`, model.ErrMalformedValue},
		{"syntax", FormatJSON, `{"Host":`, model.ErrMalformedValue},
		{"empty yaml", FormatYAML, ``, model.ErrMalformedValue},
		{"yaml syntax", FormatYAML, "Host: [", model.ErrMalformedValue},
		{"cbor garbage", FormatCBOR, "\xff\x00", model.ErrMalformedValue},
		{"bson garbage", FormatBSON, "\x01\x02", model.ErrMalformedValue},
		{"unknown format", Format(42), `{}`, ErrUnknownFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Decode([]byte(tt.doc), tt.f, datamodel.NewHost().Object, DecodeOptions{})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	_, err := Encode(scenarioHost(t).Object, Format(42), EncodeOptions{})
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestBSONLargeUnsigned(t *testing.T) {
	info := datamodel.NewDeviceInfo()
	require.NoError(t, info.SetAcmeTotalBytesSent(math.MaxUint64))
	require.NoError(t, info.SetUpTime(math.MaxUint32))

	data, err := Encode(info.Object, FormatBSON, EncodeOptions{})
	require.NoError(t, err)

	var raw bson.M
	require.NoError(t, bson.Unmarshal(data, &raw))
	body := normalizeBSON(raw).(map[string]any)["DeviceInfo"].(map[string]any)
	assert.Equal(t, "18446744073709551615", body["X_ACME-COM_TotalBytesSent"])
	assert.Equal(t, int64(math.MaxUint32), body["UpTime"])

	got := datamodel.NewDeviceInfo()
	require.NoError(t, Decode(data, FormatBSON, got.Object, DecodeOptions{}))
	total, _ := got.AcmeTotalBytesSent()
	assert.Equal(t, uint64(math.MaxUint64), total)
}

func TestBSONSafe(t *testing.T) {
	in := map[string]any{
		"a": uint32(7),
		"b": []any{uint64(8), uint64(math.MaxUint64)},
		"c": map[string]any{"d": int32(-1), "e": "x"},
	}
	assert.Equal(t, map[string]any{
		"a": int64(7),
		"b": []any{int64(8), "18446744073709551615"},
		"c": map[string]any{"d": int32(-1), "e": "x"},
	}, bsonSafe(in))
}

func TestDetectRootFormat(t *testing.T) {
	data, err := Encode(datamodel.NewInternetGatewayDevice().WithDeviceSummary("InternetGatewayDevice:1.14[](Baseline:1)").Object, FormatCBOR, EncodeOptions{})
	require.NoError(t, err)
	root, err := DetectRootFormat(data, FormatCBOR)
	require.NoError(t, err)
	assert.Equal(t, "InternetGatewayDevice", root)

	_, err = DetectRootFormat([]byte(`[]`), FormatJSON)
	assert.ErrorIs(t, err, model.ErrMalformedValue)
}
