package wire

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tr069-model/tr069-go/pkg/datamodel"
	"github.com/tr069-model/tr069-go/pkg/log"
)

// recorder collects events in memory.
type recorder struct {
	mu     sync.Mutex
	events []log.Event
}

func (r *recorder) Log(e log.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) all() []log.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]log.Event(nil), r.events...)
}

func (r *recorder) byCategory(c log.Category) []log.Event {
	var out []log.Event
	for _, e := range r.all() {
		if e.Category == c {
			out = append(out, e)
		}
	}
	return out
}

// mockLogger is a testify mock of log.Logger.
type mockLogger struct {
	mock.Mock
}

func (m *mockLogger) Log(e log.Event) {
	m.Called(e)
}

// scenarioHost is the host row used throughout the codec tests.
func scenarioHost(t *testing.T) *datamodel.Host {
	t.Helper()
	h := datamodel.NewHost().
		WithMACAddress("00:11:22:33:44:55").
		WithAddressSource("DHCP").
		WithLeaseTimeRemaining(datamodel.LeaseInfinite)
	require.NoError(t, h.Err())
	return h
}

// sampleDevice fills every kind of value the Device model carries: dateTime,
// base64, hexBinary, 64-bit integers, plain and wrapped lists, and tables
// with and without wrappers.
func sampleDevice(t *testing.T) *datamodel.Device {
	t.Helper()
	when := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	d := datamodel.NewDevice()
	require.NoError(t, d.SetRootDataModelVersion("2.12"))

	info := d.DeviceInfo()
	require.NoError(t, info.SetManufacturer("ACME"))
	require.NoError(t, info.SetManufacturerOUI("00D09E"))
	require.NoError(t, info.SetSerialNumber("SN-0042"))
	require.NoError(t, info.SetFirstUseDate(when))
	require.NoError(t, info.SetAcmeTotalBytesSent(1<<63+5))
	require.NoError(t, info.SetAcmeClockOffset(-42))
	require.NoError(t, info.ProcessStatus().SetCPUUsage(17))

	ms := d.ManagementServer()
	require.NoError(t, ms.SetURL("https://acs.example.net/cwmp"))
	require.NoError(t, ms.SetPeriodicInformInterval(3600))
	require.NoError(t, ms.SetPeriodicInformTime(when))
	require.NoError(t, ms.SetAcmeCertificate([]byte{0x30, 0x82, 0x01, 0x0a}))
	require.NoError(t, ms.SupportedConnReqMethods().Append("HTTP", "XMPP"))

	client := datamodel.NewDHCPv4Client()
	require.NoError(t, client.SetEnable(true))
	require.NoError(t, client.SetAlias("cpe-wan"))
	require.NoError(t, client.SetLeaseTimeRemaining(datamodel.LeaseInfinite))
	require.NoError(t, client.IPRouters().Append("192.168.1.1"))
	require.NoError(t, client.DNSServers().Append("8.8.8.8", "8.8.4.4"))
	opt := datamodel.NewDHCPv4ClientSentOption()
	require.NoError(t, opt.SetTag(60))
	require.NoError(t, opt.SetValue([]byte("dslforum.org")))
	require.NoError(t, client.AddSentOption(opt))
	require.NoError(t, d.DHCPv4().AddClient(client))

	du := datamodel.NewDeploymentUnit()
	require.NoError(t, du.SetUUID("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	require.NoError(t, du.SetName("sensor-agent"))
	require.NoError(t, du.SetStatus("Installed"))
	require.NoError(t, du.SetVersion("1.0.3"))
	require.NoError(t, du.SetExecutionEnvRef("Device.SoftwareModules.ExecEnv.1."))
	require.NoError(t, du.VendorLogList().Append("Device.DeviceInfo.VendorLogFile.1."))
	require.NoError(t, d.SoftwareModules().AddDeploymentUnit(du))
	return d
}
