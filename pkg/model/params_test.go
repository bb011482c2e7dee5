package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func populated(t *testing.T) *Object {
	t.Helper()
	root := testSchema().New()
	tm := root.Child("Time")
	require.NoError(t, tm.Set("Enable", true))
	require.NoError(t, tm.List("NTPServers").Append("a.example", "b.example"))

	lan, err := root.Table("LANDevice").Add()
	require.NoError(t, err)
	host, err := lan.Child("Hosts").Table("Host").Add()
	require.NoError(t, err)
	require.NoError(t, host.Set("MACAddress", "00:11:22:33:44:55"))
	require.NoError(t, host.Set("LeaseTimeRemaining", -1))
	return root
}

func TestParameterValues(t *testing.T) {
	root := populated(t)

	got := root.ParameterValues()
	want := []ParameterValue{
		{Name: "InternetGatewayDevice.Time.Enable", Value: "true", Type: "xsd:boolean"},
		{Name: "InternetGatewayDevice.Time.NTPServers", Value: "a.example,b.example", Type: "xsd:string"},
		{Name: "InternetGatewayDevice.LANDevice.1.Hosts.Host.1.LeaseTimeRemaining", Value: "-1", Type: "xsd:int"},
		{Name: "InternetGatewayDevice.LANDevice.1.Hosts.Host.1.MACAddress", Value: "00:11:22:33:44:55", Type: "xsd:string"},
		{Name: "InternetGatewayDevice.LANDevice.1.Hosts.Host.1.InterfaceType", Value: "Ethernet", Type: "xsd:string"},
	}
	assert.Equal(t, want, got)
}

func TestResolve(t *testing.T) {
	root := populated(t)

	obj, pd, err := root.Resolve("InternetGatewayDevice.LANDevice.1.Hosts.Host.1.MACAddress")
	require.NoError(t, err)
	assert.Equal(t, "MACAddress", pd.Name)
	assert.Equal(t, "InternetGatewayDevice.LANDevice.1.Hosts.Host.1.", obj.Path())

	obj, pd, err = root.Resolve("InternetGatewayDevice.LANDevice.1.Hosts.")
	require.NoError(t, err)
	assert.Nil(t, pd)
	assert.Equal(t, "Hosts", obj.Def().Name)

	_, _, err = root.Resolve("InternetGatewayDevice.LANDevice.2.Hosts.")
	assert.ErrorIs(t, err, ErrNoSuchObject)

	_, _, err = root.Resolve("InternetGatewayDevice.LANDevice.")
	assert.ErrorIs(t, err, ErrNoSuchObject)

	_, _, err = root.Resolve("Device.DeviceInfo.")
	assert.ErrorIs(t, err, ErrNoSuchObject)

	_, _, err = root.Resolve("InternetGatewayDevice.Time.Bogus")
	assert.ErrorIs(t, err, ErrUnknownParameter)

	table, err := root.ResolveTable("InternetGatewayDevice.LANDevice.1.Hosts.Host.")
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())

	_, err = root.ResolveTable("InternetGatewayDevice.Time.")
	assert.ErrorIs(t, err, ErrNotTable)
}

func TestGetSetParameterValue(t *testing.T) {
	root := populated(t)

	pv, err := root.GetParameterValue("InternetGatewayDevice.LANDevice.1.Hosts.Host.1.LeaseTimeRemaining")
	require.NoError(t, err)
	assert.Equal(t, ParameterValue{Name: "InternetGatewayDevice.LANDevice.1.Hosts.Host.1.LeaseTimeRemaining", Value: "-1", Type: "xsd:int"}, pv)

	require.NoError(t, root.SetParameterValue("InternetGatewayDevice.Time.Port", "0"))
	assert.Equal(t, uint32(0), root.Child("Time").Get("Port"))

	err = root.SetParameterValue("InternetGatewayDevice.Time.Port", "70000")
	assert.ErrorIs(t, err, ErrOutOfRange)

	err = root.SetParameterValue("InternetGatewayDevice.Time.Port", "eighty")
	assert.ErrorIs(t, err, ErrMalformedValue)

	err = root.SetParameterValue("InternetGatewayDevice.LANDevice.1.Hosts.Host.1.MACAddress", "00:11:22:33:44:66")
	assert.ErrorIs(t, err, ErrNotWritable)

	require.NoError(t, root.SetParameterValue("InternetGatewayDevice.Time.NTPServers", "x.example, y.example"))
	assert.Equal(t, []string{"x.example", "y.example"}, root.Child("Time").List("NTPServers").Strings())

	err = root.SetParameterValue("InternetGatewayDevice.Time.", "x")
	assert.ErrorIs(t, err, ErrNotParameterPath)
}

func TestReadsDoNotCreateChildren(t *testing.T) {
	root := testSchema().New()
	lan, err := root.Table("LANDevice").Add()
	require.NoError(t, err)

	pv, err := root.GetParameterValue("InternetGatewayDevice.Time.Enable")
	require.NoError(t, err)
	assert.Equal(t, ParameterValue{Name: "InternetGatewayDevice.Time.Enable", Value: "false", Type: "xsd:boolean"}, pv)
	_, ok := root.LookupChild("Time")
	assert.False(t, ok, "GetParameterValue attached Time")

	obj, _, err := root.Resolve("InternetGatewayDevice.LANDevice.1.Hosts.")
	require.NoError(t, err)
	assert.Equal(t, "InternetGatewayDevice.LANDevice.1.Hosts.", obj.Path())
	_, ok = lan.LookupChild("Hosts")
	assert.False(t, ok, "Resolve attached Hosts")

	_, _, err = root.Resolve("InternetGatewayDevice.LANDevice.1.Hosts.Host.1.")
	assert.ErrorIs(t, err, ErrNoSuchObject)

	table, err := root.ResolveTable("InternetGatewayDevice.LANDevice.1.Hosts.Host.")
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
	_, ok = lan.LookupChild("Hosts")
	assert.False(t, ok, "ResolveTable attached Hosts")

	table, err = root.EnsureTable("InternetGatewayDevice.LANDevice.1.Hosts.Host.")
	require.NoError(t, err)
	_, err = table.Add()
	require.NoError(t, err)
	assert.Equal(t, 1, lan.Child("Hosts").Table("Host").Len())

	require.NoError(t, root.SetParameterValue("InternetGatewayDevice.Time.Port", "123"))
	tm, ok := root.LookupChild("Time")
	require.True(t, ok, "SetParameterValue attaches Time")
	assert.Equal(t, uint32(123), tm.Get("Port"))
}
