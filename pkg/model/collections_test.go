package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hostTable(t *testing.T) *Table {
	t.Helper()
	root := testSchema().New()
	lan, err := root.Table("LANDevice").Add()
	require.NoError(t, err)
	return lan.Child("Hosts").Table("Host")
}

func TestTableRejectsDuplicateMAC(t *testing.T) {
	table := hostTable(t)
	def := table.Def().Object

	first := NewObject(def).With("MACAddress", "00:11:22:33:44:55").With("HostName", "a")
	second := NewObject(def).With("MACAddress", "00:11:22:33:44:55").With("HostName", "b")

	require.NoError(t, table.Append(first))
	err := table.Append(second)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.Contains(t, err.Error(), "InternetGatewayDevice.LANDevice.1.Hosts.Host.MACAddress")
	assert.Equal(t, 1, table.Len())
	assert.Nil(t, second.Parent())
}

func TestTableKeyUsesCanonicalSpelling(t *testing.T) {
	table := hostTable(t)
	def := table.Def().Object

	require.NoError(t, table.Append(NewObject(def).With("MACAddress", "00:11:22:33:44:AA")))
	err := table.Append(NewObject(def).With("MACAddress", "00:11:22:33:44:aa"))
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.Equal(t, 1, table.Len())
}

func TestCanonicalNamed(t *testing.T) {
	tests := []struct {
		named, in, want string
	}{
		{"MACAddress", "00:11:22:33:44:AA", "00:11:22:33:44:aa"},
		{"IPv6Address", "2001:DB8:0:0::1", "2001:db8::1"},
		{"IPAddress", "10.0.0.1", "10.0.0.1"},
		{"UUID", "6BA7B810-9DAD-11D1-80B4-00C04FD430C8", "6ba7b810-9dad-11d1-80b4-00c04fd430c8"},
		{"Alias", "CPE-1", "CPE-1"},
		{"MACAddress", "not-a-mac", "not-a-mac"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, canonicalNamed(tt.named, tt.in), "%s %s", tt.named, tt.in)
	}
}

func TestTableAbsentKeyNotCompared(t *testing.T) {
	table := hostTable(t)

	_, err := table.Add()
	require.NoError(t, err)
	_, err = table.Add()
	require.NoError(t, err, "rows without MACAddress do not collide")
	assert.NoError(t, table.Validate())
}

func TestTableCompositeKey(t *testing.T) {
	row := &ObjectDef{
		Path:       "Device.SoftwareModules.DeploymentUnit.{i}.",
		Name:       "DeploymentUnit",
		Table:      true,
		UniqueKeys: [][]string{{"UUID", "Version"}, {"Alias"}},
		Parameters: []*ParameterDef{
			{Name: "UUID", Type: DataTypeString, Named: "UUID"},
			{Name: "Version", Type: DataTypeString},
			{Name: "Alias", Type: DataTypeString, Named: "Alias"},
		},
	}
	parent := &ObjectDef{
		Path:     "Device.SoftwareModules.",
		Name:     "SoftwareModules",
		Children: []*ChildDef{{Name: "DeploymentUnit", Object: row}},
	}
	table := NewObject(parent).Table("DeploymentUnit")

	const id = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
	require.NoError(t, table.Append(NewObject(row).With("UUID", id).With("Version", "1.0")))
	require.NoError(t, table.Append(NewObject(row).With("UUID", id).With("Version", "1.1")))

	err := table.Append(NewObject(row).With("UUID", id).With("Version", "1.0"))
	assert.ErrorIs(t, err, ErrDuplicateKey)

	require.NoError(t, table.Append(NewObject(row).With("Alias", "cpe-1")))
	err = table.Append(NewObject(row).With("Alias", "cpe-1"))
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestTableInstances(t *testing.T) {
	table := hostTable(t)
	def := table.Def().Object

	a, err := table.Add()
	require.NoError(t, err)
	assert.Equal(t, uint32(1), a.Instance())

	b := NewObject(def)
	require.NoError(t, b.SetInstance(7))
	require.NoError(t, table.Append(b))

	c, err := table.Add()
	require.NoError(t, err)
	assert.Equal(t, uint32(8), c.Instance())

	dup := NewObject(def)
	require.NoError(t, dup.SetInstance(7))
	assert.ErrorIs(t, table.Append(dup), ErrDuplicateRow)

	assert.ErrorIs(t, table.Append(a), ErrRowAttached)
	assert.ErrorIs(t, a.SetInstance(3), ErrRowAttached)

	assert.Same(t, b, table.Instance(7))
	assert.Nil(t, table.Instance(2))

	assert.True(t, table.Remove(1))
	assert.False(t, table.Remove(1))
	assert.Nil(t, a.Parent())

	d, err := table.Add()
	require.NoError(t, err)
	assert.Equal(t, uint32(9), d.Instance(), "instance numbers are not reused")

	rows := table.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, []uint32{7, 8, 9}, []uint32{rows[0].Instance(), rows[1].Instance(), rows[2].Instance()})
}

func TestTableFull(t *testing.T) {
	table := hostTable(t)
	for i := 0; i < 4; i++ {
		_, err := table.Add()
		require.NoError(t, err)
	}
	_, err := table.Add()
	assert.ErrorIs(t, err, ErrTableFull)
}

func TestTableWrongDefinition(t *testing.T) {
	table := hostTable(t)
	other := testSchema().Object("InternetGatewayDevice.LANDevice.{i}.")
	assert.ErrorIs(t, table.Append(NewObject(other)), ErrWrongDefinition)
}

func TestTableValidateAfterEdit(t *testing.T) {
	table := hostTable(t)

	a, err := table.Add()
	require.NoError(t, err)
	b, err := table.Add()
	require.NoError(t, err)
	require.NoError(t, a.Set("MACAddress", "00:11:22:33:44:55"))
	require.NoError(t, b.Set("MACAddress", "00:11:22:33:44:66"))
	assert.NoError(t, table.Validate())

	require.NoError(t, b.Set("MACAddress", "00:11:22:33:44:55"))
	assert.ErrorIs(t, table.Validate(), ErrDuplicateKey)
}

func TestList(t *testing.T) {
	tm := testSchema().New().Child("Time")
	l := tm.List("NTPServers")

	require.NoError(t, l.Append("a.example", "b.example"))
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, "b.example", l.At(1))

	err := l.Append("c.example", "d.example")
	assert.ErrorIs(t, err, ErrTooManyItems)
	assert.Equal(t, 2, l.Len(), "failed append leaves the list unchanged")

	err = l.Append(string(make([]byte, 65)))
	assert.ErrorIs(t, err, ErrTooLong)

	require.NoError(t, l.Set(0, "z.example"))
	assert.Equal(t, []string{"z.example", "b.example"}, l.Strings())

	assert.Error(t, l.Set(5, "x"))

	require.NoError(t, l.Remove(0))
	assert.Equal(t, []any{"b.example"}, l.Items())
	assert.Error(t, l.Remove(1))
	assert.Error(t, l.Remove(-1))
	assert.Equal(t, []any{"b.example"}, l.Items())

	require.NoError(t, tm.Set("NTPServers", []string{"x", "y"}))
	assert.Equal(t, []string{"x", "y"}, l.Strings())

	err = tm.Set("NTPServers", "x")
	assert.ErrorIs(t, err, ErrValueType)

	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.Same(t, l, tm.List("NTPServers"))
}
