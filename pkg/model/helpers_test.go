package model

import "github.com/tr069-model/tr069-go/pkg/version"

// testSchema builds a small InternetGatewayDevice tree:
//
//	InternetGatewayDevice.
//	├── Time.               (singleton; NTPServers list)
//	└── LANDevice.{i}.
//	    └── Hosts.
//	        └── Host.{i}.  (unique on MACAddress, max 4 rows)
func testSchema() *Schema {
	host := &ObjectDef{
		Path:       "InternetGatewayDevice.LANDevice.{i}.Hosts.Host.{i}.",
		Name:       "Host",
		TypeName:   "Host",
		Table:      true,
		UniqueKeys: [][]string{{"MACAddress"}},
		MaxEntries: 4,
		Parameters: []*ParameterDef{
			{Name: "IPAddress", Type: DataTypeString, Named: "IPv4Address"},
			{Name: "AddressSource", Type: DataTypeString, Enumeration: []string{"DHCP", "Static", "AutoIP"}},
			{
				Name:      "LeaseTimeRemaining",
				Type:      DataTypeInt,
				Ranges:    []Range{{Min: Bound(-1)}},
				Sentinels: []Sentinel{{Value: -1, Meaning: "infinite"}},
			},
			{Name: "MACAddress", Type: DataTypeString, Named: "MACAddress"},
			{Name: "HostName", Type: DataTypeString, MaxLength: 64},
			{Name: "Active", Type: DataTypeBoolean},
			{Name: "InterfaceType", Field: "InterfaceKind", Type: DataTypeString, Access: AccessReadWrite, Default: "Ethernet"},
		},
	}
	hosts := &ObjectDef{
		Path:     "InternetGatewayDevice.LANDevice.{i}.Hosts.",
		Name:     "Hosts",
		TypeName: "Hosts",
		Parameters: []*ParameterDef{
			{Name: "HostNumberOfEntries", Type: DataTypeUnsignedInt},
		},
		Children: []*ChildDef{{Name: "Host", Object: host}},
	}
	lan := &ObjectDef{
		Path:     "InternetGatewayDevice.LANDevice.{i}.",
		Name:     "LANDevice",
		TypeName: "LANDevice",
		Table:    true,
		Children: []*ChildDef{{Name: "Hosts", Object: hosts}},
	}
	tm := &ObjectDef{
		Path:     "InternetGatewayDevice.Time.",
		Name:     "Time",
		TypeName: "Time",
		Parameters: []*ParameterDef{
			{Name: "Enable", Type: DataTypeBoolean, Access: AccessReadWrite, Default: false},
			{Name: "NTPServers", Type: DataTypeString, List: true, MaxItems: 3, MaxLength: 64, Access: AccessReadWrite},
			{Name: "CurrentLocalTime", Type: DataTypeDateTime},
			{Name: "Port", Type: DataTypeUnsignedInt, Access: AccessReadWrite, Ranges: []Range{{Min: Bound(1), Max: Bound(65535)}}, Sentinels: []Sentinel{{Value: 0, Meaning: "all ports"}}},
		},
	}
	root := &ObjectDef{
		Path:     "InternetGatewayDevice.",
		Name:     "InternetGatewayDevice",
		TypeName: "InternetGatewayDevice",
		Children: []*ChildDef{
			{Name: "Time", Object: tm},
			{Name: "LANDevice", Object: lan},
		},
	}
	return MustSchema("InternetGatewayDevice", version.MustParse("1.14"), root)
}

// newHost returns a detached Host row of a fresh schema.
func newHost() *Object {
	return NewObject(testSchema().Object("InternetGatewayDevice.LANDevice.{i}.Hosts.Host.{i}."))
}
