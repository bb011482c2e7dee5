// Package datamodel provides typed records for the CWMP data models in the
// schema directory.
//
// Every object of a schema gets a wrapper type that embeds *model.Object and
// adds typed accessors: a getter per parameter (returning the value alone
// when the parameter has a default, and the value with a presence flag
// otherwise), Set and With setters, List accessors for list-valued
// parameters, and Table, Add and Rows accessors for tables.
//
//	dev := datamodel.NewDevice()
//	c := datamodel.NewDHCPv4Client().
//		WithEnable(true).
//		WithAlias("cpe-wan").
//		WithLeaseTimeRemaining(-1)
//	if err := dev.DHCPv4().AddClient(c); err != nil {
//		return err
//	}
//
// The *_gen.go files are produced by tr069-gen; edit the YAML schemas and
// run go generate instead of editing them.
package datamodel

//go:generate go run ../../cmd/tr069-gen -schema ../../schema -output .
