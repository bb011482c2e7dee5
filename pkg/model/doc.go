// Package model implements the CWMP data-model record.
//
// # Schema
//
// The Broadband Forum data models (TR-098, TR-181 and the service models
// built on them) are trees of objects addressed by dotted path templates:
//
//	InternetGatewayDevice.
//	└── LANDevice.{i}.
//	    └── Hosts.
//	        └── Host.{i}.          (table row, unique on MACAddress)
//	            ├── MACAddress     string, MACAddress
//	            ├── AddressSource  string, enumeration
//	            └── LeaseTimeRemaining int, min -1
//
// An ObjectDef describes one node of that tree: its path template, its
// parameters (ParameterDef) and its child objects (ChildDef). Objects whose
// path ends in "{i}." are table rows; the others are singletons. A Schema
// indexes a root ObjectDef by path template.
//
// # Records
//
// An Object is one instance of an ObjectDef. Parameters are stored by their
// CWMP name. Child singletons, tables (Table) and list-valued parameters
// (List) are created on first access and kept, so reading a collection that
// was never set yields an empty live collection that can be appended to.
//
// # Validation
//
// Validation is eager. Set coerces the value to the canonical Go type of the
// parameter and checks every declared constraint before storing it; a
// rejected value leaves the previous value in place and returns a
// *ValidationError. With is the chaining form of Set: it keeps the first
// failure and reports it from Err and Validate. Encoders in package wire
// call Validate before writing, so a record with a pending builder error,
// or with table rows that collide on a unique key after being edited in
// place, is never serialized.
//
// Set does not check access: it is the device-side update used by the
// generated setters. Write is the management-client form and rejects
// read-only parameters.
//
// # Concurrency
//
// Objects are plain data holders for a single owner and are not safe for
// concurrent use. Definitions are immutable once built and may be shared.
package model
