// Package wire serializes data-model records.
//
// XML is the primary format. A record is one element named by its wire tag
// with one child element per present parameter, in definition order:
//
//	<Host instance="1">
//	  <IPAddress>192.168.1.10</IPAddress>
//	  <AddressSource>DHCP</AddressSource>
//	  <LeaseTimeRemaining>-1</LeaseTimeRemaining>
//	  <MACAddress>00:11:22:33:44:55</MACAddress>
//	</Host>
//
// List parameters are repeated elements, or items inside a wrapper element
// when the definition names one. Singleton children nest; table rows repeat,
// optionally inside a wrapper, and carry an instance attribute.
//
// Values use their CWMP lexical forms: true/false (1/0 accepted on input),
// decimal integers, RFC 3339 date-times (zone-less input is UTC), standard
// base64 and hex.
//
// # Validation
//
// Encoders validate the record first and refuse invalid ones with
// ErrInvalidRecord. Decoders set every value through the record's validating
// setters and append rows through its tables, so a decoded record satisfies
// the same constraints as one built in code. Failures are reported as
// *DecodeError with the path, element and input line.
//
// # Unknown Elements
//
// Decoders skip elements the definition does not know, typically vendor
// extensions of another vendor, and report each one as a skipped event to
// DecodeOptions.Logger.
//
// # Tree Formats
//
// ToTree and FromTree map records to nested maps. Encode and Decode carry
// those trees as YAML, JSON, CBOR or BSON documents with a single top-level
// key naming the root element.
package wire
