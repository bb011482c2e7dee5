package datamodel

import "strings"

// LeaseInfinite is the LeaseTimeRemaining sentinel for a lease that does
// not expire.
const LeaseInfinite int32 = -1

// LeaseIsInfinite reports whether the host holds a lease that never expires.
func (h *Host) LeaseIsInfinite() bool {
	v, ok := h.LeaseTimeRemaining()
	return ok && v == LeaseInfinite
}

// LeaseIsInfinite reports whether the client holds a lease that never expires.
func (d *DHCPv4Client) LeaseIsInfinite() bool {
	v, ok := d.LeaseTimeRemaining()
	return ok && v == LeaseInfinite
}

// Bound reports whether the client has a usable lease.
func (d *DHCPv4Client) Bound() bool {
	s, ok := d.DHCPStatus()
	return ok && s == DHCPv4ClientDHCPStatusBound
}

// Key returns the first unique key of the deployment unit as
// "UUID/Version/ExecutionEnvRef". Absent parts are left empty.
func (d *DeploymentUnit) Key() string {
	uuid, _ := d.UUID()
	ver, _ := d.Version()
	env, _ := d.ExecutionEnvRef()
	return strings.Join([]string{uuid, ver, env}, "/")
}

// Supports reports whether the management server lists method among its
// supported connection request methods.
func (m *ManagementServer) Supports(method string) bool {
	for _, s := range m.SupportedConnReqMethods().Strings() {
		if s == method {
			return true
		}
	}
	return false
}
