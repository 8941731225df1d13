package scan

import "net"

// Request describes a single scan of one target. A request with a port
// probes only that port, otherwise the whole TCP port space is scanned.
type Request struct {
	ip      net.IP
	port    int
	hasPort bool
}

// NewRequest creates a request covering every port from MinPort to MaxPort.
func NewRequest(ip net.IP) Request {
	return Request{ip: copyIP(ip)}
}

// NewPortRequest creates a request for a single port.
func NewPortRequest(ip net.IP, port uint16) Request {
	return Request{
		ip:      copyIP(ip),
		port:    int(port),
		hasPort: true,
	}
}

func (r Request) IP() net.IP {
	return copyIP(r.ip)
}

// Port returns the requested port, and false for full range requests.
func (r Request) Port() (int, bool) {
	return r.port, r.hasPort
}

func (r Request) IsSinglePort() bool {
	return r.hasPort
}

func copyIP(ip net.IP) net.IP {
	if ip == nil {
		return nil
	}
	tIP := make([]byte, len(ip))
	copy(tIP, ip)
	return tIP
}
