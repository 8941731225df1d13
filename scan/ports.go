package scan

import "github.com/google/gopacket/layers"

// DescribePort returns the IANA service name registered for a TCP port.
func DescribePort(port int) string {
	if port < MinPort || port > MaxPort {
		return ""
	}
	if s, ok := layers.TCPPortNames[layers.TCPPort(port)]; ok {
		return s
	}

	return ""
}
