package scan

import (
	"net"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultTimeout bounds a single connection attempt.
const DefaultTimeout = 300 * time.Millisecond

type Host struct {
	IP net.IP
}

// ProbeOpen reports whether a TCP connection to port can be established within
// timeout. Refused, unreachable and timed out attempts all count as closed.
func (h *Host) ProbeOpen(port int, timeout time.Duration) bool {
	addr := net.JoinHostPort(h.IP.String(), strconv.Itoa(port))
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		logrus.Tracef("Port %d closed: %s", port, err)
		return false
	}
	defer conn.Close()
	return true
}

// ProbeOpen probes a single port on ip using DefaultTimeout.
func ProbeOpen(ip net.IP, port int) bool {
	h := Host{IP: ip}
	return h.ProbeOpen(port, DefaultTimeout)
}
