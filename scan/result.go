package scan

import (
	"fmt"
	"net"
	"strings"
	"time"
)

type PortResult struct {
	Port int
	Open bool
}

// Outcome is the aggregate of a finished scan. Open holds every port found
// open, sorted once all workers are done.
type Outcome struct {
	Target  net.IP
	Open    []int
	Probed  int
	Elapsed time.Duration
	// Timed is false for single port scans, which do not report elapsed time.
	Timed bool
}

func NewOutcome(target net.IP) Outcome {
	return Outcome{
		Target: target,
		Open:   []int{},
	}
}

func (o Outcome) IsOpen(port int) bool {
	for _, open := range o.Open {
		if open == port {
			return true
		}
	}
	return false
}

func (o Outcome) String() string {

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d probed, %d open", o.Target, o.Probed, len(o.Open))

	for i, port := range o.Open {
		sep := ", "
		if i == 0 {
			sep = ": "
		}
		fmt.Fprintf(&b, "%s%d/tcp", sep, port)
		if name := DescribePort(port); name != "" {
			fmt.Fprintf(&b, " (%s)", name)
		}
	}

	if o.Timed {
		fmt.Fprintf(&b, " in %s", o.Elapsed)
	}

	return b.String()
}
