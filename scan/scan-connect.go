package scan

import (
	"net"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultWorkers is the number of partitions a full range scan is split into.
const DefaultWorkers = 100

// ConnectScanner scans ports by completing a full TCP handshake with each one.
// A full range scan runs one goroutine per partition of the port space.
type ConnectScanner struct {
	timeout  time.Duration
	workers  int
	reporter Reporter
	probe    ProbeFunc
}

// ProbeFunc decides whether a single port on ip accepts connections.
type ProbeFunc func(ip net.IP, port int, timeout time.Duration) bool

func NewConnectScanner(timeout time.Duration, workers int, reporter Reporter) *ConnectScanner {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &ConnectScanner{
		timeout:  timeout,
		workers:  workers,
		reporter: reporter,
		probe: func(ip net.IP, port int, timeout time.Duration) bool {
			h := Host{IP: ip}
			return h.ProbeOpen(port, timeout)
		},
	}
}

// WithProbe replaces the TCP connect probe used for every port.
func (s *ConnectScanner) WithProbe(probe ProbeFunc) *ConnectScanner {
	if probe != nil {
		s.probe = probe
	}
	return s
}

func (s *ConnectScanner) Scan(req Request) (Outcome, error) {

	if s.workers <= 0 {
		return Outcome{}, &InvalidConcurrencyError{Workers: s.workers}
	}

	ip := req.IP()

	if port, ok := req.Port(); ok {
		return s.scanPort(ip, port), nil
	}

	return s.scanRange(ip)
}

func (s *ConnectScanner) scanPort(ip net.IP, port int) Outcome {

	outcome := NewOutcome(ip)
	outcome.Probed = 1

	if s.probe(ip, port, s.timeout) {
		outcome.Open = append(outcome.Open, port)
		s.reporter.PortOpen(port)
	}

	return outcome
}

func (s *ConnectScanner) scanRange(ip net.IP) (Outcome, error) {

	partitions, err := Partitions(s.workers)
	if err != nil {
		return Outcome{}, err
	}

	outcome := NewOutcome(ip)
	outcome.Timed = true

	buffer := s.workers
	if buffer > MaxPort {
		buffer = MaxPort
	}
	resultChan := make(chan PortResult, buffer)
	doneChan := make(chan struct{})

	startTime := time.Now()

	go func() {
		for result := range resultChan {
			outcome.Probed++
			if !result.Open {
				continue
			}
			logrus.Debugf("Port %d (%s) is open on %s", result.Port, DescribePort(result.Port), ip)
			outcome.Open = append(outcome.Open, result.Port)
			s.reporter.PortOpen(result.Port)
		}
		close(doneChan)
	}()

	logrus.Debugf("Scanning %s with %d workers (%d with ports)...", ip, s.workers, len(partitions))

	wg := &sync.WaitGroup{}

	for _, partition := range partitions {
		if partition.Empty() {
			continue
		}
		wg.Add(1)
		go func(p Partition, wg *sync.WaitGroup) {
			defer wg.Done()
			for port := p.First; port <= p.Last; port++ {
				resultChan <- PortResult{
					Port: port,
					Open: s.probe(ip, port, s.timeout),
				}
			}
		}(partition, wg)
	}

	wg.Wait()
	close(resultChan)
	<-doneChan

	outcome.Elapsed = time.Since(startTime)
	sort.Ints(outcome.Open)

	logrus.Debugf("Probed %d ports on %s in %s", outcome.Probed, ip, outcome.Elapsed)

	return outcome, nil
}
