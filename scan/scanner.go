package scan

type Scanner interface {
	Scan(req Request) (Outcome, error)
}

// Reporter receives open ports as soon as they are discovered. Calls are
// serialised by the scanner, so implementations need no locking.
type Reporter interface {
	PortOpen(port int)
}

type ReporterFunc func(port int)

func (f ReporterFunc) PortOpen(port int) {
	f(port)
}

type nopReporter struct{}

func (nopReporter) PortOpen(int) {}

// Scan runs req against a connect scanner using DefaultTimeout per probe.
func Scan(req Request, workers int, reporter Reporter) (Outcome, error) {
	return NewConnectScanner(DefaultTimeout, workers, reporter).Scan(req)
}
