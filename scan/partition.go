package scan

const (
	MinPort = 1
	MaxPort = 65535
)

// Partition is an inclusive range of ports owned by a single worker.
// A partition with Last < First is empty.
type Partition struct {
	First int
	Last  int
}

func (p Partition) Len() int {
	if p.Last < p.First {
		return 0
	}
	return p.Last - p.First + 1
}

func (p Partition) Empty() bool {
	return p.Len() == 0
}

// Partitions splits MinPort..MaxPort into workers contiguous chunks of
// MaxPort/workers ports. The final chunk absorbs the remainder. When there are
// more workers than ports every chunk but the last is empty, and only the last
// one is returned.
func Partitions(workers int) ([]Partition, error) {
	if workers <= 0 {
		return nil, &InvalidConcurrencyError{Workers: workers}
	}

	if workers > MaxPort {
		return []Partition{{First: MinPort, Last: MaxPort}}, nil
	}

	chunkSize := MaxPort / workers
	partitions := make([]Partition, workers)

	for i := 0; i < workers-1; i++ {
		first := MinPort + i*chunkSize
		partitions[i] = Partition{
			First: first,
			Last:  first + chunkSize - 1,
		}
	}

	partitions[workers-1] = Partition{
		First: MinPort + (workers-1)*chunkSize,
		Last:  MaxPort,
	}

	return partitions, nil
}
