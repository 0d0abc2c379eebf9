package printer

import (
	"sync/atomic"
)

// ClientMetrics contains atomic metrics for a client.
// Metrics can be used as the value of a prometheus CounterFunc or GaugeFunc.
type ClientMetrics struct {
	// JobSendCount indicates the number of print jobs dispatched.
	JobSendCount atomic.Uint64
	// JobErrCount indicates the number of print jobs that failed, either at the
	// transport level or with a device-reported failure.
	JobErrCount atomic.Uint64
	// JobInflightCount indicates the number of print jobs in flight.
	JobInflightCount atomic.Int64
}

func (m *ClientMetrics) incJobSendCount() {
	m.JobSendCount.Add(1)
}

func (m *ClientMetrics) incJobErrCount() {
	m.JobErrCount.Add(1)
}

func (m *ClientMetrics) incJobInflightCount() {
	m.JobInflightCount.Add(1)
}

func (m *ClientMetrics) decJobInflightCount() {
	m.JobInflightCount.Add(-1)
}
