package collate

import (
	"sync"
	"time"

	"github.com/ZanzyTHEbar/seqpad/seqpad/batching"
)

// Metrics tracks collation counts and padding overhead.
// It is safe for concurrent use.
type Metrics struct {
	Batches   int64
	Failed    int64
	Items     int64
	Cells     int64
	PadCells  int64
	LastBatch time.Time
	Mu        sync.RWMutex
}

// record updates the counters for one Collate call.
func (m *Metrics) record(pb *batching.PaddedBatch, err error) {
	m.Mu.Lock()
	defer m.Mu.Unlock()

	m.LastBatch = time.Now()
	if err != nil {
		m.Failed++
		return
	}
	m.Batches++
	m.Items += int64(pb.Size())
	fields := []*batching.PaddedTensor{pb.Source()}
	if f, ok := pb.Features().Get(); ok {
		fields = append(fields, f)
	}
	if t, ok := pb.Target().Get(); ok {
		fields = append(fields, t)
	}
	for _, pt := range fields {
		rows, cols := pt.Shape()
		m.Cells += int64(rows * cols)
		m.PadCells += int64(pt.PadCount())
	}
}

// PadRatio returns the fraction of produced cells that are padding.
func (m *Metrics) PadRatio() float64 {
	m.Mu.RLock()
	defer m.Mu.RUnlock()
	if m.Cells == 0 {
		return 0
	}
	return float64(m.PadCells) / float64(m.Cells)
}

// GetMetrics returns the metrics as a map
func (m *Metrics) GetMetrics() map[string]interface{} {
	ratio := m.PadRatio()

	m.Mu.RLock()
	defer m.Mu.RUnlock()
	return map[string]interface{}{
		"batches":    m.Batches,
		"failed":     m.Failed,
		"items":      m.Items,
		"cells":      m.Cells,
		"pad_cells":  m.PadCells,
		"pad_ratio":  ratio,
		"last_batch": m.LastBatch,
	}
}
