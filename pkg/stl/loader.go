package stl

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/stlview/pkg/encoding"
)

// Options configures a Loader.
type Options struct {
	// MaxWorkers caps the number of decode workers. Zero or negative
	// means one worker per available CPU.
	MaxWorkers int

	// Unindexed disables vertex deduplication: every triangle corner is
	// emitted as its own vertex.
	Unindexed bool

	// Start is the reference time for the parse-time diagnostic.
	// Zero means the moment Run is called.
	Start time.Time

	// Logger receives diagnostics. Nil disables logging.
	Logger *zap.Logger
}

// Loader decodes STL files using one worker per partition of the
// triangle stream and merges the partial meshes in partition order.
type Loader struct {
	opts   Options
	log    *zap.Logger
	numCPU func() int
}

// NewLoader creates a loader with the given options.
func NewLoader(opts Options) *Loader {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{
		opts:   opts,
		log:    log,
		numCPU: runtime.NumCPU,
	}
}

// Load decodes the STL file at path with the given options.
func Load(path string, opts Options) (*ModelData, error) {
	return NewLoader(opts).Run(path)
}

// Run reads the whole file at path and decodes it.
func (l *Loader) Run(path string) (*ModelData, error) {
	start := l.opts.Start
	if start.IsZero() {
		start = time.Now()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading STL file: %w", err)
	}

	model, err := l.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	elapsed := time.Since(start)
	if elapsed < 0 {
		return nil, fmt.Errorf("%w: %v", ErrClockAnomaly, elapsed)
	}
	l.log.Info("parsed STL file",
		zap.String("path", path),
		zap.Stringer("format", model.Format),
		zap.Int("triangles", model.TriangleCount()),
		zap.Int("vertices", len(model.Vertices)),
		zap.Duration("elapsed", elapsed),
	)

	return model, nil
}

// Decode classifies data as ASCII or binary STL and decodes it.
// Data starting with "solid" is treated as ASCII text.
func (l *Loader) Decode(data []byte) (*ModelData, error) {
	if len(data) < MinFileSize {
		return nil, fmt.Errorf("%w: %d < %d bytes", ErrFileTooSmall, len(data), MinFileSize)
	}
	if IsASCII(data) {
		return l.DecodeASCII(encoding.LossyUTF8(data))
	}
	return l.DecodeBinary(data)
}

// DecodeBinary decodes a binary STL document. The triangle count in the
// header is authoritative: bytes past the last record are ignored and a
// body shorter than count*50 bytes is a truncated record.
func (l *Loader) DecodeBinary(data []byte) (*ModelData, error) {
	if len(data) < MinFileSize {
		return nil, fmt.Errorf("%w: %d < %d bytes", ErrFileTooSmall, len(data), MinFileSize)
	}

	count, err := newRecordReader(data[HeaderSize:MinFileSize]).uint32()
	if err != nil {
		return nil, err
	}

	body := data[MinFileSize:]
	need := uint64(count) * BytesPerTriangle
	if uint64(len(body)) < need {
		return nil, fmt.Errorf("%w: header declares %d triangles (%d bytes), body has %d bytes",
			ErrTruncatedRecord, count, need, len(body))
	}
	if extra := uint64(len(body)) - need; extra > 0 {
		l.log.Debug("ignoring bytes after last triangle", zap.Uint64("bytes", extra))
	}
	body = body[:need]

	numWorkers, err := l.workerCount()
	if err != nil {
		return nil, err
	}
	parts := PlanPartitions(int(count), numWorkers)

	model, err := l.decodeParallel(parts, int(count), func(w *worker, p Partition) (*ModelData, error) {
		start, end := p.ByteRange()
		return w.runBinary(body[start:end])
	})
	if err != nil {
		return nil, err
	}

	model.Format = FormatBinary
	model.Name = strings.TrimSpace(encoding.TrimNullString(data[:HeaderSize]))
	return model, nil
}

// DecodeASCII decodes an ASCII STL document as a flat stream of floats in
// groups of twelve. Non-numeric tokens are skipped rather than validated.
func (l *Loader) DecodeASCII(text string) (*ModelData, error) {
	floats := parseFloats(text)
	numTriangles := len(floats) / FloatsPerTriangle

	numWorkers, err := l.workerCount()
	if err != nil {
		return nil, err
	}
	parts := PlanPartitions(numTriangles, numWorkers)
	last := len(parts) - 1

	model, err := l.decodeParallel(parts, numTriangles, func(w *worker, p Partition) (*ModelData, error) {
		start, end := p.FloatRange()
		if p.Index == last {
			// Leftover floats go to the last worker, which rejects them.
			end = len(floats)
		}
		return w.runASCII(floats[start:end])
	})
	if err != nil {
		return nil, err
	}

	model.Format = FormatASCII
	model.Name = solidName(text)
	return model, nil
}

// workerCount returns the number of decode workers for one call.
func (l *Loader) workerCount() (int, error) {
	n := l.numCPU()
	if n < 1 {
		return 0, fmt.Errorf("%w: runtime reported %d CPUs", ErrParallelism, n)
	}
	if l.opts.MaxWorkers > 0 && l.opts.MaxWorkers < n {
		n = l.opts.MaxWorkers
	}
	l.log.Debug("number of loaders", zap.Int("workers", n))
	return n, nil
}

// decodeFunc decodes partition p with worker w.
type decodeFunc func(w *worker, p Partition) (*ModelData, error)

// decodeParallel runs one worker per partition and waits for all of them
// before merging. Results are collected by partition index so the merge
// order never depends on scheduling.
func (l *Loader) decodeParallel(parts []Partition, numTriangles int, run decodeFunc) (*ModelData, error) {
	results := make([]*ModelData, len(parts))

	var g errgroup.Group
	for _, p := range parts {
		p := p // per-iteration copy; module targets go 1.21 (pre-1.22 loop semantics)
		w := newWorker(p.Index, p.Count, !l.opts.Unindexed)
		g.Go(func() error {
			res, err := run(w, p)
			if err != nil {
				return err
			}
			results[p.Index] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return mergeResults(results, numTriangles), nil
}

// mergeResults concatenates worker outputs in partition order, shifting
// each worker's local indices by the number of vertices already emitted.
func mergeResults(results []*ModelData, numTriangles int) *ModelData {
	merged := &ModelData{
		Vertices: make([]Vertex, 0, numTriangles/2),
		Indices:  make([]uint32, 0, numTriangles*3),
		Bounds:   NewModelBounds(),
	}

	var offset uint32
	for _, res := range results {
		merged.Vertices = append(merged.Vertices, res.Vertices...)
		for _, idx := range res.Indices {
			merged.Indices = append(merged.Indices, idx+offset)
		}
		merged.Bounds.Merge(res.Bounds)
		offset = uint32(len(merged.Vertices))
	}

	return merged
}
