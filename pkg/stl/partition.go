package stl

// Partition is a contiguous range of triangles decoded by one worker.
type Partition struct {
	Index int // Position in the plan, also the merge order
	First int // First triangle of the range
	Count int // Number of triangles in the range
}

// ByteRange returns the partition's offsets into a binary triangle body.
func (p Partition) ByteRange() (start, end int) {
	return p.First * BytesPerTriangle, (p.First + p.Count) * BytesPerTriangle
}

// FloatRange returns the partition's offsets into an ASCII float stream.
func (p Partition) FloatRange() (start, end int) {
	return p.First * FloatsPerTriangle, (p.First + p.Count) * FloatsPerTriangle
}

// PlanPartitions splits numTriangles into numWorkers contiguous ranges.
// Each range gets numTriangles/numWorkers triangles and the last one also
// takes the remainder. Ranges may be empty; numWorkers below 1 is treated as 1.
func PlanPartitions(numTriangles, numWorkers int) []Partition {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if numTriangles < 0 {
		numTriangles = 0
	}

	perWorker := numTriangles / numWorkers
	remainder := numTriangles % numWorkers

	parts := make([]Partition, numWorkers)
	for i := range parts {
		parts[i] = Partition{
			Index: i,
			First: i * perWorker,
			Count: perWorker,
		}
	}
	parts[numWorkers-1].Count += remainder

	return parts
}
