package ripshuffle

// bucket describes one contiguous region of the slice being partitioned.
// The region [begin, end) splits into a placed prefix [begin, begin+placed)
// of items already drawn i.i.d. uniform for this bucket, and a staging suffix
// [begin+placed, end) of items not yet assigned anywhere. Buckets never own
// data; they are offsets into the shared slice, which keeps neighbor moves
// free of aliasing tricks.
type bucket struct {
	begin  int
	end    int
	placed int
}

func (b *bucket) len() int {
	return b.end - b.begin
}

// staged returns the number of not-yet-assigned items in the region.
func (b *bucket) staged() int {
	return b.len() - b.placed
}

// head returns the absolute index of the first staged item.
func (b *bucket) head() int {
	return b.begin + b.placed
}

func (b *bucket) fullyPlaced() bool {
	return b.placed == b.len()
}

// splitIntoBuckets divides [0, n) into k contiguous regions whose lengths
// differ by at most one.
func splitIntoBuckets(n, k int) []bucket {
	bs := make([]bucket, k)
	for i := range bs {
		bs[i].begin = i * n / k
		bs[i].end = (i + 1) * n / k
	}
	return bs
}

// shedRight moves the boundary between b and its right neighbor rhs left by
// num positions, so b loses num staged items to rhs. The placed prefixes of
// both buckets are preserved by swapping the transferred positions with the
// tail of rhs's placed prefix.
//
// Precondition: num <= b.staged() and rhs starts at b.end.
func shedRight[T any](data []T, b, rhs *bucket, num int) {
	toMove := min(rhs.placed, num)
	left := data[b.end-num : b.end-num+toMove]
	right := data[rhs.begin+rhs.placed-toMove : rhs.begin+rhs.placed]
	swapRanges(left, right)

	b.end -= num
	rhs.begin -= num
}

// takeRight moves the boundary between b and its right neighbor rhs right by
// num positions, so b absorbs num staged items from rhs.
//
// Precondition: num <= rhs.staged() and rhs starts at b.end.
func takeRight[T any](data []T, b, rhs *bucket, num int) {
	b.end += num
	rhs.begin += num

	toMove := min(rhs.placed, num)
	left := data[b.end-num : b.end-num+toMove]
	right := data[rhs.begin+rhs.placed-toMove : rhs.begin+rhs.placed]
	swapRanges(left, right)
}

// mergeNeighbors combines two adjacent buckets into one while keeping the
// placed-prefix invariant, by swapping the left staging area against the tail
// of the right placed prefix.
func mergeNeighbors[T any](data []T, left, right bucket) bucket {
	n := min(left.staged(), right.placed)
	swapRanges(
		data[left.head():left.head()+n],
		data[right.begin+right.placed-n:right.begin+right.placed],
	)
	return bucket{
		begin:  left.begin,
		end:    right.end,
		placed: left.placed + right.placed,
	}
}

// compactResiduals block-swaps every bucket's staging suffix into the tail of
// the last bucket, forming one contiguous run of all staged items, and
// returns its length. Placed counters are left untouched, so a second call
// with the same buckets exactly undoes the first.
//
// Precondition: the total number of staged items fits the last bucket.
func compactResiduals[T any](data []T, bs []bucket) int {
	last := &bs[len(bs)-1]
	accepted := last.staged()

	for i := len(bs) - 2; i >= 0; i-- {
		b := &bs[i]
		s := b.staged()
		if s == 0 {
			continue
		}
		dstEnd := last.end - accepted
		swapRanges(data[b.head():b.end], data[dstEnd-s:dstEnd])
		accepted += s
	}

	return accepted
}
