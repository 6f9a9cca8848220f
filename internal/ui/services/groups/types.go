package groups

// Bucket is a run of consecutive options sharing one group key. Index is the
// position of the first option in the flat filtered sequence.
type Bucket[V any, K comparable] struct {
	Key     K
	Index   int
	Options []V
}

// Summary describes how group keys were laid out in one partition
type Summary[K comparable] struct {
	// Keys in the order they were first seen
	Keys []K
	// Keys that started more than one bucket, in first-seen order
	Duplicated []K
}
