package groups

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Partition splits options into contiguous buckets by group key. It does not
// sort: a key that reappears after another key starts a second bucket and
// duplicated is set.
func Partition[V any, K comparable](options []V, groupBy func(V) K) (buckets []Bucket[V, K], duplicated bool) {
	buckets, summary := PartitionWithSummary(options, groupBy)
	return buckets, len(summary.Duplicated) > 0
}

// PartitionWithSummary is Partition plus the key layout used for reporting
func PartitionWithSummary[V any, K comparable](options []V, groupBy func(V) K) ([]Bucket[V, K], Summary[K]) {
	var buckets []Bucket[V, K]
	// key -> number of buckets started for it
	seen := orderedmap.New[K, int]()

	for i, option := range options {
		key := groupBy(option)
		if n := len(buckets); n > 0 && buckets[n-1].Key == key {
			buckets[n-1].Options = append(buckets[n-1].Options, option)
			continue
		}

		count, _ := seen.Get(key)
		seen.Set(key, count+1)
		buckets = append(buckets, Bucket[V, K]{Key: key, Index: i, Options: []V{option}})
	}

	var summary Summary[K]
	for pair := seen.Oldest(); pair != nil; pair = pair.Next() {
		summary.Keys = append(summary.Keys, pair.Key)
		if pair.Value > 1 {
			summary.Duplicated = append(summary.Duplicated, pair.Key)
		}
	}
	return buckets, summary
}

// Flatten returns the options of all buckets in order
func Flatten[V any, K comparable](buckets []Bucket[V, K]) []V {
	var out []V
	for _, b := range buckets {
		out = append(out, b.Options...)
	}
	return out
}
