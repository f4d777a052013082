package recycler

// BucketStats are the counters of one bucket.
type BucketStats struct {
	Idle      int    `json:"idle"`
	Hits      uint64 `json:"hits"`
	Misses    uint64 `json:"misses"`
	Collected uint64 `json:"collected"`
	Prewarmed uint64 `json:"prewarmed"`
	Dropped   uint64 `json:"dropped"`
}

// HitRate returns hits / (hits + misses), or 0 with no traffic.
func (b BucketStats) HitRate() float64 {
	total := b.Hits + b.Misses
	if total == 0 {
		return 0
	}
	return float64(b.Hits) / float64(total)
}

// Stats is a point-in-time snapshot of a Pool.
type Stats struct {
	Idle    int                    `json:"idle"`
	Hits    uint64                 `json:"hits"`
	Misses  uint64                 `json:"misses"`
	Buckets map[string]BucketStats `json:"buckets"`
}

// HitRate returns the overall hit rate.
func (s Stats) HitRate() float64 {
	return BucketStats{Hits: s.Hits, Misses: s.Misses}.HitRate()
}

// Stats returns a snapshot of every bucket that has seen traffic.
func (p *Pool) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := Stats{Buckets: make(map[string]BucketStats, len(p.counts))}
	for key, c := range p.counts {
		b := *c
		b.Idle = len(p.buckets[key])
		s.Buckets[key] = b
		s.Idle += b.Idle
		s.Hits += b.Hits
		s.Misses += b.Misses
	}
	return s
}
