package eviction

// fifoPolicy evicts the oldest-created candidate, regardless of access.
type fifoPolicy struct{}

// SelectVictim implements Policy. It keeps a running "oldest so far" and
// only replaces it on a strictly older CreationTime, so a tie keeps
// whichever candidate was encountered first — the sampler's order is the
// tie-break.
func (fifoPolicy) SelectVictim(candidates []Candidate) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.CreationTime.Before(best.CreationTime) {
			best = c
		}
	}
	return best.Key, true
}
