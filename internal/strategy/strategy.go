package strategy

// Candidate is a backend eligible for the current draw.
type Candidate struct {
	Name   string
	Weight uint64
}

type Strategy interface {
	// Select returns the index of the chosen candidate, or false when the
	// pool has no positive weight.
	Select(candidates []Candidate) (int, bool)
}

// TotalWeight sums the weights of the pool.
func TotalWeight(candidates []Candidate) uint64 {
	var total uint64
	for _, c := range candidates {
		total += c.Weight
	}
	return total
}
