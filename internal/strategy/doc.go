// Package strategy picks one backend out of a weighted candidate pool.
//
// WeightedRandom draws an integer uniformly from [1, total weight] and walks
// the pool subtracting weights until the remainder reaches zero, so each
// candidate is chosen with probability weight/total whatever the order of
// the pool. Candidates of weight 0 are never chosen.
package strategy
