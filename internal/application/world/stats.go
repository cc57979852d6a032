package world

// Stats accumulates per-session pickups and score. A fresh Stats is
// created on every world reset.
type Stats struct {
	Coins int
	Score int
}

// AddCoin counts a collected coin
func (s *Stats) AddCoin() {
	s.Coins++
}

// AddScore adds defeated-enemy score
func (s *Stats) AddScore(n int) {
	s.Score += n
}
