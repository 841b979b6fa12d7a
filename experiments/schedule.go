package experiments

// Schedule lowers epsilon by Step after every Every epochs, never below 0.
type Schedule struct {
	Start float64
	Step  float64
	Every int
}

// Next returns the epsilon to use after epoch has finished with epsilon.
func (s Schedule) Next(epoch int, epsilon float64) float64 {
	if s.Every <= 0 || (epoch+1)%s.Every != 0 {
		return epsilon
	}
	return max(0, epsilon-s.Step)
}
