package flock

// Wrap teleports the agent to the opposite face on every axis it left the bounds through.
// Velocity is untouched. Inverted bounds disable wrapping.
func (a *Agent) Wrap() {
	if !a.bounds.Valid() {
		return
	}
	for i := 0; i < 3; i++ {
		if a.Position[i] > a.bounds.End[i] {
			a.Position[i] = a.bounds.Start[i]
		} else if a.Position[i] < a.bounds.Start[i] {
			a.Position[i] = a.bounds.End[i]
		}
	}
}
