package rules

// Role describes why a cell is alive in the next generation
type Role uint8

const (
	// None means the cell is dead in the next generation and is not painted
	None Role = iota
	// Survive marks a live cell that stays alive
	Survive
	// Birth marks a dead cell that comes alive
	Birth
)

func (r Role) String() string {
	switch r {
	case Survive:
		return "survive"
	case Birth:
		return "birth"
	default:
		return "none"
	}
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Transition returns the next state of a cell together with the role it plays in the frame
func Transition(neighbors int, alive bool) (bool, Role) {
	if !ApplyConwayRules(neighbors, alive) {
		return false, None
	}
	if alive {
		return true, Survive
	}
	return true, Birth
}
