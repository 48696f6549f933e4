package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A live cell survives with 2 or 3 live neighbors and dies otherwise.
A dead cell is born with exactly 3 live neighbors and stays dead otherwise.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	switch {
	case alive && neighbors < 2:
		return false // underpopulation
	case alive && neighbors > 3:
		return false // overpopulation
	case alive:
		return true
	case neighbors == 3:
		return true // birth
	}
	return alive
}
