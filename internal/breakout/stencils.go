package breakout

// stencil is a fixed pixel formation. true cells hold a brick.
type stencil struct {
	cols, rows int
	cells      [][]bool
}

// parseStencil builds a stencil from an ASCII map.
// '#' marks a brick, anything else is empty. Short lines are padded.
func parseStencil(lines []string) stencil {
	s := stencil{rows: len(lines)}
	for _, line := range lines {
		s.cols = max(s.cols, len(line))
	}
	s.cells = make([][]bool, len(lines))
	for row, line := range lines {
		s.cells[row] = make([]bool, s.cols)
		for col := range len(line) {
			s.cells[row][col] = line[col] == '#'
		}
	}
	return s
}

// count returns the number of brick cells.
func (s stencil) count() int {
	n := 0
	for _, row := range s.cells {
		for _, on := range row {
			if on {
				n++
			}
		}
	}
	return n
}

var (
	invaderStencil = parseStencil([]string{
		"..#.....#..",
		"...#...#...",
		"..#######..",
		".##.###.##.",
		"###########",
		"#.#.....#.#",
	})

	heartStencil = parseStencil([]string{
		".##...##.",
		"####.####",
		"#########",
		".#######.",
		"..#####..",
		"...###...",
	})

	mazeStencil = parseStencil([]string{
		"#############",
		"#.....#.....#",
		"#.###.#.###.#",
		"#.#.......#.#",
		"#.#.#####.#.#",
		"###########.#",
	})

	bossStencil = parseStencil([]string{
		"#.....#",
		".#...#.",
		"#######",
		"##.#.##",
		"#######",
		"#.###.#",
		"#.....#",
		".##.##.",
	})
)
