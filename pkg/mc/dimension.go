package mc

import "fmt"

// Dimension selects the world being generated.
type Dimension int

const (
	Nether    Dimension = -1
	Overworld Dimension = 0
	End       Dimension = 1
)

func (d Dimension) Valid() bool {
	return d == Nether || d == Overworld || d == End
}

func (d Dimension) String() string {
	switch d {
	case Nether:
		return "nether"
	case Overworld:
		return "overworld"
	case End:
		return "end"
	}
	return fmt.Sprintf("Dimension(%d)", int(d))
}

// ParseDimension accepts "overworld", "nether", "end" or their numeric ids.
func ParseDimension(s string) (Dimension, error) {
	switch s {
	case "overworld", "0":
		return Overworld, nil
	case "nether", "-1":
		return Nether, nil
	case "end", "1":
		return End, nil
	}
	return 0, fmt.Errorf("unknown dimension %q", s)
}
