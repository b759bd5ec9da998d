package domain

import "fmt"

// Area is a rectangle in tablet coordinates, given as its top-left and
// bottom-right corners in the order xsetwacom uses.
type Area struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Args returns the four corner values as command arguments
func (a Area) Args() []string {
	return []string{
		fmt.Sprint(a.X1),
		fmt.Sprint(a.Y1),
		fmt.Sprint(a.X2),
		fmt.Sprint(a.Y2),
	}
}

func (a Area) String() string {
	return fmt.Sprintf("%d %d %d %d", a.X1, a.Y1, a.X2, a.Y2)
}
