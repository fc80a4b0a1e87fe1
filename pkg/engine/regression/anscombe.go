package regression

// Dataset is a named paired sample
type Dataset struct {
	Name string    `json:"name" yaml:"name"`
	X    []float64 `json:"x" yaml:"x"`
	Y    []float64 `json:"y" yaml:"y"`
}

var (
	anscombeX = []float64{10, 8, 13, 9, 11, 14, 6, 4, 12, 7, 5}
	anscombe  = []Dataset{
		{Name: "I", X: anscombeX, Y: []float64{8.04, 6.95, 7.58, 8.81, 8.33, 9.96, 7.24, 4.26, 10.84, 4.82, 5.68}},
		{Name: "II", X: anscombeX, Y: []float64{9.14, 8.14, 8.74, 8.77, 9.26, 8.10, 6.13, 3.10, 9.13, 7.26, 4.74}},
		{Name: "III", X: anscombeX, Y: []float64{7.46, 6.77, 12.74, 7.11, 7.81, 8.84, 6.08, 5.39, 8.15, 6.42, 5.73}},
		{Name: "IV", X: []float64{8, 8, 8, 8, 8, 8, 8, 19, 8, 8, 8}, Y: []float64{6.58, 5.76, 7.71, 8.84, 8.47, 7.04, 5.25, 12.50, 5.56, 7.91, 6.89}},
	}
)

// AnscombeQuartet returns fresh copies of Anscombe's four datasets, which
// share means, variances, correlation and regression line while looking
// nothing alike.
func AnscombeQuartet() []Dataset {
	out := make([]Dataset, len(anscombe))
	for i, d := range anscombe {
		out[i] = Dataset{
			Name: d.Name,
			X:    append([]float64(nil), d.X...),
			Y:    append([]float64(nil), d.Y...),
		}
	}
	return out
}
