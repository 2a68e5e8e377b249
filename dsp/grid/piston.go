package grid

// Piston returns the mean of g over the valid samples of m.
// An empty mask has zero piston.
func Piston(g *Grid, m *Mask) (float64, error) {
	if err := SameShape(g, m); err != nil {
		return 0, err
	}

	var sum float64
	n := 0
	for i, v := range m.Data {
		if v {
			sum += g.Data[i]
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}

	return sum / float64(n), nil
}

// RemovePiston writes src minus its piston over m into dst and returns the
// removed piston. Samples outside m are shifted too but not zeroed.
// dst may alias src.
func RemovePiston(dst, src *Grid, m *Mask) (float64, error) {
	if err := SameShape(src, dst, m); err != nil {
		return 0, err
	}

	p, err := Piston(src, m)
	if err != nil {
		return 0, err
	}
	for i, v := range src.Data {
		dst.Data[i] = v - p
	}

	return p, nil
}

// RemovePistonMasked is RemovePiston followed by zeroing samples outside m.
func RemovePistonMasked(dst, src *Grid, m *Mask) (float64, error) {
	p, err := RemovePiston(dst, src, m)
	if err != nil {
		return 0, err
	}

	return p, m.Apply(dst)
}
