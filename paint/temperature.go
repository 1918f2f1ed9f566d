package paint

// Temperature maps a normalized star temperature to an emission color:
// 0 is deep red-orange, 0.5 is yellow, 1 is white with a blue tint.
func Temperature(t float32) RGBA {
	t = clamp01(t)
	if t < 0.5 {
		k := t / 0.5
		return RGB(1, 0.2+(1-0.2)*k, 0)
	}
	k := (t - 0.5) / 0.5
	return RGB(1, 1, 0.3*k)
}
