package noise

// Value1 returns smoothly interpolated 1D value noise in [0, 1].
func Value1(seed uint32, x float32) float32 {
	ix, fx := cell(x)
	return clamp01(lerp(Hash(seed, ix, 0, 0), Hash(seed, ix+1, 0, 0), fade(fx)))
}

// Value2 returns smoothly interpolated 2D value noise in [0, 1].
func Value2(seed uint32, x, y float32) float32 {
	ix, fx := cell(x)
	iy, fy := cell(y)
	u, v := fade(fx), fade(fy)

	x0 := lerp(Hash(seed, ix, iy, 0), Hash(seed, ix+1, iy, 0), u)
	x1 := lerp(Hash(seed, ix, iy+1, 0), Hash(seed, ix+1, iy+1, 0), u)
	return clamp01(lerp(x0, x1, v))
}

// Value3 returns smoothly interpolated 3D value noise in [0, 1].
func Value3(seed uint32, x, y, z float32) float32 {
	ix, fx := cell(x)
	iy, fy := cell(y)
	iz, fz := cell(z)
	u, v, w := fade(fx), fade(fy), fade(fz)

	x00 := lerp(Hash(seed, ix, iy, iz), Hash(seed, ix+1, iy, iz), u)
	x10 := lerp(Hash(seed, ix, iy+1, iz), Hash(seed, ix+1, iy+1, iz), u)
	x01 := lerp(Hash(seed, ix, iy, iz+1), Hash(seed, ix+1, iy, iz+1), u)
	x11 := lerp(Hash(seed, ix, iy+1, iz+1), Hash(seed, ix+1, iy+1, iz+1), u)

	y0 := lerp(x00, x10, v)
	y1 := lerp(x01, x11, v)
	return clamp01(lerp(y0, y1, w))
}
