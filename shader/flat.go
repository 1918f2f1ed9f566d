package shader

import "github.com/gogpu/orrery/paint"

func flatFragment(_ *Fragment, m *Material, _ *Context) paint.RGBA {
	return m.Color
}
