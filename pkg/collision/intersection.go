// Package collision 实现两阶段碰撞检测：
// 粗检测使用分离轴定理判断两个任意旋转的矩形是否重叠，
// 细检测把候选对交给 QueryBackend 做逐像素确认，结果可能在若干帧后才可用。
package collision

// 顶点数组布局: [ltX, ltY, lbX, lbY, rtX, rtY, rbX, rbY]
const (
	ltX, ltY = 0, 1
	rtX, rtY = 4, 5
	rbX, rbY = 6, 7
)

// Intersects 判断两个矩形是否相交
//
// 矩形的对边平行，因此每个矩形只需两条边方向作为候选分离轴。
// 退化（零面积）的矩形不会产生分离轴，按投影区间正常比较。
func Intersects(a, b [8]float64) bool {
	axes := [4][2]float64{
		{a[rtX] - a[ltX], a[rtY] - a[ltY]},
		{a[rtX] - a[rbX], a[rtY] - a[rbY]},
		{b[rtX] - b[ltX], b[rtY] - b[ltY]},
		{b[rtX] - b[rbX], b[rtY] - b[rbY]},
	}

	for _, axis := range axes {
		aMin, aMax := project(&a, axis)
		bMin, bMax := project(&b, axis)
		if aMax < bMin || aMin > bMax {
			return false
		}
	}
	return true
}

func project(v *[8]float64, axis [2]float64) (lo, hi float64) {
	lo = v[0]*axis[0] + v[1]*axis[1]
	hi = lo
	for i := 2; i < 8; i += 2 {
		p := v[i]*axis[0] + v[i+1]*axis[1]
		lo = min(lo, p)
		hi = max(hi, p)
	}
	return lo, hi
}
