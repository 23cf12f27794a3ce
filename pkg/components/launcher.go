package components

// LauncherComponent 地面火箭发射台
//
// Launching 为 true 时播放发射动画，动画回绕时发射一枚火箭并复位。
type LauncherComponent struct {
	Side      LauncherSide
	Launching bool
	Sheet     *SpriteSheet
}
