package components

// HorizontalMovement 水平移动意图
type HorizontalMovement int

const (
	MovementNone HorizontalMovement = iota
	MovementLeft
	MovementRight
)

// Direction 角色朝向（以左下角为原点的坐标系）
type Direction int

const (
	DirectionRight Direction = iota
	DirectionLeft
)

func (d Direction) String() string {
	if d == DirectionLeft {
		return "left"
	}
	return "right"
}

// LauncherSide 发射台所在的一侧
type LauncherSide int

const (
	LauncherSideLeft LauncherSide = iota
	LauncherSideRight
)

func (s LauncherSide) String() string {
	if s == LauncherSideRight {
		return "right"
	}
	return "left"
}

// HidingState 躲藏状态机的阶段: 先下沉，到底后立即回升
type HidingState int

const (
	HidingDown HidingState = iota
	HidingUp
)

// Hiding 躲藏状态，StartY 为开始躲藏时的纵坐标
type Hiding struct {
	State  HidingState
	StartY float64
}

// Jump 跳跃状态
type Jump struct {
	Velocity        float64
	Acceleration    float64
	StartY          float64
	HasDoubleJumped bool
}

// NewJump 从 startY 起跳
func NewJump(startY, velocity, acceleration float64) *Jump {
	return &Jump{
		Velocity:     velocity,
		Acceleration: acceleration,
		StartY:       startY,
	}
}

// DoubleJump 以相同的起跳高度重新开始一次跳跃，并标记为二段跳
func (j *Jump) DoubleJump(velocity, acceleration float64) *Jump {
	next := NewJump(j.StartY, velocity, acceleration)
	next.HasDoubleJumped = true
	return next
}

// Attack 进行中的攻击，由动画结束时清除
type Attack struct {
	Kind EnemyKind
}

// Controller 角色控制器
//
// 四种角色共用同一结构，按 Kind 区分行为:
// 四号角色没有水平移动，改用 Side 选择发射台，且不能躲藏。
type Controller struct {
	Kind     EnemyKind
	Movement HorizontalMovement
	Facing   Direction
	Hiding   *Hiding
	Jump     *Jump
	Attack   *Attack
	Side     LauncherSide
}

// NewController 创建控制器
func NewController(kind EnemyKind, facing Direction) *Controller {
	return &Controller{
		Kind:   kind,
		Facing: facing,
		Side:   LauncherSideLeft,
	}
}

// CanHide 该种类是否可以躲藏
func (c *Controller) CanHide() bool {
	return c.Kind != EnemyKindFour
}

// HasHorizontalMovement 该种类是否接受水平移动输入
func (c *Controller) HasHorizontalMovement() bool {
	return c.Kind != EnemyKindFour
}

// IsHiding 是否处于任一躲藏阶段
func (c *Controller) IsHiding() bool {
	return c.Hiding != nil
}

// StopAttack 结束当前攻击
func (c *Controller) StopAttack() {
	c.Attack = nil
}

// Clear 清除全部瞬时状态（切换控制对象时调用），朝向与发射台选择保留
func (c *Controller) Clear() {
	if c.HasHorizontalMovement() {
		c.Movement = MovementNone
	}
	c.Hiding = nil
	c.Attack = nil
	c.Jump = nil
}

// ControllerUpdate 物理步进产生的控制器变更
//
// 指针为 nil 表示不修改；SetHiding/SetJump 为 true 时用对应值（可为 nil）覆盖。
type ControllerUpdate struct {
	Direction *Direction
	SetHiding bool
	Hiding    *Hiding
	SetJump   bool
	Jump      *Jump
}

// ApplyUpdate 应用一次变更
func (c *Controller) ApplyUpdate(u ControllerUpdate) {
	if u.Direction != nil {
		c.Facing = *u.Direction
	}
	if u.SetHiding {
		c.Hiding = u.Hiding
	}
	if u.SetJump {
		c.Jump = u.Jump
	}
}

// ActiveControllerComponent 标记当前接收输入的角色，同一时刻至多一个
type ActiveControllerComponent struct{}
