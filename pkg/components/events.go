package components

// EnemySelectEvent 请求把该角色设为当前控制对象，在 begin 阶段处理
type EnemySelectEvent struct{}

// EnemyDestroyEvent 请求销毁该角色，在 update 阶段处理
type EnemyDestroyEvent struct{}
