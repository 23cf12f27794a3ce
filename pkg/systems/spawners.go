package systems

import (
	"github.com/decker502/notagame/pkg/components"
	"github.com/decker502/notagame/pkg/ecs"
)

// ProjectileSpawner 投射物生成请求队列
//
// 动画系统、炸弹投放系统写入，ProjectileSpawnSystem 每个 update tick 整体取出。
type ProjectileSpawner struct {
	requests []components.ProjectileRequest
}

// NewProjectileSpawner 创建空的生成队列
func NewProjectileSpawner() *ProjectileSpawner {
	return &ProjectileSpawner{}
}

// Push 追加一条请求
func (s *ProjectileSpawner) Push(req components.ProjectileRequest) {
	s.requests = append(s.requests, req)
}

// Drain 按顺序取出全部请求
func (s *ProjectileSpawner) Drain() []components.ProjectileRequest {
	out := s.requests
	s.requests = nil
	return out
}

// Len 待处理的请求数
func (s *ProjectileSpawner) Len() int {
	return len(s.requests)
}

// ExplosionSpawner 待爆炸的实体集合
//
// 同一实体只会爆炸一次: 已生成过爆炸的实体记录在 spawned 中，
// 之后的请求被忽略。实体被删除后由 DeletionSystem 调用 Forget 移除记录，
// 实体ID不复用，删除后的请求会因组件缺失而跳过。
type ExplosionSpawner struct {
	toSpawn []ecs.EntityID
	queued  map[ecs.EntityID]struct{}
	spawned map[ecs.EntityID]struct{}
}

// NewExplosionSpawner 创建爆炸生成器
func NewExplosionSpawner() *ExplosionSpawner {
	return &ExplosionSpawner{
		queued:  make(map[ecs.EntityID]struct{}),
		spawned: make(map[ecs.EntityID]struct{}),
	}
}

// Request 请求在 id 处生成爆炸，重复请求只记录一次
func (s *ExplosionSpawner) Request(id ecs.EntityID) {
	if _, dup := s.queued[id]; dup {
		return
	}
	s.queued[id] = struct{}{}
	s.toSpawn = append(s.toSpawn, id)
}

// Drain 按请求顺序取出待生成的实体
func (s *ExplosionSpawner) Drain() []ecs.EntityID {
	out := s.toSpawn
	s.toSpawn = nil
	s.queued = make(map[ecs.EntityID]struct{})
	return out
}

// MarkSpawned 记录 id 已生成过爆炸，返回 false 表示此前已记录
func (s *ExplosionSpawner) MarkSpawned(id ecs.EntityID) bool {
	if _, ok := s.spawned[id]; ok {
		return false
	}
	s.spawned[id] = struct{}{}
	return true
}

// HasSpawned id 是否已生成过爆炸
func (s *ExplosionSpawner) HasSpawned(id ecs.EntityID) bool {
	_, ok := s.spawned[id]
	return ok
}

// Forget 移除已删除实体的爆炸记录
func (s *ExplosionSpawner) Forget(ids ...ecs.EntityID) {
	for _, id := range ids {
		delete(s.spawned, id)
	}
}

// Tracked 仍在记录中的已爆炸实体数量
func (s *ExplosionSpawner) Tracked() int {
	return len(s.spawned)
}

// Pending 待生成的数量
func (s *ExplosionSpawner) Pending() int {
	return len(s.toSpawn)
}
