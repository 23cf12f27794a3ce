package systems

import (
	"log"

	"github.com/decker502/notagame/pkg/collision"
	"github.com/decker502/notagame/pkg/ecs"
)

// NarrowPhaseSystem 逐像素碰撞确认
//
// draw 阶段为未检查的事件提交查询，update 阶段非阻塞地轮询结果；
// 确认碰撞的双方交给爆炸生成器。
type NarrowPhaseSystem struct {
	entityManager *ecs.EntityManager
	queue         *collision.EventQueue
	backend       collision.QueryBackend
	explosions    *ExplosionSpawner
	confirmed     int
}

// NewNarrowPhaseSystem 创建细检测系统
func NewNarrowPhaseSystem(em *ecs.EntityManager, queue *collision.EventQueue, backend collision.QueryBackend, explosions *ExplosionSpawner) *NarrowPhaseSystem {
	return &NarrowPhaseSystem{
		entityManager: em,
		queue:         queue,
		backend:       backend,
		explosions:    explosions,
	}
}

// Issue 提交查询（draw 阶段）
//
// 后端出错时返回错误，调用方应放弃本帧剩余的绘制。
func (s *NarrowPhaseSystem) Issue() error {
	if _, err := s.queue.Issue(s.backend); err != nil {
		log.Printf("[NarrowPhaseSystem] Failed to issue collision query: %v", err)
		return err
	}
	return nil
}

// Poll 轮询已提交的查询（update 阶段）
func (s *NarrowPhaseSystem) Poll() {
	result, err := s.queue.Poll(s.backend, s.entityManager)
	if err != nil {
		log.Printf("[NarrowPhaseSystem] Failed to poll collision query: %v", err)
	}

	for _, e := range result.Confirmed {
		log.Printf("[NarrowPhaseSystem] Collision confirmed: %d <-> %d", e.A.Entity, e.B.Entity)
		s.explosions.Request(e.A.Entity)
		s.explosions.Request(e.B.Entity)
		s.confirmed++
	}
}

// Confirmed 累计确认的碰撞数量
func (s *NarrowPhaseSystem) Confirmed() int {
	return s.confirmed
}

// Release 释放全部未完成的查询（场景销毁时调用）
func (s *NarrowPhaseSystem) Release() {
	s.queue.ReleaseAll(s.backend)
}
