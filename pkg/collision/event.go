package collision

import (
	"fmt"
	"log"

	"github.com/decker502/notagame/pkg/ecs"
)

// State 碰撞事件所处阶段
type State int

const (
	// StateUnchecked 粗检测命中，尚未提交查询
	StateUnchecked State = iota
	// StateIssued 查询已提交
	StateIssued
	// StatePending 至少轮询过一次，结果尚不可用
	StatePending
	// StateConfirmed 细检测确认碰撞
	StateConfirmed
	// StateRejected 细检测否定或超时
	StateRejected
)

func (s State) String() string {
	switch s {
	case StateUnchecked:
		return "unchecked"
	case StateIssued:
		return "issued"
	case StatePending:
		return "pending"
	case StateConfirmed:
		return "confirmed"
	case StateRejected:
		return "rejected"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Event 一对候选碰撞实体
//
// Query 只在 State 为 Issued 或 Pending 时有效，由事件独占，解决后释放一次。
type Event struct {
	A, B  Target
	State State
	Query QueryID
	Polls int
}

// Involves 事件是否由 a、b 两个实体组成（不区分顺序）
func (e *Event) Involves(a, b ecs.EntityID) bool {
	return (e.A.Entity == a && e.B.Entity == b) || (e.A.Entity == b && e.B.Entity == a)
}

func (e *Event) hasQuery() bool {
	return e.State == StateIssued || e.State == StatePending
}

// EntityChecker 判断实体是否仍然存在
type EntityChecker interface {
	Exists(id ecs.EntityID) bool
}

// PollResult 一轮轮询的统计
type PollResult struct {
	// Confirmed 本轮确认的事件（已移出队列）
	Confirmed []*Event
	Rejected  int
	TimedOut  int
	Dropped   int
}

// EventQueue 细检测事件队列
//
// 同一对实体（不分顺序）在队列中至多出现一次；已解决的事件立即移出。
type EventQueue struct {
	events       []*Event
	timeoutPolls int
}

// NewEventQueue 创建队列
//
// timeoutPolls 为查询最多等待的轮询次数，<= 0 表示永不超时。
func NewEventQueue(timeoutPolls int) *EventQueue {
	return &EventQueue{timeoutPolls: timeoutPolls}
}

// Has 队列中是否已有该实体对
func (q *EventQueue) Has(a, b ecs.EntityID) bool {
	for _, e := range q.events {
		if e.Involves(a, b) {
			return true
		}
	}
	return false
}

// Add 加入一个未检查的事件，实体对已存在时返回 false
func (q *EventQueue) Add(a, b Target) bool {
	if q.Has(a.Entity, b.Entity) {
		return false
	}
	q.events = append(q.events, &Event{A: a, B: b, State: StateUnchecked})
	return true
}

// Len 返回排队中的事件数量
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Events 返回队列快照
func (q *EventQueue) Events() []*Event {
	out := make([]*Event, len(q.events))
	copy(out, q.events)
	return out
}

// Issue 为所有未检查的事件提交查询
//
// 后端出错时立即返回，出错的事件及之后的事件保持未检查，下一帧重试。
func (q *EventQueue) Issue(backend QueryBackend) (int, error) {
	issued := 0
	for _, e := range q.events {
		if e.State != StateUnchecked {
			continue
		}
		id, err := backend.Issue(e.A, e.B)
		if err != nil {
			return issued, fmt.Errorf("entities %d/%d: %w", e.A.Entity, e.B.Entity, err)
		}
		e.Query = id
		e.State = StateIssued
		issued++
	}
	return issued, nil
}

// Poll 轮询所有已提交的查询
//
// 任一实体已被删除的事件直接丢弃；超过 timeoutPolls 仍未就绪的事件判定为未碰撞。
// 后端出错时立即返回，已处理的结果保留在返回值中。
func (q *EventQueue) Poll(backend QueryBackend, entities EntityChecker) (PollResult, error) {
	var result PollResult
	kept := q.events[:0]
	var pollErr error

	for i, e := range q.events {
		if pollErr != nil {
			kept = append(kept, q.events[i:]...)
			break
		}

		if !entities.Exists(e.A.Entity) || !entities.Exists(e.B.Entity) {
			q.release(backend, e)
			result.Dropped++
			continue
		}
		if !e.hasQuery() {
			kept = append(kept, e)
			continue
		}

		hit, ready, err := backend.Poll(e.Query)
		if err != nil {
			pollErr = fmt.Errorf("entities %d/%d: %w", e.A.Entity, e.B.Entity, err)
			kept = append(kept, e)
			continue
		}

		if !ready {
			e.State = StatePending
			e.Polls++
			if q.timeoutPolls > 0 && e.Polls >= q.timeoutPolls {
				log.Printf("[CollisionQueue] Warning: query for %d/%d unresolved after %d polls, rejecting",
					e.A.Entity, e.B.Entity, e.Polls)
				q.release(backend, e)
				e.State = StateRejected
				result.TimedOut++
				continue
			}
			kept = append(kept, e)
			continue
		}

		q.release(backend, e)
		if hit {
			e.State = StateConfirmed
			result.Confirmed = append(result.Confirmed, e)
		} else {
			e.State = StateRejected
			result.Rejected++
		}
	}

	// 清除被截断部分的指针，避免持有已解决的事件
	for i := len(kept); i < len(q.events); i++ {
		q.events[i] = nil
	}
	q.events = kept
	return result, pollErr
}

// ReleaseAll 释放所有未完成的查询并清空队列
func (q *EventQueue) ReleaseAll(backend QueryBackend) {
	for _, e := range q.events {
		q.release(backend, e)
	}
	q.events = nil
}

func (q *EventQueue) release(backend QueryBackend, e *Event) {
	if !e.hasQuery() {
		return
	}
	if err := backend.Release(e.Query); err != nil {
		log.Printf("[CollisionQueue] Warning: failed to release query %d: %v", e.Query, err)
	}
	e.Query = 0
}
