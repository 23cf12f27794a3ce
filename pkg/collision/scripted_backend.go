package collision

import "fmt"

// ScriptedBackend 结果与延迟可预测的查询后端，用于无头模拟与测试
//
// 查询在 Latency 次（至少一次）EndFrame 之后就绪；结果由 Outcome 决定，
// Outcome 为 nil 时使用 DefaultHit。
type ScriptedBackend struct {
	Latency    int
	DefaultHit bool
	Outcome    func(a, b Target) bool
	// FailIssue 非 nil 时 Issue 返回该错误，模拟后端故障
	FailIssue error

	frame   int
	nextID  QueryID
	queries map[QueryID]*scriptedQuery

	issued   int
	released int
}

type scriptedQuery struct {
	frame int
	hit   bool
}

// NewScriptedBackend 创建后端
func NewScriptedBackend(latency int, defaultHit bool) *ScriptedBackend {
	return &ScriptedBackend{
		Latency:    latency,
		DefaultHit: defaultHit,
		nextID:     1,
		queries:    make(map[QueryID]*scriptedQuery),
	}
}

// Issue 记录查询并立即决定结果
func (s *ScriptedBackend) Issue(a, b Target) (QueryID, error) {
	if s.FailIssue != nil {
		return 0, fmt.Errorf("failed to issue query: %w", s.FailIssue)
	}
	hit := s.DefaultHit
	if s.Outcome != nil {
		hit = s.Outcome(a, b)
	}

	id := s.nextID
	s.nextID++
	s.queries[id] = &scriptedQuery{frame: s.frame, hit: hit}
	s.issued++
	return id, nil
}

// Poll 经过 Latency 帧后返回结果
func (s *ScriptedBackend) Poll(id QueryID) (bool, bool, error) {
	q, err := s.lookup(id)
	if err != nil {
		return false, false, err
	}
	if s.frame-q.frame < max(s.Latency, 1) {
		return false, false, nil
	}
	return q.hit, true, nil
}

// Release 释放查询
func (s *ScriptedBackend) Release(id QueryID) error {
	if _, err := s.lookup(id); err != nil {
		return err
	}
	delete(s.queries, id)
	s.released++
	return nil
}

// EndFrame 推进一帧
func (s *ScriptedBackend) EndFrame() {
	s.frame++
}

// Outstanding 返回尚未释放的查询数量
func (s *ScriptedBackend) Outstanding() int {
	return len(s.queries)
}

// Stats 返回累计提交与释放的查询数量
func (s *ScriptedBackend) Stats() (issued, released int) {
	return s.issued, s.released
}

func (s *ScriptedBackend) lookup(id QueryID) (*scriptedQuery, error) {
	if id == 0 || id >= s.nextID {
		return nil, fmt.Errorf("query %d: %w", id, ErrUnknownQuery)
	}
	q, ok := s.queries[id]
	if !ok {
		return nil, fmt.Errorf("query %d: %w", id, ErrQueryReleased)
	}
	return q, nil
}
