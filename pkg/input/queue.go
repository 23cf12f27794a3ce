package input

// Queue 按到达顺序保存尚未处理的输入
//
// 由监听器写入，由 controller 阶段在每个 tick 开始时整体取出。
type Queue struct {
	items []Input
}

// NewQueue 创建空队列
func NewQueue() *Queue {
	return &Queue{}
}

// InsertReplace 若队列中已有同类型事件则原地替换，否则追加到末尾
//
// 用于只关心最新值的事件（如指针悬停），且保持与其他事件的相对顺序。
func (q *Queue) InsertReplace(in Input) {
	for i := range q.items {
		if q.items[i].Kind == in.Kind {
			q.items[i] = in
			return
		}
	}
	q.items = append(q.items, in)
}

// InsertAlways 总是追加到末尾
func (q *Queue) InsertAlways(in Input) {
	q.items = append(q.items, in)
}

// Drain 按顺序取出全部事件并清空队列
func (q *Queue) Drain() []Input {
	out := q.items
	q.items = nil
	return out
}

// Len 当前排队的事件数
func (q *Queue) Len() int {
	return len(q.items)
}
