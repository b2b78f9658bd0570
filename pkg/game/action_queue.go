package game

import "sort"

// ScheduledAction 在指定 tick 执行的延迟动作
type ScheduledAction struct {
	Deadline int
	Name     string
	Run      func()

	seq int
}

// ActionQueue 按 tick 截止时间排序的延迟动作队列
// 同一截止时间的动作按加入顺序执行
type ActionQueue struct {
	items []ScheduledAction
	seq   int
}

// NewActionQueue 创建空队列
func NewActionQueue() *ActionQueue {
	return &ActionQueue{}
}

// Schedule 加入一个在 deadline tick 执行的动作
func (q *ActionQueue) Schedule(deadline int, name string, run func()) {
	q.seq++
	a := ScheduledAction{Deadline: deadline, Name: name, Run: run, seq: q.seq}
	i := sort.Search(len(q.items), func(i int) bool {
		it := q.items[i]
		return it.Deadline > a.Deadline || (it.Deadline == a.Deadline && it.seq > a.seq)
	})
	q.items = append(q.items, ScheduledAction{})
	copy(q.items[i+1:], q.items[i:])
	q.items[i] = a
}

// Drain 执行所有截止时间不晚于 now 的动作，返回执行数量
// 执行过程中新加入的到期动作留到下一次 Drain
func (q *ActionQueue) Drain(now int) int {
	n := 0
	for n < len(q.items) && q.items[n].Deadline <= now {
		n++
	}
	if n == 0 {
		return 0
	}
	due := make([]ScheduledAction, n)
	copy(due, q.items[:n])
	q.items = append(q.items[:0], q.items[n:]...)

	for _, a := range due {
		if a.Run != nil {
			a.Run()
		}
	}
	return n
}

// Len 待执行的动作数量
func (q *ActionQueue) Len() int {
	return len(q.items)
}

// Clear 清空队列
func (q *ActionQueue) Clear() {
	q.items = q.items[:0]
}
