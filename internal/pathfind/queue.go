package pathfind

import (
	"container/heap"

	"github.com/RemiF1908/pcd/internal/domain"
)

// NodeItem обертка для клетки в очереди приоритетов
type NodeItem struct {
	Value     domain.Coord // Клетка
	Priority  int          // Основной ключ. Чем меньше, тем раньше.
	Secondary int          // Ключ для равных Priority
	Seq       int          // Порядок вставки, чтобы порядок был детерминированным
	Index     int          // Индекс в куче
}

// NodeQueue реализует heap.Interface и хранит NodeItems
type NodeQueue []*NodeItem

func (pq NodeQueue) Len() int { return len(pq) }

func (pq NodeQueue) Less(i, j int) bool {
	// MinHeap: сначала Priority, потом Secondary, потом порядок вставки
	if pq[i].Priority != pq[j].Priority {
		return pq[i].Priority < pq[j].Priority
	}
	if pq[i].Secondary != pq[j].Secondary {
		return pq[i].Secondary < pq[j].Secondary
	}
	return pq[i].Seq < pq[j].Seq
}

func (pq NodeQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index = i
	pq[j].Index = j
}

func (pq *NodeQueue) Push(x interface{}) {
	n := len(*pq)
	item := x.(*NodeItem)
	item.Index = n
	*pq = append(*pq, item)
}

func (pq *NodeQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // избегаем утечки памяти
	item.Index = -1 // для безопасности
	*pq = old[0 : n-1]
	return item
}

// frontier - обертка над кучей, выдающая порядковые номера.
// Приоритеты не обновляются: устаревшие записи отсеивает закрытое множество.
type frontier struct {
	pq  NodeQueue
	seq int
}

func (f *frontier) push(c domain.Coord, priority, secondary int) {
	f.seq++
	heap.Push(&f.pq, &NodeItem{Value: c, Priority: priority, Secondary: secondary, Seq: f.seq})
}

func (f *frontier) pop() *NodeItem {
	return heap.Pop(&f.pq).(*NodeItem)
}

func (f *frontier) empty() bool { return f.pq.Len() == 0 }
