package emoji

import "github.com/emirpasic/gods/lists/arraylist"

// PendingRegistration is a registration submitted to an engine before it
// has been initialized.
type PendingRegistration struct {
	Name    string
	Texture Texture
}

// pendingQueue buffers registrations in order of submission.
type pendingQueue struct {
	list *arraylist.List
}

func newPendingQueue() *pendingQueue {
	return &pendingQueue{list: arraylist.New()}
}

func (q *pendingQueue) push(name string, tex Texture) {
	q.list.Add(PendingRegistration{Name: name, Texture: tex})
}

// pop removes and returns the oldest registration.
func (q *pendingQueue) pop() (PendingRegistration, bool) {
	v, ok := q.list.Get(0)
	if !ok {
		return PendingRegistration{}, false
	}
	q.list.Remove(0)
	return v.(PendingRegistration), true
}

// items returns a copy of the queued registrations, oldest first.
func (q *pendingQueue) items() []PendingRegistration {
	values := q.list.Values()
	items := make([]PendingRegistration, len(values))
	for i, v := range values {
		items[i] = v.(PendingRegistration)
	}
	return items
}

func (q *pendingQueue) Len() int {
	return q.list.Size()
}

func (q *pendingQueue) clear() {
	q.list.Clear()
}
