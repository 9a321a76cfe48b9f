package comment

import "github.com/eapache/queue"

// Queue holds pending comments in arrival order.
//
// A Queue is not safe for concurrent use. Callers that share one
// across goroutines must serialize access themselves.
type Queue struct {
	items *queue.Queue
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{items: queue.New()}
}

// AddComment appends a new comment at the tail of the queue.
func (q *Queue) AddComment(id int32, author, text string) {
	q.items.Add(Comment{ID: id, Author: author, Text: text})
}

// PopNextText removes the comment at the head of the queue and returns its text.
// The id and author of the removed comment are dropped.
// It returns false when the queue is empty.
func (q *Queue) PopNextText() (string, bool) {
	if q.items.Length() == 0 {
		return "", false
	}
	c := q.items.Remove().(Comment)
	return c.Text, true
}
