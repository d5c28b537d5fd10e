package matchmaker

import (
	"errors"
	"strings"
	"sync"

	"golang.org/x/exp/slices"
)

var ErrEmptyUser = errors.New("empty user")

// Queue is the ordered set of users waiting for an opponent.
type Queue struct {
	mu    sync.Mutex
	users []string
}

// Add appends user unless already waiting. It reports whether user was added.
func (q *Queue) Add(user string) (bool, error) {
	user = strings.TrimSpace(user)
	if user == "" {
		return false, ErrEmptyUser
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if slices.Contains(q.users, user) {
		return false, nil
	}
	q.users = append(q.users, user)
	return true, nil
}

// Remove drops the given users from the queue.
func (q *Queue) Remove(users ...string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	kept := q.users[:0]
	for _, u := range q.users {
		if !slices.Contains(users, u) {
			kept = append(kept, u)
		}
	}
	q.users = kept
}

func (q *Queue) Snapshot() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	return slices.Clone(q.users)
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.users)
}
