// Package store holds the in-memory todo state. A Store is an explicitly
// owned value injected into the resolver graph, so tests construct isolated
// instances instead of sharing process globals.
//
// The reference behavior this service models is single-threaded and carries
// no locking; net/http serves requests concurrently, so every operation here
// takes the store mutex. That mutex is the only concurrency control in the
// system: multi-user isolation and transactions remain out of scope.
package store

import (
	"fmt"
	"strconv"
	"sync"
)

// Todo is a single todo item. Values returned by Store methods are copies;
// mutations go through the named operations only.
type Todo struct {
	ID       string
	Text     string
	Complete bool
}

// User is the owner of a todo sequence. The demo seeds exactly one, but
// nothing below assumes there can be only one.
type User struct {
	ID string
}

// TodoNotFoundError reports a mutation against a todo id that does not
// exist under the user.
type TodoNotFoundError struct {
	ID string
}

func (e *TodoNotFoundError) Error() string {
	return fmt.Sprintf("no todo with id %q", e.ID)
}

func (e *TodoNotFoundError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": "TODO_NOT_FOUND"}
}

// Store is the mutable in-memory state: one user and its ordered todos.
// Insertion order is semantically relevant; cursors are positions in it.
type Store struct {
	mu     sync.Mutex
	user   User
	todos  []*Todo
	nextID int
}

// DefaultUserID is the local id of the seeded singleton user.
const DefaultUserID = "me"

// New returns a store seeded with the demo user and two todos, one of them
// already complete.
func New() *Store {
	s := &Store{user: User{ID: DefaultUserID}}
	s.addLocked("Taste JavaScript", true)
	s.addLocked("Buy a unicorn", false)
	return s
}

func (s *Store) addLocked(text string, complete bool) *Todo {
	t := &Todo{ID: strconv.Itoa(s.nextID), Text: text, Complete: complete}
	s.nextID++
	s.todos = append(s.todos, t)
	return t
}

// User returns the user with the given local id, if present.
func (s *Store) User(localID string) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if localID != s.user.ID {
		return User{}, false
	}
	return s.user, true
}

// CurrentUser returns the singleton demo user.
func (s *Store) CurrentUser() User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Todo returns a copy of the todo with the given local id.
func (s *Store) Todo(id string) (Todo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.todos {
		if t.ID == id {
			return *t, true
		}
	}
	return Todo{}, false
}

// Todos returns a snapshot of the todo sequence in insertion order.
func (s *Store) Todos() []Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Todo, len(s.todos))
	for i, t := range s.todos {
		out[i] = *t
	}
	return out
}

// TotalCount returns the number of todos.
func (s *Store) TotalCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.todos)
}

// CompletedCount returns the number of completed todos.
func (s *Store) CompletedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.todos {
		if t.Complete {
			n++
		}
	}
	return n
}

// AddTodo appends a new incomplete todo and returns it together with its
// insertion-order position, under a single lock acquisition so the position
// cannot drift from a concurrent removal.
func (s *Store) AddTodo(text string) (Todo, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.addLocked(text, false)
	return *t, len(s.todos) - 1
}

// ChangeTodoStatus sets the complete flag of one todo.
func (s *Store) ChangeTodoStatus(id string, complete bool) (Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.todos {
		if t.ID == id {
			t.Complete = complete
			return *t, nil
		}
	}
	return Todo{}, &TodoNotFoundError{ID: id}
}

// RenameTodo sets the text of one todo.
func (s *Store) RenameTodo(id, text string) (Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.todos {
		if t.ID == id {
			t.Text = text
			return *t, nil
		}
	}
	return Todo{}, &TodoNotFoundError{ID: id}
}

// MarkAllTodos sets complete on every todo whose current value differs and
// returns copies of the changed subset.
func (s *Store) MarkAllTodos(complete bool) []Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	var changed []Todo
	for _, t := range s.todos {
		if t.Complete != complete {
			t.Complete = complete
			changed = append(changed, *t)
		}
	}
	return changed
}

// RemoveTodo deletes one todo and returns its id.
func (s *Store) RemoveTodo(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.todos {
		if t.ID == id {
			s.todos = append(s.todos[:i], s.todos[i+1:]...)
			return nil
		}
	}
	return &TodoNotFoundError{ID: id}
}

// RemoveCompletedTodos deletes every completed todo and returns their local
// ids in insertion order.
func (s *Store) RemoveCompletedTodos() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed []string
	kept := s.todos[:0]
	for _, t := range s.todos {
		if t.Complete {
			removed = append(removed, t.ID)
		} else {
			kept = append(kept, t)
		}
	}
	s.todos = kept
	return removed
}
