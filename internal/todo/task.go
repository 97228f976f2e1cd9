// Package todo defines the task records held by a store and the values
// derived from them: query and patch shapes, completion counts, and the
// list filter selected by the current route.
package todo

// Task is a single persisted to-do record.
// ID is assigned by the store and never changes once assigned.
type Task struct {
	ID        int    `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// Query selects tasks from a store. The zero value selects every task.
type Query struct {
	ID        *int
	Completed *bool
}

// All is the unfiltered query.
func All() Query { return Query{} }

// ByID selects the task with the given id.
func ByID(id int) Query { return Query{ID: &id} }

// ByCompleted selects tasks whose completion flag equals completed.
func ByCompleted(completed bool) Query { return Query{Completed: &completed} }

// IsAll reports whether the query selects every task.
func (q Query) IsAll() bool {
	return q.ID == nil && q.Completed == nil
}

// Matches reports whether t satisfies every field set on the query.
func (q Query) Matches(t Task) bool {
	if q.ID != nil && *q.ID != t.ID {
		return false
	}
	if q.Completed != nil && *q.Completed != t.Completed {
		return false
	}
	return true
}

// Select returns the tasks matching q, preserving order.
func (q Query) Select(tasks []Task) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if q.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// Patch is a partial update of a task. Nil fields are left unchanged.
type Patch struct {
	Title     *string
	Completed *bool
}

// SetTitle returns a patch that replaces the title.
func SetTitle(title string) Patch { return Patch{Title: &title} }

// SetCompleted returns a patch that replaces the completion flag.
func SetCompleted(completed bool) Patch { return Patch{Completed: &completed} }

// Apply returns t with the patch applied.
func (p Patch) Apply(t Task) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	return t
}

// Counts summarises a full, unfiltered task set.
// Active+Completed always equals Total.
type Counts struct {
	Active    int `json:"active" yaml:"active"`
	Completed int `json:"completed" yaml:"completed"`
	Total     int `json:"total" yaml:"total"`
}

// CountTasks computes Counts over tasks. Callers must pass the unfiltered set.
func CountTasks(tasks []Task) Counts {
	var c Counts
	for _, t := range tasks {
		if t.Completed {
			c.Completed++
		} else {
			c.Active++
		}
	}
	c.Total = len(tasks)
	return c
}

// AllCompleted reports whether there is at least one task and none are active.
func (c Counts) AllCompleted() bool {
	return c.Total > 0 && c.Active == 0
}
