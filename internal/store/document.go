package store

import (
	"strings"

	apperrors "github.com/Iron-Ham/todomvc/internal/errors"
	"github.com/Iron-Ham/todomvc/internal/todo"
)

// document is the full contents of a Memory or File store.
type document struct {
	NextID int         `json:"next_id"`
	Tasks  []todo.Task `json:"todos"`
}

func newDocument(tasks []todo.Task) *document {
	doc := &document{NextID: 1, Tasks: make([]todo.Task, 0, len(tasks))}
	for _, t := range tasks {
		doc.Tasks = append(doc.Tasks, t)
		if t.ID >= doc.NextID {
			doc.NextID = t.ID + 1
		}
	}
	return doc
}

// normalize repairs a decoded document: a missing or stale next id is moved
// past the largest task id.
func (d *document) normalize() {
	if d.NextID < 1 {
		d.NextID = 1
	}
	for _, t := range d.Tasks {
		if t.ID >= d.NextID {
			d.NextID = t.ID + 1
		}
	}
	if d.Tasks == nil {
		d.Tasks = []todo.Task{}
	}
}

func (d *document) read(q todo.Query) []todo.Task {
	return q.Select(d.Tasks)
}

func (d *document) count() todo.Counts {
	return todo.CountTasks(d.Tasks)
}

func (d *document) create(title string) todo.Task {
	t := todo.Task{ID: d.NextID, Title: title}
	d.NextID++
	d.Tasks = append(d.Tasks, t)
	return t
}

func (d *document) index(id int) int {
	for i, t := range d.Tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (d *document) update(id int, p todo.Patch) bool {
	i := d.index(id)
	if i < 0 {
		return false
	}
	d.Tasks[i] = p.Apply(d.Tasks[i])
	return true
}

func (d *document) remove(id int) bool {
	i := d.index(id)
	if i < 0 {
		return false
	}
	d.Tasks = append(d.Tasks[:i], d.Tasks[i+1:]...)
	return true
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return apperrors.NewValidationError("title must not be empty").WithField("title").WithValue(title)
	}
	return nil
}

func notFound(op, driver string, id int) error {
	return apperrors.NewStoreError(op, apperrors.TaskNotFound(id)).WithTaskID(id).WithDriver(driver)
}
