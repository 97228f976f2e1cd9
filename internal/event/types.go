package event

// Name identifies an intent. The set of valid names is closed; see Names.
type Name string

const (
	NameNewTodo         Name = "newTodo"
	NameItemRemove      Name = "itemRemove"
	NameRemoveCompleted Name = "removeCompleted"
	NameItemToggle      Name = "itemToggle"
	NameToggleAll       Name = "toggleAll"
	NameItemEdit        Name = "itemEdit"
	NameItemEditDone    Name = "itemEditDone"
	NameItemEditCancel  Name = "itemEditCancel"
)

// Names returns every valid intent name.
func Names() []Name {
	return []Name{
		NameNewTodo,
		NameItemRemove,
		NameRemoveCompleted,
		NameItemToggle,
		NameToggleAll,
		NameItemEdit,
		NameItemEditDone,
		NameItemEditCancel,
	}
}

// Valid reports whether n belongs to the closed set of intent names.
func (n Name) Valid() bool {
	for _, known := range Names() {
		if n == known {
			return true
		}
	}
	return false
}

// Event is implemented only by the intent types in this package.
type Event interface {
	// Name returns the intent's name, used to find its handler.
	Name() Name

	sealed()
}

// NewTodo carries the raw text of the new-todo field.
type NewTodo struct {
	Title string
}

// ItemRemove asks for a task to be deleted.
type ItemRemove struct {
	ID int
}

// RemoveCompleted asks for every completed task to be deleted.
type RemoveCompleted struct{}

// ItemToggle sets one task's completion flag.
type ItemToggle struct {
	ID        int
	Completed bool
}

// ToggleAll sets every task's completion flag.
type ToggleAll struct {
	Completed bool
}

// ItemEdit opens a task for editing.
type ItemEdit struct {
	ID int
}

// ItemEditDone commits an edited title. An empty title deletes the task.
type ItemEditDone struct {
	ID    int
	Title string
}

// ItemEditCancel abandons an edit, restoring the stored title.
type ItemEditCancel struct {
	ID int
}

func (NewTodo) Name() Name         { return NameNewTodo }
func (ItemRemove) Name() Name      { return NameItemRemove }
func (RemoveCompleted) Name() Name { return NameRemoveCompleted }
func (ItemToggle) Name() Name      { return NameItemToggle }
func (ToggleAll) Name() Name       { return NameToggleAll }
func (ItemEdit) Name() Name        { return NameItemEdit }
func (ItemEditDone) Name() Name    { return NameItemEditDone }
func (ItemEditCancel) Name() Name  { return NameItemEditCancel }

func (NewTodo) sealed()         {}
func (ItemRemove) sealed()      {}
func (RemoveCompleted) sealed() {}
func (ItemToggle) sealed()      {}
func (ToggleAll) sealed()       {}
func (ItemEdit) sealed()        {}
func (ItemEditDone) sealed()    {}
func (ItemEditCancel) sealed()  {}
