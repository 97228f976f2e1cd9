// Package event defines the closed vocabulary of user intents a view emits,
// and the registry a view uses to route each intent to its handler.
//
// Views know nothing about tasks or stores. They translate input (key
// presses, command-line arguments) into one of the intents below and hand it
// to the [Registry]; the controller binds one handler per intent.
//
// # Intents
//
//   - [NewTodo]: a title was entered in the new-todo field
//   - [ItemRemove]: the destroy control of a task was used
//   - [RemoveCompleted]: the clear-completed control was used
//   - [ItemToggle]: a task's completion checkbox changed
//   - [ToggleAll]: the toggle-all checkbox changed
//   - [ItemEdit]: a task entered edit mode
//   - [ItemEditDone]: an edit was committed
//   - [ItemEditCancel]: an edit was abandoned
//
// # Binding
//
// A [Registry] holds exactly one handler per [Name]. Binding a name twice
// replaces the earlier handler; handlers never stack. Binding a name outside
// [Names] panics.
//
//	var reg event.Registry
//	reg.Bind(event.NameNewTodo, event.Handle(func(e event.NewTodo) {
//	    fmt.Println("new todo:", e.Title)
//	}))
//	reg.Trigger(event.NewTodo{Title: "buy milk"})
//
// # Thread Safety
//
// [Registry] is safe for concurrent use. Handlers run on the caller's
// goroutine and a panicking handler is recovered and logged.
package event
