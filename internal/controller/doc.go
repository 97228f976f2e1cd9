// Package controller mediates between a task Store and a View.
//
// The controller binds one handler for every intent in the event package.
// Each handler issues Store calls through a Scheduler and, when a call
// completes, sends render commands describing what changed. Handlers never
// read view state; the view never touches the Store.
//
// Store calls complete asynchronously. A Scheduler runs each call and
// delivers its completion exactly once on the loop that owns the
// controller, so completions never run concurrently with each other or
// with event handlers. Distinct calls carry no ordering guarantee.
//
// Store failures are logged and end the handler chain that issued the call.
// No render command is sent for a failed call.
package controller
