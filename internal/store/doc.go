// Package store provides the persistence backends behind the controller's
// Store interface.
//
// Every backend assigns task ids, computes counts over the full task set and
// reports an update or removal of an unknown id as a StoreError wrapping
// errors.ErrTaskNotFound.
//
//   - [Memory] keeps tasks in process memory.
//   - [File] keeps a JSON document on disk, rewritten atomically and re-read
//     on every call so changes made by another process are seen.
//   - [SQL] keeps tasks in a "todos" table in SQLite or MySQL.
//
// [Open] selects a backend from configuration, and [Watch] reports external
// changes to a File store's document.
package store
