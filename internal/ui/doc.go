// Package ui contains the Bubble Tea program around the key handler engine.
// The Model only orchestrates messages; the engine state lives in
// internal/state and every key press is decided by internal/handlers.
//
// Message flow:
//   - Key presses are resolved against the keys.Map (text boxes swallow
//     printable keys) and dispatched to the handler owning the current
//     route. Afterwards the model takes any intent the press recorded and
//     runs it on the command bus, and triggers a reload when the press
//     asked for one or opened a new view.
//   - A backend.Watcher streams server data; each event is applied through
//     the dispatcher, which also ends the loading state of triggered
//     fetches.
//   - command.Result messages end the loading state of an intent, surface
//     errors in the status line and reload the current view.
//
// Rendering is deliberately thin: a tab bar, the breadcrumb of the
// navigation stack, the table behind the current route and whatever
// prompt, form, text box or detail pane is open on top of it.
package ui
