// Package ui is the terminal front end of the console, built on Bubble Tea.
//
// Core abstractions:
//   - View: A screen or major UI region with its own model, update, view (Elm-style)
//   - Panel: A bounded region within a layout that hosts a View
//   - Layout: Arranges panels; ShellLayout puts the sidebar beside the content
//   - FocusManager: Tracks and rotates focus across panels
//   - ViewStack: Stack-based navigation (course list → editor)
//   - Overlay: Modal views (confirmations, notices, the file picker) with a dismiss key
//
// AppModel owns the sidebar shell and one view per page. Routes from the
// sidebar arrive as nav.NavigateMsg and select the page.
package ui
