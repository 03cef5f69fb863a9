// Package ui contains the Bubble Tea program that renders a documentation
// site: a navigation sidebar, the current page and its table of contents.
// The Model type focuses on message orchestration while the sidebar itself is
// a plain view model (internal/nav) driven by dedicated controllers.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a
//     focused function.
//   - Key presses are translated to logical keys and offered to the
//     document-level keynav.Dispatcher first. Only keys no listener handled
//     fall through to the default behavior of the focus holder: typing into a
//     search field, following a link on Enter, or scrolling the page.
//   - Mouse presses on the column handle start a resize drag; presses inside
//     the sidebar toggle sections or open pages.
//
// Page lifecycle:
//   - Opening a page emits pageTransitionMsg. Its handler tears down the
//     keyboard controller and resets the resize attach guard, then loads the
//     page through the command bus (internal/ui/command).
//   - pageLoadedMsg swaps in the new content and runs bootstrap, which builds
//     both sidebar variants (desktop and mobile), attaches a search filter to
//     each, attaches the resize controller and initialises keyboard
//     navigation on the variant matching the current layout.
//
// Backend interactions:
//   - A backend.Watcher polls the site file. A reload replaces the site and
//     re-runs the page transition so the sidebars are rebuilt from fresh
//     entries.
package ui
