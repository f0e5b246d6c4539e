// Package cli provides the terminal user interface for clientdir.
//
// The package uses [Bubbletea] for building interactive terminal UIs,
// [Bubbles] for the table, text inputs and spinners, and [Lipgloss] for
// styling. All UI components follow the standard Bubbletea
// Model-View-Update (MVU) architecture.
//
// # Components
//
//   - Dashboard: searchable client table with add, edit, detail and
//     delete-confirmation modals
//   - Form: the add/edit client form with inline validation
//   - Configure: configuration wizard with form navigation
//
// Remote work never runs inside Update. It is started as a [tea.Cmd] that
// calls the [core.Directory] and reports back with a message.
//
// # Styling
//
// Common styles are defined as package-level variables in styles.go.
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Bubbles]: https://github.com/charmbracelet/bubbles
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
