// Package cli provides the interactive Fundraise console.
//
// App wires configuration, storage and services, then runs a numbered menu
// until the user quits or standard input ends. Anonymous users may register
// and log in; after login the project screens become available:
//
//   - Create project
//   - View projects
//   - Edit project (owner only)
//   - Delete project (owner only)
//   - Search project by date range
//
// The session created by Login lives for the rest of the process.
// See App.Run and runMenu for details.
package cli
