// Package scaffold generates the project files of the Py playground
// application. It builds a Template from package.json, renders the embedded
// file set into the .template/ folder, then copies the generated files over
// the project root.
package scaffold
