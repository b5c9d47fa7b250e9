// Package pipeline builds the configuration of the browser application
// (display name, file association, links, icons, packaged folders) and hands
// it to a Runner, the pipeline host that builds and publishes the app.
package pipeline
