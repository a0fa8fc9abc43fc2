// Package pwa models the installable web-app shell: the install prompt,
// the scroll-driven header style and the connectivity indicator.
//
// Each concern is a small explicit state machine. The server evaluates the
// persisted parts (the install prompt dismissal cookie) and the page script
// feeds browser events through the same transitions.
package pwa
