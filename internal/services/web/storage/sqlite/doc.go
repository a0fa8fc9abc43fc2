// Package sqlite provides the contact inbox persistence adapter backed by
// SQLite.
package sqlite
