// Package storage declares persistence interfaces for web-owned data.
//
// The only persisted data is the contact inbox: submissions accepted by the
// contact endpoint and kept for the office to follow up on.
package storage
