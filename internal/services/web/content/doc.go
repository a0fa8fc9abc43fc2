// Package content assembles page content from the CMS and the bundled
// fallback data.
//
// Every Service method returns something renderable. When the CMS is absent
// or returns an empty list the bundled data is used, and records with
// missing fields get per-field defaults.
package content
