// Package cms is the content gateway to the headless CMS.
//
// Every read is best effort: a fetch either yields decoded content or reports
// absence, never an error. Timeouts, non-2xx statuses, transport failures and
// malformed bodies are all collapsed into absence, and only the diagnostic
// log line and the outcome metric distinguish them. Callers substitute
// bundled content when a fetch is absent.
package cms
