// Package web hosts the Kalakshetra Odisha public website.
//
// Every content page is published once per supported locale under a
// /{locale} prefix. Pages read through the content service, which prefers
// the CMS and falls back to bundled data, so the site stays complete when
// the CMS is unreachable. The same process serves the contact endpoint and
// the installable app shell.
package web
