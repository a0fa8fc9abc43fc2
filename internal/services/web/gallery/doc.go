// Package gallery holds the view state of the photo gallery: the active
// category filter, the masonry column layout and the image viewer.
//
// The gallery page is rendered on the server. Every user interaction is a
// link whose query string encodes the next State, so transitions are computed
// here and the page script only maps keys onto those links.
package gallery
