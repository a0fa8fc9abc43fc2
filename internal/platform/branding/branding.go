// Package branding holds organization-wide display constants.
package branding

// AppName is the organization name used in page titles and the manifest.
const AppName = "Kalakshetra Odisha"

// ShortName is used where space is tight, such as the installed app label.
const ShortName = "Kalakshetra"

// ThemeColor is the brand gold used for the browser chrome.
const ThemeColor = "#AC884D"

// BackgroundColor is the splash background of the installed app.
const BackgroundColor = "#FFFDF8"

// TitleSuffix is appended to every page title.
const TitleSuffix = " | " + AppName

// PageTitle formats a page title with the organization suffix. An empty
// title yields the bare organization name.
func PageTitle(title string) string {
	if title == "" {
		return AppName
	}
	return title + TitleSuffix
}
