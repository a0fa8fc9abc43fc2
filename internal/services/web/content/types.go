package content

import (
	"html/template"
	"strings"
	"time"

	"github.com/kalakshetraodisha/website/internal/services/web/gallery"
)

// LocaleOdia selects the Odia variants of bilingual fields.
const LocaleOdia = "or"

// Localized is a bilingual text. Odia falls back to English when blank.
type Localized struct {
	EN string `yaml:"en"`
	OR string `yaml:"or"`
}

// For returns the text for locale.
func (l Localized) For(locale string) string {
	if locale == LocaleOdia && strings.TrimSpace(l.OR) != "" {
		return l.OR
	}
	return l.EN
}

// Stat is a headline figure such as "50+ Villages Reached".
type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// Program is a program card.
type Program struct {
	Slug             string
	Title            string
	ShortDescription string
	Icon             string
	Image            string
}

// ProgramDetail is a program page.
type ProgramDetail struct {
	Program
	Description template.HTML
	Highlights  []string
	Impact      []Stat
}

// Leader is a member of the board or the advisory council.
type Leader struct {
	ID       string `yaml:"id"`
	Category string `yaml:"category"`
	Name     string `yaml:"name"`
	NameOr   string `yaml:"name_or"`
	Role     string `yaml:"role"`
	RoleOr   string `yaml:"role_or"`
	Image    string `yaml:"image"`
	Bio      string `yaml:"bio"`
}

// Leader categories.
const (
	LeaderExecutive = "executive"
	LeaderAdvisor   = "advisor"
)

// DisplayName returns the name for locale.
func (l Leader) DisplayName(locale string) string {
	return Localized{EN: l.Name, OR: l.NameOr}.For(locale)
}

// DisplayRole returns the role for locale.
func (l Leader) DisplayRole(locale string) string {
	return Localized{EN: l.Role, OR: l.RoleOr}.For(locale)
}

// Leadership groups leaders by category.
type Leadership struct {
	Executives []Leader
	Advisors   []Leader
}

// PressArticle is a piece of news coverage.
type PressArticle struct {
	ID     string `yaml:"id"`
	Title  string `yaml:"title"`
	Source string `yaml:"source"`
	Date   string `yaml:"date"`
	Link   string `yaml:"link"`
	Image  string `yaml:"image"`
}

// PressRelease is a release issued by the organization.
type PressRelease struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Date  string `yaml:"date"`
	Link  string `yaml:"link"`
}

// Press is the press page content.
type Press struct {
	Articles []PressArticle
	Releases []PressRelease
}

// Award is a Kalakshetra Samman recipient.
type Award struct {
	Title       string
	Recipient   string
	Year        int
	Description string
	Image       string
}

// Event is a scheduled or past event.
type Event struct {
	Slug        string
	Title       string
	Date        string
	Location    string
	Description template.HTML
	Image       string
	Upcoming    bool
}

// Events splits events by their upcoming flag.
type Events struct {
	Upcoming []Event
	Past     []Event
}

// Empty reports whether there is nothing to list.
func (e Events) Empty() bool {
	return len(e.Upcoming) == 0 && len(e.Past) == 0
}

// Phone is a display number with its dial link.
type Phone struct {
	Display string `yaml:"display"`
	Href    string `yaml:"href"`
}

// Social is a social network profile.
type Social struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Counter is a home page statistic. Label is a message catalog key.
type Counter struct {
	Value  int    `yaml:"value"`
	Suffix string `yaml:"suffix"`
	Label  string `yaml:"label"`
}

// Objective is one of the organization's goals.
type Objective struct {
	Icon        string    `yaml:"icon"`
	Title       Localized `yaml:"title"`
	Description string    `yaml:"description"`
}

// Settings is the site-wide content shared by every page.
type Settings struct {
	Name          string      `yaml:"name"`
	Tagline       string      `yaml:"tagline"`
	Address       string      `yaml:"address"`
	Phones        []Phone     `yaml:"phones"`
	Emails        []string    `yaml:"emails"`
	Socials       []Social    `yaml:"socials"`
	Stats         []Counter   `yaml:"stats"`
	Objectives    []Objective `yaml:"objectives"`
	Notifications []string    `yaml:"notifications"`
}

// PrimaryEmail returns the first email, or "".
func (s Settings) PrimaryEmail() string {
	if len(s.Emails) == 0 {
		return ""
	}
	return s.Emails[0]
}

// PrimaryPhone returns the first phone.
func (s Settings) PrimaryPhone() Phone {
	if len(s.Phones) == 0 {
		return Phone{}
	}
	return s.Phones[0]
}

// Gallery is the gallery content for one locale.
type Gallery struct {
	Images     []gallery.Image
	Categories []gallery.Category
}

// FormatDate renders an ISO date as "15 Dec 2025". Unparseable values are
// returned unchanged.
func FormatDate(value string) string {
	return formatDate(value, "2 Jan 2006")
}

// FormatLongDate renders an ISO date as "15 December 2025".
func FormatLongDate(value string) string {
	return formatDate(value, "2 January 2006")
}

func formatDate(value string, layout string) string {
	value = strings.TrimSpace(value)
	if len(value) >= len(time.DateOnly) {
		if parsed, err := time.Parse(time.DateOnly, value[:len(time.DateOnly)]); err == nil {
			return parsed.Format(layout)
		}
	}
	return value
}
