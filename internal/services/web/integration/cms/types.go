package cms

// Collection is the envelope of a list response.
type Collection[T any] struct {
	Data []Entry[T] `json:"data"`
	Meta Meta       `json:"meta"`
}

// Single is the envelope of a single-type response.
type Single[T any] struct {
	Data *Entry[T] `json:"data"`
}

// Entry is one CMS record.
type Entry[T any] struct {
	ID         int `json:"id"`
	Attributes T   `json:"attributes"`
}

// Meta carries list pagination.
type Meta struct {
	Pagination struct {
		Page      int `json:"page"`
		PageSize  int `json:"pageSize"`
		PageCount int `json:"pageCount"`
		Total     int `json:"total"`
	} `json:"pagination"`
}

// Media is a single media relation.
type Media struct {
	Data *MediaEntry `json:"data"`
}

// MediaList is a multi media relation.
type MediaList struct {
	Data []MediaEntry `json:"data"`
}

// MediaEntry is one uploaded file.
type MediaEntry struct {
	ID         int             `json:"id"`
	Attributes MediaAttributes `json:"attributes"`
}

// MediaAttributes describe an uploaded file.
type MediaAttributes struct {
	URL             string `json:"url"`
	AlternativeText string `json:"alternativeText"`
	Width           int    `json:"width"`
	Height          int    `json:"height"`
}

// URL returns the raw file URL, or "" when the relation is empty.
func (m Media) URL() string {
	if m.Data == nil {
		return ""
	}
	return m.Data.Attributes.URL
}

// Size returns the pixel dimensions, or zeros when unknown.
func (m Media) Size() (int, int) {
	if m.Data == nil {
		return 0, 0
	}
	return m.Data.Attributes.Width, m.Data.Attributes.Height
}

// Alt returns the alternative text, or "".
func (m Media) Alt() string {
	if m.Data == nil {
		return ""
	}
	return m.Data.Attributes.AlternativeText
}

// Program is a program record.
type Program struct {
	Title            string `json:"title"`
	Slug             string `json:"slug"`
	ShortDescription string `json:"shortDescription"`
	Description      string `json:"description"`
	Icon             string `json:"icon"`
	Order            int    `json:"order"`
	Image            Media  `json:"image"`
}

// GalleryItem is a gallery record.
type GalleryItem struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Date     string `json:"date"`
	Image    Media  `json:"image"`
}

// Leader is a leadership record.
type Leader struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Bio      string `json:"bio"`
	Category string `json:"category"`
	Order    int    `json:"order"`
	Photo    Media  `json:"photo"`
}

// PressItem is a press coverage or release record.
type PressItem struct {
	Title   string `json:"title"`
	Source  string `json:"source"`
	Date    string `json:"date"`
	Excerpt string `json:"excerpt"`
	Link    string `json:"link"`
	Type    string `json:"type"`
	Image   Media  `json:"image"`
}

// Award is a Kalakshetra Samman record.
type Award struct {
	Title       string `json:"title"`
	Recipient   string `json:"recipient"`
	Year        int    `json:"year"`
	Description string `json:"description"`
	Image       Media  `json:"image"`
}

// Event is an event record.
type Event struct {
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Date        string    `json:"date"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	IsUpcoming  bool      `json:"isUpcoming"`
	Image       Media     `json:"image"`
	Gallery     MediaList `json:"gallery"`
}

// SiteSetting is the site-wide single type.
type SiteSetting struct {
	SiteName  string `json:"siteName"`
	Tagline   string `json:"tagline"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
	YouTube   string `json:"youtube"`
}
