package gallery

import (
	"net/url"
	"strings"
)

// AllCategories selects every image.
const AllCategories = "all"

// Query parameters carrying the view state.
const (
	CategoryParam = "category"
	ImageParam    = "image"
)

// Column counts accepted by Columns.
const (
	MinColumns = 2
	MaxColumns = 4
)

// Aspect is a display aspect-ratio hint.
type Aspect string

const (
	AspectSquare    Aspect = "square"
	AspectPortrait  Aspect = "portrait"
	AspectLandscape Aspect = "landscape"
	AspectWide      Aspect = "wide"
)

// Width to height ratios at or past which a measured image takes a wider or
// taller hint.
const (
	wideRatio      = 1.6
	landscapeRatio = 1.2
	portraitRatio  = 0.85
)

var aspectPattern = [...]Aspect{AspectSquare, AspectPortrait, AspectSquare, AspectLandscape, AspectSquare}

// PatternAspect returns the cyclic aspect for position.
func PatternAspect(position int) Aspect {
	n := position % len(aspectPattern)
	if n < 0 {
		n += len(aspectPattern)
	}
	return aspectPattern[n]
}

// AspectForSize returns the hint closest to a widthPX by heightPX image, or
// false when either dimension is unknown.
func AspectForSize(widthPX int, heightPX int) (Aspect, bool) {
	if widthPX <= 0 || heightPX <= 0 {
		return "", false
	}
	ratio := float64(widthPX) / float64(heightPX)
	switch {
	case ratio >= wideRatio:
		return AspectWide, true
	case ratio >= landscapeRatio:
		return AspectLandscape, true
	case ratio <= portraitRatio:
		return AspectPortrait, true
	default:
		return AspectSquare, true
	}
}

// AspectFor returns the image's explicit hint, or the pattern aspect for its
// position in the list being displayed.
func AspectFor(image Image, position int) Aspect {
	if image.Aspect != "" {
		return image.Aspect
	}
	return PatternAspect(position)
}

// Image is one gallery photograph.
type Image struct {
	ID       string
	Src      string
	Alt      string
	Category string
	Aspect   Aspect
}

// Category is one filter option.
type Category struct {
	ID    string
	Label string
}

// Mode is the viewer state.
type Mode int

const (
	Browsing Mode = iota
	Viewing
)

func (m Mode) String() string {
	if m == Viewing {
		return "viewing"
	}
	return "browsing"
}

// State is the serializable view state.
type State struct {
	Category string
	Open     bool
	Index    int
}

// Controller owns the view state for one image collection. The zero value
// is not usable; call New.
type Controller struct {
	images     []Image
	categories []Category
	filtered   []Image
	state      State
}

// New starts browsing every image.
func New(images []Image, categories []Category) *Controller {
	c := &Controller{
		images:     append([]Image(nil), images...),
		categories: append([]Category(nil), categories...),
		state:      State{Category: AllCategories},
	}
	c.refilter()
	return c
}

// FromQuery restores the state encoded by Query. Unknown images leave the
// viewer closed.
func FromQuery(images []Image, categories []Category, values url.Values) *Controller {
	c := New(images, categories)
	if category := strings.TrimSpace(values.Get(CategoryParam)); category != "" {
		c.SelectCategory(category)
	}
	if imageID := strings.TrimSpace(values.Get(ImageParam)); imageID != "" {
		c.Open(imageID)
	}
	return c
}

// Clone returns an independent copy.
func (c *Controller) Clone() *Controller {
	clone := *c
	return &clone
}

// After returns the state reached by applying transition to a copy.
func (c *Controller) After(transition func(*Controller)) *Controller {
	next := c.Clone()
	transition(next)
	return next
}

// State returns the current view state.
func (c *Controller) State() State {
	return c.state
}

// Mode reports whether the viewer is open.
func (c *Controller) Mode() Mode {
	if c.state.Open {
		return Viewing
	}
	return Browsing
}

// Category returns the active category id.
func (c *Controller) Category() string {
	return c.state.Category
}

// Categories returns the filter options, excluding AllCategories.
func (c *Controller) Categories() []Category {
	return append([]Category(nil), c.categories...)
}

// CategoryLabel returns the label of id, or id itself when it is unknown.
func (c *Controller) CategoryLabel(id string) string {
	for _, category := range c.categories {
		if category.ID == id {
			return category.Label
		}
	}
	return id
}

// Images returns the unfiltered collection.
func (c *Controller) Images() []Image {
	return append([]Image(nil), c.images...)
}

// Filtered returns the images in the active category in input order.
func (c *Controller) Filtered() []Image {
	return append([]Image(nil), c.filtered...)
}

// Len returns the number of filtered images.
func (c *Controller) Len() int {
	return len(c.filtered)
}

// SelectCategory changes the filter. Unknown ids are accepted and match no
// image. An open viewer stays open on a clamped index, or closes when the
// new list is empty.
func (c *Controller) SelectCategory(id string) {
	id = strings.TrimSpace(id)
	if id == "" {
		id = AllCategories
	}
	c.state.Category = id
	c.refilter()
	if len(c.filtered) == 0 {
		c.state.Open = false
		c.state.Index = 0
		return
	}
	c.state.Index = clamp(c.state.Index, 0, len(c.filtered)-1)
}

// Open shows imageID in the viewer. Images outside the filtered list are
// ignored.
func (c *Controller) Open(imageID string) {
	for i, image := range c.filtered {
		if image.ID == imageID {
			c.state.Open = true
			c.state.Index = i
			return
		}
	}
}

// OpenAt jumps the viewer to index. Invalid indices are ignored.
func (c *Controller) OpenAt(index int) {
	if index < 0 || index >= len(c.filtered) {
		return
	}
	c.state.Open = true
	c.state.Index = index
}

// Next advances the viewer, stopping at the last image.
func (c *Controller) Next() {
	if !c.state.Open {
		return
	}
	c.state.Index = min(c.state.Index+1, len(c.filtered)-1)
}

// Previous steps the viewer back, stopping at the first image.
func (c *Controller) Previous() {
	if !c.state.Open {
		return
	}
	c.state.Index = max(c.state.Index-1, 0)
}

// Close returns to browsing.
func (c *Controller) Close() {
	c.state.Open = false
}

// Keys understood by HandleKey, named as in KeyboardEvent.key.
const (
	KeyEscape     = "Escape"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// HandleKey applies the viewer keyboard contract and reports whether key was
// consumed. Keys are ignored while browsing.
func (c *Controller) HandleKey(key string) bool {
	if !c.state.Open {
		return false
	}
	switch key {
	case KeyEscape:
		c.Close()
	case KeyArrowLeft:
		c.Previous()
	case KeyArrowRight:
		c.Next()
	default:
		return false
	}
	return true
}

// Current returns the image shown in the viewer.
func (c *Controller) Current() (Image, bool) {
	if !c.state.Open || c.state.Index < 0 || c.state.Index >= len(c.filtered) {
		return Image{}, false
	}
	return c.filtered[c.state.Index], true
}

// HasPrevious reports whether Previous would move.
func (c *Controller) HasPrevious() bool {
	return c.state.Open && c.state.Index > 0
}

// HasNext reports whether Next would move.
func (c *Controller) HasNext() bool {
	return c.state.Open && c.state.Index < len(c.filtered)-1
}

// Columns distributes the filtered images round-robin into n columns. n is
// clamped to MinColumns..MaxColumns.
func (c *Controller) Columns(n int) [][]Image {
	return Distribute(c.filtered, n)
}

// Distribute places images[i] in column i mod n.
func Distribute(images []Image, n int) [][]Image {
	n = clamp(n, MinColumns, MaxColumns)
	columns := make([][]Image, n)
	for i, image := range images {
		columns[i%n] = append(columns[i%n], image)
	}
	return columns
}

// Query encodes the state. The viewer is addressed by image id so links stay
// valid if the collection order changes.
func (c *Controller) Query() url.Values {
	values := url.Values{}
	if c.state.Category != AllCategories {
		values.Set(CategoryParam, c.state.Category)
	}
	if image, ok := c.Current(); ok {
		values.Set(ImageParam, image.ID)
	}
	return values
}

// Href returns path with the encoded state.
func (c *Controller) Href(path string) string {
	query := c.Query().Encode()
	if query == "" {
		return path
	}
	return path + "?" + query
}

func (c *Controller) refilter() {
	if c.state.Category == AllCategories {
		c.filtered = c.images
		return
	}
	filtered := make([]Image, 0, len(c.images))
	for _, image := range c.images {
		if image.Category == c.state.Category {
			filtered = append(filtered, image)
		}
	}
	c.filtered = filtered
}

func clamp(value int, low int, high int) int {
	return max(low, min(value, high))
}
