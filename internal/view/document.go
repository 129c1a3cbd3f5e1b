// Package view models the render surface one tab maintains: background
// style, brand nodes, sidebar containers, the unread badge, and the
// notification feed. Services patch it; transports read immutable snapshots.
// Keeping the surface explicit keeps the derivation logic testable without a
// rendering environment.
package view

import "sync"

type Background struct {
	Image    string `json:"image"`
	Size     string `json:"size"`
	Position string `json:"position"`
}

type Logo struct {
	Src    string `json:"src"`
	Height int    `json:"height"`
	Fit    string `json:"fit"`
}

// Brand is a brand-marker element. When Logo is set it replaces the text
// content entirely, as the prototype swapped the wordmark for an image.
type Brand struct {
	Text string `json:"text"`
	Logo *Logo  `json:"logo,omitempty"`
}

// Sidebar is a sidebar-content container. CustomText is the single
// admin-provided text node; there is never more than one.
type Sidebar struct {
	CustomText *string `json:"customText,omitempty"`
}

type Badge struct {
	Visible bool `json:"visible"`
	Count   int  `json:"count"`
}

// Row is one rendered notification. Every row exposes open and remove
// actions keyed by ID.
type Row struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	Type   string `json:"type"`
	Unread bool   `json:"unread"`
}

type State struct {
	Background *Background `json:"background,omitempty"`
	Brands     []Brand     `json:"brands"`
	Sidebars   []Sidebar   `json:"sidebars"`
	Badge      Badge       `json:"badge"`
	Feed       []Row       `json:"feed"`
}

// Document is one tab's surface. It is patched from the cross-tab sync
// goroutine and from request handlers, so all access is guarded.
type Document struct {
	mu    sync.RWMutex
	state State
}

func NewDocument() *Document {
	return &Document{state: State{Brands: []Brand{}, Sidebars: []Sidebar{}, Feed: []Row{}}}
}

// AddBrand registers a brand-marker element, returning its index.
func (d *Document) AddBrand(text string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state.Brands = append(d.state.Brands, Brand{Text: text})
	return len(d.state.Brands) - 1
}

// AddSidebar registers a sidebar-content container, returning its index.
func (d *Document) AddSidebar() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state.Sidebars = append(d.state.Sidebars, Sidebar{})
	return len(d.state.Sidebars) - 1
}

func (d *Document) SetBackground(image string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state.Background = &Background{Image: image, Size: "cover", Position: "center"}
}

// SetBrandLogo replaces the content of every brand node with the logo image.
func (d *Document) SetBrandLogo(src string, height int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.state.Brands {
		d.state.Brands[i].Text = ""
		d.state.Brands[i].Logo = &Logo{Src: src, Height: height, Fit: "contain"}
	}
}

// SetSidebarText overwrites the custom-text node of every sidebar container,
// creating it on first use. Repeated calls never accumulate nodes.
func (d *Document) SetSidebarText(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.state.Sidebars {
		t := text
		d.state.Sidebars[i].CustomText = &t
	}
}

// SetBadge shows the badge with the given count, hiding it at zero.
func (d *Document) SetBadge(count int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state.Badge = Badge{Visible: count > 0, Count: count}
}

func (d *Document) SetFeed(rows []Row) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state.Feed = append([]Row(nil), rows...)
}

// Snapshot returns a copy safe to hand to a transport.
func (d *Document) Snapshot() State {
	d.mu.RLock()
	defer d.mu.RUnlock()
	s := d.state
	s.Brands = append([]Brand(nil), d.state.Brands...)
	s.Sidebars = append([]Sidebar(nil), d.state.Sidebars...)
	s.Feed = append([]Row(nil), d.state.Feed...)
	if d.state.Background != nil {
		bg := *d.state.Background
		s.Background = &bg
	}
	return s
}
