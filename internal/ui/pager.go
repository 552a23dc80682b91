package ui

// Pager hands out discover page numbers. It starts at 1 and advances on every
// call; with a positive ceiling it wraps back to 1 once the ceiling is passed.
type Pager struct {
	next int
}

// NewPager creates a pager positioned at page 1
func NewPager() *Pager {
	return &Pager{next: 1}
}

// Next returns the page to request and advances. maxPage <= 0 means no ceiling.
func (p *Pager) Next(maxPage int) int {
	if maxPage > 0 && p.next > maxPage {
		p.next = 1
	}
	page := p.next
	p.next++
	return page
}
