package orders

// Window describes one page of a paginated listing.
type Window struct {
	Page       int
	Limit      int
	TotalCount int
}

// TotalPages is ceil(TotalCount/Limit), never less than 1.
func (w Window) TotalPages() int {
	if w.Limit <= 0 {
		return 1
	}
	pages := (w.TotalCount + w.Limit - 1) / w.Limit
	if pages < 1 {
		pages = 1
	}
	return pages
}

// StartItem is the 1-based index of the first row shown, or 0 when the page
// holds no rows.
func (w Window) StartItem(shown int) int {
	if shown == 0 {
		return 0
	}
	return (w.Page-1)*w.Limit + 1
}

// EndItem is the 1-based index of the last row covered by this page.
func (w Window) EndItem(shown int) int {
	if shown == 0 {
		return 0
	}
	end := w.Page * w.Limit
	if end > w.TotalCount {
		end = w.TotalCount
	}
	return end
}

func (w Window) HasPrev() bool {
	return w.Page > 1
}

func (w Window) HasNext() bool {
	return w.Page < w.TotalPages()
}

// Pages lists every page number from 1 to TotalPages for the numbered
// pagination buttons.
func (w Window) Pages() []int {
	total := w.TotalPages()
	pages := make([]int, total)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}
