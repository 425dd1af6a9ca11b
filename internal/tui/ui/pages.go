package ui

import "github.com/rivo/tview"

// Pages is a stack of tview pages. The top of the stack is the one shown.
type Pages struct {
	*tview.Pages
	stack    []string
	onChange func(top string)
}

// NewPages creates an empty page stack.
func NewPages() *Pages {
	return &Pages{Pages: tview.NewPages()}
}

// SetOnChange sets a callback run with the new top page after every change.
func (p *Pages) SetOnChange(fn func(top string)) {
	p.onChange = fn
}

// Push shows name above the current page.
func (p *Pages) Push(name string) {
	if top := p.Current(); top == name {
		return
	} else if top != "" {
		p.HidePage(top)
	}
	p.stack = append(p.stack, name)
	p.ShowPage(name)
	p.SendToFront(name)
	p.notify()
}

// Pop hides the top page and shows the one below. The last page is never
// popped; Pop returns "" in that case.
func (p *Pages) Pop() string {
	if len(p.stack) < 2 {
		return ""
	}
	top := p.stack[len(p.stack)-1]
	p.HidePage(top)
	p.stack = p.stack[:len(p.stack)-1]
	current := p.Current()
	p.ShowPage(current)
	p.SendToFront(current)
	p.notify()
	return top
}

// Current returns the name of the top page.
func (p *Pages) Current() string {
	if len(p.stack) == 0 {
		return ""
	}
	return p.stack[len(p.stack)-1]
}

// Depth returns the current stack depth.
func (p *Pages) Depth() int {
	return len(p.stack)
}

func (p *Pages) notify() {
	if p.onChange != nil {
		p.onChange(p.Current())
	}
}
