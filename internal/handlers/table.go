package handlers

import (
	"github.com/atomicstack/servarr-tui/internal/keys"
	"github.com/atomicstack/servarr-tui/internal/logging/events"
	"github.com/atomicstack/servarr-tui/internal/route"
	uistate "github.com/atomicstack/servarr-tui/internal/ui/state"
)

// tableConfig describes the sub-routes a table exposes. Zero blocks are
// features the table does not offer.
type tableConfig[T any] struct {
	Table       route.Block
	Sort        route.Block
	SortOptions []uistate.SortOption[T]
	Search      route.Block
	SearchError route.Block
	SearchKey   func(T) string
	Filter      route.Block
	FilterError route.Block
	FilterKey   func(T) string
}

// handleTable applies the behaviour shared by every table: scrolling,
// paging, the sort prompt and the search and filter boxes. It reports
// whether the press was consumed; the caller falls back to its own
// callbacks otherwise.
func handleTable[T any](env *Env, c *uistate.Collection[T], cfg tableConfig[T]) bool {
	k := env.Key
	b := env.Route.Block
	on := func(target route.Block) bool { return target != route.None && b == target }

	switch {
	case k.Is(keys.Up):
		return tableScroll(b, c, cfg, c.ScrollUp, func(s *uistate.SortList[T]) { s.ScrollUp() })
	case k.Is(keys.Down):
		return tableScroll(b, c, cfg, c.ScrollDown, func(s *uistate.SortList[T]) { s.ScrollDown() })
	case k.Is(keys.PageUp):
		if b != cfg.Table {
			return false
		}
		c.PageUp(env.page())
		return true
	case k.Is(keys.PageDown):
		if b != cfg.Table {
			return false
		}
		c.PageDown(env.page())
		return true
	case k.Is(keys.Home):
		switch {
		case on(cfg.Search) && c.Search != nil:
			c.Search.MoveStart()
			return true
		case on(cfg.Filter) && c.Filter != nil:
			c.Filter.MoveStart()
			return true
		}
		return tableScroll(b, c, cfg, c.ScrollToTop, func(s *uistate.SortList[T]) { s.ScrollToTop() })
	case k.Is(keys.End):
		switch {
		case on(cfg.Search) && c.Search != nil:
			c.Search.MoveEnd()
			return true
		case on(cfg.Filter) && c.Filter != nil:
			c.Filter.MoveEnd()
			return true
		}
		return tableScroll(b, c, cfg, c.ScrollToBottom, func(s *uistate.SortList[T]) { s.ScrollToBottom() })
	case k.Is(keys.Left), k.Is(keys.Right):
		switch {
		case on(cfg.Search):
			moveCaret(c.Search, k)
			return true
		case on(cfg.Filter):
			moveCaret(c.Filter, k)
			return true
		}
		return false
	case k.Is(keys.Submit):
		return tableSubmit(env, c, cfg)
	case k.Is(keys.Esc):
		return tableEsc(env, c, cfg)
	case on(cfg.Search):
		return editText(c.Search, k, env.Route)
	case on(cfg.Filter):
		return editText(c.Filter, k, env.Route)
	case k.Is(keys.Filter) && cfg.Filter != route.None && b == cfg.Table:
		c.Filter = uistate.NewInput("")
		env.State.PushTextInput(route.New(cfg.Filter))
		return true
	case k.Is(keys.Search) && cfg.Search != route.None && b == cfg.Table:
		c.Search = uistate.NewInput("")
		env.State.PushTextInput(route.New(cfg.Search))
		return true
	case k.Is(keys.Sort) && cfg.Sort != route.None && len(cfg.SortOptions) > 0 && b == cfg.Table:
		c.Sorting(cfg.SortOptions)
		env.State.Push(route.New(cfg.Sort))
		return true
	}
	return false
}

func tableScroll[T any](b route.Block, c *uistate.Collection[T], cfg tableConfig[T], table func() bool, sort func(*uistate.SortList[T])) bool {
	switch {
	case b == cfg.Table:
		table()
		events.Collection.Cursor(b.String(), c.Index())
		return true
	case cfg.Sort != route.None && b == cfg.Sort:
		if c.Sort != nil {
			sort(c.Sort)
		}
		return true
	}
	return false
}

func tableSubmit[T any](env *Env, c *uistate.Collection[T], cfg tableConfig[T]) bool {
	s := env.State
	b := env.Route.Block
	switch {
	case cfg.Sort != route.None && b == cfg.Sort:
		if c.Sort != nil {
			c.ApplySorting()
			if opt, ok := c.Sort.Current(); ok {
				events.Collection.Sort(cfg.Table.String(), opt.Name)
			}
			c.Sort = nil
		}
		s.Pop()
		return true
	case cfg.Search != route.None && b == cfg.Search:
		s.PopTextInput()
		if c.Search == nil {
			return true
		}
		query := c.Search.Value()
		found := c.ApplySearch(cfg.SearchKey)
		events.Collection.Search(cfg.Table.String(), query, found)
		if !found {
			s.Push(route.New(cfg.SearchError))
		}
		return true
	case cfg.Filter != route.None && b == cfg.Filter:
		s.PopTextInput()
		if c.Filter == nil {
			return true
		}
		query := c.Filter.Value()
		matched := c.ApplyFilter(cfg.FilterKey)
		events.Collection.Filter(cfg.Table.String(), query, c.Len())
		if !matched {
			s.Push(route.New(cfg.FilterError))
		}
		return true
	}
	return false
}

func tableEsc[T any](env *Env, c *uistate.Collection[T], cfg tableConfig[T]) bool {
	s := env.State
	b := env.Route.Block
	on := func(target route.Block) bool { return target != route.None && b == target }
	switch {
	case on(cfg.Sort):
		c.Sort = nil
		s.Pop()
		return true
	case on(cfg.Search), on(cfg.SearchError):
		s.PopTextInput()
		c.ResetSearch()
		return true
	case on(cfg.Filter), on(cfg.FilterError):
		s.PopTextInput()
		c.ResetFilter()
		events.Collection.Reset(cfg.Table.String())
		return true
	case b == cfg.Table && c.Filtered():
		c.ResetFilter()
		events.Collection.Reset(cfg.Table.String())
		return true
	}
	return false
}

// moveCaret moves a text box cursor one rune left or right.
func moveCaret(in *uistate.Input, k keys.Key) {
	if in == nil {
		return
	}
	switch {
	case k.Is(keys.Left):
		in.MoveLeft()
	case k.Is(keys.Right):
		in.MoveRight()
	}
}

// editText applies a press to a focused text box: backspace, readline style
// word and line motions, and typed text.
func editText(in *uistate.Input, k keys.Key, r route.Route) bool {
	if in == nil {
		return false
	}
	switch k.String() {
	case "ctrl+w":
		in.DeleteWordBackward()
	case "ctrl+u":
		in.Set("", 0)
	case "ctrl+a":
		in.MoveStart()
	case "ctrl+e":
		in.MoveEnd()
	case "alt+b":
		in.MoveWordBackward()
	case "alt+f":
		in.MoveWordForward()
	default:
		switch {
		case k.Is(keys.Backspace):
			if in.DeleteRuneBackward() {
				events.Filter.Backspace(r.String(), in.Value())
			}
		case k.Printable():
			if in.Insert(k.Text()) {
				events.Filter.Append(r.String(), in.Value())
			}
		}
		return true
	}
	events.Filter.Cursor(r.String(), in.CursorPos())
	return true
}
