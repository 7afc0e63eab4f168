package feedback

import (
	"sort"

	myErr "melodia/internal/types/errors"
)

type SortBy string

const (
	SortByDate  SortBy = "date"
	SortByLikes SortBy = "likes"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

type Filter string

const (
	FilterAll        Filter = "all"
	FilterResolved   Filter = "resolved"
	FilterUnresolved Filter = "unresolved"
)

// ViewOptions - параметры отображения списка комментариев
type ViewOptions struct {
	SortBy    SortBy
	Direction Direction
	Filter    Filter
}

func DefaultViewOptions() ViewOptions {
	return ViewOptions{SortBy: SortByDate, Direction: Desc, Filter: FilterAll}
}

// ParseViewOptions reads sort, dir and filter query values. Empty values fall
// back to the defaults, unknown ones are rejected.
func ParseViewOptions(sortBy, dir, filter string) (ViewOptions, error) {
	opts := DefaultViewOptions()

	switch SortBy(sortBy) {
	case "":
	case SortByDate, SortByLikes:
		opts.SortBy = SortBy(sortBy)
	default:
		return opts, myErr.ErrValidation
	}

	switch Direction(dir) {
	case "":
	case Asc, Desc:
		opts.Direction = Direction(dir)
	default:
		return opts, myErr.ErrValidation
	}

	switch Filter(filter) {
	case "":
	case FilterAll, FilterResolved, FilterUnresolved:
		opts.Filter = Filter(filter)
	default:
		return opts, myErr.ErrValidation
	}

	return opts, nil
}

// Thread - комментарий верхнего уровня и ответы на него
type Thread struct {
	Feedback
	Replies []Feedback `json:"replies"`
}

// BuildView turns a flat list in storage order into sorted, filtered threads.
// Replies keep their storage order; replies whose parent is not a top-level
// item in the list are dropped.
func BuildView(items []Feedback, opts ViewOptions) []Thread {
	top := make([]Feedback, 0, len(items))
	replies := make(map[string][]Feedback)

	for _, f := range items {
		if f.IsReply() {
			replies[*f.ParentID] = append(replies[*f.ParentID], f)
			continue
		}
		top = append(top, f)
	}

	switch opts.SortBy {
	case SortByLikes:
		// ties on likes keep newest first
		sortByDate(top, Desc)
		sort.SliceStable(top, func(i, j int) bool {
			if opts.Direction == Asc {
				return top[i].Likes < top[j].Likes
			}
			return top[i].Likes > top[j].Likes
		})
	default:
		sortByDate(top, opts.Direction)
	}

	threads := make([]Thread, 0, len(top))
	for _, f := range top {
		if !opts.Filter.match(f) {
			continue
		}

		r := replies[f.ID]
		if r == nil {
			r = []Feedback{}
		}
		threads = append(threads, Thread{Feedback: f, Replies: r})
	}

	return threads
}

func sortByDate(items []Feedback, dir Direction) {
	sort.SliceStable(items, func(i, j int) bool {
		if dir == Asc {
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}

func (f Filter) match(fb Feedback) bool {
	switch f {
	case FilterResolved:
		return fb.IsResolved
	case FilterUnresolved:
		return !fb.IsResolved
	default:
		return true
	}
}
