package todo

// Filter is the view of the task set selected by the current route.
// It is derived from the route on every navigation.
type Filter int

const (
	FilterAll Filter = iota
	FilterActive
	FilterCompleted
)

// Routes recognised by ParseRoute.
const (
	RouteAll       = "#/"
	RouteActive    = "#/active"
	RouteCompleted = "#/completed"
)

// ParseRoute maps a route string to a filter. Only "", "#/", "#/active" and
// "#/completed" are meaningful; every other route falls back to FilterAll.
func ParseRoute(route string) Filter {
	switch route {
	case RouteActive:
		return FilterActive
	case RouteCompleted:
		return FilterCompleted
	default:
		return FilterAll
	}
}

// Filters returns every filter in display order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterActive, FilterCompleted}
}

// Query returns the store query that selects the filter's tasks.
func (f Filter) Query() Query {
	switch f {
	case FilterActive:
		return ByCompleted(false)
	case FilterCompleted:
		return ByCompleted(true)
	default:
		return All()
	}
}

// Name returns the route segment for the filter: "" for all,
// "active" or "completed" otherwise.
func (f Filter) Name() string {
	switch f {
	case FilterActive:
		return "active"
	case FilterCompleted:
		return "completed"
	default:
		return ""
	}
}

// Route returns the canonical route for the filter.
func (f Filter) Route() string {
	switch f {
	case FilterActive:
		return RouteActive
	case FilterCompleted:
		return RouteCompleted
	default:
		return RouteAll
	}
}

// Label returns the human readable filter name.
func (f Filter) Label() string {
	switch f {
	case FilterActive:
		return "Active"
	case FilterCompleted:
		return "Completed"
	default:
		return "All"
	}
}

// String implements fmt.Stringer.
func (f Filter) String() string {
	return f.Label()
}

// Next returns the filter after f, wrapping around.
func (f Filter) Next() Filter {
	return Filter((int(f) + 1) % len(Filters()))
}
