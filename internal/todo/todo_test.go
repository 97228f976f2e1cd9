package todo

import "testing"

func TestParseRoute(t *testing.T) {
	tests := []struct {
		route string
		want  Filter
	}{
		{"", FilterAll},
		{"#/", FilterAll},
		{"#/active", FilterActive},
		{"#/completed", FilterCompleted},
		{"#/unknown", FilterAll},
		{"active", FilterAll},
		{"#/Active", FilterAll},
		{"#/completed/", FilterAll},
	}

	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			if got := ParseRoute(tt.route); got != tt.want {
				t.Errorf("ParseRoute(%q) = %v, want %v", tt.route, got, tt.want)
			}
		})
	}
}

func TestFilterQuery(t *testing.T) {
	tasks := []Task{
		{ID: 1, Title: "a", Completed: false},
		{ID: 2, Title: "b", Completed: true},
		{ID: 3, Title: "c", Completed: false},
	}

	tests := []struct {
		filter  Filter
		wantIDs []int
		name    string
		route   string
	}{
		{FilterAll, []int{1, 2, 3}, "", "#/"},
		{FilterActive, []int{1, 3}, "active", "#/active"},
		{FilterCompleted, []int{2}, "completed", "#/completed"},
	}

	for _, tt := range tests {
		t.Run(tt.filter.Label(), func(t *testing.T) {
			got := tt.filter.Query().Select(tasks)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Select() returned %d tasks, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("task[%d].ID = %d, want %d", i, got[i].ID, id)
				}
			}
			if tt.filter.Name() != tt.name {
				t.Errorf("Name() = %q, want %q", tt.filter.Name(), tt.name)
			}
			if tt.filter.Route() != tt.route {
				t.Errorf("Route() = %q, want %q", tt.filter.Route(), tt.route)
			}
			if ParseRoute(tt.filter.Route()) != tt.filter {
				t.Errorf("ParseRoute(Route()) did not round-trip for %v", tt.filter)
			}
		})
	}
}

func TestFilterNext(t *testing.T) {
	if FilterAll.Next() != FilterActive {
		t.Error("FilterAll.Next() should be FilterActive")
	}
	if FilterCompleted.Next() != FilterAll {
		t.Error("FilterCompleted.Next() should wrap to FilterAll")
	}
}

func TestQueryMatches(t *testing.T) {
	task := Task{ID: 7, Title: "x", Completed: true}

	if !All().Matches(task) {
		t.Error("All() should match every task")
	}
	if !All().IsAll() {
		t.Error("All().IsAll() should be true")
	}
	if !ByID(7).Matches(task) {
		t.Error("ByID(7) should match task 7")
	}
	if ByID(8).Matches(task) {
		t.Error("ByID(8) should not match task 7")
	}
	if ByCompleted(false).Matches(task) {
		t.Error("ByCompleted(false) should not match a completed task")
	}
	if ByID(7).IsAll() {
		t.Error("ByID(7).IsAll() should be false")
	}
}

func TestPatchApply(t *testing.T) {
	task := Task{ID: 1, Title: "old", Completed: false}

	got := SetTitle("new").Apply(task)
	if got.Title != "new" || got.Completed {
		t.Errorf("SetTitle().Apply() = %+v", got)
	}

	got = SetCompleted(true).Apply(task)
	if got.Title != "old" || !got.Completed {
		t.Errorf("SetCompleted().Apply() = %+v", got)
	}

	got = Patch{}.Apply(task)
	if got != task {
		t.Errorf("empty Patch changed task: %+v", got)
	}
}

func TestCountTasks(t *testing.T) {
	tests := []struct {
		name         string
		tasks        []Task
		want         Counts
		allCompleted bool
	}{
		{"empty", nil, Counts{}, false},
		{"one active", []Task{{ID: 1}}, Counts{Active: 1, Total: 1}, false},
		{"one completed", []Task{{ID: 1, Completed: true}}, Counts{Completed: 1, Total: 1}, true},
		{
			"mixed",
			[]Task{{ID: 1}, {ID: 2, Completed: true}, {ID: 3, Completed: true}},
			Counts{Active: 1, Completed: 2, Total: 3},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountTasks(tt.tasks)
			if got != tt.want {
				t.Errorf("CountTasks() = %+v, want %+v", got, tt.want)
			}
			if got.Active+got.Completed != got.Total {
				t.Errorf("Active+Completed = %d, Total = %d", got.Active+got.Completed, got.Total)
			}
			if got.AllCompleted() != tt.allCompleted {
				t.Errorf("AllCompleted() = %v, want %v", got.AllCompleted(), tt.allCompleted)
			}
		})
	}
}
