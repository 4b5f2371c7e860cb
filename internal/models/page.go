package models

// Page describes one page of a filtered collection.
//
// Invariants: TotalPages == ceil(TotalElements/Size) (0 when empty),
// len(Content) <= Size, and Content is the contiguous slice
// [Page*Size, Page*Size+Size) of the filtered set.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// SearchResult holds the three independent result sequences of a free-text
// search across the main collections.
type SearchResult struct {
	Tasks []Task `json:"tasks"`
	Users []User `json:"users"`
	Teams []Team `json:"teams"`
}

// DashboardStats is the on-demand aggregation over the task collections.
type DashboardStats struct {
	TotalTasks      int `json:"totalTasks"`
	TodoTasks       int `json:"todoTasks"`
	InProgressTasks int `json:"inProgressTasks"`
	CompletedTasks  int `json:"completedTasks"`
	OverdueTasks    int `json:"overdueTasks"`
	MyTasksToday    int `json:"myTasksToday"`
	CompletionRate  int `json:"completionRate"`
}

// MyTaskSummary buckets a user's tasks by normalized due date.
type MyTaskSummary struct {
	TodayTasks    []Task `json:"todayTasks"`
	UpcomingTasks []Task `json:"upcomingTasks"`
	OverdueTasks  []Task `json:"overdueTasks"`
}

// TrendPoint is one day of the weekly completion trend.
type TrendPoint struct {
	Date      string `json:"date"`
	Created   int    `json:"created"`
	Completed int    `json:"completed"`
}
