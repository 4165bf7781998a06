package entity

import (
	"time"
)

// Task is a single to-do item owned by one account.
type Task struct {
	ID          string     `json:"id"`
	UserID      string     `json:"-"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Priority    int        `json:"priority"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// DailyCompletion is one bucket of the per-day completion aggregation.
type DailyCompletion struct {
	Day   string `json:"day"` // YYYY-MM-DD in the stats timezone
	Count int    `json:"count"`
}

// RankingEntry is one row of the global completion leaderboard.
// Only verified accounts are ranked.
type RankingEntry struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	Completions int    `json:"completions"`
}

// Summary aggregates one account's task counts.
type Summary struct {
	TotalTasks     int `json:"total_tasks"`
	CompletedTasks int `json:"completed_tasks"`
	CompletionRate int `json:"completion_rate"` // rounded percentage
}
