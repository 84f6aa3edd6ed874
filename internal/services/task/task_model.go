package task

import "time"

type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in-progress"
	StatusDone       TaskStatus = "done"
	StatusBacklog    TaskStatus = "backlog"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone, StatusBacklog:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID          int64        `db:"id" json:"id"`
	UserID      int64        `db:"user_id" json:"user_id"`
	Title       string       `db:"title" json:"title"`
	Description *string      `db:"description" json:"description"`
	Status      TaskStatus   `db:"status" json:"status"`
	Priority    TaskPriority `db:"priority" json:"priority"`
	DueDate     *time.Time   `db:"due_date" json:"due_date"`
	CreatedAt   time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at" json:"updated_at"`
}

type CreateTaskRequest struct {
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	DueDate     *time.Time   `json:"due_date"`
}

type UpdateTaskRequest struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	Status      *TaskStatus   `json:"status"`
	Priority    *TaskPriority `json:"priority"`
	DueDate     *time.Time    `json:"due_date"`
}

// Empty reports whether the update contains no fields at all.
func (r *UpdateTaskRequest) Empty() bool {
	return r.Title == nil && r.Description == nil && r.Status == nil && r.Priority == nil && r.DueDate == nil
}

// TaskFilter narrows a task listing. Zero values mean "no filter".
type TaskFilter struct {
	Status   TaskStatus
	Priority TaskPriority
	Limit    int
	Offset   int
}

// TaskStats is the per-user dashboard summary.
type TaskStats struct {
	TotalTasks        int `db:"total_tasks" json:"total_tasks"`
	DoneTasks         int `db:"done_tasks" json:"done_tasks"`
	InProgressTasks   int `db:"in_progress_tasks" json:"in_progress_tasks"`
	TodoTasks         int `db:"todo_tasks" json:"todo_tasks"`
	HighPriorityTasks int `db:"high_priority_tasks" json:"high_priority_tasks"`
	OverdueTasks      int `db:"overdue_tasks" json:"overdue_tasks"`
}
