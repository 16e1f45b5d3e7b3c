package entity

// DueAtNone is stored when a task has no due date.
const DueAtNone = "NIL"

// Task belongs to exactly one user, fixed at creation. DueAt and
// CreatedAt are display-formatted strings, not timestamps; DueAt is the
// DueAtNone sentinel when the task has no due date.
type Task struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	DueAt     string `json:"dueAt"`
	CreatedAt string `json:"createdAt"`
	Completed bool   `json:"completed"`
	UserID    string `json:"userId"`
}
