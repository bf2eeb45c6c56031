package project

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPlanned   Status = "PLANNED"
	StatusOngoing   Status = "ONGOING"
	StatusCompleted Status = "COMPLETED"
	StatusOnHold    Status = "ONHOLD"
)

func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToUpper(strings.TrimSpace(s))); st {
	case StatusPlanned, StatusOngoing, StatusCompleted, StatusOnHold:
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

func ParseTaskStatus(s string) (TaskStatus, error) {
	switch st := TaskStatus(strings.ToUpper(strings.TrimSpace(s))); st {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTaskStatus, s)
}

// ClampProgress bounds a progress value to 0..100.
func ClampProgress(p int) int {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

// CalculateProgress is the mean of task progress rounded to one decimal
// place, or 0 when there are no tasks.
func CalculateProgress(progress []int) float64 {
	if len(progress) == 0 {
		return 0
	}
	sum := decimal.Zero
	for _, p := range progress {
		sum = sum.Add(decimal.NewFromInt(int64(p)))
	}
	mean, _ := sum.Div(decimal.NewFromInt(int64(len(progress)))).Round(1).Float64()
	return mean
}

type Project struct {
	ID          string
	Name        string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	ManagerID   *string
	Status      Status
	CreatedAt   time.Time

	MemberIDs    []string
	TaskProgress []int

	// DTO
	ManagerName *string
}

func (p Project) Progress() float64 {
	return CalculateProgress(p.TaskProgress)
}

type Task struct {
	ID          string
	ProjectID   string
	Title       string
	Description string
	AssignedTo  string
	DueDate     time.Time
	Status      TaskStatus
	Progress    int
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO
	ProjectName  *string
	AssigneeName *string
}
