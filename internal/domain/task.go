package domain

import "encoding/json"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// PhaseAdHoc marks tasks belonging to the ad-hoc board instead of the
// phase timeline.
const PhaseAdHoc = "Ad-hoc"

type Task struct {
	ID          int32      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	Phase       string     `json:"phase"`
	OrderIndex  int32      `json:"order_index"`
	// TechnicalDetails is a JSON text column; use Metadata to read it.
	TechnicalDetails string `json:"technical_details,omitempty"`
}

func (t *Task) IsAdHoc() bool {
	return t.Phase == PhaseAdHoc
}

// NextStatus cycles pending -> in_progress -> completed -> pending on the
// timeline board.
func (s TaskStatus) NextStatus() TaskStatus {
	switch s {
	case TaskStatusPending:
		return TaskStatusInProgress
	case TaskStatusInProgress:
		return TaskStatusCompleted
	default:
		return TaskStatusPending
	}
}

// ToggleStatus flips completed <-> pending on the ad-hoc board.
func (s TaskStatus) ToggleStatus() TaskStatus {
	if s == TaskStatusCompleted {
		return TaskStatusPending
	}
	return TaskStatusCompleted
}

type TaskMetadata struct {
	Category string `json:"category"`
	Priority string `json:"priority"`
	Assignee string `json:"assignee"`
}

const (
	taskCategoryGeneral   = "general"
	taskCategoryTechnical = "technical"
	taskPriorityMedium    = "medium"
	taskAssigneeSelf      = "me"
)

// Metadata parses the technical_details JSON blob. Malformed JSON or
// missing fields fall back to defaults instead of failing: category
// "general" for ad-hoc tasks and "technical" for phase tasks, priority
// "medium", assignee "me".
func (t *Task) Metadata() TaskMetadata {
	var meta TaskMetadata
	if t.TechnicalDetails != "" {
		// Parse failures leave meta zero-valued and fall through to defaults.
		_ = json.Unmarshal([]byte(t.TechnicalDetails), &meta)
	}
	if meta.Category == "" {
		if t.IsAdHoc() {
			meta.Category = taskCategoryGeneral
		} else {
			meta.Category = taskCategoryTechnical
		}
	}
	if meta.Priority == "" {
		meta.Priority = taskPriorityMedium
	}
	if meta.Assignee == "" {
		meta.Assignee = taskAssigneeSelf
	}
	return meta
}
