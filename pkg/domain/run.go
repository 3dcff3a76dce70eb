package domain

import "time"

// Task is one of extraction tasks of a Run.
type Task string

const (
	TaskMetadata Task = "metadata"
	TaskText     Task = "text"
	TaskFigures  Task = "figures"
	TaskTables   Task = "tables"
	TaskFormulas Task = "formulas"
)

// Tasks returns all tasks, in the order they are reported.
func Tasks() []Task {
	return []Task{TaskMetadata, TaskText, TaskFigures, TaskTables, TaskFormulas}
}

// TaskSet is a set of flags, one for each Task.
//
// For Run, it tells which tasks are requested.
// For Document, it tells which tasks have been completed for the document.
type TaskSet struct {
	Metadata bool
	Text     bool
	Figures  bool
	Tables   bool
	Formulas bool
}

func (ts TaskSet) Has(t Task) bool {
	switch t {
	case TaskMetadata:
		return ts.Metadata
	case TaskText:
		return ts.Text
	case TaskFigures:
		return ts.Figures
	case TaskTables:
		return ts.Tables
	case TaskFormulas:
		return ts.Formulas
	}
	return false
}

// Enabled returns tasks in the set, keeping the order of Tasks().
func (ts TaskSet) Enabled() []Task {
	ret := []Task{}
	for _, t := range Tasks() {
		if ts.Has(t) {
			ret = append(ret, t)
		}
	}
	return ret
}

// TaskStates holds progress percentages (0-100) of each Task.
type TaskStates struct {
	Metadata int
	Text     int
	Figures  int
	Tables   int
	Formulas int
}

func (s TaskStates) Of(t Task) int {
	switch t {
	case TaskMetadata:
		return s.Metadata
	case TaskText:
		return s.Text
	case TaskFigures:
		return s.Figures
	case TaskTables:
		return s.Tables
	case TaskFormulas:
		return s.Formulas
	}
	return 0
}

// Max returns the progress of the furthest-advanced task.
func (s TaskStates) Max() int {
	m := 0
	for _, t := range Tasks() {
		if p := s.Of(t); m < p {
			m = p
		}
	}
	return m
}

type Run struct {
	Id         int64
	Tasks      TaskSet
	States     TaskStates
	IsExecuted bool
	CreatedAt  time.Time
}

func (r *Run) Equal(o *Run) bool {
	if r == nil || o == nil {
		return r == nil && o == nil
	}
	return r.Id == o.Id &&
		r.Tasks == o.Tasks &&
		r.States == o.States &&
		r.IsExecuted == o.IsExecuted &&
		r.CreatedAt.Equal(o.CreatedAt)
}

// RunSummary is a Run with the number of documents processed by it.
type RunSummary struct {
	Run
	DocumentCount int
}

func (rs RunSummary) Equal(o RunSummary) bool {
	return rs.Run.Equal(&o.Run) && rs.DocumentCount == o.DocumentCount
}

// Completion is the progress of the run as a whole.
//
// It is the progress of the furthest-advanced task, not an average.
func (rs RunSummary) Completion() int {
	return rs.States.Max()
}

type Document struct {
	DocId int64
	Name  string
	RunId int64

	// which extraction tasks have been completed for this document.
	Extracted TaskSet
}
