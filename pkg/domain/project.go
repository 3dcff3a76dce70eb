package domain

import (
	"fmt"
	"time"
)

type ProjectStatus string

const (
	ProjectUploading  ProjectStatus = "uploading"
	ProjectProcessing ProjectStatus = "processing"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectError      ProjectStatus = "error"
)

// ProjectStatuses returns all statuses of projects.
func ProjectStatuses() []ProjectStatus {
	return []ProjectStatus{ProjectUploading, ProjectProcessing, ProjectCompleted, ProjectError}
}

func AsProjectStatus(s string) (ProjectStatus, error) {
	for _, st := range ProjectStatuses() {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown project status: %s", s)
}

// ProjectFilter narrows projects down. Zero values match everything.
type ProjectFilter struct {
	Status ProjectStatus

	// Name matches projects having it in their name, case insensitively.
	Name string
}

// NewProject is a project to be created. It starts in ProjectUploading.
type NewProject struct {
	Name        string
	UserId      int64
	Description string
	Tags        []string
}

type Project struct {
	Name        string
	UserId      int64
	Description string
	IsFavorite  bool
	Status      ProjectStatus
	Tags        []string
	Percentage  int
	CreatedAt   time.Time
}

// Setting is a per-project configuration.
//
// Empty strings and nil mean "not configured".
type Setting struct {
	UserId      int64
	ProjectName string

	LLMProvider       string
	LLM               string
	EmbeddingProvider string
	EmbeddingModel    string
	Dimensions        *int
	SimilarityMetric  string

	LexicalGraphLabel  string
	DomainGraphLabel   string
	FormulasGraphLabel string
	TablesGraphLabel   string
	FiguresGraphLabel  string

	HierarchyLevel  []string
	GraphBuilderURL string
	Neo4jURI        string
	Neo4jUsername   string
	Neo4jPassword   string
	Neo4jDatabase   string
	Neo4jAuraDB     bool
	UpdatedAt       time.Time
}
