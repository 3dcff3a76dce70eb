package runs

import (
	"time"

	"github.com/docstokg/docstokg-web/pkg/domain"
)

type TaskProgress struct {
	Enabled  bool `json:"enabled"`
	Progress int  `json:"progress"`
}

// Progress is the current progress of a project.
type Progress struct {
	RunId      int64                   `json:"runId"`
	IsExecuted bool                    `json:"isExecuted"`
	Tasks      map[string]TaskProgress `json:"tasks"`
}

// ProgressResponse is the body of "GET /projects/:name/run-progress".
//
// Progress is null when the project has no runs.
type ProgressResponse struct {
	Progress *Progress `json:"progress"`
}

func ComposeProgress(r *domain.Run) ProgressResponse {
	if r == nil {
		return ProgressResponse{Progress: nil}
	}

	tasks := map[string]TaskProgress{}
	for _, t := range domain.Tasks() {
		tasks[string(t)] = TaskProgress{
			Enabled:  r.Tasks.Has(t),
			Progress: r.States.Of(t),
		}
	}
	return ProgressResponse{
		Progress: &Progress{
			RunId:      r.Id,
			IsExecuted: r.IsExecuted,
			Tasks:      tasks,
		},
	}
}

type TaskStates struct {
	Metadata int `json:"metadata"`
	Text     int `json:"text"`
	Figures  int `json:"figures"`
	Tables   int `json:"tables"`
	Formulas int `json:"formulas"`
}

type Summary struct {
	RunId         int64      `json:"runId"`
	ExtractedData []string   `json:"extractedData"`
	Completion    int        `json:"completion"`
	DocumentCount int        `json:"documentCount"`
	IsExecuted    bool       `json:"isExecuted"`
	CreatedAt     time.Time  `json:"createdAt"`
	TaskStates    TaskStates `json:"taskStates"`
}

// HistoryResponse is the body of "GET /projects/:name/runs".
type HistoryResponse struct {
	Runs []Summary `json:"runs"`
}

func ComposeSummary(r domain.RunSummary) Summary {
	enabled := r.Tasks.Enabled()
	extracted := make([]string, len(enabled))
	for i, t := range enabled {
		extracted[i] = string(t)
	}

	return Summary{
		RunId:         r.Id,
		ExtractedData: extracted,
		Completion:    r.Completion(),
		DocumentCount: r.DocumentCount,
		IsExecuted:    r.IsExecuted,
		CreatedAt:     r.CreatedAt,
		TaskStates: TaskStates{
			Metadata: r.States.Metadata,
			Text:     r.States.Text,
			Figures:  r.States.Figures,
			Tables:   r.States.Tables,
			Formulas: r.States.Formulas,
		},
	}
}

func ComposeHistory(rs []domain.RunSummary) HistoryResponse {
	runs := make([]Summary, len(rs))
	for i := range rs {
		runs[i] = ComposeSummary(rs[i])
	}
	return HistoryResponse{Runs: runs}
}

type Extractions struct {
	Text     bool `json:"text"`
	Metadata bool `json:"metadata"`
	Figures  bool `json:"figures"`
	Tables   bool `json:"tables"`
	Formulas bool `json:"formulas"`
}

type Document struct {
	DocId        int64       `json:"docId"`
	DocumentName string      `json:"documentName"`
	Extractions  Extractions `json:"extractions"`
}

// DocumentsResponse is the body of "GET /projects/:name/runs/:runId/documents".
type DocumentsResponse struct {
	Documents []Document `json:"documents"`
}

func ComposeDocuments(ds []domain.Document) DocumentsResponse {
	docs := make([]Document, len(ds))
	for i, d := range ds {
		docs[i] = Document{
			DocId:        d.DocId,
			DocumentName: d.Name,
			Extractions: Extractions{
				Text:     d.Extracted.Text,
				Metadata: d.Extracted.Metadata,
				Figures:  d.Extracted.Figures,
				Tables:   d.Extracted.Tables,
				Formulas: d.Extracted.Formulas,
			},
		}
	}
	return DocumentsResponse{Documents: docs}
}
