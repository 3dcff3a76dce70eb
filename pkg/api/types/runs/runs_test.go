package runs_test

import (
	"encoding/json"
	"testing"
	"time"

	apiruns "github.com/docstokg/docstokg-web/pkg/api/types/runs"
	"github.com/docstokg/docstokg-web/pkg/domain"
	"github.com/docstokg/docstokg-web/pkg/utils/try"
)

func TestComposeProgress(t *testing.T) {
	for name, testcase := range map[string]struct {
		when *domain.Run
		then string
	}{
		"no run is null": {
			when: nil,
			then: `{"progress":null}`,
		},
		"run has all five tasks": {
			when: &domain.Run{
				Id:         6,
				IsExecuted: false,
				Tasks:      domain.TaskSet{Text: true, Formulas: true},
				States:     domain.TaskStates{Text: 30},
			},
			then: `{"progress":{"runId":6,"isExecuted":false,"tasks":{` +
				`"figures":{"enabled":false,"progress":0},` +
				`"formulas":{"enabled":true,"progress":0},` +
				`"metadata":{"enabled":false,"progress":0},` +
				`"tables":{"enabled":false,"progress":0},` +
				`"text":{"enabled":true,"progress":30}` +
				`}}}`,
		},
	} {
		t.Run(name, func(t *testing.T) {
			actual := string(try.To(json.Marshal(apiruns.ComposeProgress(testcase.when))).OrFatal(t))
			if actual != testcase.then {
				t.Errorf("unmatch:\n===actual===\n%s\n===expected===\n%s", actual, testcase.then)
			}
		})
	}
}

func TestComposeHistory(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("runs are composed in order", func(t *testing.T) {
		actual := apiruns.ComposeHistory([]domain.RunSummary{
			{
				Run: domain.Run{
					Id: 6, CreatedAt: created.Add(time.Hour),
					Tasks: domain.TaskSet{Metadata: true, Text: true, Figures: true, Tables: true, Formulas: true},
				},
				DocumentCount: 1,
			},
			{
				Run: domain.Run{
					Id: 5, IsExecuted: true, CreatedAt: created,
					Tasks:  domain.TaskSet{Formulas: true, Text: true},
					States: domain.TaskStates{Text: 100, Formulas: 20},
				},
				DocumentCount: 3,
			},
		})

		if len(actual.Runs) != 2 || actual.Runs[0].RunId != 6 || actual.Runs[1].RunId != 5 {
			t.Fatalf("unexpected order: %+v", actual)
		}
		run5 := actual.Runs[1]
		if run5.Completion != 100 {
			t.Errorf("completion = %d", run5.Completion)
		}
		if len(run5.ExtractedData) != 2 || run5.ExtractedData[0] != "text" || run5.ExtractedData[1] != "formulas" {
			t.Errorf("extractedData = %v", run5.ExtractedData)
		}
		if run5.TaskStates != (apiruns.TaskStates{Text: 100, Formulas: 20}) {
			t.Errorf("taskStates = %+v", run5.TaskStates)
		}
		if run5.DocumentCount != 3 || !run5.IsExecuted || !run5.CreatedAt.Equal(created) {
			t.Errorf("unexpected summary: %+v", run5)
		}
	})

	t.Run("no runs is empty array, not null", func(t *testing.T) {
		actual := string(try.To(json.Marshal(apiruns.ComposeHistory(nil))).OrFatal(t))
		if actual != `{"runs":[]}` {
			t.Errorf("unexpected: %s", actual)
		}
	})

	t.Run("run without tasks has empty extractedData", func(t *testing.T) {
		actual := apiruns.ComposeSummary(domain.RunSummary{Run: domain.Run{Id: 1}})
		b := string(try.To(json.Marshal(actual.ExtractedData)).OrFatal(t))
		if b != `[]` {
			t.Errorf("unexpected: %s", b)
		}
	})
}

func TestComposeDocuments(t *testing.T) {
	actual := string(try.To(json.Marshal(apiruns.ComposeDocuments([]domain.Document{
		{DocId: 11, Name: "a.pdf", RunId: 5, Extracted: domain.TaskSet{Text: true}},
	}))).OrFatal(t))

	expected := `{"documents":[{"docId":11,"documentName":"a.pdf","extractions":` +
		`{"text":true,"metadata":false,"figures":false,"tables":false,"formulas":false}}]}`
	if actual != expected {
		t.Errorf("unmatch:\n===actual===\n%s\n===expected===\n%s", actual, expected)
	}

	empty := string(try.To(json.Marshal(apiruns.ComposeDocuments(nil))).OrFatal(t))
	if empty != `{"documents":[]}` {
		t.Errorf("unexpected: %s", empty)
	}
}
