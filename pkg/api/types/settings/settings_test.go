package settings_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	apisettings "github.com/docstokg/docstokg-web/pkg/api/types/settings"
	"github.com/docstokg/docstokg-web/pkg/domain"
	"github.com/docstokg/docstokg-web/pkg/utils/try"
)

func ptr[T any](v T) *T {
	return &v
}

func TestComposeSetting_HidesPassword(t *testing.T) {
	for name, testcase := range map[string]struct {
		when domain.Setting
		then bool
	}{
		"password is stored":     {when: domain.Setting{Neo4jPassword: "hunter2"}, then: true},
		"password is not stored": {when: domain.Setting{}, then: false},
	} {
		t.Run(name, func(t *testing.T) {
			actual := apisettings.ComposeSetting(testcase.when)
			if actual.Neo4jPasswordSet != testcase.then {
				t.Errorf("neo4jPasswordSet = %v", actual.Neo4jPasswordSet)
			}

			body := string(try.To(json.Marshal(actual)).OrFatal(t))
			if strings.Contains(body, "hunter2") || strings.Contains(body, `"neo4jPassword"`) {
				t.Errorf("password leaks: %s", body)
			}
			if !strings.Contains(body, `"hierarchyLevel":[]`) {
				t.Errorf("hierarchyLevel should be an empty array: %s", body)
			}
		})
	}
}

func TestChange_Validate(t *testing.T) {
	for name, testcase := range map[string]struct {
		when *int
		then error
	}{
		"no dimensions":       {when: nil, then: nil},
		"positive dimensions": {when: ptr(1536), then: nil},
		"zero dimensions":     {when: ptr(0), then: apisettings.ErrInvalidDimensions},
		"negative dimensions": {when: ptr(-3), then: apisettings.ErrInvalidDimensions},
	} {
		t.Run(name, func(t *testing.T) {
			err := apisettings.Change{Dimensions: testcase.when}.Validate()
			if testcase.then == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, testcase.then) {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestChange_ToDomain(t *testing.T) {
	change := apisettings.Change{}
	body := `{
		"llmProvider": "openai", "llm": "gpt-4o",
		"embeddingProvider": "openai", "embeddingModel": "text-embedding-3-small",
		"dimensions": 1536, "similarityMetric": "cosine",
		"graphLabels": {"lexical": "Lex", "domain": "Dom", "formulas": "F", "tables": "T", "figures": "Fig"},
		"hierarchyLevel": ["chapter", "section"],
		"llmGraphBuilderUrl": "http://builder:8000",
		"neo4jUri": "bolt://neo4j:7687", "neo4jUsername": "neo4j", "neo4jPassword": "pw",
		"neo4jDatabase": "thesis", "neo4jAuradb": true
	}`
	if err := json.Unmarshal([]byte(body), &change); err != nil {
		t.Fatal(err)
	}

	actual := change.ToDomain(42, "Thesis")
	if actual.UserId != 42 || actual.ProjectName != "Thesis" {
		t.Errorf("unexpected key: %+v", actual)
	}
	if actual.Dimensions == nil || *actual.Dimensions != 1536 {
		t.Errorf("dimensions = %v", actual.Dimensions)
	}
	if actual.LexicalGraphLabel != "Lex" || actual.FiguresGraphLabel != "Fig" {
		t.Errorf("unexpected labels: %+v", actual)
	}
	if len(actual.HierarchyLevel) != 2 || actual.HierarchyLevel[1] != "section" {
		t.Errorf("hierarchyLevel = %v", actual.HierarchyLevel)
	}
	if actual.Neo4jPassword != "pw" || !actual.Neo4jAuraDB || actual.GraphBuilderURL != "http://builder:8000" {
		t.Errorf("unexpected neo4j: %+v", actual)
	}
}
