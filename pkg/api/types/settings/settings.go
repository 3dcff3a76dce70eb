package settings

import (
	"errors"
	"fmt"
	"time"

	"github.com/docstokg/docstokg-web/pkg/domain"
)

type GraphLabels struct {
	Lexical  string `json:"lexical"`
	Domain   string `json:"domain"`
	Formulas string `json:"formulas"`
	Tables   string `json:"tables"`
	Figures  string `json:"figures"`
}

// Setting is the body of "GET /projects/:name/settings".
//
// The Neo4j password is never returned. Neo4jPasswordSet tells whether it is stored.
type Setting struct {
	ProjectName       string      `json:"projectName"`
	LLMProvider       string      `json:"llmProvider"`
	LLM               string      `json:"llm"`
	EmbeddingProvider string      `json:"embeddingProvider"`
	EmbeddingModel    string      `json:"embeddingModel"`
	Dimensions        *int        `json:"dimensions"`
	SimilarityMetric  string      `json:"similarityMetric"`
	GraphLabels       GraphLabels `json:"graphLabels"`
	HierarchyLevel    []string    `json:"hierarchyLevel"`
	GraphBuilderURL   string      `json:"llmGraphBuilderUrl"`
	Neo4jURI          string      `json:"neo4jUri"`
	Neo4jUsername     string      `json:"neo4jUsername"`
	Neo4jPasswordSet  bool        `json:"neo4jPasswordSet"`
	Neo4jDatabase     string      `json:"neo4jDatabase"`
	Neo4jAuraDB       bool        `json:"neo4jAuradb"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}

func ComposeSetting(s domain.Setting) Setting {
	levels := s.HierarchyLevel
	if levels == nil {
		levels = []string{}
	}
	return Setting{
		ProjectName:       s.ProjectName,
		LLMProvider:       s.LLMProvider,
		LLM:               s.LLM,
		EmbeddingProvider: s.EmbeddingProvider,
		EmbeddingModel:    s.EmbeddingModel,
		Dimensions:        s.Dimensions,
		SimilarityMetric:  s.SimilarityMetric,
		GraphLabels: GraphLabels{
			Lexical:  s.LexicalGraphLabel,
			Domain:   s.DomainGraphLabel,
			Formulas: s.FormulasGraphLabel,
			Tables:   s.TablesGraphLabel,
			Figures:  s.FiguresGraphLabel,
		},
		HierarchyLevel:   levels,
		GraphBuilderURL:  s.GraphBuilderURL,
		Neo4jURI:         s.Neo4jURI,
		Neo4jUsername:    s.Neo4jUsername,
		Neo4jPasswordSet: s.Neo4jPassword != "",
		Neo4jDatabase:    s.Neo4jDatabase,
		Neo4jAuraDB:      s.Neo4jAuraDB,
		UpdatedAt:        s.UpdatedAt,
	}
}

// Change is the body of "PUT /projects/:name/settings".
//
// An empty Neo4jPassword keeps the stored password.
type Change struct {
	LLMProvider       string      `json:"llmProvider"`
	LLM               string      `json:"llm"`
	EmbeddingProvider string      `json:"embeddingProvider"`
	EmbeddingModel    string      `json:"embeddingModel"`
	Dimensions        *int        `json:"dimensions"`
	SimilarityMetric  string      `json:"similarityMetric"`
	GraphLabels       GraphLabels `json:"graphLabels"`
	HierarchyLevel    []string    `json:"hierarchyLevel"`
	GraphBuilderURL   string      `json:"llmGraphBuilderUrl"`
	Neo4jURI          string      `json:"neo4jUri"`
	Neo4jUsername     string      `json:"neo4jUsername"`
	Neo4jPassword     string      `json:"neo4jPassword"`
	Neo4jDatabase     string      `json:"neo4jDatabase"`
	Neo4jAuraDB       bool        `json:"neo4jAuradb"`
}

var ErrInvalidDimensions = errors.New("dimensions should be positive")

func (c Change) Validate() error {
	if c.Dimensions != nil && *c.Dimensions <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDimensions, *c.Dimensions)
	}
	return nil
}

// ToDomain builds the setting of the project owned by the user.
func (c Change) ToDomain(userId int64, projectName string) domain.Setting {
	return domain.Setting{
		UserId:             userId,
		ProjectName:        projectName,
		LLMProvider:        c.LLMProvider,
		LLM:                c.LLM,
		EmbeddingProvider:  c.EmbeddingProvider,
		EmbeddingModel:     c.EmbeddingModel,
		Dimensions:         c.Dimensions,
		SimilarityMetric:   c.SimilarityMetric,
		LexicalGraphLabel:  c.GraphLabels.Lexical,
		DomainGraphLabel:   c.GraphLabels.Domain,
		FormulasGraphLabel: c.GraphLabels.Formulas,
		TablesGraphLabel:   c.GraphLabels.Tables,
		FiguresGraphLabel:  c.GraphLabels.Figures,
		HierarchyLevel:     c.HierarchyLevel,
		GraphBuilderURL:    c.GraphBuilderURL,
		Neo4jURI:           c.Neo4jURI,
		Neo4jUsername:      c.Neo4jUsername,
		Neo4jPassword:      c.Neo4jPassword,
		Neo4jDatabase:      c.Neo4jDatabase,
		Neo4jAuraDB:        c.Neo4jAuraDB,
	}
}
