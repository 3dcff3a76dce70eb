package tables

import (
	"github.com/docstokg/docstokg-web/pkg/db/postgres/marshal"
	"github.com/docstokg/docstokg-web/pkg/domain"
	"github.com/jackc/pgtype"
)

// golang representation of records of PostgreSQL tables.
//
// Nullable columns are held in pgtype values, and converted into domain values by `ToDomain`.

// columns of "run", as selected by RunColumns.
type Run struct {
	Id         int64              `sql:"id"`
	IsExecuted pgtype.Bool        `sql:"is_executed"`
	CreatedAt  pgtype.Timestamptz `sql:"created_at"`

	ExtractMetadata pgtype.Bool `sql:"extract_metadata"`
	ExtractText     pgtype.Bool `sql:"extract_text"`
	ExtractFigures  pgtype.Bool `sql:"extract_figures"`
	ExtractTables   pgtype.Bool `sql:"extract_tables"`
	ExtractFormulas pgtype.Bool `sql:"extract_formulas"`

	MetadataState pgtype.Int4 `sql:"metadata_state"`
	TextState     pgtype.Int4 `sql:"text_state"`
	FiguresState  pgtype.Int4 `sql:"figures_state"`
	TablesState   pgtype.Int4 `sql:"tables_state"`
	FormulasState pgtype.Int4 `sql:"formulas_state"`
}

// RunColumns are columns to be scanned into Run, qualified with table alias r.
const RunColumns = `
	"r"."id", "r"."is_executed", "r"."created_at",
	"r"."extract_metadata", "r"."extract_text", "r"."extract_figures",
	"r"."extract_tables", "r"."extract_formulas",
	"r"."metadata_state", "r"."text_state", "r"."figures_state",
	"r"."tables_state", "r"."formulas_state"`

func (r Run) ToDomain() domain.Run {
	return domain.Run{
		Id:         r.Id,
		IsExecuted: marshal.Flag(r.IsExecuted),
		CreatedAt:  marshal.Time(r.CreatedAt),
		Tasks: domain.TaskSet{
			Metadata: marshal.Flag(r.ExtractMetadata),
			Text:     marshal.Flag(r.ExtractText),
			Figures:  marshal.Flag(r.ExtractFigures),
			Tables:   marshal.Flag(r.ExtractTables),
			Formulas: marshal.Flag(r.ExtractFormulas),
		},
		States: domain.TaskStates{
			Metadata: marshal.Percentage(r.MetadataState),
			Text:     marshal.Percentage(r.TextState),
			Figures:  marshal.Percentage(r.FiguresState),
			Tables:   marshal.Percentage(r.TablesState),
			Formulas: marshal.Percentage(r.FormulasState),
		},
	}
}

// Run with count of documents.
type RunSummary struct {
	Run
	DocumentCount int64 `sql:"document_count"`
}

func (r RunSummary) ToDomain() domain.RunSummary {
	return domain.RunSummary{
		Run:           r.Run.ToDomain(),
		DocumentCount: int(r.DocumentCount),
	}
}

type Document struct {
	DocId        int64       `sql:"doc_id"`
	DocumentName pgtype.Text `sql:"document_name"`
	IdRun        pgtype.Int8 `sql:"id_run"`

	Metadata pgtype.Bool `sql:"metadata"`
	Text     pgtype.Bool `sql:"text"`
	Figures  pgtype.Bool `sql:"figures"`
	Tables   pgtype.Bool `sql:"tables"`
	Formulas pgtype.Bool `sql:"formulas"`
}

func (d Document) ToDomain() domain.Document {
	runId := int64(0)
	if d.IdRun.Status == pgtype.Present {
		runId = d.IdRun.Int
	}
	return domain.Document{
		DocId: d.DocId,
		Name:  marshal.Text(d.DocumentName),
		RunId: runId,
		Extracted: domain.TaskSet{
			Metadata: marshal.Flag(d.Metadata),
			Text:     marshal.Flag(d.Text),
			Figures:  marshal.Flag(d.Figures),
			Tables:   marshal.Flag(d.Tables),
			Formulas: marshal.Flag(d.Formulas),
		},
	}
}

type User struct {
	UserId    int64              `sql:"user_id"`
	Email     string             `sql:"email"`
	FirstName pgtype.Text        `sql:"first_name"`
	LastName  pgtype.Text        `sql:"last_name"`
	Role      string             `sql:"role"`
	IsBlocked pgtype.Bool        `sql:"is_blocked"`
	Password  []byte             `sql:"password"`
	CreatedAt pgtype.Timestamptz `sql:"created_at"`
}

func (u User) ToDomain() domain.User {
	role, err := domain.AsRole(u.Role)
	if err != nil {
		// unknown roles are not privileged.
		role = domain.RoleUser
	}
	return domain.User{
		Id:           u.UserId,
		Email:        u.Email,
		FirstName:    marshal.Text(u.FirstName),
		LastName:     marshal.Text(u.LastName),
		Role:         role,
		IsBlocked:    marshal.Flag(u.IsBlocked),
		PasswordHash: u.Password,
		CreatedAt:    marshal.Time(u.CreatedAt),
	}
}

type Project struct {
	ProjectName string             `sql:"project_name"`
	UserId      int64              `sql:"user_id"`
	Description pgtype.Text        `sql:"description"`
	IsFavorite  pgtype.Bool        `sql:"is_favorite"`
	Status      pgtype.Text        `sql:"status"`
	Tags        pgtype.Text        `sql:"tags"`
	Percentage  pgtype.Int4        `sql:"percentage"`
	CreatedAt   pgtype.Timestamptz `sql:"created_at"`
}

func (p Project) ToDomain() domain.Project {
	status := domain.ProjectStatus(marshal.Text(p.Status))
	if status == "" {
		status = domain.ProjectUploading
	}
	return domain.Project{
		Name:        p.ProjectName,
		UserId:      p.UserId,
		Description: marshal.Text(p.Description),
		IsFavorite:  marshal.Flag(p.IsFavorite),
		Status:      status,
		Tags:        marshal.List(p.Tags),
		Percentage:  marshal.Percentage(p.Percentage),
		CreatedAt:   marshal.Time(p.CreatedAt),
	}
}

type Setting struct {
	UserId      int64  `sql:"user_id"`
	ProjectName string `sql:"project_name"`

	LLMProvider       pgtype.Text `sql:"llm_provider"`
	LLM               pgtype.Text `sql:"llm"`
	EmbeddingProvider pgtype.Text `sql:"embedding_provider"`
	EmbeddingModel    pgtype.Text `sql:"embedding_model"`
	Dimensions        pgtype.Int4 `sql:"dimensions"`
	SimilarityMetric  pgtype.Text `sql:"similarity_metric"`

	LexicalGraphMetaLabel  pgtype.Text `sql:"lexical_graph_meta_label"`
	DomainGraphMetaLabel   pgtype.Text `sql:"domain_graph_meta_label"`
	FormulasGraphMetaLabel pgtype.Text `sql:"formulas_graph_meta_label"`
	TablesGraphMetaLabel   pgtype.Text `sql:"tables_graph_meta_label"`
	FiguresGraphMetaLabel  pgtype.Text `sql:"figures_graph_meta_label"`

	HierarchyLevel     pgtype.Text        `sql:"hierarchy_level"`
	LLMGraphBuilderURL pgtype.Text        `sql:"llm_graph_builder_url"`
	Neo4jURI           pgtype.Text        `sql:"neo4j_uri"`
	Neo4jUsername      pgtype.Text        `sql:"neo4j_username"`
	Neo4jPassword      pgtype.Text        `sql:"neo4j_password"`
	Neo4jDatabase      pgtype.Text        `sql:"neo4j_database"`
	Neo4jAuraDB        pgtype.Bool        `sql:"neo4j_auradb"`
	UpdatedAt          pgtype.Timestamptz `sql:"updated_at"`
}

const SettingColumns = `
	"user_id", "project_name",
	"llm_provider", "llm", "embedding_provider", "embedding_model", "dimensions", "similarity_metric",
	"lexical_graph_meta_label", "domain_graph_meta_label", "formulas_graph_meta_label",
	"tables_graph_meta_label", "figures_graph_meta_label",
	"hierarchy_level", "llm_graph_builder_url",
	"neo4j_uri", "neo4j_username", "neo4j_password", "neo4j_database", "neo4j_auradb",
	"updated_at"`

func (s Setting) ToDomain() domain.Setting {
	return domain.Setting{
		UserId:             s.UserId,
		ProjectName:        s.ProjectName,
		LLMProvider:        marshal.Text(s.LLMProvider),
		LLM:                marshal.Text(s.LLM),
		EmbeddingProvider:  marshal.Text(s.EmbeddingProvider),
		EmbeddingModel:     marshal.Text(s.EmbeddingModel),
		Dimensions:         marshal.Int(s.Dimensions),
		SimilarityMetric:   marshal.Text(s.SimilarityMetric),
		LexicalGraphLabel:  marshal.Text(s.LexicalGraphMetaLabel),
		DomainGraphLabel:   marshal.Text(s.DomainGraphMetaLabel),
		FormulasGraphLabel: marshal.Text(s.FormulasGraphMetaLabel),
		TablesGraphLabel:   marshal.Text(s.TablesGraphMetaLabel),
		FiguresGraphLabel:  marshal.Text(s.FiguresGraphMetaLabel),
		HierarchyLevel:     marshal.List(s.HierarchyLevel),
		GraphBuilderURL:    marshal.Text(s.LLMGraphBuilderURL),
		Neo4jURI:           marshal.Text(s.Neo4jURI),
		Neo4jUsername:      marshal.Text(s.Neo4jUsername),
		Neo4jPassword:      marshal.Text(s.Neo4jPassword),
		Neo4jDatabase:      marshal.Text(s.Neo4jDatabase),
		Neo4jAuraDB:        marshal.Flag(s.Neo4jAuraDB),
		UpdatedAt:          marshal.Time(s.UpdatedAt),
	}
}
