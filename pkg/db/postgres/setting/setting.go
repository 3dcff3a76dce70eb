package setting

import (
	"context"
	"fmt"

	kpool "github.com/docstokg/docstokg-web/pkg/conn/db/postgres/pool"
	"github.com/docstokg/docstokg-web/pkg/conn/db/postgres/scanner"
	kdb "github.com/docstokg/docstokg-web/pkg/db"
	kpgerr "github.com/docstokg/docstokg-web/pkg/db/postgres/errors"
	"github.com/docstokg/docstokg-web/pkg/db/postgres/marshal"
	"github.com/docstokg/docstokg-web/pkg/db/postgres/tables"
	"github.com/docstokg/docstokg-web/pkg/domain"
	xe "github.com/docstokg/docstokg-web/pkg/errors"
)

type settingPG struct { // implements kdb.SettingInterface
	pool kpool.Pool
}

var _ kdb.SettingInterface = &settingPG{}

func New(pool kpool.Pool) *settingPG {
	return &settingPG{pool: pool}
}

func missing(userId int64, projectName string) error {
	return kpgerr.Missing{
		Table:    "setting",
		Identity: fmt.Sprintf("user_id=%d, project_name=%s", userId, projectName),
	}
}

func (m *settingPG) Get(ctx context.Context, userId int64, projectName string) (domain.Setting, error) {
	conn, err := m.pool.Acquire(ctx)
	if err != nil {
		return domain.Setting{}, xe.Wrap(err)
	}
	defer conn.Release()

	settings, err := scanner.New[tables.Setting]().QueryAll(
		ctx, conn,
		fmt.Sprintf(
			`select %s from "setting" where "user_id" = $1 and "project_name" = $2`,
			tables.SettingColumns,
		),
		userId, projectName,
	)
	if err != nil {
		return domain.Setting{}, xe.Wrap(err)
	}
	if len(settings) == 0 {
		return domain.Setting{}, missing(userId, projectName)
	}
	return settings[0].ToDomain(), nil
}

// Upsert creates or replaces the setting.
//
// An empty Neo4jPassword keeps the stored password.
func (m *settingPG) Upsert(ctx context.Context, s domain.Setting) error {
	conn, err := m.pool.Acquire(ctx)
	if err != nil {
		return xe.Wrap(err)
	}
	defer conn.Release()

	if _, err := conn.Exec(
		ctx,
		`
		insert into "setting" (
			"user_id", "project_name",
			"llm_provider", "llm", "embedding_provider", "embedding_model",
			"dimensions", "similarity_metric",
			"lexical_graph_meta_label", "domain_graph_meta_label", "formulas_graph_meta_label",
			"tables_graph_meta_label", "figures_graph_meta_label",
			"hierarchy_level", "llm_graph_builder_url",
			"neo4j_uri", "neo4j_username", "neo4j_password", "neo4j_database", "neo4j_auradb"
		)
		values (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20
		)
		on conflict ("user_id", "project_name") do update set
			"llm_provider" = excluded."llm_provider",
			"llm" = excluded."llm",
			"embedding_provider" = excluded."embedding_provider",
			"embedding_model" = excluded."embedding_model",
			"dimensions" = excluded."dimensions",
			"similarity_metric" = excluded."similarity_metric",
			"lexical_graph_meta_label" = excluded."lexical_graph_meta_label",
			"domain_graph_meta_label" = excluded."domain_graph_meta_label",
			"formulas_graph_meta_label" = excluded."formulas_graph_meta_label",
			"tables_graph_meta_label" = excluded."tables_graph_meta_label",
			"figures_graph_meta_label" = excluded."figures_graph_meta_label",
			"hierarchy_level" = excluded."hierarchy_level",
			"llm_graph_builder_url" = excluded."llm_graph_builder_url",
			"neo4j_uri" = excluded."neo4j_uri",
			"neo4j_username" = excluded."neo4j_username",
			"neo4j_password" = coalesce(excluded."neo4j_password", "setting"."neo4j_password"),
			"neo4j_database" = excluded."neo4j_database",
			"neo4j_auradb" = excluded."neo4j_auradb",
			"updated_at" = now()
		`,
		s.UserId, s.ProjectName,
		marshal.NullableText(s.LLMProvider),
		marshal.NullableText(s.LLM),
		marshal.NullableText(s.EmbeddingProvider),
		marshal.NullableText(s.EmbeddingModel),
		marshal.NullableInt(s.Dimensions),
		marshal.NullableText(s.SimilarityMetric),
		marshal.NullableText(s.LexicalGraphLabel),
		marshal.NullableText(s.DomainGraphLabel),
		marshal.NullableText(s.FormulasGraphLabel),
		marshal.NullableText(s.TablesGraphLabel),
		marshal.NullableText(s.FiguresGraphLabel),
		marshal.JoinList(s.HierarchyLevel),
		marshal.NullableText(s.GraphBuilderURL),
		marshal.NullableText(s.Neo4jURI),
		marshal.NullableText(s.Neo4jUsername),
		marshal.NullableText(s.Neo4jPassword),
		marshal.NullableText(s.Neo4jDatabase),
		s.Neo4jAuraDB,
	); err != nil {
		if kpgerr.IsForeignKeyViolation(err) {
			// the project is missing.
			return kpgerr.Missing{
				Table:    "project",
				Identity: fmt.Sprintf("user_id=%d, project_name=%s", s.UserId, s.ProjectName),
			}
		}
		return xe.Wrap(err)
	}
	return nil
}
