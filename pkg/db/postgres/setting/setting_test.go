package setting_test

import (
	"context"
	"errors"
	"testing"

	"github.com/docstokg/docstokg-web/internal/testutils/pgrows"
	"github.com/docstokg/docstokg-web/pkg/cmp"
	kdb "github.com/docstokg/docstokg-web/pkg/db"
	kpgsetting "github.com/docstokg/docstokg-web/pkg/db/postgres/setting"
	"github.com/docstokg/docstokg-web/pkg/domain"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgtype"
)

var settingColumns = []string{
	"user_id", "project_name",
	"llm_provider", "llm", "embedding_provider", "embedding_model", "dimensions", "similarity_metric",
	"lexical_graph_meta_label", "domain_graph_meta_label", "formulas_graph_meta_label",
	"tables_graph_meta_label", "figures_graph_meta_label",
	"hierarchy_level", "llm_graph_builder_url",
	"neo4j_uri", "neo4j_username", "neo4j_password", "neo4j_database", "neo4j_auradb",
	"updated_at",
}

func TestGet(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		pool := pgrows.NewPool(pgrows.Result{
			Rows: pgrows.New(settingColumns, []interface{}{
				int64(42), "Thesis",
				"openai", "gpt-4o", "openai", "text-embedding-3-small", int32(1536), "cosine",
				"Lexical", "Domain", nil, nil, nil,
				"Section,Paragraph", "http://builder:8000",
				"neo4j://db:7687", "neo4j", "secret", "neo4j", false,
				nil,
			}),
		})
		testee := kpgsetting.New(pool)

		actual, err := testee.Get(context.Background(), 42, "Thesis")
		if err != nil {
			t.Fatal(err)
		}
		if actual.LLM != "gpt-4o" || actual.Dimensions == nil || *actual.Dimensions != 1536 ||
			actual.FormulasGraphLabel != "" ||
			!cmp.SliceEq(actual.HierarchyLevel, []string{"Section", "Paragraph"}) ||
			actual.Neo4jPassword != "secret" {
			t.Errorf("unexpected setting: %+v", actual)
		}
	})

	t.Run("missing", func(t *testing.T) {
		testee := kpgsetting.New(pgrows.NewPool(pgrows.Result{Rows: pgrows.New(settingColumns)}))

		if _, err := testee.Get(context.Background(), 42, "Thesis"); !kdb.IsMissing(err) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestUpsert(t *testing.T) {
	t.Run("empty values are sent as NULL", func(t *testing.T) {
		pool := pgrows.NewPool(pgrows.Result{Tag: pgconn.CommandTag("INSERT 0 1")})
		testee := kpgsetting.New(pool)

		if err := testee.Upsert(context.Background(), domain.Setting{
			UserId: 42, ProjectName: "Thesis", LLM: "gpt-4o",
		}); err != nil {
			t.Fatal(err)
		}

		args := pool.Queries[0].Args
		if len(args) != 20 {
			t.Fatalf("args: %d", len(args))
		}
		if llm := args[3].(pgtype.Text); llm.Status != pgtype.Present || llm.String != "gpt-4o" {
			t.Errorf("llm: %+v", llm)
		}
		if password := args[17].(pgtype.Text); password.Status != pgtype.Null {
			t.Errorf("empty password should be NULL to keep stored one: %+v", password)
		}
		if dim := args[6].(pgtype.Int4); dim.Status != pgtype.Null {
			t.Errorf("dimensions: %+v", dim)
		}
	})

	t.Run("missing project", func(t *testing.T) {
		pool := pgrows.NewPool(pgrows.Result{
			Err: &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation},
		})
		testee := kpgsetting.New(pool)

		err := testee.Upsert(context.Background(), domain.Setting{UserId: 42, ProjectName: "nope"})
		if !kdb.IsMissing(err) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("other errors", func(t *testing.T) {
		expectedErr := errors.New("fake")
		testee := kpgsetting.New(pgrows.NewPool(pgrows.Result{Err: expectedErr}))

		err := testee.Upsert(context.Background(), domain.Setting{UserId: 42, ProjectName: "Thesis"})
		if !errors.Is(err, expectedErr) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
