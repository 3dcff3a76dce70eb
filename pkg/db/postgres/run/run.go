package run

import (
	"context"
	"fmt"

	kpool "github.com/docstokg/docstokg-web/pkg/conn/db/postgres/pool"
	"github.com/docstokg/docstokg-web/pkg/conn/db/postgres/scanner"
	kdb "github.com/docstokg/docstokg-web/pkg/db"
	"github.com/docstokg/docstokg-web/pkg/db/postgres/tables"
	"github.com/docstokg/docstokg-web/pkg/domain"
	xe "github.com/docstokg/docstokg-web/pkg/errors"
)

// a struct for DB operations related to Run
type runPG struct { // implements kdb.RunInterface
	// Db connection pool
	pool kpool.Pool
}

var _ kdb.RunInterface = &runPG{}

func New(pool kpool.Pool) *runPG {
	return &runPG{pool: pool}
}

func (m *runPG) Progress(ctx context.Context, userId int64, projectName string) (*domain.Run, error) {
	conn, err := m.pool.Acquire(ctx)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer conn.Release()

	runs, err := scanner.New[tables.Run]().QueryAll(
		ctx, conn,
		fmt.Sprintf(`
		select %s
		from "document" as "d"
		inner join "run" as "r" on "d"."id_run" = "r"."id"
		where "d"."user_id" = $1 and "d"."project_name" = $2
		order by "r"."id" desc
		limit 1
		`, tables.RunColumns),
		userId, projectName,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	if len(runs) == 0 {
		return nil, nil
	}

	run := runs[0].ToDomain()
	return &run, nil
}

func (m *runPG) History(ctx context.Context, userId int64, projectName string) ([]domain.RunSummary, error) {
	conn, err := m.pool.Acquire(ctx)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer conn.Release()

	// conditions on "d" drop runs without documents of the project.
	runs, err := scanner.New[tables.RunSummary]().QueryAll(
		ctx, conn,
		fmt.Sprintf(`
		select %s, count(distinct "d"."doc_id") as "document_count"
		from "run" as "r"
		left join "document" as "d" on "d"."id_run" = "r"."id"
		where "d"."user_id" = $1 and "d"."project_name" = $2
		group by "r"."id"
		order by "r"."id" desc
		`, tables.RunColumns),
		userId, projectName,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}

	ret := make([]domain.RunSummary, len(runs))
	for i := range runs {
		ret[i] = runs[i].ToDomain()
	}
	return ret, nil
}

func (m *runPG) Documents(ctx context.Context, userId int64, projectName string, runId int64) ([]domain.Document, error) {
	conn, err := m.pool.Acquire(ctx)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer conn.Release()

	docs, err := scanner.New[tables.Document]().QueryAll(
		ctx, conn,
		`
		select
			"doc_id", "document_name", "id_run",
			"metadata", "text", "figures", "tables", "formulas"
		from "document"
		where "user_id" = $1 and "project_name" = $2 and "id_run" = $3
		order by "document_name" collate "C" asc, "doc_id" asc
		`,
		userId, projectName, runId,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}

	ret := make([]domain.Document, len(docs))
	for i := range docs {
		ret[i] = docs[i].ToDomain()
	}
	return ret, nil
}
