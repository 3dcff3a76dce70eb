package project

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

type projectPG struct { // implements kdb.ProjectInterface
	pool kpool.Pool
}

var _ kdb.ProjectInterface = &projectPG{}

func New(pool kpool.Pool) *projectPG {
	return &projectPG{pool: pool}
}

const projectColumns = `
	"project_name", "user_id", "description", "is_favorite",
	"status", "tags", "percentage", "created_at"`

func missing(userId int64, projectName string) error {
	return kpgerr.Missing{
		Table:    "project",
		Identity: fmt.Sprintf("user_id=%d, project_name=%s", userId, projectName),
	}
}

func (m *projectPG) List(ctx context.Context, userId int64, filter domain.ProjectFilter) ([]domain.Project, error) {
	conn, err := m.pool.Acquire(ctx)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer conn.Release()

	projects, err := scanner.New[tables.Project]().QueryAll(
		ctx, conn,
		`
		select `+projectColumns+`
		from "project"
		where "user_id" = $1
			and ($2::text = '' or "status" = $2::text)
			and strpos(lower("project_name"), lower($3::text)) > 0
		order by "created_at" desc, "project_name" asc
		`,
		userId, string(filter.Status), filter.Name,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}

	ret := make([]domain.Project, len(projects))
	for i := range projects {
		ret[i] = projects[i].ToDomain()
	}
	return ret, nil
}

func (m *projectPG) Create(ctx context.Context, project domain.NewProject) (domain.Project, error) {
	conn, err := m.pool.Acquire(ctx)
	if err != nil {
		return domain.Project{}, xe.Wrap(err)
	}
	defer conn.Release()

	created, err := scanner.New[tables.Project]().QueryAll(
		ctx, conn,
		`
		insert into "project" ("project_name", "user_id", "description", "tags")
		values ($1, $2, $3, $4)
		returning `+projectColumns,
		project.Name, project.UserId,
		marshal.NullableText(project.Description), marshal.JoinList(project.Tags),
	)
	if err != nil {
		if kpgerr.IsUniqueViolation(err) {
			return domain.Project{}, kpgerr.Conflict{
				Table:    "project",
				Identity: fmt.Sprintf("user_id=%d, project_name=%s", project.UserId, project.Name),
				Cause:    err,
			}
		}
		return domain.Project{}, xe.Wrap(err)
	}
	if len(created) == 0 {
		return domain.Project{}, xe.Wrap(fmt.Errorf("project is not returned: %s", project.Name))
	}
	return created[0].ToDomain(), nil
}

// Delete deletes the project and documents in it.
//
// Runs are not deleted. Without documents, they are no longer reported for the project.
func (m *projectPG) Delete(ctx context.Context, userId int64, projectName string) error {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	// settings are deleted by cascade.
	tag, err := tx.Exec(
		ctx,
		`delete from "project" where "user_id" = $1 and "project_name" = $2`,
		userId, projectName,
	)
	if err != nil {
		return xe.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return missing(userId, projectName)
	}

	if _, err := tx.Exec(
		ctx,
		`delete from "document" where "user_id" = $1 and "project_name" = $2`,
		userId, projectName,
	); err != nil {
		return xe.Wrap(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return xe.Wrap(err)
	}
	return nil
}

func (m *projectPG) SetFavorite(ctx context.Context, userId int64, projectName string, favorite bool) error {
	conn, err := m.pool.Acquire(ctx)
	if err != nil {
		return xe.Wrap(err)
	}
	defer conn.Release()

	tag, err := conn.Exec(
		ctx,
		`
		update "project" set "is_favorite" = $3, "updated_at" = now()
		where "user_id" = $1 and "project_name" = $2
		`,
		userId, projectName, favorite,
	)
	if err != nil {
		return xe.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return missing(userId, projectName)
	}
	return nil
}
