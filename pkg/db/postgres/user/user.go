package user

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

const userColumns = `
	"user_id", "email", "first_name", "last_name", "role", "is_blocked", "password", "created_at"`

type userPG struct { // implements kdb.UserInterface
	pool kpool.Pool
}

var _ kdb.UserInterface = &userPG{}

func New(pool kpool.Pool) *userPG {
	return &userPG{pool: pool}
}

func (m *userPG) Register(ctx context.Context, user domain.NewUser) (int64, error) {
	conn, err := m.pool.Acquire(ctx)
	if err != nil {
		return 0, xe.Wrap(err)
	}
	defer conn.Release()

	var userId int64
	if err := conn.QueryRow(
		ctx,
		`
		insert into "user" ("email", "password", "first_name", "last_name", "role")
		values ($1, $2, $3, $4, 'user')
		returning "user_id"
		`,
		user.Email, user.PasswordHash,
		marshal.NullableText(user.FirstName), marshal.NullableText(user.LastName),
	).Scan(&userId); err != nil {
		if kpgerr.IsUniqueViolation(err) {
			return 0, kpgerr.Conflict{
				Table:    "user",
				Identity: fmt.Sprintf("email=%s", user.Email),
				Cause:    err,
			}
		}
		return 0, xe.Wrap(err)
	}
	return userId, nil
}

func (m *userPG) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	conn, err := m.pool.Acquire(ctx)
	if err != nil {
		return domain.User{}, xe.Wrap(err)
	}
	defer conn.Release()

	users, err := scanner.New[tables.User]().QueryAll(
		ctx, conn,
		fmt.Sprintf(`select %s from "user" where "email" = $1`, userColumns),
		email,
	)
	if err != nil {
		return domain.User{}, xe.Wrap(err)
	}
	if len(users) == 0 {
		return domain.User{}, kpgerr.Missing{
			Table: "user", Identity: fmt.Sprintf("email=%s", email),
		}
	}
	return users[0].ToDomain(), nil
}

func (m *userPG) List(ctx context.Context) ([]domain.User, error) {
	conn, err := m.pool.Acquire(ctx)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer conn.Release()

	users, err := scanner.New[tables.User]().QueryAll(
		ctx, conn,
		fmt.Sprintf(`select %s from "user" order by "user_id"`, userColumns),
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}

	ret := make([]domain.User, len(users))
	for i := range users {
		ret[i] = users[i].ToDomain()
	}
	return ret, nil
}

func (m *userPG) SetBlocked(ctx context.Context, userId int64, isBlocked bool) error {
	conn, err := m.pool.Acquire(ctx)
	if err != nil {
		return xe.Wrap(err)
	}
	defer conn.Release()

	// missing user is not an error. the row count is not checked.
	// a user already in the state is left untouched, "updated_at" included.
	if _, err := conn.Exec(
		ctx,
		`
		update "user" set "is_blocked" = $2, "updated_at" = now()
		where "user_id" = $1 and "is_blocked" is distinct from $2
		`,
		userId, isBlocked,
	); err != nil {
		return xe.Wrap(err)
	}
	return nil
}

func (m *userPG) Delete(ctx context.Context, userId int64) error {
	conn, err := m.pool.Acquire(ctx)
	if err != nil {
		return xe.Wrap(err)
	}
	defer conn.Release()

	if _, err := conn.Exec(
		ctx, `delete from "user" where "user_id" = $1`, userId,
	); err != nil {
		return xe.Wrap(err)
	}
	return nil
}
