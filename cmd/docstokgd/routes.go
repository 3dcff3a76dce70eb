package main

import (
	"github.com/docstokg/docstokg-web/cmd/docstokgd/handlers"
	"github.com/docstokg/docstokg-web/pkg/auth"
	kdb "github.com/docstokg/docstokg-web/pkg/db"
	"github.com/docstokg/docstokg-web/pkg/echoutil"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	paramProject = "name"
	paramRunId   = "runId"
	paramUserId  = "id"

	// request bodies are small JSON documents.
	bodyLimit = "1M"
)

type server struct {
	db           kdb.Database
	issuer       *auth.Issuer
	metrics      *echoutil.Metrics
	cookieSecure bool
}

// register installs middlewares and routes into e.
//
// For each API route, the credential check runs first, then the schema is ensured,
// and then the handler runs.
func (s server) register(e *echo.Echo) {
	e.HTTPErrorHandler = echoutil.ErrorHandler
	e.Use(
		middleware.Recover(),
		s.metrics.Middleware,
		echoutil.LogHandlerFunc,
		middleware.BodyLimit(bodyLimit),
		auth.Middleware(s.issuer),
	)

	e.GET("/metrics", s.metrics.Handler())

	schema := echoutil.SchemaGuard(s.db.Schema())
	api := e.Group("/api")

	{
		a := api.Group("/auth")
		a.POST("/register", handlers.RegisterHandler(s.db.Users()), schema)
		a.POST("/login", handlers.LoginHandler(s.db.Users(), s.issuer, s.cookieSecure), schema)
		a.POST("/logout", handlers.LogoutHandler(s.cookieSecure))
		a.GET("/me", handlers.MeHandler(), auth.RequireUser)
	}

	{
		admin := api.Group("/admin", auth.RequireAdmin, schema)
		admin.GET("/users", handlers.ListUsersHandler(s.db.Users()))
		admin.PATCH("/users/:"+paramUserId, handlers.SetUserBlockedHandler(s.db.Users(), paramUserId))
		admin.DELETE("/users/:"+paramUserId, handlers.DeleteUserHandler(s.db.Users(), paramUserId))
	}

	{
		p := api.Group("/projects", auth.RequireUser, schema)
		p.GET("", handlers.ListProjectsHandler(s.db.Projects()))
		p.POST("", handlers.CreateProjectHandler(s.db.Projects()))

		project := "/:" + paramProject
		p.DELETE(project, handlers.DeleteProjectHandler(s.db.Projects(), paramProject))
		p.PUT(project+"/favorite", handlers.PutFavoriteHandler(s.db.Projects(), paramProject, true))
		p.DELETE(project+"/favorite", handlers.PutFavoriteHandler(s.db.Projects(), paramProject, false))

		p.GET(project+"/settings", handlers.GetSettingHandler(s.db.Settings(), paramProject))
		p.PUT(project+"/settings", handlers.PutSettingHandler(s.db.Settings(), paramProject))

		p.GET(project+"/run-progress", handlers.GetRunProgressHandler(s.db.Runs(), paramProject))
		p.GET(project+"/runs", handlers.GetRunHistoryHandler(s.db.Runs(), paramProject))
		p.GET(
			project+"/runs/:"+paramRunId+"/documents",
			handlers.GetRunDocumentsHandler(s.db.Runs(), paramProject, paramRunId),
		)
	}

	api.GET("/ui/shell", handlers.GetShellHandler(), auth.RequireUser)
}
