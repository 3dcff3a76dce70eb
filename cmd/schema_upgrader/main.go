package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	kcf "github.com/docstokg/docstokg-web/pkg/configs/server"
	kpool "github.com/docstokg/docstokg-web/pkg/conn/db/postgres/pool"
	kpgschema "github.com/docstokg/docstokg-web/pkg/db/postgres/schema"
	"github.com/docstokg/docstokg-web/pkg/utils/try"
	"github.com/youta-t/flarc"
)

type Flag struct {
	DBURI  string `flag:"dburi" help:"The connection URI of the database."`
	Schema string `flag:"schema" help:"The path to the schema repository directory. Bundled schema is used when empty."`
	Check  bool   `flag:"check" help:"Print the schema version applied to the database, and do not upgrade."`
}

func main() {
	logger := log.Default()
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt, os.Kill,
	)
	defer cancel()

	cmd := try.To(flarc.NewCommand(
		"database schema upgrader",
		Flag{
			DBURI:  os.Getenv(kcf.EnvDBURI),
			Schema: os.Getenv("DOCSTOKG_SCHEMA"),
			Check:  false,
		},
		flarc.Args{},
		func(ctx context.Context, c flarc.Commandline[Flag], _ []any) error {
			flags := c.Flags()
			if flags.DBURI == "" {
				return fmt.Errorf(
					"%w: flag `--dburi` (or, envvar %s) is required", flarc.ErrUsage, kcf.EnvDBURI,
				)
			}

			repository := kpgschema.Repository()
			if flags.Schema != "" {
				repository = os.DirFS(flags.Schema)
			}

			pool := kpool.Lazy(flags.DBURI)
			defer pool.Close()
			schema := kpgschema.New(pool, repository)

			if flags.Check {
				v, err := schema.Version(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(c.Stdout(), v)
				return nil
			}

			before, err := schema.Version(ctx)
			if err != nil {
				return err
			}
			if err := schema.Upgrade(ctx); err != nil {
				return err
			}
			after, err := schema.Version(ctx)
			if err != nil {
				return err
			}
			logger.Printf("schema version: %d -> %d", before, after)
			return nil
		},
	)).OrFatal(logger)

	os.Exit(flarc.Run(ctx, cmd))
}
