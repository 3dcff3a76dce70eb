package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/docstokg/docstokg-web/pkg/auth"
	"github.com/docstokg/docstokg-web/pkg/buildtime"
	kcf "github.com/docstokg/docstokg-web/pkg/configs/server"
	kpg "github.com/docstokg/docstokg-web/pkg/db/postgres"
	"github.com/docstokg/docstokg-web/pkg/echoutil"
	"github.com/docstokg/docstokg-web/pkg/utils/filewatch"
	"github.com/labstack/echo/v4"
)

const shutdownTimeout = 15 * time.Second

func main() {
	configPath := flag.String("config-path", "", "server config path")
	loglevel := flag.String("loglevel", "info", "log level. debug|info|warn|error|off")
	pversion := flag.Bool("version", false, "show version and exit")
	flag.Parse()

	if *pversion {
		fmt.Println(buildtime.VersionString())
		return
	}
	log.Printf("docstokgd %s", buildtime.VersionString())

	e := echo.New()
	e.HideBanner = true
	echoutil.SetLevel(e, *loglevel)

	// read configfile
	conf, err := kcf.Load(*configPath)
	if err != nil {
		log.Fatalf("can not read configration: %s", err)
	}

	issuer, err := auth.NewIssuer(conf.Auth().Secret(), conf.Auth().TokenTTL())
	if err != nil {
		log.Fatalf("can not set up tokens: %s", err)
	}

	metrics, err := echoutil.NewMetrics()
	if err != nil {
		log.Fatalf("can not set up metrics: %s", err)
	}

	// the pool connects on the first query.
	db := kpg.New(conf.DBURI())
	defer db.Close()

	server{
		db:           db,
		issuer:       issuer,
		metrics:      metrics,
		cookieSecure: conf.Auth().CookieSecure(),
	}.register(e)

	log.Println("registred routes:")
	for _, r := range e.Routes() {
		log.Println(r.Method, r.Path)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	watched, cancel, err := filewatch.UntilModifyContext(ctx, *configPath)
	if err != nil {
		log.Fatalf("can not watch configration: %s", err)
	}
	defer cancel()

	shutdown := make(chan struct{})
	context.AfterFunc(watched, func() {
		defer close(shutdown)
		if ctx.Err() == nil {
			log.Printf("config file is updated. quit to restart server: %s", context.Cause(watched))
		}
		graceful, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := e.Shutdown(graceful); err != nil {
			log.Printf("error on shutdown: %s", err)
		}
	})

	if err := e.Start(":" + strconv.Itoa(conf.Port())); err != nil && !errors.Is(err, http.ErrServerClosed) {
		e.Logger.Fatal(err)
	}
	<-shutdown
}
