// Copyright 2026 xgfone
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"github.com/xgfone/go-tools/v7/lifecycle"
	"github.com/xgfone/klog/v3"
	"github.com/xgfone/ship/v2"

	"github.com/xgfone/cronparse"
	"github.com/xgfone/cronparse/crontab"
)

// maxBodySize is the maximum size of the crontab file uploaded.
const maxBodySize = 1024 * 1024

func getServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the HTTP service to parse the crontab expressions",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Value:   "127.0.0.1:8080",
				Usage:   "The address that the HTTP server listens on",
				EnvVars: []string{"CRONPARSE_ADDR"},
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Value:   time.Second * 10,
				Usage:   "The timeout to read the request and write the response",
				EnvVars: []string{"CRONPARSE_TIMEOUT"},
			},
		},
		Action: func(c *cli.Context) error {
			return runServer(c.Context, c.String("addr"), c.Duration("timeout"))
		},
	}
}

func runServer(ctx context.Context, addr string, timeout time.Duration) error {
	server := &http.Server{
		Addr:         addr,
		Handler:      newRouter(),
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown := func() {
		c, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := server.Shutdown(c); err != nil {
			klog.Ef(err, "failed to shutdown the HTTP server")
		}
	}
	lifecycle.Register(shutdown)
	go func() { <-ctx.Done(); shutdown() }()

	klog.Info("start the HTTP server", klog.F("addr", addr))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	klog.Info("the HTTP server is stopped", klog.F("addr", addr))
	return nil
}

func newRouter() *ship.Ship {
	var h parseHandler
	router := ship.Default()
	router.Route("/v1/parse").GET(h.ParseQuery).POST(h.ParseBody)
	router.Route("/v1/crontab").POST(h.CheckCrontab)
	return router
}

type parseHandler struct{}

type parseRequest struct {
	Expr string `json:"expr"`
}

func (h parseHandler) ParseQuery(ctx *ship.Context) error {
	return h.parse(ctx, ctx.QueryParam("expr"))
}

func (h parseHandler) ParseBody(ctx *ship.Context) (err error) {
	var req parseRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.Text(400, "%s", err.Error())
	}
	return h.parse(ctx, req.Expr)
}

func (h parseHandler) parse(ctx *ship.Context, line string) error {
	if line == "" {
		return ctx.Text(400, "missing expr")
	}

	expr, cmd, err := cronparse.ParseLine(line)
	if err != nil {
		klog.Error("failed to parse the crontab line", klog.F("expr", line), klog.E(err))
		return ctx.JSON(400, newErrorReport(0, err))
	}

	return ctx.JSON(200, newReport(expr, cmd))
}

func (h parseHandler) CheckCrontab(ctx *ship.Context) error {
	data, err := io.ReadAll(io.LimitReader(ctx.Request().Body, maxBodySize+1))
	if err != nil {
		return ctx.Text(400, "%s", err.Error())
	} else if len(data) > maxBodySize {
		return ctx.NoContent(413)
	}

	table, errs := crontab.Check(bytes.NewReader(data))
	if len(errs) > 0 {
		reports := make([]errorReport, len(errs))
		for i, err := range errs {
			var le *crontab.LineError
			if errors.As(err, &le) {
				reports[i] = newErrorReport(le.Line, le.Err)
			} else {
				reports[i] = newErrorReport(0, err)
			}
		}

		klog.Error("failed to check the crontab file", klog.F("invalid", len(errs)))
		return ctx.JSON(400, map[string]interface{}{"errors": reports})
	}

	return ctx.JSON(200, map[string]interface{}{
		"entries": table.Entries(),
		"env":     table.Env(),
	})
}
