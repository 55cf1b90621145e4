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
	"os"

	"github.com/urfave/cli/v2"
	"github.com/xgfone/go-tools/v7/lifecycle"
	"github.com/xgfone/klog/v3"

	"github.com/xgfone/cronparse/cmd/internal/logging"
)

var version = "1.0.0"

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "cronparse"
	app.Version = version
	app.Usage = "Parse and validate the crontab expressions"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "info",
			Usage:   "The level of the log, such as debug, info, warn or error",
			EnvVars: []string{"CRONPARSE_LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    "log-file",
			Usage:   "The path of the log file, which is output to stderr if empty",
			EnvVars: []string{"CRONPARSE_LOG_FILE"},
		},
	}
	app.Before = func(c *cli.Context) error {
		return logging.Init(c.String("log-level"), c.String("log-file"))
	}
	app.Commands = []*cli.Command{
		getParseCommand(),
		getCheckCommand(),
		getServeCommand(),
	}
	return app
}

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		klog.Ef(err, "The program exits.")
	}
	lifecycle.Stop()

	if err != nil {
		os.Exit(1)
	}
}
