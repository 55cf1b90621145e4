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
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"github.com/xgfone/klog/v3"

	"github.com/xgfone/cronparse/crontab"
)

func getCheckCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Validate the crontab files",
		ArgsUsage: "FILE [FILE...]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("missing the crontab file")
			}

			var failed int
			for _, path := range c.Args().Slice() {
				n, err := checkFile(c.App.Writer, path)
				if err != nil {
					return err
				}
				failed += n
			}

			if failed > 0 {
				return fmt.Errorf("%d invalid crontab lines", failed)
			}
			return nil
		},
	}
}

// checkFile prints the invalid lines of the crontab file into w
// and returns the number of them.
func checkFile(w io.Writer, path string) (failed int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	table, errs := crontab.Check(f)
	for _, e := range errs {
		le, ok := e.(*crontab.LineError)
		if !ok {
			return failed, fmt.Errorf("failed to read '%s': %w", path, e)
		}

		failed++
		fmt.Fprintf(w, "%s:%d: %s\n", path, le.Line, le.Err.Error())
	}

	klog.Info("check the crontab file", klog.F("file", path),
		klog.F("jobs", len(table.Entries())), klog.F("invalid", failed))
	return
}
