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

// Package logging initializes the logger of the commands.
package logging

import (
	"os"

	"github.com/xgfone/go-tools/v7/lifecycle"
	"github.com/xgfone/klog/v3"
)

// MaxFileSize is the size of a log file, after which it will be rotated.
const MaxFileSize = 100 * 1024 * 1024

// MaxFileNum is the number of the rotated log files to keep.
const MaxFileNum = 100

// Init initializes the logging with the level name, such as "debug",
// "info", "warn" or "error".
//
// If filepath is empty, the log is output to stderr.
func Init(level, filepath string) error {
	var writer klog.Writer = klog.StreamWriter(os.Stderr)
	if filepath != "" {
		file, err := klog.NewSizedRotatingFile(filepath, MaxFileSize, MaxFileNum)
		if err != nil {
			return err
		}
		lifecycle.Register(func() { file.Close() })
		writer = klog.StreamWriter(file)
	}

	klog.GetEncoder().SetWriter(klog.SafeWriter(writer))
	klog.SetLevel(klog.NameToLevel(level))
	return nil
}
