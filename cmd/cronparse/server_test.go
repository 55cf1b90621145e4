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
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, method, path, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, req)
	return rec
}

func TestServerParseBody(t *testing.T) {
	rec := serve(t, http.MethodPost, "/v1/parse", "application/json",
		`{"expr": "*/15 0 1,15 * 1-5 /usr/bin/find"}`)
	require.Equal(t, 200, rec.Code, rec.Body.String())

	var r intReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
	assert.Equal(t, expectedReport, r)
}

func TestServerParseQuery(t *testing.T) {
	path := "/v1/parse?expr=" + url.QueryEscape("*/15 0 1,15 * 1-5 /usr/bin/find")
	rec := serve(t, http.MethodGet, path, "", "")
	require.Equal(t, 200, rec.Code, rec.Body.String())

	var r intReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
	assert.Equal(t, expectedReport, r)

	rec = serve(t, http.MethodGet, "/v1/parse", "", "")
	assert.Equal(t, 400, rec.Code)
	assert.Equal(t, "missing expr", rec.Body.String())
}

func TestServerParseBadBody(t *testing.T) {
	rec := serve(t, http.MethodPost, "/v1/parse", "application/json", `{"expr":`)
	assert.Equal(t, 400, rec.Code)
	assert.NotEmpty(t, rec.Body.String())

	rec = serve(t, http.MethodPost, "/v1/parse", "application/json", `{}`)
	assert.Equal(t, 400, rec.Code)
	assert.Equal(t, "missing expr", rec.Body.String())
}

func TestServerParseError(t *testing.T) {
	rec := serve(t, http.MethodPost, "/v1/parse", "application/json",
		`{"expr": "0 */0 * * * /user/bin"}`)
	require.Equal(t, 400, rec.Code)

	var r errorReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
	assert.Equal(t, errorReport{
		Kind:  "ZeroOrInvalidStep",
		Field: "hour",
		Error: "Constraint error, cannot repeat at every 0 time.",
	}, r)
}

func TestServerCheckCrontab(t *testing.T) {
	rec := serve(t, http.MethodPost, "/v1/crontab", "text/plain",
		"MAILTO=root\n*/15 0 1,15 * 1-5 /usr/bin/find\n")
	require.Equal(t, 200, rec.Code, rec.Body.String())

	var ok struct {
		Entries []struct {
			Line    int             `json:"line"`
			Command string          `json:"command"`
			Fields  json.RawMessage `json:"fields"`
		} `json:"entries"`
		Env []struct {
			Name  string `json:"name"`
			Value string `json:"value"`
		} `json:"env"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ok))
	require.Len(t, ok.Entries, 1)
	assert.Equal(t, 2, ok.Entries[0].Line)
	assert.Equal(t, "/usr/bin/find", ok.Entries[0].Command)
	assert.JSONEq(t, `{"minute":[0,15,30,45],"hour":[0],"dayOfMonth":[1,15],`+
		`"month":[1,2,3,4,5,6,7,8,9,10,11,12],"dayOfWeek":[1,2,3,4,5]}`,
		string(ok.Entries[0].Fields))
	require.Len(t, ok.Env, 1)
	assert.Equal(t, "MAILTO", ok.Env[0].Name)
	assert.Equal(t, "root", ok.Env[0].Value)

	rec = serve(t, http.MethodPost, "/v1/crontab", "text/plain",
		"0 0 * * * /bin/ok\n0 0 31 4 * /bin/bad\n1 2 3\n")
	require.Equal(t, 400, rec.Code)

	var bad struct {
		Errors []errorReport `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bad))
	assert.Equal(t, []errorReport{
		{Line: 2, Kind: "InvalidDayOfMonth", Field: "dayOfMonth", Error: "Invalid explicit day of month definition"},
		{Line: 3, Kind: "MalformedExpression", Error: "Invalid cron expression"},
	}, bad.Errors)
}

func TestRunServerStop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runServer(ctx, "127.0.0.1:0", time.Second) }()

	time.Sleep(time.Millisecond * 100)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second * 3):
		t.Fatal("the HTTP server is not stopped")
	}
}
