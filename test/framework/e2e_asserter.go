// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package framework

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telekom/netpath/pkg/api"
	"github.com/telekom/netpath/pkg/render"
)

// floatDelta is the accepted difference of numbers in compared documents.
const floatDelta = 1e-9

// e2eHttpAsserter is an HTTP asserter for end-to-end tests.
type e2eHttpAsserter struct {
	e2e      *E2E
	url      string
	response *e2eResponseAsserter
	schema   *openapi3.T
	router   routers.Router
}

// e2eResponseAsserter holds the expected response and an asserter function.
type e2eResponseAsserter struct {
	want     any
	asserter func(r *http.Response) error
}

// HttpAssertion creates a new HTTP assertion for the given URL.
func (e *E2E) HttpAssertion(u string) *e2eHttpAsserter {
	return &e2eHttpAsserter{e2e: e, url: u}
}

// Assert asserts the status code and then runs the schema and response validations.
// Error responses are validated against the schema as well.
func (a *e2eHttpAsserter) Assert(status int) {
	a.e2e.t.Helper()
	if !a.e2e.isRunning() {
		a.e2e.t.Fatal("e2eHttpAsserter.Assert must be called after E2E.Run")
	}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, a.url, http.NoBody)
	if err != nil {
		a.e2e.t.Fatalf("Failed to create request: %v", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		a.e2e.t.Errorf("Failed to get %s: %v", a.url, err)
		return
	}
	defer resp.Body.Close()

	assert.Equal(a.e2e.t, status, resp.StatusCode, "Unexpected status code for %s", a.url)
	a.e2e.t.Logf("Got status code %d for %s", resp.StatusCode, a.url)

	if a.schema != nil && a.router != nil {
		if err = a.assertSchema(req, resp); err != nil {
			a.e2e.t.Errorf("Response from %q does not match schema: %v", a.url, err)
		}
	}

	if resp.StatusCode == http.StatusOK && a.response != nil {
		if err = a.response.asserter(resp); err != nil {
			a.e2e.t.Errorf("Failed to assert response: %v", err)
		}
	}
}

// WithSchema fetches the OpenAPI schema and creates a router for response validation.
func (a *e2eHttpAsserter) WithSchema() *e2eHttpAsserter {
	a.e2e.t.Helper()
	schema, err := a.fetchSchema()
	if err != nil {
		a.e2e.t.Fatalf("Failed to fetch OpenAPI schema: %v", err)
	}

	router, err := gorillamux.NewRouter(schema)
	if err != nil {
		a.e2e.t.Fatalf("Failed to create router from OpenAPI schema: %v", err)
	}

	a.schema = schema
	a.router = router
	return a
}

// WithReport sets the expected report of the traced path.
func (a *e2eHttpAsserter) WithReport(r render.Report) *e2eHttpAsserter {
	a.e2e.t.Helper()
	a.response = &e2eResponseAsserter{
		want:     r,
		asserter: a.assertReportResponse,
	}
	return a
}

// fetchSchema retrieves the OpenAPI schema from the server.
func (a *e2eHttpAsserter) fetchSchema() (*openapi3.T, error) {
	ctx := context.Background()
	u, err := url.Parse(a.url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	u.Path = api.OpenapiRoute
	u.RawQuery = ""

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to GET OpenAPI schema: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read OpenAPI schema: %w", err)
	}

	schema, err := openapi3.NewLoader().LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load OpenAPI schema: %w", err)
	}

	if err = schema.Validate(ctx); err != nil {
		return nil, fmt.Errorf("OpenAPI schema validation error: %w", err)
	}

	return schema, nil
}

// assertSchema validates the response body against the OpenAPI schema.
func (a *e2eHttpAsserter) assertSchema(req *http.Request, resp *http.Response) error {
	route, _, err := a.router.FindRoute(req)
	if err != nil {
		return fmt.Errorf("failed to find route: %w", err)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	// Reset resp.Body so that further reading is possible.
	resp.Body = io.NopCloser(bytes.NewReader(data))

	responseRef := route.Operation.Responses.Status(resp.StatusCode)
	if responseRef == nil || responseRef.Value == nil {
		return fmt.Errorf("no response defined in OpenAPI schema for status code %d", resp.StatusCode)
	}

	mediaType := responseRef.Value.Content.Get("application/json")
	if mediaType == nil {
		return errors.New("no media type defined in OpenAPI schema for Content-Type 'application/json'")
	}

	var body map[string]any
	if err = json.Unmarshal(data, &body); err != nil {
		return fmt.Errorf("failed to unmarshal response body: %w", err)
	}

	if err = mediaType.Schema.Value.VisitJSON(body); err != nil {
		return fmt.Errorf("response body does not match schema: %w", err)
	}

	return nil
}

// assertReportResponse compares the report in the response with the expected one.
// Both are compared as generic documents, the way a client of the api sees them.
func (a *e2eHttpAsserter) assertReportResponse(resp *http.Response) error {
	want, ok := a.response.want.(render.Report)
	require.True(a.e2e.t, ok, "Invalid response type: %T", a.response.want)

	data, err := json.Marshal(want)
	if err != nil {
		return fmt.Errorf("failed to encode expected report: %w", err)
	}
	var expected map[string]any
	if err = json.Unmarshal(data, &expected); err != nil {
		return fmt.Errorf("failed to decode expected report: %w", err)
	}

	var got map[string]any
	err = json.NewDecoder(resp.Body).Decode(&got)
	require.NoError(a.e2e.t, err, "Failed to decode response body")

	assertMapEqual(a.e2e.t, expected, got)
	return nil
}

// assertMapEqual iterates over the expected map keys and compares values using assertValueEqual.
func assertMapEqual(t require.TestingT, expected, actual map[string]any) {
	for key, expVal := range expected {
		actVal, exists := actual[key]
		assert.True(t, exists, "Missing key %s in actual data", key)
		assertValueEqual(t, expVal, actVal)
	}
	assert.Len(t, actual, len(expected), "Map lengths differ")
}

// assertValueEqual compares decoded json values. Numbers may differ by floatDelta
// since they went through a decimal representation.
func assertValueEqual(t require.TestingT, expected, actual any) {
	switch exp := expected.(type) {
	case map[string]any:
		act, ok := actual.(map[string]any)
		require.True(t, ok, "Expected value for map is not a map, got %T", actual)
		assertMapEqual(t, exp, act)

	case []any:
		act, ok := actual.([]any)
		require.True(t, ok, "Expected value for slice is not a slice, got %T", actual)
		require.Len(t, act, len(exp), "Slice lengths differ")
		for i := range exp {
			assertValueEqual(t, exp[i], act[i])
		}

	case float64:
		act, ok := actual.(float64)
		require.True(t, ok, "Expected number, got %T", actual)
		assert.InDelta(t, exp, act, floatDelta, "Numbers differ")

	default:
		assert.Equal(t, expected, actual, "Values differ")
	}
}
