// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"encoding"
	"net/http"
	"reflect"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
	"github.com/telekom/netpath/pkg/hop"
	"github.com/telekom/netpath/pkg/render"
	"github.com/telekom/netpath/pkg/stats"
)

const (
	// PathsRoute is the route serving the report of a traced destination
	PathsRoute = "/v1/paths/{destination}"
	// OpenapiRoute is the route serving the openapi document
	OpenapiRoute = "/openapi"
	// MetricsRoute is the route serving the prometheus metrics
	MetricsRoute = "/metrics"

	reportSchemaName = "Report"
	errorSchemaName  = "Error"
)

var textMarshaler = reflect.TypeFor[encoding.TextMarshaler]()

// GetOpenapi describes the api of netpath in version as an openapi document.
func GetOpenapi(version string) (*openapi3.T, error) {
	report, err := openapi3gen.NewSchemaRefForValue(render.Report{}, nil, openapi3gen.SchemaCustomizer(customizeSchema))
	if err != nil {
		return nil, &ErrCreateOpenapiSchema{name: reportSchemaName, err: err}
	}
	failure := openapi3.NewObjectSchema().
		WithProperty("error", openapi3.NewStringSchema()).
		WithRequired([]string{"error"})

	op := openapi3.NewOperation()
	op.OperationID = "tracePath"
	op.Summary = "Traces the network path towards a destination"
	op.Description = "Asks the trace provider for the path towards the destination and returns it with the requested views. " +
		"The destination \"-\" traces the default destination."
	op.AddParameter(openapi3.NewPathParameter("destination").
		WithDescription("IP address or hostname to trace").
		WithSchema(openapi3.NewStringSchema()))
	op.AddParameter(openapi3.NewQueryParameter("view").
		WithDescription("Views included in the report").
		WithSchema(openapi3.NewStringSchema().WithEnum(ViewTable, ViewGraph, ViewAll).WithDefault(ViewAll)))
	op.Responses = openapi3.NewResponses(
		openapi3.WithStatus(http.StatusOK, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("The traced path").
				WithJSONSchemaRef(openapi3.NewSchemaRef("#/components/schemas/"+reportSchemaName, report.Value)),
		}),
		openapi3.WithStatus(http.StatusBadRequest, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("Invalid destination or view").
				WithJSONSchemaRef(openapi3.NewSchemaRef("#/components/schemas/"+errorSchemaName, failure)),
		}),
		openapi3.WithStatus(http.StatusBadGateway, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("The trace provider failed or sent malformed hops").
				WithJSONSchemaRef(openapi3.NewSchemaRef("#/components/schemas/"+errorSchemaName, failure)),
		}),
	)

	return &openapi3.T{
		OpenAPI: "3.0.0",
		Info: &openapi3.Info{
			Title:       "netpath",
			Description: "Network path visualization API",
			Version:     version,
		},
		Paths: openapi3.NewPaths(openapi3.WithPath(PathsRoute, &openapi3.PathItem{Get: op})),
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{
				reportSchemaName: report,
				errorSchemaName:  openapi3.NewSchemaRef("", failure),
			},
		},
	}, nil
}

// customizeSchema describes the types with custom json encodings
// the way they appear on the wire.
func customizeSchema(_ string, t reflect.Type, _ reflect.StructTag, schema *openapi3.Schema) error {
	switch {
	case t == reflect.TypeFor[stats.Latency]():
		*schema = *openapi3.NewFloat64Schema().WithNullable()
		schema.Description = "Milliseconds, null if not available"
	case t == reflect.TypeFor[hop.Text]():
		*schema = *openapi3.NewStringSchema().WithNullable()
	case t.Kind() == reflect.Int && t.Implements(textMarshaler):
		*schema = *openapi3.NewStringSchema()
	}
	return nil
}
