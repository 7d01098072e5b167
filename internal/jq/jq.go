// Package jq compiles jq queries that reshape status data.
package jq

import (
	"context"
	"fmt"

	"github.com/itchyny/gojq"
	"github.com/micahco/dduwash/lib-bay"
)

// jqStatusName converts a numeric status code into its name.
func jqStatusName(x any, _ []any) any {
	var code int
	switch v := x.(type) {
	case int:
		code = v
	case float64:
		if v != float64(int(v)) {
			return fmt.Errorf("status_name/0: expected an integer but got %v", v)
		}
		code = int(v)
	case string:
		s, err := bay.ParseStatus(v)
		if err != nil {
			return fmt.Errorf("status_name/0: %v", err)
		}
		return s.String()
	default:
		return fmt.Errorf("status_name/0: expected a number but got %T (%v)", x, x)
	}

	return bay.Status(code).String()
}

// Query is a compiled jq query.
type Query struct {
	Code *gojq.Code
}

// Parse parses and compiles a jq query string.
// An empty string is the identity query.
func Parse(query string) (Query, error) {
	if query == "" {
		query = "."
	}

	q, err := gojq.Parse(query)
	if err != nil {
		return Query{}, err
	}

	c, err := gojq.Compile(
		q,
		gojq.WithFunction("status_name", 0, 0, jqStatusName),
	)
	if err != nil {
		return Query{}, err
	}

	return Query{Code: c}, nil
}

// Output is the result of a query.
type Output struct {
	Result any `json:"result" jsonschema:"The result of the query."`
}

// Run executes the query on the input.
//
// A single output is returned as-is, and multiple outputs are returned as a slice.
func (q Query) Run(ctx context.Context, input any) (Output, error) {
	var outputs []any

	iter := q.Code.RunWithContext(ctx, input)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if halt, ok := v.(*gojq.HaltError); ok {
			if halt.ExitCode() == 0 {
				break
			}
			outputs = append(outputs, map[string]any{
				"status":    "halt_error",
				"exit_code": halt.ExitCode(),
				"value":     halt.Value(),
			})
			break
		} else if err, ok := v.(error); ok {
			return Output{}, err
		}
		outputs = append(outputs, v)
	}

	if len(outputs) == 1 {
		return Output{Result: outputs[0]}, nil
	}
	return Output{Result: outputs}, nil
}

// Transform implements bay.Transformer.
func (q Query) Transform(ctx context.Context, v any) (any, error) {
	out, err := q.Run(ctx, v)
	if err != nil {
		return nil, err
	}
	return out.Result, nil
}
