// Package filters builds the backend's list filter expressions.
//
// The backend accepts a repeated `filters[]` query parameter. Each value is
// one expression: comma-joined `field=value` clauses that must all match.
// Separate values are OR-ed.
package filters

import (
	"dashboard-service/internal/pkg/constvars"
	"net/url"
	"strings"
)

type Operator string

const (
	Equals Operator = "="
)

// Clause compares one field against one or more values. Multiple values are
// written comma-joined after the operator, e.g. `status=PENDING,CONFIRMED`.
type Clause struct {
	Field    string
	Operator Operator
	Values   []string
}

func Eq(field string, values ...string) Clause {
	return Clause{Field: field, Operator: Equals, Values: values}
}

func (c Clause) String() string {
	operator := c.Operator
	if operator == "" {
		operator = Equals
	}
	return c.Field + string(operator) + strings.Join(c.Values, ",")
}

// Expression is a conjunction of clauses.
type Expression []Clause

func (e Expression) String() string {
	parts := make([]string, 0, len(e))
	for _, clause := range e {
		parts = append(parts, clause.String())
	}
	return strings.Join(parts, ",")
}

// Set is a disjunction of expressions.
type Set []Expression

// Or builds one expression per field, each holding that field's clause
// followed by the shared trailing clauses.
func Or(value string, fields []string, shared ...Clause) Set {
	set := make(Set, 0, len(fields))
	for _, field := range fields {
		expression := Expression{Eq(field, value)}
		expression = append(expression, shared...)
		set = append(set, expression)
	}
	return set
}

func (s Set) IsEmpty() bool {
	return len(s) == 0
}

func (s Set) Strings() []string {
	values := make([]string, 0, len(s))
	for _, expression := range s {
		if len(expression) == 0 {
			continue
		}
		values = append(values, expression.String())
	}
	return values
}

// Apply writes every expression as its own `filters[]` value.
func (s Set) Apply(query url.Values) {
	for _, value := range s.Strings() {
		query.Add(constvars.QueryParamFilters, value)
	}
}

// Search builds the usual dashboard search filter: the free-text value is
// matched against each field in turn, and every alternative also carries the
// status facet when statuses are selected. An empty search value drops the
// per-field clauses and leaves a single status-only expression.
func Search(value string, fields []string, statusField string, statuses []string) Set {
	value = strings.TrimSpace(value)
	var shared []Clause
	if len(statuses) > 0 && statusField != "" {
		shared = append(shared, Eq(statusField, statuses...))
	}

	if value == "" {
		if len(shared) == 0 {
			return nil
		}
		return Set{Expression(shared)}
	}
	return Or(value, fields, shared...)
}
