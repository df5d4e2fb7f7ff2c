package database

import (
	"fmt"
	"strings"
)

// UpdateBuilder assembles SET clauses for partial updates safely. Only
// columns named by the per-resource allow-lists ever reach it; values are
// always parameterized via $N placeholders.
type UpdateBuilder struct {
	assignments []string
	args        []interface{}
	argCount    int
}

func NewUpdateBuilder() *UpdateBuilder {
	return &UpdateBuilder{
		assignments: []string{},
		args:        []interface{}{},
		argCount:    1,
	}
}

func (ub *UpdateBuilder) Set(column string, value interface{}) {
	ub.assignments = append(ub.assignments, fmt.Sprintf("%s = $%d", column, ub.argCount))
	ub.args = append(ub.args, value)
	ub.argCount++
}

// setIf records the assignment only when the pointer is non-nil, i.e. the
// field was present in the payload.
func setIf[T any](ub *UpdateBuilder, column string, value *T) {
	if value != nil {
		ub.Set(column, *value)
	}
}

func (ub *UpdateBuilder) Empty() bool {
	return len(ub.assignments) == 0
}

// SetClause returns the full SET clause; updated_at is always touched.
func (ub *UpdateBuilder) SetClause() string {
	return "SET " + strings.Join(append(ub.assignments, "updated_at = NOW()"), ", ")
}

func (ub *UpdateBuilder) Args() []interface{} {
	return ub.args
}

func (ub *UpdateBuilder) NextArgNum() int {
	return ub.argCount
}
