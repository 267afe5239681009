// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ApiKey is the predicate function for apikey builders.
type ApiKey func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// UsageLog is the predicate function for usagelog builders.
type UsageLog func(*sql.Selector)
