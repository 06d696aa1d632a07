// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Participant is the predicate function for participant builders.
type Participant func(*sql.Selector)

// Slip is the predicate function for slip builders.
type Slip func(*sql.Selector)
