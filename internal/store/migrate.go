package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Every event table starts with the same columns: an auto-increment id,
// the global sequence number, and the wall-clock timestamp.
func eventColumns(extra ...*schema.Column) []*schema.Column {
	cols := []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
	}
	return append(cols, extra...)
}

var (
	revealEventsColumns = eventColumns(
		&schema.Column{Name: "session_id", Type: field.TypeString},
		&schema.Column{Name: "problem_id", Type: field.TypeInt},
		&schema.Column{Name: "problem_name", Type: field.TypeString},
		&schema.Column{Name: "kind", Type: field.TypeString},
	)
	revealEventsTable = &schema.Table{
		Name:       "reveal_events",
		Columns:    revealEventsColumns,
		PrimaryKey: []*schema.Column{revealEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "revealevent_timestamp", Columns: []*schema.Column{revealEventsColumns[2]}},
			{Name: "revealevent_session_id", Columns: []*schema.Column{revealEventsColumns[3]}},
			{Name: "revealevent_problem_name", Columns: []*schema.Column{revealEventsColumns[5]}},
		},
	}

	checkEventsColumns = eventColumns(
		&schema.Column{Name: "session_id", Type: field.TypeString},
		&schema.Column{Name: "problem_id", Type: field.TypeInt},
		&schema.Column{Name: "problem_name", Type: field.TypeString},
		&schema.Column{Name: "passed", Type: field.TypeBool},
		&schema.Column{Name: "failed_vars", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "usage_error", Type: field.TypeString, Default: ""},
	)
	checkEventsTable = &schema.Table{
		Name:       "check_events",
		Columns:    checkEventsColumns,
		PrimaryKey: []*schema.Column{checkEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "checkevent_timestamp", Columns: []*schema.Column{checkEventsColumns[2]}},
			{Name: "checkevent_session_id", Columns: []*schema.Column{checkEventsColumns[3]}},
			{Name: "checkevent_problem_name", Columns: []*schema.Column{checkEventsColumns[5]}},
		},
	}

	tables = []*schema.Table{revealEventsTable, checkEventsTable}
)

// migrate creates or upgrades the event tables.
func (s *Store) migrate(ctx context.Context) error {
	m, err := schema.NewMigrate(s.drv)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	if err := m.Create(ctx, tables...); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}
