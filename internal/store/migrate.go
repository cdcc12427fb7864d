package store

import (
	"context"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// RoundsColumns holds the columns for the "rounds" table.
	RoundsColumns = []*schema.Column{
		{Name: "round_id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "table_num", Type: field.TypeInt},
		{Name: "questions", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeInt},
		{Name: "score", Type: field.TypeInt},
		{Name: "max_streak", Type: field.TypeInt},
		{Name: "completed", Type: field.TypeBool},
		{Name: "duration_ms", Type: field.TypeInt64},
		{Name: "finished_at", Type: field.TypeInt64},
	}
	// RoundsTable holds the schema information for the "rounds" table.
	RoundsTable = &schema.Table{
		Name:       "rounds",
		Columns:    RoundsColumns,
		PrimaryKey: []*schema.Column{RoundsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "round_table_num_completed",
				Unique:  false,
				Columns: []*schema.Column{RoundsColumns[2], RoundsColumns[7]},
			},
		},
	}
	// AnswersColumns holds the columns for the "answers" table.
	AnswersColumns = []*schema.Column{
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "round_id", Type: field.TypeString},
		{Name: "num1", Type: field.TypeInt},
		{Name: "num2", Type: field.TypeInt},
		{Name: "correct_answer", Type: field.TypeInt},
		{Name: "given_answer", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeBool},
		{Name: "points", Type: field.TypeInt},
	}
	// AnswersTable holds the schema information for the "answers" table.
	AnswersTable = &schema.Table{
		Name:       "answers",
		Columns:    AnswersColumns,
		PrimaryKey: []*schema.Column{AnswersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answer_round_id",
				Unique:  false,
				Columns: []*schema.Column{AnswersColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		RoundsTable,
		AnswersTable,
	}
)

// createSchema runs the auto-migration for every table in Tables.
func createSchema(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return err
	}
	return m.Create(ctx, Tables...)
}
