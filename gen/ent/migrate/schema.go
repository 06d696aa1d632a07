// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ParticipantsColumns holds the columns for the "participants" table.
	ParticipantsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "first_name", Type: field.TypeString},
		{Name: "last_name", Type: field.TypeString, Nullable: true},
		{Name: "paid_amount", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "payment_status", Type: field.TypeString, Default: "UNPAID"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ParticipantsTable holds the schema information for the "participants" table.
	ParticipantsTable = &schema.Table{
		Name:       "participants",
		Columns:    ParticipantsColumns,
		PrimaryKey: []*schema.Column{ParticipantsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "participant_first_name",
				Unique:  false,
				Columns: []*schema.Column{ParticipantsColumns[1]},
			},
		},
	}
	// SlipsColumns holds the columns for the "slips" table.
	SlipsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "storage_path", Type: field.TypeString, Unique: true},
		{Name: "filename", Type: field.TypeString},
		{Name: "mime_type", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "participant_id", Type: field.TypeUUID},
	}
	// SlipsTable holds the schema information for the "slips" table.
	SlipsTable = &schema.Table{
		Name:       "slips",
		Columns:    SlipsColumns,
		PrimaryKey: []*schema.Column{SlipsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "slips_participants_slips",
				Columns:    []*schema.Column{SlipsColumns[7]},
				RefColumns: []*schema.Column{ParticipantsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "slip_participant_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{SlipsColumns[7], SlipsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ParticipantsTable,
		SlipsTable,
	}
)

func init() {
	ParticipantsTable.Annotation = &entsql.Annotation{
		Table: "participants",
	}
	SlipsTable.ForeignKeys[0].RefTable = ParticipantsTable
	SlipsTable.Annotation = &entsql.Annotation{
		Table: "slips",
	}
}
