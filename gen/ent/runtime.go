// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/campdesk/slip-ingest/db/ent/schema"
	"github.com/campdesk/slip-ingest/gen/ent/participant"
	"github.com/campdesk/slip-ingest/gen/ent/slip"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	participantFields := schema.Participant{}.Fields()
	_ = participantFields
	// participantDescFirstName is the schema descriptor for first_name field.
	participantDescFirstName := participantFields[1].Descriptor()
	// participant.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	participant.FirstNameValidator = participantDescFirstName.Validators[0].(func(string) error)
	// participantDescPaidAmount is the schema descriptor for paid_amount field.
	participantDescPaidAmount := participantFields[3].Descriptor()
	// participant.DefaultPaidAmount holds the default value on creation for the paid_amount field.
	participant.DefaultPaidAmount = participantDescPaidAmount.Default.(float64)
	// participantDescPaymentStatus is the schema descriptor for payment_status field.
	participantDescPaymentStatus := participantFields[4].Descriptor()
	// participant.DefaultPaymentStatus holds the default value on creation for the payment_status field.
	participant.DefaultPaymentStatus = participantDescPaymentStatus.Default.(string)
	// participant.PaymentStatusValidator is a validator for the "payment_status" field. It is called by the builders before save.
	participant.PaymentStatusValidator = participantDescPaymentStatus.Validators[0].(func(string) error)
	// participantDescCreatedAt is the schema descriptor for created_at field.
	participantDescCreatedAt := participantFields[5].Descriptor()
	// participant.DefaultCreatedAt holds the default value on creation for the created_at field.
	participant.DefaultCreatedAt = participantDescCreatedAt.Default.(func() time.Time)
	// participantDescUpdatedAt is the schema descriptor for updated_at field.
	participantDescUpdatedAt := participantFields[6].Descriptor()
	// participant.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	participant.DefaultUpdatedAt = participantDescUpdatedAt.Default.(func() time.Time)
	// participant.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	participant.UpdateDefaultUpdatedAt = participantDescUpdatedAt.UpdateDefault.(func() time.Time)
	// participantDescID is the schema descriptor for id field.
	participantDescID := participantFields[0].Descriptor()
	// participant.DefaultID holds the default value on creation for the id field.
	participant.DefaultID = participantDescID.Default.(func() uuid.UUID)
	slipFields := schema.Slip{}.Fields()
	_ = slipFields
	// slipDescStoragePath is the schema descriptor for storage_path field.
	slipDescStoragePath := slipFields[2].Descriptor()
	// slip.StoragePathValidator is a validator for the "storage_path" field. It is called by the builders before save.
	slip.StoragePathValidator = slipDescStoragePath.Validators[0].(func(string) error)
	// slipDescFilename is the schema descriptor for filename field.
	slipDescFilename := slipFields[3].Descriptor()
	// slip.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	slip.FilenameValidator = slipDescFilename.Validators[0].(func(string) error)
	// slipDescMimeType is the schema descriptor for mime_type field.
	slipDescMimeType := slipFields[4].Descriptor()
	// slip.MimeTypeValidator is a validator for the "mime_type" field. It is called by the builders before save.
	slip.MimeTypeValidator = slipDescMimeType.Validators[0].(func(string) error)
	// slipDescFileSize is the schema descriptor for file_size field.
	slipDescFileSize := slipFields[5].Descriptor()
	// slip.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	slip.FileSizeValidator = slipDescFileSize.Validators[0].(func(int) error)
	// slipDescUploadedAt is the schema descriptor for uploaded_at field.
	slipDescUploadedAt := slipFields[7].Descriptor()
	// slip.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	slip.DefaultUploadedAt = slipDescUploadedAt.Default.(func() time.Time)
	// slipDescID is the schema descriptor for id field.
	slipDescID := slipFields[0].Descriptor()
	// slip.DefaultID holds the default value on creation for the id field.
	slip.DefaultID = slipDescID.Default.(func() uuid.UUID)
}
