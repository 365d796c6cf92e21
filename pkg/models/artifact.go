package models

import "time"

// FieldType enumerates the input kinds a document-type field can declare.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldEmail    FieldType = "email"
	FieldTel      FieldType = "tel"
	FieldURL      FieldType = "url"
	FieldNumber   FieldType = "number"
	FieldDate     FieldType = "date"
	FieldArray    FieldType = "array"
)

// Field is one input of a document-type section. Array fields carry a schema
// for their repeated item.
type Field struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Type            FieldType `json:"type"`
	Required        bool      `json:"required,omitempty"`
	ArrayItemSchema []Field   `json:"arrayItemSchema,omitempty"`
}

// Section groups related fields in the generated form.
type Section struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

// DocumentType declares the structure of one kind of document
// (invoice, CV, ...). Templates and themes reference it by id.
type DocumentType struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Sections  []Section `json:"sections"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// Template is a Mustache-style HTML template for one document type.
// Default templates are protected from deletion by the storage layer.
type Template struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TypeID    string    `json:"typeId"`
	Content   string    `json:"content"`
	IsDefault bool      `json:"isDefault,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// Theme is a CSS stylesheet applied to the rendered preview.
type Theme struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	IsDefault bool      `json:"isDefault,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}
