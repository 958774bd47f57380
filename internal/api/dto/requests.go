package dto

// Namespace identifies a target collection. It is embedded in every request
// so its fields sit at the top level of the payload.
type Namespace struct {
	Database   string `json:"database" binding:"required"`
	Collection string `json:"collection" binding:"required"`
}

// Defaulter is implemented by requests that fill in omitted fields after
// decoding.
type Defaulter interface {
	ApplyDefaults()
}

// ApplyDefaults fills in omitted fields when req implements Defaulter.
func ApplyDefaults(req interface{}) {
	if d, ok := req.(Defaulter); ok {
		d.ApplyDefaults()
	}
}

// InsertOneRequest represents the request body for inserting one document.
type InsertOneRequest struct {
	Namespace
	Document Document          `json:"document" binding:"required"`
	Options  *InsertOneOptions `json:"options,omitempty"`
}

// InsertManyRequest represents the request body for inserting documents.
// Documents may be empty, in which case nothing is written.
type InsertManyRequest struct {
	Namespace
	Documents []Document         `json:"documents" binding:"required,dive,required"`
	Options   *InsertManyOptions `json:"options,omitempty"`
}

// FindOneRequest represents the request body for finding one document.
type FindOneRequest struct {
	Namespace
	Filter  Document        `json:"filter"`
	Options *FindOneOptions `json:"options,omitempty"`
}

// ApplyDefaults sets an omitted filter to the empty match-all document.
func (r *FindOneRequest) ApplyDefaults() {
	if r.Filter == nil {
		r.Filter = Document{}
	}
}

// FindManyRequest represents the request body for finding documents.
type FindManyRequest struct {
	Namespace
	Filter  Document     `json:"filter"`
	Options *FindOptions `json:"options,omitempty"`
}

// ApplyDefaults sets an omitted filter to the empty match-all document.
func (r *FindManyRequest) ApplyDefaults() {
	if r.Filter == nil {
		r.Filter = Document{}
	}
}

// UpdateRequest represents the request body for update-one and update-many.
type UpdateRequest struct {
	Namespace
	Filter  Document       `json:"filter" binding:"required"`
	Update  Document       `json:"update" binding:"required"`
	Options *UpdateOptions `json:"options,omitempty"`
}

// ReplaceOneRequest represents the request body for replacing one document.
type ReplaceOneRequest struct {
	Namespace
	Filter      Document        `json:"filter" binding:"required"`
	Replacement Document        `json:"replacement" binding:"required"`
	Options     *ReplaceOptions `json:"options,omitempty"`
}

// DeleteRequest represents the request body for delete-one and delete-many.
type DeleteRequest struct {
	Namespace
	Filter  Document       `json:"filter" binding:"required"`
	Options *DeleteOptions `json:"options,omitempty"`
}

// CollectionQuery represents the query string for listing collections.
type CollectionQuery struct {
	Database string `form:"database" json:"database" binding:"required"`
}
