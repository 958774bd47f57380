package dto

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

// Collation mirrors the server's collation document.
type Collation struct {
	Locale          string `json:"locale" binding:"required"`
	CaseLevel       bool   `json:"caseLevel,omitempty"`
	CaseFirst       string `json:"caseFirst,omitempty"`
	Strength        int    `json:"strength,omitempty"`
	NumericOrdering bool   `json:"numericOrdering,omitempty"`
	Alternate       string `json:"alternate,omitempty"`
	MaxVariable     string `json:"maxVariable,omitempty"`
	Normalization   bool   `json:"normalization,omitempty"`
	Backwards       bool   `json:"backwards,omitempty"`
}

func (c *Collation) driver() *options.Collation {
	if c == nil {
		return nil
	}
	return &options.Collation{
		Locale:          c.Locale,
		CaseLevel:       c.CaseLevel,
		CaseFirst:       c.CaseFirst,
		Strength:        c.Strength,
		NumericOrdering: c.NumericOrdering,
		Alternate:       c.Alternate,
		MaxVariable:     c.MaxVariable,
		Normalization:   c.Normalization,
		Backwards:       c.Backwards,
	}
}

// WriteConcern mirrors the server's write concern document.
// W is either a node count or a tag set name such as "majority".
type WriteConcern struct {
	W        *Value `json:"w,omitempty"`
	Journal  *bool  `json:"j,omitempty"`
	WTimeout *int64 `json:"wtimeout,omitempty"`
}

func (w *WriteConcern) driver() (*writeconcern.WriteConcern, error) {
	wc := &writeconcern.WriteConcern{Journal: w.Journal}
	if w.W != nil {
		switch v := w.W.Interface().(type) {
		case int32:
			wc.W = int(v)
		case int64:
			wc.W = int(v)
		case string:
			wc.W = v
		default:
			return nil, fmt.Errorf("writeConcern.w must be a number or a string")
		}
	}
	if w.WTimeout != nil {
		wc.WTimeout = time.Duration(*w.WTimeout) * time.Millisecond
	}
	return wc, nil
}

// ReadConcern mirrors the server's read concern document.
type ReadConcern struct {
	Level string `json:"level" binding:"required"`
}

// ReadPreference selects which members of a replica set serve reads.
type ReadPreference struct {
	Mode                string `json:"mode" binding:"required"`
	MaxStalenessSeconds *int64 `json:"maxStalenessSeconds,omitempty"`
}

func (r *ReadPreference) driver() (*readpref.ReadPref, error) {
	mode, err := readpref.ModeFromString(r.Mode)
	if err != nil {
		return nil, err
	}
	var opts []readpref.Option
	if r.MaxStalenessSeconds != nil {
		opts = append(opts, readpref.WithMaxStaleness(time.Duration(*r.MaxStalenessSeconds)*time.Second))
	}
	return readpref.New(mode, opts...)
}

// writeConcernOptions builds collection options carrying a write concern.
func writeConcernOptions(w *WriteConcern) (*options.CollectionOptions, error) {
	if w == nil {
		return nil, nil
	}
	wc, err := w.driver()
	if err != nil {
		return nil, err
	}
	return options.Collection().SetWriteConcern(wc), nil
}

// readOptions builds collection options carrying read concern and preference.
func readOptions(rc *ReadConcern, rp *ReadPreference) (*options.CollectionOptions, error) {
	if rc == nil && rp == nil {
		return nil, nil
	}
	opts := options.Collection()
	if rc != nil {
		opts.SetReadConcern(&readconcern.ReadConcern{Level: rc.Level})
	}
	if rp != nil {
		pref, err := rp.driver()
		if err != nil {
			return nil, err
		}
		opts.SetReadPreference(pref)
	}
	return opts, nil
}

func millis(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// InsertOneOptions are the driver's insertOne options.
type InsertOneOptions struct {
	BypassDocumentValidation *bool         `json:"bypassDocumentValidation,omitempty"`
	Comment                  *string       `json:"comment,omitempty"`
	WriteConcern             *WriteConcern `json:"writeConcern,omitempty"`
}

// Driver converts to the driver's InsertOneOptions. A nil receiver yields nil.
func (o *InsertOneOptions) Driver() *options.InsertOneOptions {
	if o == nil {
		return nil
	}
	opts := options.InsertOne()
	if o.BypassDocumentValidation != nil {
		opts.SetBypassDocumentValidation(*o.BypassDocumentValidation)
	}
	if o.Comment != nil {
		opts.SetComment(*o.Comment)
	}
	return opts
}

// CollectionOptions returns the collection-scoped settings, if any.
func (o *InsertOneOptions) CollectionOptions() (*options.CollectionOptions, error) {
	if o == nil {
		return nil, nil
	}
	return writeConcernOptions(o.WriteConcern)
}

// InsertManyOptions are the driver's insertMany options.
type InsertManyOptions struct {
	BypassDocumentValidation *bool         `json:"bypassDocumentValidation,omitempty"`
	Ordered                  *bool         `json:"ordered,omitempty"`
	Comment                  *string       `json:"comment,omitempty"`
	WriteConcern             *WriteConcern `json:"writeConcern,omitempty"`
}

// Driver converts to the driver's InsertManyOptions. A nil receiver yields nil.
func (o *InsertManyOptions) Driver() *options.InsertManyOptions {
	if o == nil {
		return nil
	}
	opts := options.InsertMany()
	if o.BypassDocumentValidation != nil {
		opts.SetBypassDocumentValidation(*o.BypassDocumentValidation)
	}
	if o.Ordered != nil {
		opts.SetOrdered(*o.Ordered)
	}
	if o.Comment != nil {
		opts.SetComment(*o.Comment)
	}
	return opts
}

// CollectionOptions returns the collection-scoped settings, if any.
func (o *InsertManyOptions) CollectionOptions() (*options.CollectionOptions, error) {
	if o == nil {
		return nil, nil
	}
	return writeConcernOptions(o.WriteConcern)
}

// FindOneOptions are the driver's findOne options.
type FindOneOptions struct {
	AllowPartialResults *bool           `json:"allowPartialResults,omitempty"`
	Collation           *Collation      `json:"collation,omitempty"`
	Comment             *string         `json:"comment,omitempty"`
	Hint                *Value          `json:"hint,omitempty"`
	Max                 Document        `json:"max,omitempty"`
	MaxTimeMS           *int64          `json:"maxTimeMS,omitempty"`
	Min                 Document        `json:"min,omitempty"`
	Projection          Document        `json:"projection,omitempty"`
	ReturnKey           *bool           `json:"returnKey,omitempty"`
	ShowRecordID        *bool           `json:"showRecordId,omitempty"`
	Skip                *int64          `json:"skip,omitempty"`
	Sort                Document        `json:"sort,omitempty"`
	ReadConcern         *ReadConcern    `json:"readConcern,omitempty"`
	ReadPreference      *ReadPreference `json:"readPreference,omitempty"`
}

// Driver converts to the driver's FindOneOptions. A nil receiver yields nil.
func (o *FindOneOptions) Driver() *options.FindOneOptions {
	if o == nil {
		return nil
	}
	opts := options.FindOne()
	if o.AllowPartialResults != nil {
		opts.SetAllowPartialResults(*o.AllowPartialResults)
	}
	if o.Collation != nil {
		opts.SetCollation(o.Collation.driver())
	}
	if o.Comment != nil {
		opts.SetComment(*o.Comment)
	}
	if o.Hint != nil {
		opts.SetHint(o.Hint.Interface())
	}
	if o.Max != nil {
		opts.SetMax(o.Max.D())
	}
	if o.MaxTimeMS != nil {
		opts.SetMaxTime(millis(*o.MaxTimeMS))
	}
	if o.Min != nil {
		opts.SetMin(o.Min.D())
	}
	if o.Projection != nil {
		opts.SetProjection(o.Projection.D())
	}
	if o.ReturnKey != nil {
		opts.SetReturnKey(*o.ReturnKey)
	}
	if o.ShowRecordID != nil {
		opts.SetShowRecordID(*o.ShowRecordID)
	}
	if o.Skip != nil {
		opts.SetSkip(*o.Skip)
	}
	if o.Sort != nil {
		opts.SetSort(o.Sort.D())
	}
	return opts
}

// CollectionOptions returns the collection-scoped settings, if any.
func (o *FindOneOptions) CollectionOptions() (*options.CollectionOptions, error) {
	if o == nil {
		return nil, nil
	}
	return readOptions(o.ReadConcern, o.ReadPreference)
}

// CursorType names the driver's cursor types.
type CursorType string

// Cursor types accepted in find options.
const (
	CursorNonTailable   CursorType = "nonTailable"
	CursorTailable      CursorType = "tailable"
	CursorTailableAwait CursorType = "tailableAwait"
)

func (c CursorType) driver() options.CursorType {
	switch c {
	case CursorTailable:
		return options.Tailable
	case CursorTailableAwait:
		return options.TailableAwait
	default:
		return options.NonTailable
	}
}

// FindOptions are the driver's find options.
type FindOptions struct {
	AllowDiskUse        *bool           `json:"allowDiskUse,omitempty"`
	AllowPartialResults *bool           `json:"allowPartialResults,omitempty"`
	BatchSize           *int32          `json:"batchSize,omitempty"`
	Collation           *Collation      `json:"collation,omitempty"`
	Comment             *string         `json:"comment,omitempty"`
	CursorType          *CursorType     `json:"cursorType,omitempty" binding:"omitempty,oneof=nonTailable tailable tailableAwait"`
	Hint                *Value          `json:"hint,omitempty"`
	Let                 Document        `json:"let,omitempty"`
	Limit               *int64          `json:"limit,omitempty"`
	Max                 Document        `json:"max,omitempty"`
	MaxAwaitTimeMS      *int64          `json:"maxAwaitTimeMS,omitempty"`
	MaxTimeMS           *int64          `json:"maxTimeMS,omitempty"`
	Min                 Document        `json:"min,omitempty"`
	NoCursorTimeout     *bool           `json:"noCursorTimeout,omitempty"`
	Projection          Document        `json:"projection,omitempty"`
	ReturnKey           *bool           `json:"returnKey,omitempty"`
	ShowRecordID        *bool           `json:"showRecordId,omitempty"`
	Skip                *int64          `json:"skip,omitempty"`
	Sort                Document        `json:"sort,omitempty"`
	ReadConcern         *ReadConcern    `json:"readConcern,omitempty"`
	ReadPreference      *ReadPreference `json:"readPreference,omitempty"`
}

// Driver converts to the driver's FindOptions. A nil receiver yields nil.
func (o *FindOptions) Driver() *options.FindOptions {
	if o == nil {
		return nil
	}
	opts := options.Find()
	if o.AllowDiskUse != nil {
		opts.SetAllowDiskUse(*o.AllowDiskUse)
	}
	if o.AllowPartialResults != nil {
		opts.SetAllowPartialResults(*o.AllowPartialResults)
	}
	if o.BatchSize != nil {
		opts.SetBatchSize(*o.BatchSize)
	}
	if o.Collation != nil {
		opts.SetCollation(o.Collation.driver())
	}
	if o.Comment != nil {
		opts.SetComment(*o.Comment)
	}
	if o.CursorType != nil {
		opts.SetCursorType(o.CursorType.driver())
	}
	if o.Hint != nil {
		opts.SetHint(o.Hint.Interface())
	}
	if o.Let != nil {
		opts.SetLet(o.Let.D())
	}
	if o.Limit != nil {
		opts.SetLimit(*o.Limit)
	}
	if o.Max != nil {
		opts.SetMax(o.Max.D())
	}
	if o.MaxAwaitTimeMS != nil {
		opts.SetMaxAwaitTime(millis(*o.MaxAwaitTimeMS))
	}
	if o.MaxTimeMS != nil {
		opts.SetMaxTime(millis(*o.MaxTimeMS))
	}
	if o.Min != nil {
		opts.SetMin(o.Min.D())
	}
	if o.NoCursorTimeout != nil {
		opts.SetNoCursorTimeout(*o.NoCursorTimeout)
	}
	if o.Projection != nil {
		opts.SetProjection(o.Projection.D())
	}
	if o.ReturnKey != nil {
		opts.SetReturnKey(*o.ReturnKey)
	}
	if o.ShowRecordID != nil {
		opts.SetShowRecordID(*o.ShowRecordID)
	}
	if o.Skip != nil {
		opts.SetSkip(*o.Skip)
	}
	if o.Sort != nil {
		opts.SetSort(o.Sort.D())
	}
	return opts
}

// CollectionOptions returns the collection-scoped settings, if any.
func (o *FindOptions) CollectionOptions() (*options.CollectionOptions, error) {
	if o == nil {
		return nil, nil
	}
	return readOptions(o.ReadConcern, o.ReadPreference)
}

// UpdateOptions are the driver's update options.
type UpdateOptions struct {
	ArrayFilters             []Document    `json:"arrayFilters,omitempty"`
	BypassDocumentValidation *bool         `json:"bypassDocumentValidation,omitempty"`
	Collation                *Collation    `json:"collation,omitempty"`
	Comment                  *string       `json:"comment,omitempty"`
	Hint                     *Value        `json:"hint,omitempty"`
	Upsert                   *bool         `json:"upsert,omitempty"`
	Let                      Document      `json:"let,omitempty"`
	WriteConcern             *WriteConcern `json:"writeConcern,omitempty"`
}

// Driver converts to the driver's UpdateOptions. A nil receiver yields nil.
func (o *UpdateOptions) Driver() *options.UpdateOptions {
	if o == nil {
		return nil
	}
	opts := options.Update()
	if o.ArrayFilters != nil {
		filters := make([]interface{}, len(o.ArrayFilters))
		for i, f := range o.ArrayFilters {
			filters[i] = f.D()
		}
		opts.SetArrayFilters(options.ArrayFilters{Filters: filters})
	}
	if o.BypassDocumentValidation != nil {
		opts.SetBypassDocumentValidation(*o.BypassDocumentValidation)
	}
	if o.Collation != nil {
		opts.SetCollation(o.Collation.driver())
	}
	if o.Comment != nil {
		opts.SetComment(*o.Comment)
	}
	if o.Hint != nil {
		opts.SetHint(o.Hint.Interface())
	}
	if o.Upsert != nil {
		opts.SetUpsert(*o.Upsert)
	}
	if o.Let != nil {
		opts.SetLet(o.Let.D())
	}
	return opts
}

// CollectionOptions returns the collection-scoped settings, if any.
func (o *UpdateOptions) CollectionOptions() (*options.CollectionOptions, error) {
	if o == nil {
		return nil, nil
	}
	return writeConcernOptions(o.WriteConcern)
}

// Upserts reports whether the options request an upsert.
func (o *UpdateOptions) Upserts() bool {
	return o != nil && o.Upsert != nil && *o.Upsert
}

// ReplaceOptions are the driver's replace options.
type ReplaceOptions struct {
	BypassDocumentValidation *bool         `json:"bypassDocumentValidation,omitempty"`
	Collation                *Collation    `json:"collation,omitempty"`
	Comment                  *string       `json:"comment,omitempty"`
	Hint                     *Value        `json:"hint,omitempty"`
	Upsert                   *bool         `json:"upsert,omitempty"`
	Let                      Document      `json:"let,omitempty"`
	WriteConcern             *WriteConcern `json:"writeConcern,omitempty"`
}

// Driver converts to the driver's ReplaceOptions. A nil receiver yields nil.
func (o *ReplaceOptions) Driver() *options.ReplaceOptions {
	if o == nil {
		return nil
	}
	opts := options.Replace()
	if o.BypassDocumentValidation != nil {
		opts.SetBypassDocumentValidation(*o.BypassDocumentValidation)
	}
	if o.Collation != nil {
		opts.SetCollation(o.Collation.driver())
	}
	if o.Comment != nil {
		opts.SetComment(*o.Comment)
	}
	if o.Hint != nil {
		opts.SetHint(o.Hint.Interface())
	}
	if o.Upsert != nil {
		opts.SetUpsert(*o.Upsert)
	}
	if o.Let != nil {
		opts.SetLet(o.Let.D())
	}
	return opts
}

// CollectionOptions returns the collection-scoped settings, if any.
func (o *ReplaceOptions) CollectionOptions() (*options.CollectionOptions, error) {
	if o == nil {
		return nil, nil
	}
	return writeConcernOptions(o.WriteConcern)
}

// Upserts reports whether the options request an upsert.
func (o *ReplaceOptions) Upserts() bool {
	return o != nil && o.Upsert != nil && *o.Upsert
}

// DeleteOptions are the driver's delete options.
type DeleteOptions struct {
	Collation    *Collation    `json:"collation,omitempty"`
	Comment      *string       `json:"comment,omitempty"`
	Hint         *Value        `json:"hint,omitempty"`
	Let          Document      `json:"let,omitempty"`
	WriteConcern *WriteConcern `json:"writeConcern,omitempty"`
}

// Driver converts to the driver's DeleteOptions. A nil receiver yields nil.
func (o *DeleteOptions) Driver() *options.DeleteOptions {
	if o == nil {
		return nil
	}
	opts := options.Delete()
	if o.Collation != nil {
		opts.SetCollation(o.Collation.driver())
	}
	if o.Comment != nil {
		opts.SetComment(*o.Comment)
	}
	if o.Hint != nil {
		opts.SetHint(o.Hint.Interface())
	}
	if o.Let != nil {
		opts.SetLet(o.Let.D())
	}
	return opts
}

// CollectionOptions returns the collection-scoped settings, if any.
func (o *DeleteOptions) CollectionOptions() (*options.CollectionOptions, error) {
	if o == nil {
		return nil, nil
	}
	return writeConcernOptions(o.WriteConcern)
}
