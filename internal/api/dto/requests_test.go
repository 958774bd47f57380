package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/unifiedui/docdb-gateway/internal/api/dto"
)

func decode(t *testing.T, body string, req interface{}) error {
	t.Helper()
	if err := binding.JSON.BindBody([]byte(body), req); err != nil {
		return err
	}
	dto.ApplyDefaults(req)
	return nil
}

func TestInsertManyRequest_FlattensNamespace(t *testing.T) {
	var req dto.InsertManyRequest
	err := decode(t, `{"database":"d","collection":"c","documents":[{"a":1},{"a":2}]}`, &req)
	require.NoError(t, err)

	assert.Equal(t, "d", req.Database)
	assert.Equal(t, "c", req.Collection)
	require.Len(t, req.Documents, 2)
	assert.Equal(t, bson.D{{Key: "a", Value: int32(1)}}, req.Documents[0].D())
	assert.Equal(t, bson.D{{Key: "a", Value: int32(2)}}, req.Documents[1].D())
	assert.Nil(t, req.Options)
}

func TestInsertManyRequest_EmptyDocumentsAllowed(t *testing.T) {
	var req dto.InsertManyRequest
	err := decode(t, `{"database":"d","collection":"c","documents":[]}`, &req)
	require.NoError(t, err)
	assert.Empty(t, req.Documents)
}

func TestRequests_InvalidShape(t *testing.T) {
	tests := []struct {
		name string
		body string
		req  interface{}
	}{
		{"malformed json", `{"database":`, &dto.InsertOneRequest{}},
		{"missing database", `{"collection":"c","document":{}}`, &dto.InsertOneRequest{}},
		{"missing collection", `{"database":"d","document":{}}`, &dto.InsertOneRequest{}},
		{"missing document", `{"database":"d","collection":"c"}`, &dto.InsertOneRequest{}},
		{"document is not an object", `{"database":"d","collection":"c","document":[1,2]}`, &dto.InsertOneRequest{}},
		{"missing documents", `{"database":"d","collection":"c"}`, &dto.InsertManyRequest{}},
		{"null document in batch", `{"database":"d","collection":"c","documents":[{"a":1},null]}`, &dto.InsertManyRequest{}},
		{"update without filter", `{"database":"d","collection":"c","update":{"$set":{"a":1}}}`, &dto.UpdateRequest{}},
		{"update without update", `{"database":"d","collection":"c","filter":{}}`, &dto.UpdateRequest{}},
		{"replace without replacement", `{"database":"d","collection":"c","filter":{}}`, &dto.ReplaceOneRequest{}},
		{"delete without filter", `{"database":"d","collection":"c"}`, &dto.DeleteRequest{}},
		{"collation without locale", `{"database":"d","collection":"c","options":{"collation":{"strength":2}}}`, &dto.FindManyRequest{}},
		{"unknown cursor type", `{"database":"d","collection":"c","options":{"cursorType":"sideways"}}`, &dto.FindManyRequest{}},
		{"invalid extended json", `{"database":"d","collection":"c","filter":{"_id":{"$oid":"nope"}}}`, &dto.FindOneRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, decode(t, tt.body, tt.req))
		})
	}
}

func TestFindRequests_OmittedFilterMatchesAll(t *testing.T) {
	var omitted, explicit dto.FindManyRequest
	require.NoError(t, decode(t, `{"database":"d","collection":"c"}`, &omitted))
	require.NoError(t, decode(t, `{"database":"d","collection":"c","filter":{}}`, &explicit))

	assert.NotNil(t, omitted.Filter)
	assert.Empty(t, omitted.Filter)
	assert.Equal(t, explicit.Filter, omitted.Filter)

	var one dto.FindOneRequest
	require.NoError(t, decode(t, `{"database":"d","collection":"c","filter":null}`, &one))
	assert.Equal(t, dto.Document{}, one.Filter)
}

func TestDeleteRequest_EmptyFilterIsPresent(t *testing.T) {
	var req dto.DeleteRequest
	require.NoError(t, decode(t, `{"database":"d","collection":"c","filter":{}}`, &req))
	assert.Equal(t, dto.Document{}, req.Filter)
}

func TestDocument_ExtendedJSONTypes(t *testing.T) {
	oid := primitive.NewObjectID()
	body := `{"database":"d","collection":"c","filter":{
		"_id":{"$oid":"` + oid.Hex() + `"},
		"created":{"$date":"2024-01-02T03:04:05Z"},
		"big":{"$numberLong":"9007199254740993"},
		"nested":{"z":1,"a":[1,"two"]}
	}}`

	var req dto.FindOneRequest
	require.NoError(t, decode(t, body, &req))

	filter := req.Filter.D()
	require.Len(t, filter, 4)
	assert.Equal(t, oid, filter[0].Value)
	assert.Equal(t, primitive.NewDateTimeFromTime(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)), filter[1].Value)
	assert.Equal(t, int64(9007199254740993), filter[2].Value)
	assert.Equal(t, bson.D{
		{Key: "z", Value: int32(1)},
		{Key: "a", Value: bson.A{int32(1), "two"}},
	}, filter[3].Value)
}

func TestRequest_RoundTripPreservesValues(t *testing.T) {
	body := `{
		"database":"d",
		"collection":"c",
		"document":{"b":1,"a":"x","when":{"$date":"2024-01-02T03:04:05Z"}},
		"options":{"bypassDocumentValidation":true,"comment":"import","writeConcern":{"w":"majority","j":true,"wtimeout":250}}
	}`

	var req dto.InsertOneRequest
	require.NoError(t, decode(t, body, &req))

	out, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, body, string(out))
}

func TestFindOptions_PassThrough(t *testing.T) {
	body := `{"database":"d","collection":"c","options":{
		"sort":{"b":1,"a":-1},
		"projection":{"a":1},
		"limit":5,
		"skip":10,
		"batchSize":100,
		"maxTimeMS":1500,
		"allowDiskUse":true,
		"cursorType":"tailable",
		"hint":"a_1",
		"let":{"x":1},
		"collation":{"locale":"en","strength":2},
		"comment":"report",
		"readConcern":{"level":"majority"},
		"readPreference":{"mode":"secondaryPreferred","maxStalenessSeconds":120}
	}}`

	var req dto.FindManyRequest
	require.NoError(t, decode(t, body, &req))

	opts := req.Options.Driver()
	require.NotNil(t, opts)
	assert.Equal(t, bson.D{{Key: "b", Value: int32(1)}, {Key: "a", Value: int32(-1)}}, opts.Sort)
	assert.Equal(t, bson.D{{Key: "a", Value: int32(1)}}, opts.Projection)
	assert.Equal(t, int64(5), *opts.Limit)
	assert.Equal(t, int64(10), *opts.Skip)
	assert.Equal(t, int32(100), *opts.BatchSize)
	assert.Equal(t, 1500*time.Millisecond, *opts.MaxTime)
	assert.True(t, *opts.AllowDiskUse)
	assert.Equal(t, "a_1", opts.Hint)
	assert.Equal(t, bson.D{{Key: "x", Value: int32(1)}}, opts.Let)
	assert.Equal(t, "en", opts.Collation.Locale)
	assert.Equal(t, 2, opts.Collation.Strength)
	assert.Equal(t, "report", *opts.Comment)
	require.NotNil(t, opts.CursorType)

	collOpts, err := req.Options.CollectionOptions()
	require.NoError(t, err)
	require.NotNil(t, collOpts)
	assert.Equal(t, "majority", collOpts.ReadConcern.Level)
	assert.Equal(t, readpref.SecondaryPreferredMode, collOpts.ReadPreference.Mode())
	staleness, ok := collOpts.ReadPreference.MaxStaleness()
	assert.True(t, ok)
	assert.Equal(t, 120*time.Second, staleness)
}

func TestFindOneOptions_PassThrough(t *testing.T) {
	var req dto.FindOneRequest
	require.NoError(t, decode(t, `{"database":"d","collection":"c","options":{"projection":{"_id":0},"sort":{"n":-1},"skip":2,"hint":{"n":1}}}`, &req))

	opts := req.Options.Driver()
	assert.Equal(t, bson.D{{Key: "_id", Value: int32(0)}}, opts.Projection)
	assert.Equal(t, bson.D{{Key: "n", Value: int32(-1)}}, opts.Sort)
	assert.Equal(t, int64(2), *opts.Skip)
	assert.Equal(t, bson.D{{Key: "n", Value: int32(1)}}, opts.Hint)

	collOpts, err := req.Options.CollectionOptions()
	assert.NoError(t, err)
	assert.Nil(t, collOpts)
}

func TestUpdateOptions_PassThrough(t *testing.T) {
	var req dto.UpdateRequest
	body := `{"database":"d","collection":"c","filter":{"a":1},"update":{"$set":{"items.$[i].done":true}},
		"options":{"upsert":true,"arrayFilters":[{"i.id":7}],"writeConcern":{"w":2,"wtimeout":100}}}`
	require.NoError(t, decode(t, body, &req))

	opts := req.Options.Driver()
	require.NotNil(t, opts.Upsert)
	assert.True(t, *opts.Upsert)
	assert.True(t, req.Options.Upserts())
	require.NotNil(t, opts.ArrayFilters)
	assert.Equal(t, []interface{}{bson.D{{Key: "i.id", Value: int32(7)}}}, opts.ArrayFilters.Filters)

	collOpts, err := req.Options.CollectionOptions()
	require.NoError(t, err)
	assert.Equal(t, 2, collOpts.WriteConcern.W)
	assert.Equal(t, 100*time.Millisecond, collOpts.WriteConcern.WTimeout)
}

func TestReplaceAndDeleteOptions_PassThrough(t *testing.T) {
	var replace dto.ReplaceOneRequest
	require.NoError(t, decode(t, `{"database":"d","collection":"c","filter":{},"replacement":{"a":2},"options":{"upsert":false,"hint":"a_1","let":{"v":1}}}`, &replace))
	ropts := replace.Options.Driver()
	assert.False(t, *ropts.Upsert)
	assert.False(t, replace.Options.Upserts())
	assert.Equal(t, "a_1", ropts.Hint)
	assert.Equal(t, bson.D{{Key: "v", Value: int32(1)}}, ropts.Let)

	var del dto.DeleteRequest
	require.NoError(t, decode(t, `{"database":"d","collection":"c","filter":{"a":1},"options":{"collation":{"locale":"fr"},"comment":"purge"}}`, &del))
	dopts := del.Options.Driver()
	assert.Equal(t, "fr", dopts.Collation.Locale)
	assert.Equal(t, "purge", dopts.Comment)
}

func TestInsertManyOptions_PassThrough(t *testing.T) {
	var req dto.InsertManyRequest
	require.NoError(t, decode(t, `{"database":"d","collection":"c","documents":[{}],"options":{"ordered":false,"bypassDocumentValidation":true}}`, &req))

	opts := req.Options.Driver()
	assert.False(t, *opts.Ordered)
	assert.True(t, *opts.BypassDocumentValidation)
}

func TestOptions_NilReceivers(t *testing.T) {
	var insertOne *dto.InsertOneOptions
	var find *dto.FindOptions
	var update *dto.UpdateOptions

	assert.Nil(t, insertOne.Driver())
	assert.Nil(t, find.Driver())
	assert.Nil(t, update.Driver())
	assert.False(t, update.Upserts())

	collOpts, err := find.CollectionOptions()
	assert.NoError(t, err)
	assert.Nil(t, collOpts)
}

func TestOptions_InvalidCollectionSettings(t *testing.T) {
	var update dto.UpdateRequest
	require.NoError(t, decode(t, `{"database":"d","collection":"c","filter":{},"update":{},"options":{"writeConcern":{"w":true}}}`, &update))
	_, err := update.Options.CollectionOptions()
	assert.Error(t, err)

	var find dto.FindManyRequest
	require.NoError(t, decode(t, `{"database":"d","collection":"c","options":{"readPreference":{"mode":"fastest"}}}`, &find))
	_, err = find.Options.CollectionOptions()
	assert.Error(t, err)
}
