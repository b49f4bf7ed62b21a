package world

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"rwk-afmg/core/docstore"
	"rwk-afmg/core/storage"
	"rwk-afmg/core/storage/mocks"
	"rwk-afmg/feature/world/burgurl"
	"rwk-afmg/feature/world/classify"
	"rwk-afmg/feature/world/importer"
	"rwk-afmg/feature/world/render"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const export = "x|y|z|SEED1|2000|1500|...\n" +
	`[{"i":0,"name":"Wildlands"},{"i":1,"name":"Elves"}]` + "\n" +
	`[{"i":0,"name":"No religion"},{"i":1,"name":"Old Faith","type":"Folk","deity":"Ona","culture":1}]` + "\n" +
	`[{"i":0,"name":"Neutrals","diplomacy":["x"]},{"i":1,"name":"Vostria","culture":1,"diplomacy":["x"]}]` + "\n" +
	`[{},{"i":1,"name":"Ruvia","x":5,"y":6,"cell":10,"state":1,"culture":1,"population":"12.500","citadel":1}]`

func setupService(t *testing.T, client storage.Client) (*Service, *docstore.MemoryStore) {
	t.Helper()
	renderer, err := render.New()
	require.NoError(t, err)

	docs := docstore.NewMemoryStore()
	urls := burgurl.New("")
	logger := zap.NewNop()
	pipeline := importer.NewPipeline(docs, renderer, urls, nil, logger, importer.Config{RenderWorkers: 2})
	cfg := storage.Config{Bucket: "maps", ReportPrefix: "reports"}
	return NewService(client, cfg, docs, pipeline, urls, logger), docs
}

func TestService_Inspect(t *testing.T) {
	svc, docs := setupService(t, nil)

	inspection, err := svc.Inspect(export)
	require.NoError(t, err)

	assert.Equal(t, 2, inspection.Classification.Counts["religions"])
	require.Len(t, inspection.Religions, 2)
	assert.Equal(t, "Old Faith", inspection.Religions[1].Name)
	require.Len(t, inspection.Burgs, 2)
	assert.Equal(t, "Vostria", inspection.Burgs[1].Country.Name)
	assert.Contains(t, inspection.Burgs[1].URL, "seed=SEED10001")

	collections, err := docs.Collections(context.Background())
	require.NoError(t, err)
	assert.Empty(t, collections, "inspect never writes")
}

func TestInspection_YAMLMatchesJSONShape(t *testing.T) {
	svc, _ := setupService(t, nil)

	inspection, err := svc.Inspect(export)
	require.NoError(t, err)

	out, err := yaml.Marshal(inspection)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "- x")

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(out, &doc))
	for _, key := range []string{"classification", "cultures", "religions", "countries", "burgs"} {
		assert.Contains(t, doc, key)
	}

	cultures := doc["cultures"].([]any)
	require.Len(t, cultures, 2)
	elves := cultures[1].(map[string]any)
	assert.Equal(t, "Elves", elves["name"])
	assert.Equal(t, 1, elves["i"])
	assert.NotContains(t, elves, "base")

	countries := doc["countries"].([]any)
	require.Len(t, countries, 2)
	vostria := countries[1].(map[string]any)
	assert.Equal(t, "Vostria", vostria["name"])
	assert.NotContains(t, vostria, "country")
	assert.NotContains(t, vostria, "base")
	assert.NotContains(t, vostria, "diplomacy")

	burg := doc["burgs"].([]any)[1].(map[string]any)
	assert.Equal(t, "Ruvia", burg["name"])
	assert.Equal(t, "12.500", burg["population"])
	assert.NotContains(t, burg, "burg")
}

func TestService_BurgURL(t *testing.T) {
	svc, _ := setupService(t, nil)

	url, err := svc.BurgURL(export, 1)
	require.NoError(t, err)
	assert.Contains(t, url, "name=Ruvia")
	assert.Contains(t, url, "population=12500")

	_, err = svc.BurgURL(export, 9)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_ImportObject(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "maps", "worlds/a.map", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(export))), nil).Once()

	svc, docs := setupService(t, client)
	report, err := svc.ImportObject(context.Background(), "worlds/a.map", importer.Options{})
	require.NoError(t, err)
	assert.NotEmpty(t, report.RunID)

	burgs, err := docs.Documents(context.Background(), "Burgs")
	require.NoError(t, err)
	assert.Len(t, burgs, 1)
	client.AssertExpectations(t)
}

func TestService_ImportObjectSurvivesCallerCancel(t *testing.T) {
	client := new(mocks.Client)
	live := mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil })
	client.On("GetObject", live, "maps", "worlds/a.map", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(export))), nil).Once()

	svc, docs := setupService(t, client)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := svc.ImportObject(ctx, "worlds/a.map", importer.Options{})
	require.NoError(t, err)
	assert.NotEmpty(t, report.RunID)

	burgs, err := docs.Documents(context.Background(), "Burgs")
	require.NoError(t, err)
	assert.Len(t, burgs, 1)
	client.AssertExpectations(t)
}

func TestService_ImportObjectMissing(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "maps", "nope.map", mock.Anything).
		Return(nil, errors.New("NoSuchKey"))

	svc, _ := setupService(t, client)
	_, err := svc.ImportObject(context.Background(), "nope.map", importer.Options{})
	assert.ErrorContains(t, err, "NoSuchKey")
}

func TestService_NoBucket(t *testing.T) {
	svc, _ := setupService(t, nil)

	_, err := svc.ImportObject(context.Background(), "a.map", importer.Options{})
	assert.ErrorIs(t, err, ErrNoBucket)
	_, err = svc.SaveReport(context.Background(), "run", map[string]string{})
	assert.ErrorIs(t, err, ErrNoBucket)
}

func TestService_SaveReport(t *testing.T) {
	client := new(mocks.Client)
	var body []byte
	client.On("PutObject", mock.Anything, "maps", "reports/run-1.json", mock.Anything, mock.Anything, mock.MatchedBy(func(o minio.PutObjectOptions) bool {
		return o.ContentType == "application/json"
	})).Run(func(args mock.Arguments) {
		body, _ = io.ReadAll(args.Get(3).(io.Reader))
	}).Return(minio.UploadInfo{}, nil)

	svc, _ := setupService(t, client)
	object, err := svc.SaveReport(context.Background(), "run-1", map[string]int{"burgs": 1})
	require.NoError(t, err)
	assert.Equal(t, "reports/run-1.json", object)
	assert.JSONEq(t, `{"burgs":1}`, string(body))
}

func TestService_DocumentsAndReset(t *testing.T) {
	svc, _ := setupService(t, nil)
	ctx := context.Background()

	_, err := svc.Import(ctx, export, importer.Options{})
	require.NoError(t, err)

	docs, err := svc.Documents(ctx, "countries")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Vostria", docs[0].Name)

	_, err = svc.Documents(ctx, "Dragons")
	assert.ErrorIs(t, err, ErrNotFound)

	dropped, err := svc.Reset(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Cultures", "Countries", "Burgs"}, dropped)

	docs, err = svc.Documents(ctx, "Countries")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestService_Classify(t *testing.T) {
	svc, _ := setupService(t, nil)

	report, err := svc.Classify(export)
	require.NoError(t, err)
	assert.Equal(t, "SEED1", report.Header.Seed)

	_, err = svc.Classify("")
	assert.ErrorIs(t, err, classify.ErrEmptySource)
}
