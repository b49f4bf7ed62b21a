package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) List(ctx context.Context, collection string) ([]Materialized, error) {
	args := m.Called(ctx, collection)
	if list, ok := args.Get(0).([]Materialized); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) CreateMany(ctx context.Context, collection string, docs []Document) ([]string, error) {
	args := m.Called(ctx, collection, docs)
	if ids, ok := args.Get(0).([]string); ok {
		return ids, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) UpdateMany(ctx context.Context, collection string, updates []Update) error {
	args := m.Called(ctx, collection, updates)
	return args.Error(0)
}

type mockDropStore struct {
	mockStore
}

func (m *mockDropStore) Drop(ctx context.Context, collection string) error {
	args := m.Called(ctx, collection)
	return args.Error(0)
}

func TestApplyPlan_Create(t *testing.T) {
	store := new(mockStore)
	plan := &Plan{
		Collection: "Burgs",
		Mode:       ModeCreate,
		Creates:    []Document{{Name: "Ruvia", SourceID: 1}, {Name: "Kelm", SourceID: 2}},
	}
	store.On("CreateMany", mock.Anything, "Burgs", plan.Creates).Return([]string{"x", "y"}, nil)

	result, err := ApplyPlan(context.Background(), store, plan, ReconcileOptions{})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Created)
	id, ok := result.IdentityOf(2)
	assert.True(t, ok)
	assert.Equal(t, "y", id)
	store.AssertExpectations(t)
}

func TestApplyPlan_Update(t *testing.T) {
	store := new(mockStore)
	plan := &Plan{
		Collection: "Burgs",
		Mode:       ModeUpdate,
		Updates:    []Update{{Identity: "x", Document: Document{Name: "Ruvia", SourceID: 1}}},
	}
	store.On("UpdateMany", mock.Anything, "Burgs", plan.Updates).Return(nil)

	result, err := ApplyPlan(context.Background(), store, plan, ReconcileOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, []Materialized{{Identity: "x", SourceID: 1}}, result.Identities)
	store.AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything, mock.Anything)
}

func TestApplyPlan_DryRunAndBlocked(t *testing.T) {
	store := new(mockStore)

	t.Run("DryRun", func(t *testing.T) {
		plan := &Plan{Collection: "Burgs", Mode: ModeCreate, Creates: []Document{{Name: "Ruvia"}}}
		result, err := ApplyPlan(context.Background(), store, plan, ReconcileOptions{DryRun: true})
		require.NoError(t, err)
		assert.Zero(t, result.Created)
	})

	t.Run("Blocked", func(t *testing.T) {
		plan := &Plan{Collection: "Burgs", Mode: ModeBlocked}
		result, err := ApplyPlan(context.Background(), store, plan, ReconcileOptions{Confirmed: true})
		require.NoError(t, err)
		assert.Equal(t, ModeBlocked, result.Mode)
	})

	store.AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "UpdateMany", mock.Anything, mock.Anything, mock.Anything)
}

func TestApplyPlan_Drop(t *testing.T) {
	plan := &Plan{Collection: "Burgs", Mode: ModeCreate, Drop: true, Creates: []Document{{Name: "Ruvia", SourceID: 1}}}

	t.Run("NotConfirmed", func(t *testing.T) {
		store := new(mockDropStore)
		_, err := ApplyPlan(context.Background(), store, plan, ReconcileOptions{})
		assert.ErrorIs(t, err, ErrNotConfirmed)
	})

	t.Run("NoDropper", func(t *testing.T) {
		store := new(mockStore)
		_, err := ApplyPlan(context.Background(), store, plan, ReconcileOptions{Confirmed: true})
		assert.ErrorContains(t, err, "Dropper")
	})

	t.Run("Confirmed", func(t *testing.T) {
		store := new(mockDropStore)
		store.On("Drop", mock.Anything, "Burgs").Return(nil)
		store.On("CreateMany", mock.Anything, "Burgs", plan.Creates).Return([]string{"z"}, nil)

		result, err := ApplyPlan(context.Background(), store, plan, ReconcileOptions{Confirmed: true})
		require.NoError(t, err)
		assert.True(t, result.Dropped)
		assert.Equal(t, 1, result.Created)
	})
}

func TestApplyPlan_StoreErrors(t *testing.T) {
	store := new(mockStore)
	plan := &Plan{Collection: "Burgs", Mode: ModeCreate, Creates: []Document{{Name: "Ruvia"}}}
	store.On("CreateMany", mock.Anything, "Burgs", mock.Anything).Return(nil, errors.New("boom"))

	_, err := ApplyPlan(context.Background(), store, plan, ReconcileOptions{})
	assert.ErrorContains(t, err, "boom")

	short := new(mockStore)
	short.On("CreateMany", mock.Anything, "Burgs", mock.Anything).Return([]string{}, nil)
	_, err = ApplyPlan(context.Background(), short, plan, ReconcileOptions{})
	assert.ErrorContains(t, err, "identities")
}

func TestReconcile_RoundTrip(t *testing.T) {
	store := new(mockStore)
	candidates := []Candidate{candidate(0, ""), candidate(1, "Vostria")}

	store.On("List", mock.Anything, "Countries").Return([]Materialized{{Identity: "c1", SourceID: 1}}, nil)
	store.On("UpdateMany", mock.Anything, "Countries", mock.Anything).Return(nil)

	plan, result, err := Reconcile(context.Background(), store, "Countries", candidates, ReconcileOptions{})
	require.NoError(t, err)
	assert.Equal(t, ModeUpdate, plan.Mode)
	assert.Equal(t, 1, result.Updated)

	failing := new(mockStore)
	failing.On("List", mock.Anything, "Countries").Return(nil, errors.New("down"))
	_, _, err = Reconcile(context.Background(), failing, "Countries", candidates, ReconcileOptions{})
	assert.ErrorContains(t, err, "down")
}
