package simulator_test

import (
	"context"
	"errors"
	"flooow/internal/simulator"
	"math"
	"testing"
	"time"

	mocksimulator "flooow/internal/simulator/mock"
	mockstorage "flooow/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"flooow/pkg/domain"
	"flooow/pkg/logger"
	"flooow/pkg/serrors"
	"flooow/pkg/storage"
)

var fixedNow = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC) //nolint: gochecknoglobals

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment, "")
	m.Run()
}

type testEnv struct {
	ctrl  *gomock.Controller
	st    *mockstorage.MockStorage
	cache *mocksimulator.MockDistributionCache
	sim   simulator.Simulator
}

func newTestSimulator(t *testing.T, opts simulator.Options) testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	cache := mocksimulator.NewMockDistributionCache(ctrl)
	if opts.MaxAttempts == 0 {
		opts.MaxAttempts = 3
	}
	if opts.RefreshPeriod == 0 {
		opts.RefreshPeriod = time.Minute
	}
	opts.Now = func() time.Time { return fixedNow }

	return testEnv{
		ctrl:  ctrl,
		st:    st,
		cache: cache,
		sim:   simulator.New(simulator.Deps{Storage: st, Cache: cache}, opts),
	}
}

// expectWithTx wires Storage.WithTx to run the callback against a MockAllStorage.
func expectWithTx(t *testing.T, env testEnv, fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	env.st.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(env.ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func echoStore(id domain.SimulationID) func(context.Context, ...domain.Simulation) ([]domain.Simulation, error) {
	return func(_ context.Context, sims ...domain.Simulation) ([]domain.Simulation, error) {
		out := append([]domain.Simulation(nil), sims...)
		out[0].ID = id
		out[0].CreatedAt = fixedNow

		return out, nil
	}
}

func TestSimulator_Simulate_MapsBrackets(t *testing.T) {
	tests := []struct {
		qf      float64
		bracket string
		value   int
		label   string
	}{
		{qf: 0, bracket: "0-450", value: 300, label: "0 - 450 €"},
		{qf: 450, bracket: "0-450", value: 300, label: "0 - 450 €"},
		{qf: 450.01, bracket: "451-700", value: 575, label: "451 - 700 €"},
		{qf: 1000, bracket: "701-1000", value: 850, label: "701 - 1000 €"},
		{qf: 1500, bracket: "1001+", value: 1200, label: "1001 € et plus"},
		{qf: -25, bracket: "0-450", value: 300, label: "0 - 450 €"},
	}

	for _, tt := range tests {
		t.Run(tt.bracket, func(t *testing.T) {
			env := newTestSimulator(t, simulator.Options{})
			userID := domain.UserID(uuid.New())
			id := domain.SimulationID(uuid.New())

			expectWithTx(t, env, func(tx *mockstorage.MockAllStorage) {
				tx.EXPECT().StoreSimulations(gomock.Any(), gomock.Any()).DoAndReturn(echoStore(id))
				tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
					func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
						job, ok := args.(simulator.RefreshDistributionJobArgs)
						require.True(t, ok, "unexpected job args %T", args)
						require.Equal(t, simulator.DistributionScopeAll, job.Scope)

						return true, nil
					})
			})
			env.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

			sim, err := env.sim.Simulate(context.Background(), userID, tt.qf)
			require.NoError(t, err)
			require.Equal(t, id, sim.ID)
			require.Equal(t, userID, sim.UserID)
			require.InDelta(t, tt.qf, sim.QF, 0)
			require.Equal(t, tt.bracket, sim.BracketID)
			require.Equal(t, tt.value, sim.RepresentativeValue)
			require.Equal(t, tt.label, sim.Label)
		})
	}
}

func TestSimulator_Simulate_DuplicateJobIsFine(t *testing.T) {
	env := newTestSimulator(t, simulator.Options{})

	expectWithTx(t, env, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreSimulations(gomock.Any(), gomock.Any()).DoAndReturn(echoStore(domain.SimulationID{}))
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
	})
	// the skipped job may be a running refresh that read older counts
	env.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

	_, err := env.sim.Simulate(context.Background(), domain.UserID{}, 600)
	require.NoError(t, err)
}

func TestSimulator_Simulate_InvalidatesAfterCommit(t *testing.T) {
	env := newTestSimulator(t, simulator.Options{})

	committed := false
	env.st.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(env.ctrl)
			tx.EXPECT().StoreSimulations(gomock.Any(), gomock.Any()).DoAndReturn(echoStore(domain.SimulationID{}))
			tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil)
			if err := cb(tx); err != nil {
				return err
			}
			committed = true

			return nil
		})
	env.cache.EXPECT().Invalidate(gomock.Any()).DoAndReturn(func(context.Context) error {
		require.True(t, committed, "cache invalidated before the simulation was committed")

		return nil
	})

	_, err := env.sim.Simulate(context.Background(), domain.UserID{}, 800)
	require.NoError(t, err)
}

func TestSimulator_Simulate_InvalidateErrorIsNotFatal(t *testing.T) {
	env := newTestSimulator(t, simulator.Options{})

	expectWithTx(t, env, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreSimulations(gomock.Any(), gomock.Any()).DoAndReturn(echoStore(domain.SimulationID{}))
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil)
	})
	env.cache.EXPECT().Invalidate(gomock.Any()).Return(errors.New("redis down"))

	sim, err := env.sim.Simulate(context.Background(), domain.UserID{}, 800)
	require.NoError(t, err)
	require.Equal(t, 850, sim.RepresentativeValue)
}

func TestSimulator_Simulate_RejectsNonFinite(t *testing.T) {
	env := newTestSimulator(t, simulator.Options{})

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := env.sim.Simulate(context.Background(), domain.UserID{}, v)
		require.ErrorIs(t, err, serrors.ErrBadRequest, "qf=%v", v)
	}
}

func TestSimulator_Simulate_RejectNegativeQF(t *testing.T) {
	env := newTestSimulator(t, simulator.Options{RejectNegativeQF: true})

	_, err := env.sim.Simulate(context.Background(), domain.UserID{}, -0.5)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	// zero is still accepted
	expectWithTx(t, env, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreSimulations(gomock.Any(), gomock.Any()).DoAndReturn(echoStore(domain.SimulationID{}))
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil)
	})
	env.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)
	sim, err := env.sim.Simulate(context.Background(), domain.UserID{}, 0)
	require.NoError(t, err)
	require.Equal(t, 300, sim.RepresentativeValue)
}

func TestSimulator_Simulate_StorageError(t *testing.T) {
	env := newTestSimulator(t, simulator.Options{})
	boom := errors.New("db down")

	expectWithTx(t, env, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreSimulations(gomock.Any(), gomock.Any()).Return(nil, boom)
	})

	_, err := env.sim.Simulate(context.Background(), domain.UserID{}, 100)
	require.ErrorIs(t, err, boom)
}

func TestSimulator_Simulate_AddJobError(t *testing.T) {
	env := newTestSimulator(t, simulator.Options{})
	boom := errors.New("queue down")

	expectWithTx(t, env, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreSimulations(gomock.Any(), gomock.Any()).DoAndReturn(echoStore(domain.SimulationID{}))
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, boom)
	})

	_, err := env.sim.Simulate(context.Background(), domain.UserID{}, 100)
	require.ErrorIs(t, err, boom)
}

func TestSimulator_UserSimulations(t *testing.T) {
	env := newTestSimulator(t, simulator.Options{DefaultLimit: 20, MaxLimit: 50})
	userID := domain.UserID(uuid.New())
	cursor := storage.SimulationCursor{
		CreatedAt: time.Date(2026, 9, 30, 8, 15, 30, 123456000, time.UTC),
		ID:        domain.SimulationID(uuid.MustParse("0b8d2f4e-6a1c-4e57-9c3d-2f1a7b9e8c01")),
	}
	next := storage.SimulationCursor{
		CreatedAt: cursor.CreatedAt,
		ID:        domain.SimulationID(uuid.MustParse("0a11c3d5-2b4f-4d6e-8f90-1a2b3c4d5e6f")),
	}

	env.st.EXPECT().
		UserSimulations(gomock.Any(), userID, "451-700", &cursor, uint(50)).
		Return(storage.UserSimulations{
			Simulations: []domain.Simulation{{BracketID: "451-700"}},
			NextCursor:  &next,
		}, nil)

	sims, nextCursor, err := env.sim.UserSimulations(context.Background(),
		userID, "451-700", "2026-09-30T08:15:30.123456Z|0b8d2f4e-6a1c-4e57-9c3d-2f1a7b9e8c01", 500)
	require.NoError(t, err)
	require.Len(t, sims, 1)
	require.Equal(t, "2026-09-30T08:15:30.123456Z|0a11c3d5-2b4f-4d6e-8f90-1a2b3c4d5e6f", nextCursor)
}

func TestSimulator_UserSimulations_CursorRoundTrip(t *testing.T) {
	env := newTestSimulator(t, simulator.Options{})
	userID := domain.UserID(uuid.New())
	// rows inserted together share created_at; the id keeps them apart
	next := storage.SimulationCursor{CreatedAt: fixedNow, ID: domain.SimulationID(uuid.New())}

	env.st.EXPECT().UserSimulations(gomock.Any(), userID, "", nil, uint(1)).
		Return(storage.UserSimulations{Simulations: []domain.Simulation{{}}, NextCursor: &next}, nil)
	_, cursor, err := env.sim.UserSimulations(context.Background(), userID, "", "", 1)
	require.NoError(t, err)

	env.st.EXPECT().UserSimulations(gomock.Any(), userID, "", &next, uint(1)).
		Return(storage.UserSimulations{}, nil)
	_, cursor, err = env.sim.UserSimulations(context.Background(), userID, "", cursor, 1)
	require.NoError(t, err)
	require.Empty(t, cursor)
}

func TestSimulator_UserSimulations_DefaultLimitAndLastPage(t *testing.T) {
	env := newTestSimulator(t, simulator.Options{DefaultLimit: 20, MaxLimit: 50})

	env.st.EXPECT().
		UserSimulations(gomock.Any(), gomock.Any(), "", nil, uint(20)).
		Return(storage.UserSimulations{}, nil)

	sims, next, err := env.sim.UserSimulations(context.Background(), domain.UserID{}, "", "", 0)
	require.NoError(t, err)
	require.Empty(t, sims)
	require.Empty(t, next)
}

func TestSimulator_UserSimulations_BadInput(t *testing.T) {
	env := newTestSimulator(t, simulator.Options{})

	_, _, err := env.sim.UserSimulations(context.Background(), domain.UserID{}, "2000-3000", "", 10)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	for _, cursor := range []string{
		"yesterday",
		"2026-09-30T08:15:30Z",
		"2026-09-30T08:15:30Z|not-a-uuid",
		"yesterday|0b8d2f4e-6a1c-4e57-9c3d-2f1a7b9e8c01",
	} {
		_, _, err = env.sim.UserSimulations(context.Background(), domain.UserID{}, "", cursor, 10)
		require.ErrorIs(t, err, serrors.ErrBadRequest, "cursor %q", cursor)
	}
}

func TestSimulator_Simulation(t *testing.T) {
	env := newTestSimulator(t, simulator.Options{})
	userID := domain.UserID(uuid.New())
	id := domain.SimulationID(uuid.New())

	env.st.EXPECT().SimulationByID(gomock.Any(), userID, id).Return(&domain.Simulation{ID: id}, nil)
	got, err := env.sim.Simulation(context.Background(), userID, id)
	require.NoError(t, err)
	require.Equal(t, id, got.ID)

	env.st.EXPECT().SimulationByID(gomock.Any(), userID, id).Return(nil, nil)
	_, err = env.sim.Simulation(context.Background(), userID, id)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestSimulator_Delete(t *testing.T) {
	env := newTestSimulator(t, simulator.Options{})
	userID := domain.UserID(uuid.New())
	id := domain.SimulationID(uuid.New())

	expectWithTx(t, env, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().DeleteSimulation(gomock.Any(), userID, id).Return(&domain.Simulation{ID: id}, nil)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil)
	})
	env.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)
	require.NoError(t, env.sim.Delete(context.Background(), userID, id))
}

func TestSimulator_Delete_NotFound(t *testing.T) {
	env := newTestSimulator(t, simulator.Options{})

	// no refresh job and no invalidation when nothing was deleted
	expectWithTx(t, env, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().DeleteSimulation(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	})
	err := env.sim.Delete(context.Background(), domain.UserID{}, domain.SimulationID{})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestSimulator_Distribution_CacheHit(t *testing.T) {
	env := newTestSimulator(t, simulator.Options{})
	cached := &domain.Distribution{Total: 7}

	env.cache.EXPECT().Distribution(gomock.Any()).Return(cached, nil)

	got, err := env.sim.Distribution(context.Background())
	require.NoError(t, err)
	require.Same(t, cached, got)
}

func TestSimulator_Distribution_CacheMissComputesAndStores(t *testing.T) {
	env := newTestSimulator(t, simulator.Options{})

	env.cache.EXPECT().Distribution(gomock.Any()).Return(nil, nil)
	env.cache.EXPECT().Generation(gomock.Any()).Return(int64(4), nil)
	env.st.EXPECT().BracketCounts(gomock.Any()).Return([]storage.BracketCount{
		{BracketID: "0-450", Count: 3},
		{BracketID: "701-1000", Count: 1},
	}, nil)
	env.cache.EXPECT().StoreDistribution(gomock.Any(), gomock.Any(), int64(4)).DoAndReturn(
		func(_ context.Context, d domain.Distribution, _ int64) (bool, error) {
			require.EqualValues(t, 4, d.Total)

			return true, nil
		})

	got, err := env.sim.Distribution(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 4, got.Total)
	require.Equal(t, fixedNow, got.ComputedAt)
	require.Len(t, got.Brackets, 4)
	require.InDelta(t, 0.75, got.Brackets[0].Share, 1e-9)
}

func TestSimulator_Distribution_CacheErrorsDegrade(t *testing.T) {
	env := newTestSimulator(t, simulator.Options{})

	env.cache.EXPECT().Distribution(gomock.Any()).Return(nil, errors.New("redis down"))
	env.cache.EXPECT().Generation(gomock.Any()).Return(int64(0), errors.New("redis down"))
	env.st.EXPECT().BracketCounts(gomock.Any()).Return(nil, nil)

	got, err := env.sim.Distribution(context.Background())
	require.NoError(t, err)
	require.Zero(t, got.Total)
}

func TestSimulator_RefreshDistribution(t *testing.T) {
	env := newTestSimulator(t, simulator.Options{})

	env.cache.EXPECT().Generation(gomock.Any()).Return(int64(2), nil)
	env.st.EXPECT().BracketCounts(gomock.Any()).Return([]storage.BracketCount{{BracketID: "1001+", Count: 2}}, nil)
	env.cache.EXPECT().StoreDistribution(gomock.Any(), gomock.Any(), int64(2)).Return(true, nil)

	got, err := env.sim.RefreshDistribution(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 2, got.Total)
	require.InDelta(t, 1.0, got.Brackets[3].Share, 1e-9)
}

func TestSimulator_RefreshDistribution_RecomputesAfterInvalidation(t *testing.T) {
	env := newTestSimulator(t, simulator.Options{})

	// a simulation commits while the first computation runs
	gomock.InOrder(
		env.cache.EXPECT().Generation(gomock.Any()).Return(int64(0), nil),
		env.st.EXPECT().BracketCounts(gomock.Any()).Return([]storage.BracketCount{{BracketID: "0-450", Count: 1}}, nil),
		env.cache.EXPECT().StoreDistribution(gomock.Any(), gomock.Any(), int64(0)).Return(false, nil),
		env.cache.EXPECT().Generation(gomock.Any()).Return(int64(1), nil),
		env.st.EXPECT().BracketCounts(gomock.Any()).Return([]storage.BracketCount{{BracketID: "0-450", Count: 2}}, nil),
		env.cache.EXPECT().StoreDistribution(gomock.Any(), gomock.Any(), int64(1)).Return(true, nil),
	)

	got, err := env.sim.RefreshDistribution(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 2, got.Total, "the fresh counts are returned")
}

func TestSimulator_RefreshDistribution_GivesUpWhenAlwaysStale(t *testing.T) {
	env := newTestSimulator(t, simulator.Options{})

	env.cache.EXPECT().Generation(gomock.Any()).Return(int64(0), nil).Times(3)
	env.st.EXPECT().BracketCounts(gomock.Any()).Return(nil, nil).Times(3)
	env.cache.EXPECT().StoreDistribution(gomock.Any(), gomock.Any(), int64(0)).Return(false, nil).Times(3)

	_, err := env.sim.RefreshDistribution(context.Background())
	require.Error(t, err)
	require.Nil(t, serrors.KindOf(err), "a plain error makes the job retry")
}

func TestSimulator_RefreshDistribution_Errors(t *testing.T) {
	env := newTestSimulator(t, simulator.Options{})
	boom := errors.New("boom")

	env.cache.EXPECT().Generation(gomock.Any()).Return(int64(0), boom)
	_, err := env.sim.RefreshDistribution(context.Background())
	require.ErrorIs(t, err, boom)

	env.cache.EXPECT().Generation(gomock.Any()).Return(int64(0), nil)
	env.st.EXPECT().BracketCounts(gomock.Any()).Return(nil, boom)
	_, err = env.sim.RefreshDistribution(context.Background())
	require.ErrorIs(t, err, boom)

	env.cache.EXPECT().Generation(gomock.Any()).Return(int64(0), nil)
	env.st.EXPECT().BracketCounts(gomock.Any()).Return(nil, nil)
	env.cache.EXPECT().StoreDistribution(gomock.Any(), gomock.Any(), int64(0)).Return(false, boom)
	_, err = env.sim.RefreshDistribution(context.Background())
	require.ErrorIs(t, err, boom)
}
