package v1handler

import (
	"flooow/pkg/domain"
	"flooow/pkg/serrors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

// maxBodyBytes bounds request bodies; a simulation request is a single number.
const maxBodyBytes = 1 << 10

func decodeCreateSimulation(body []byte) (float64, error) {
	var (
		value float64
		found bool
	)
	d := jx.DecodeBytes(body)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		if key != "qf" {
			return d.Skip()
		}
		if d.Next() != jx.Number {
			return errors.New("qf must be a number")
		}
		v, err := d.Float64()
		if err != nil {
			return errors.Wrap(err, "qf")
		}
		value, found = v, true

		return nil
	}); err != nil {
		return 0, errors.Wrap(err, "decode simulation request")
	}
	if d.Next() != jx.Invalid {
		return 0, errors.New("unexpected data after request object")
	}
	if !found {
		return 0, errors.New("qf is required")
	}

	return value, nil
}

func parseSimulationID(r *http.Request) (domain.SimulationID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return domain.SimulationID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid simulation id")
	}

	return domain.SimulationID(id), nil
}

// CreateSimulation runs a simulation for the authenticated user.
func (h Handler) CreateSimulation(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body"))

		return
	}

	value, err := decodeCreateSimulation(body)
	if err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "%s", err.Error()))

		return
	}

	s, err := h.deps.Simulator.Simulate(r.Context(), GetUserIDFromContext(r.Context()), value)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusCreated, func(e *jx.Encoder) { encodeSimulation(e, s) })
}

// ListSimulations returns a page of the authenticated user's simulations.
func (h Handler) ListSimulations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var limit uint64
	if raw := q.Get("limit"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "limit must be a positive integer"))

			return
		}
		limit = v
	}

	sims, next, err := h.deps.Simulator.UserSimulations(r.Context(),
		GetUserIDFromContext(r.Context()),
		q.Get("bracket"),
		q.Get("cursor"),
		uint(limit))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("items", func(e *jx.Encoder) {
				e.Arr(func(e *jx.Encoder) {
					for i := range sims {
						encodeSimulation(e, &sims[i])
					}
				})
			})
			e.Field("nextCursor", func(e *jx.Encoder) {
				if next == "" {
					e.Null()
				} else {
					e.Str(next)
				}
			})
		})
	})
}

// GetSimulation returns one of the authenticated user's simulations.
func (h Handler) GetSimulation(w http.ResponseWriter, r *http.Request) {
	id, err := parseSimulationID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	s, err := h.deps.Simulator.Simulation(r.Context(), GetUserIDFromContext(r.Context()), id)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, func(e *jx.Encoder) { encodeSimulation(e, s) })
}

// DeleteSimulation soft-deletes one of the authenticated user's simulations.
func (h Handler) DeleteSimulation(w http.ResponseWriter, r *http.Request) {
	id, err := parseSimulationID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	if err := h.deps.Simulator.Delete(r.Context(), GetUserIDFromContext(r.Context()), id); err != nil {
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// BracketStats returns the bracket distribution of all live simulations.
func (h Handler) BracketStats(w http.ResponseWriter, r *http.Request) {
	d, err := h.deps.Simulator.Distribution(r.Context())
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, func(e *jx.Encoder) { encodeDistribution(e, d) })
}
