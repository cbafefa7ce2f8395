package server

import (
	"encoding/json"
	"math/big"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/Evavic44/faker"
	"github.com/Evavic44/faker/errors"
	"github.com/Evavic44/faker/logging"
	"github.com/Evavic44/faker/metrics"
	"github.com/Evavic44/faker/source"
)

const (
	defaultCount = 1
	maxCount     = 1000
)

// ErrUnknownType is returned for a value type the API does not serve.
var ErrUnknownType = errors.New("server: unknown value type")

// errBadParam marks request parameter failures so they map to 400.
var errBadParam = errors.New("server: bad parameter")

func badParam(name, raw string) error {
	return errors.Errorf("%w: invalid %s %q", errBadParam, name, raw)
}

// valuesResponse is the envelope of every successful endpoint reply. The
// seed together with the request parameters replays the values exactly.
type valuesResponse struct {
	RequestID string `json:"request_id"`
	Seed      uint64 `json:"seed"`
	Values    []any  `json:"values"`
}

// errorResponse is the envelope of every failed endpoint reply.
type errorResponse struct {
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
}

// handleValues serves GET /v1/:type.
func (s *Server) handleValues(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	valueType := httprouter.ParamsFromContext(ctx).ByName("type")
	query := r.URL.Query()

	seed, err := s.resolveSeed(query)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	count, err := resolveCount(query)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	gen, err := s.generator(seed)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}

	values := make([]any, 0, count)
	for i := 0; i < count; i++ {
		value, err := synthesize(gen, valueType, query)
		if err != nil {
			metrics.ObserveGenerationError(valueType)
			s.writeError(w, r, statusFor(err), err)
			return
		}
		values = append(values, value)
	}
	metrics.ObserveGenerated(valueType, len(values))

	s.writeJSON(w, r, http.StatusOK, valuesResponse{
		RequestID: logging.RequestIDFromContext(ctx),
		Seed:      seed,
		Values:    values,
	})
}

// synthesize draws one value of valueType with the request parameters
// applied.
func synthesize(gen *faker.Generator, valueType string, query url.Values) (any, error) {
	switch valueType {
	case "number":
		opts, err := numberOptions(query)
		if err != nil {
			return nil, err
		}
		return gen.Number(opts...)
	case "float":
		opts, err := numberOptions(query)
		if err != nil {
			return nil, err
		}
		return gen.Float(opts...)
	case "date":
		opts, err := dateOptions(query)
		if err != nil {
			return nil, err
		}
		return gen.Date(opts...)
	case "string":
		n, err := intParam(query, "length", faker.DefaultStringLength)
		if err != nil {
			return nil, err
		}
		return gen.StringN(n), nil
	case "numeric":
		n, err := intParam(query, "length", faker.DefaultStringLength)
		if err != nil {
			return nil, err
		}
		return gen.Numeric(n, boolParam(query, "leading_zeros")), nil
	case "uuid":
		return gen.UUID(), nil
	case "ulid":
		return gen.ULID(time.Time{})
	case "hex":
		opts, err := hexOptions(query)
		if err != nil {
			return nil, err
		}
		return gen.Hexadecimal(opts...)
	case "boolean":
		return gen.Boolean(), nil
	case "array":
		n, err := intParam(query, "length", faker.DefaultArrayLength)
		if err != nil {
			return nil, err
		}
		return gen.ArrayN(n), nil
	case "json":
		return gen.JSON(), nil
	case "bigint":
		opts, err := bigIntOptions(query)
		if err != nil {
			return nil, err
		}
		return gen.BigInt(opts...)
	default:
		return nil, errors.Errorf("%w: %q", ErrUnknownType, valueType)
	}
}

// generator builds the per-request Generator over the configured source
// algorithm.
func (s *Server) generator(seed uint64) (*faker.Generator, error) {
	src, err := source.New(s.cfg.algorithm, seed)
	if err != nil {
		return nil, err
	}
	return faker.New(faker.WithSource(src), faker.WithClock(s.clk)), nil
}

// resolveSeed parses the seed parameter, deriving one from the clock when
// absent so the reply can still be replayed.
func (s *Server) resolveSeed(query url.Values) (uint64, error) {
	raw := query.Get("seed")
	if raw == "" {
		return uint64(s.clk.Now().UnixNano()), nil
	}
	seed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, badParam("seed", raw)
	}
	return seed, nil
}

func resolveCount(query url.Values) (int, error) {
	count, err := intParam(query, "count", defaultCount)
	if err != nil {
		return 0, err
	}
	if count < 1 {
		return 0, errors.Errorf("%w: count must be at least 1", errBadParam)
	}
	if count > maxCount {
		count = maxCount
	}
	return count, nil
}

func numberOptions(query url.Values) ([]faker.NumberOption, error) {
	var opts []faker.NumberOption
	if raw := query.Get("min"); raw != "" {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, badParam("min", raw)
		}
		opts = append(opts, faker.WithMin(f))
	}
	if raw := query.Get("max"); raw != "" {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, badParam("max", raw)
		}
		opts = append(opts, faker.WithMax(f))
	}
	if raw := query.Get("precision"); raw != "" {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, badParam("precision", raw)
		}
		opts = append(opts, faker.WithPrecision(f))
	}
	return opts, nil
}

// dateOptions reads min and max as epoch milliseconds.
func dateOptions(query url.Values) ([]faker.DateOption, error) {
	var opts []faker.DateOption
	if raw := query.Get("min"); raw != "" {
		ms, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, badParam("min", raw)
		}
		opts = append(opts, faker.WithFrom(time.UnixMilli(ms).UTC()))
	}
	if raw := query.Get("max"); raw != "" {
		ms, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, badParam("max", raw)
		}
		opts = append(opts, faker.WithUntil(time.UnixMilli(ms).UTC()))
	}
	return opts, nil
}

func hexOptions(query url.Values) ([]faker.HexOption, error) {
	var opts []faker.HexOption
	if raw := query.Get("length"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, badParam("length", raw)
		}
		opts = append(opts, faker.WithLength(n))
	}
	if query.Has("prefix") {
		opts = append(opts, faker.WithPrefix(query.Get("prefix")))
	}
	if raw := query.Get("casing"); raw != "" {
		opts = append(opts, faker.WithCasing(faker.Casing(raw)))
	}
	return opts, nil
}

func bigIntOptions(query url.Values) ([]faker.BigIntOption, error) {
	var opts []faker.BigIntOption
	if raw := query.Get("min"); raw != "" {
		v, ok := new(big.Int).SetString(raw, 10)
		if !ok {
			return nil, badParam("min", raw)
		}
		opts = append(opts, faker.WithBigIntMin(v))
	}
	if raw := query.Get("max"); raw != "" {
		v, ok := new(big.Int).SetString(raw, 10)
		if !ok {
			return nil, badParam("max", raw)
		}
		opts = append(opts, faker.WithBigIntMax(v))
	}
	return opts, nil
}

func intParam(query url.Values, name string, fallback int) (int, error) {
	raw := query.Get(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, badParam(name, raw)
	}
	return n, nil
}

func boolParam(query url.Values, name string) bool {
	ok, err := strconv.ParseBool(query.Get(name))
	return err == nil && ok
}

// statusFor maps generation failures to response codes. Bounds and shape
// violations are the caller's fault; anything else is ours.
func statusFor(err error) int {
	var rangeErr *faker.RangeError
	var precisionErr *faker.PrecisionError
	var casingErr *faker.CasingError
	switch {
	case errors.Is(err, ErrUnknownType):
		return http.StatusNotFound
	case errors.Is(err, errBadParam),
		errors.As(err, &rangeErr),
		errors.As(err, &precisionErr),
		errors.As(err, &casingErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.L(r.Context()).Error("failed to write response", logging.ErrAttr(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	logging.L(r.Context()).Warn("request failed",
		logging.IntAttr("status", status),
		logging.ErrAttr(err),
	)
	s.writeJSON(w, r, status, errorResponse{
		RequestID: logging.RequestIDFromContext(r.Context()),
		Error:     err.Error(),
	})
}
