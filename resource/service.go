package resource

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	apperrors "github.com/kbukum/fidor/errors"
	"github.com/kbukum/fidor/httpclient"
	"github.com/kbukum/fidor/httpclient/rest"
	"github.com/kbukum/fidor/logger"
)

// Service performs record reads and writes over a REST client.
type Service struct {
	client *rest.Client
	log    *logger.Logger
}

// NewService creates a Service. A nil logger discards output.
func NewService(client *rest.Client, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{client: client, log: log.WithComponent("resource")}
}

// Save validates m and, if valid, creates it (POST to its endpoint) or
// updates it (PATCH to endpoint/id). Errors are replaced on every attempt
// except transport failures, which leave them untouched. A create whose
// response carries no id is a malformed response. ReadOnly records are
// refused as a validation failure.
func (s *Service) Save(ctx context.Context, m Model) Result {
	st := m.Record()
	st.saving.Lock()
	defer st.saving.Unlock()

	name := m.ResourceName()
	fields := logger.Fields(logger.FieldResource, name)

	if ro, ok := m.(ReadOnly); ok && ro.ReadOnly() {
		errs := Errors{}
		errs.Add(BaseKey, MsgReadOnly)
		st.replaceErrors(errs)
		s.log.Debug("refused save of read-only record", fields)
		return Result{Resource: name, Outcome: OutcomeValidationRejected, Errors: errs.Clone()}
	}

	if !Validate(m) {
		errs := st.Errors()
		s.log.Debug("record failed validation", logger.Fields(
			logger.FieldResource, name, "fields", errs.Keys()))
		return Result{Resource: name, Outcome: OutcomeValidationRejected, Errors: errs}
	}

	creating := !st.Persisted()
	start := time.Now()
	var (
		resp *rest.Response[json.RawMessage]
		err  error
	)
	if creating {
		fields[logger.FieldMethod] = http.MethodPost
		resp, err = rest.Post[json.RawMessage](ctx, s.client, m.Endpoint(), m.AsJSON())
	} else {
		fields[logger.FieldMethod] = http.MethodPatch
		fields[logger.FieldRecordID] = st.ID()
		resp, err = rest.Patch[json.RawMessage](ctx, s.client, memberPath(m.Endpoint(), st.ID()), m.AsJSON())
	}
	logger.MergeWithDuration(fields, time.Since(start))
	if err != nil {
		if resp != nil && httpclient.IsRejected(err) {
			if remote, ok := ParseErrorBody(resp.Raw); ok {
				st.replaceErrors(remote)
				fields[logger.FieldStatus] = resp.StatusCode
				fields[logger.FieldOutcome] = OutcomeRemoteRejected.String()
				s.log.Info("record rejected by api", fields)
				return Result{Resource: name, Outcome: OutcomeRemoteRejected, Errors: remote.Clone()}
			}
		}
		cause := classify(err, name, strconv.FormatInt(st.ID(), 10))
		fields[logger.FieldOutcome] = OutcomeTransportFailure.String()
		fields[logger.FieldError] = cause.Error()
		s.log.Warn("record save failed", fields)
		return Result{Resource: name, Outcome: OutcomeTransportFailure, Cause: cause}
	}

	id, err := absorb(m, resp.Raw, creating)
	if err != nil {
		cause := apperrors.MalformedResponse(resp.StatusCode, err)
		fields[logger.FieldOutcome] = OutcomeTransportFailure.String()
		fields[logger.FieldError] = cause.Error()
		s.log.Warn("record save response unreadable", fields)
		return Result{Resource: name, Outcome: OutcomeTransportFailure, Cause: cause}
	}
	st.markPersisted(id)

	fields[logger.FieldRecordID] = st.ID()
	fields[logger.FieldOutcome] = OutcomeSuccess.String()
	s.log.Info("record saved", fields)
	return Result{Resource: name, Outcome: OutcomeSuccess, Errors: Errors{}}
}

// Find loads the record with the given id from its endpoint.
func Find[T any, P interface {
	*T
	Model
}](ctx context.Context, s *Service, id int64) (P, error) {
	rec := P(new(T))
	idStr := strconv.FormatInt(id, 10)

	resp, err := rest.Get[json.RawMessage](ctx, s.client, memberPath(rec.Endpoint(), id))
	if err != nil {
		return nil, classify(err, rec.ResourceName(), idStr)
	}
	got, err := absorb(rec, resp.Raw, false)
	if err != nil {
		return nil, apperrors.MalformedResponse(resp.StatusCode, err)
	}
	if got == 0 {
		got = id
	}
	rec.Record().markPersisted(got)

	s.log.Debug("record loaded", logger.Fields(
		logger.FieldResource, rec.ResourceName(), logger.FieldRecordID, got))
	return rec, nil
}

// All lists records from their endpoint. Every returned record is persisted.
func All[T any, P interface {
	*T
	Model
}](ctx context.Context, s *Service, opts ...ListOption) (*Collection[P], error) {
	name := P(new(T)).ResourceName()
	o := listOptions{path: P(new(T)).Endpoint(), query: map[string]string{}}
	for _, opt := range opts {
		opt(&o)
	}

	var reqOpts []rest.RequestOption
	if len(o.query) > 0 {
		reqOpts = append(reqOpts, rest.WithQuery(o.query))
	}
	resp, err := rest.Get[json.RawMessage](ctx, s.client, o.path, reqOpts...)
	if err != nil {
		return nil, classify(err, name, "")
	}

	raws, page, err := splitList(resp.Raw)
	if err != nil {
		return nil, apperrors.MalformedResponse(resp.StatusCode, err)
	}
	items := make([]P, 0, len(raws))
	for _, raw := range raws {
		rec := P(new(T))
		id, err := absorb(rec, raw, false)
		if err != nil {
			return nil, apperrors.MalformedResponse(resp.StatusCode, err)
		}
		rec.Record().markPersisted(id)
		items = append(items, rec)
	}

	s.log.Debug("records listed", logger.Fields(
		logger.FieldResource, name, logger.FieldCount, len(items)))
	return NewCollection(items, page), nil
}

var errMissingID = errors.New("response has no record id")

// absorb applies a response object to m and returns its id, 0 if absent.
// With requireID set, a response without an id is rejected before m is
// touched.
func absorb(m Model, raw []byte, requireID bool) (int64, error) {
	var head struct {
		ID *Int `json:"id"`
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &head); err != nil {
			return 0, err
		}
	}
	var id int64
	if head.ID != nil {
		id = int64(*head.ID)
	}
	if requireID && id == 0 {
		return 0, errMissingID
	}
	if len(raw) == 0 {
		return 0, nil
	}
	if err := m.ApplyWire(raw); err != nil {
		return 0, err
	}
	return id, nil
}

func memberPath(endpoint string, id int64) string {
	return endpoint + "/" + strconv.FormatInt(id, 10)
}

// classify maps a transport-layer error onto the application error codes.
func classify(err error, resource, id string) *apperrors.AppError {
	var de *rest.DecodeError
	if errors.As(err, &de) {
		return apperrors.MalformedResponse(de.StatusCode, err)
	}
	he, ok := httpclient.AsError(err)
	if !ok {
		return apperrors.Transport(err)
	}
	switch he.Code {
	case httpclient.ErrCodeTimeout:
		return apperrors.Timeout(resource, err)
	case httpclient.ErrCodeConnection:
		return apperrors.ConnectionFailed(err)
	case httpclient.ErrCodeAuth:
		if he.StatusCode == http.StatusForbidden {
			return apperrors.Forbidden(he.Message).WithCause(err)
		}
		return apperrors.Unauthorized(he.Message).WithCause(err)
	case httpclient.ErrCodeNotFound:
		return apperrors.NotFound(resource, id).WithCause(err)
	case httpclient.ErrCodeRateLimit:
		return apperrors.RateLimited().WithCause(err)
	case httpclient.ErrCodeServer:
		e := apperrors.Transport(err)
		e.HTTPStatus = he.StatusCode
		return e
	case httpclient.ErrCodeRejected, httpclient.ErrCodeUnexpected:
		return apperrors.UnexpectedStatus(he.StatusCode).WithCause(err)
	default:
		return apperrors.Transport(err)
	}
}
