package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"syscall"
	"time"

	"github.com/nakamauwu/parcelmate/errs"
	"github.com/nakamauwu/parcelmate/types"
)

var (
	errBadRequest           = errs.InvalidArgumentError("bad request")
	errNotFound             = errs.NotFoundError("not found")
	errStreamingUnsupported = errors.New("streaming unsupported")
)

func (h *Handler) respond(w http.ResponseWriter, v any, statusCode int) {
	b, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("could not json marshal http response body", "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_, err = w.Write(b)
	if err != nil && !errors.Is(err, syscall.EPIPE) && !errors.Is(err, context.Canceled) {
		h.logger.Error("could not write down http response", "err", err)
	}
}

func (h *Handler) respondErr(w http.ResponseWriter, r *http.Request, err error) {
	statusCode := err2code(err)
	if statusCode == http.StatusServiceUnavailable && !errors.Is(err, context.Canceled) {
		h.logger.Error("internal error", "method", r.Method, "path", r.URL.Path, "err", err)
	}

	h.respond(w, errs.Public(err), statusCode)
}

func err2code(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if errors.Is(err, errStreamingUnsupported) {
		return http.StatusExpectationFailed
	}

	var e *errs.Error
	if !errors.As(err, &e) {
		return http.StatusServiceUnavailable
	}

	switch e.Kind {
	case errs.KindInvalidArgument:
		if e.Field != nil {
			return http.StatusUnprocessableEntity
		}
		return http.StatusBadRequest
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindForbidden:
		return http.StatusForbidden
	case errs.KindAlreadyResolved, errs.KindConflict:
		return http.StatusConflict
	case errs.KindUnauthenticated:
		return http.StatusUnauthorized
	}

	return http.StatusServiceUnavailable
}

func (h *Handler) writeSSE(w io.Writer, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("could not json marshal sse data", "err", err)
		_, errWrite := fmt.Fprintf(w, "event: error\ndata: %v\n\n", err)
		if errWrite != nil && !errors.Is(errWrite, syscall.EPIPE) {
			h.logger.Error("could not write sse error", "err", errWrite)
		}
		return
	}

	_, errWrite := fmt.Fprintf(w, "data: %s\n\n", b)
	if errWrite != nil && !errors.Is(errWrite, syscall.EPIPE) {
		h.logger.Error("could not write sse data", "err", errWrite)
	}
}

func parsePageArgs(q url.Values) (types.PageArgs, error) {
	var pageArgs types.PageArgs

	if q.Has("first") {
		first, err := strconv.ParseUint(q.Get("first"), 10, 64)
		if err != nil {
			return pageArgs, errs.NewInvalidArgumentError("first", "invalid first page arg")
		}

		pageArgs.First = new(uint(first))
	}

	if q.Has("after") {
		pageArgs.After = new(q.Get("after"))
	}

	if q.Has("last") {
		last, err := strconv.ParseUint(q.Get("last"), 10, 64)
		if err != nil {
			return pageArgs, errs.NewInvalidArgumentError("last", "invalid last page arg")
		}

		pageArgs.Last = new(uint(last))
	}

	if q.Has("before") {
		pageArgs.Before = new(q.Get("before"))
	}

	return pageArgs, nil
}

func parseFloatParam(q url.Values, name string) (*float64, error) {
	if !q.Has(name) || q.Get(name) == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(q.Get(name), 64)
	if err != nil {
		return nil, errs.NewInvalidArgumentError(name, "invalid "+name)
	}

	return &v, nil
}

// parseTimeParam accepts RFC 3339 timestamps and plain dates.
func parseTimeParam(q url.Values, name string) (*time.Time, error) {
	if !q.Has(name) || q.Get(name) == "" {
		return nil, nil
	}

	s := q.Get(name)
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}

	return nil, errs.NewInvalidArgumentError(name, "invalid "+name)
}
