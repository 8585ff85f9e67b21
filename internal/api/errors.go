package api

import (
	"errors"
	"net/http"

	errs "github.com/cipherstack/cipherstack/pkg/errors"
	"github.com/cipherstack/cipherstack/pkg/httputil"
	"github.com/cipherstack/cipherstack/pkg/observability"
	"github.com/cipherstack/cipherstack/pkg/pipeline"
)

// statusFor maps an error code to an HTTP status.
func statusFor(code errs.Code) int {
	switch code {
	case errs.ErrCodeEmptyPipeline, errs.ErrCodeEmptyInput, errs.ErrCodeUnsupportedAlgorithm,
		errs.ErrCodeInvalidInput, errs.ErrCodeInvalidStack, errs.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case errs.ErrCodeInvalidKey, errs.ErrCodeInvalidBlockLength:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// writeError renders err as an ErrorResponse. Uncoded errors become a
// generic INTERNAL_ERROR so internals do not leak to clients.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errs.GetCode(err)
	status := statusFor(code)

	resp := httputil.ErrorResponse{
		Code:    string(code),
		Message: errs.UserMessage(err),
	}
	if status == http.StatusInternalServerError {
		observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)
		s.logger.Error("internal error", "path", r.URL.Path, "err", err)
		resp.Code = string(errs.ErrCodeInternal)
		resp.Message = "internal server error"
	}

	var le *pipeline.LayerError
	if errors.As(err, &le) {
		idx := le.Index
		resp.Layer = &idx
		resp.Algorithm = le.Algorithm
	}
	httputil.JSON(w, status, resp)
}

// writeDecodeError renders a request body decoding failure.
func (s *Server) writeDecodeError(w http.ResponseWriter, err error) {
	if errors.Is(err, httputil.ErrBodyTooLarge) {
		httputil.Error(w, http.StatusRequestEntityTooLarge, string(errs.ErrCodeInvalidInput), err.Error())
		return
	}
	httputil.Error(w, http.StatusBadRequest, string(errs.ErrCodeInvalidInput), err.Error())
}
