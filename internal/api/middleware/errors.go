package middleware

import (
	"errors"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog/log"
)

var (
	ErrEmptyBatch        = errors.New("batch must contain at least one word")
	ErrBatchTooLarge     = errors.New("batch exceeds the maximum number of words")
	ErrInvalidCount      = errors.New("count must be a positive integer")
	ErrInvalidLimit      = errors.New("limit must be a positive integer")
	ErrGeneratorDisabled = errors.New("word generator is not configured")
	ErrNoNames           = errors.New("at least one name is required")
)

type ErrorResponse struct {
	Error string `json:"error" description:"Error message"`
	Code  int    `json:"code" description:"HTTP status code"`
}

func HandleError(resp *restful.Response, err error, status int) {
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", status).Msg("Request failed")
	}

	if writeErr := resp.WriteHeaderAndEntity(status, ErrorResponse{
		Error: err.Error(),
		Code:  status,
	}); writeErr != nil {
		log.Error().Err(writeErr).Msg("Failed to write error response")
	}
}
