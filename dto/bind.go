package dto

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/pkg/apperr"
)

// BindJSON decodes the request body into dst. With strict set, unknown
// keys are rejected; only the registration surface uses that mode.
func BindJSON(c *gin.Context, dst any, strict bool) error {
	dec := json.NewDecoder(c.Request.Body)
	if strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(dst); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return apperr.ErrInvalidJSON.Wrap(err)
		}
		if strings.Contains(err.Error(), "unknown field") {
			return apperr.Validation("INVALID_PAYLOAD").Wrap(err)
		}
		return apperr.Validation("INVALID_PAYLOAD").Wrap(err)
	}
	return nil
}

// ParseID coerces a numeric path parameter to a positive id; key names
// the constraint reported on failure.
func ParseID(raw, key string) (uint, error) {
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, apperr.Validation(key)
	}
	return uint(n), nil
}

// firstViolation implements first-violation-wins: checks are evaluated in
// schema declaration order and the first failure is the whole result.
func firstViolation(checks ...error) error {
	for _, err := range checks {
		if err != nil {
			return apperr.Validation(err.Error())
		}
	}
	return nil
}
