package handler

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"versenotes/internal/app"
	"versenotes/internal/logging"
	"versenotes/internal/metrics"
	"versenotes/internal/transport/http/response"
)

// FlexibleID accepts a JSON number or a numeric string, since browser clients
// often send ids read from the DOM as strings. Integral floats such as 1.0 are
// accepted; negative and fractional values are not.
type FlexibleID uint

func (id *FlexibleID) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*id = 0
		return nil
	}
	raw = strings.Trim(raw, `"`)
	if raw == "" {
		*id = 0
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err == nil {
		*id = FlexibleID(v)
		return nil
	}
	f, ferr := strconv.ParseFloat(raw, 64)
	if ferr != nil || f < 0 || f != math.Trunc(f) || f > 1<<53 {
		return fmt.Errorf("invalid id %q", raw)
	}
	*id = FlexibleID(f)
	return nil
}

// bindJSON reports false after answering the request with msg when the body
// is malformed or a required field is missing.
func bindJSON(c *gin.Context, req any, msg string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		evt := logging.Debug().Str("route", c.FullPath())
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			evt = evt.Strs("missing", fields)
		} else {
			evt = evt.Err(err)
		}
		evt.Msg("rejected request body")

		metrics.RecordFailure("validation")
		response.Fail(c, msg)
		return false
	}
	return true
}

func pathID(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

// writeError answers with the service's message. Storage failures are logged
// with their cause, which is never shown to the client.
func writeError(c *gin.Context, err error, fallback string) {
	kind := app.KindName(err)
	metrics.RecordFailure(kind)

	var appErr *app.Error
	if !errors.As(err, &appErr) {
		logging.Error().Err(err).Str("route", c.FullPath()).Msg("unclassified error")
		response.Fail(c, fallback)
		return
	}

	if errors.Is(err, app.ErrStorage) {
		logging.Error().Err(appErr.Err).Str("route", c.FullPath()).Msg(appErr.Message)
	}
	response.Fail(c, appErr.Message)
}
