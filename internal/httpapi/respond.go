package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"marketflow-be/internal/apperr"
	"marketflow-be/internal/logger"

	"go.uber.org/zap"
)

// Bulk counter keys, kept verbatim from the wire contract.
const (
	keyCreated = "Создано объектов"
	keyUpdated = "Обновлено объектов"
	keyDeleted = "Удалено объектов"
)

type statusBody map[string]any

func statusOK() statusBody {
	return statusBody{"Status": true}
}

func respondJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.L().Error("failed to encode response", zap.Error(err))
	}
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	code := apperr.HTTPStatus(err)
	if code == http.StatusInternalServerError {
		logger.FromCtx(r.Context()).Error("request failed",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	respondJSON(w, code, statusBody{
		"Status": false,
		"Errors": apperr.MessageOf(err),
	})
}

func respondAuthRequired(w http.ResponseWriter) {
	respondJSON(w, http.StatusUnauthorized, statusBody{
		"Status": false,
		"Errors": "authentication required",
	})
}

// decodeBody reads a JSON request body into v.
func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.Validation("request body is not valid JSON")
	}
	return nil
}

// decodeItems unmarshals an `items` field that is either a typed JSON
// list or, in the legacy wire shape, a JSON-encoded string holding one.
func decodeItems(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return apperr.Validation("items is required")
	}

	data := []byte(raw)
	if data[0] == '"' {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return apperr.Validation("items is not valid structured data")
		}
		data = []byte(inner)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return apperr.Validation("items is not valid structured data")
	}
	return nil
}

func errBadQueryParam(name string) error {
	return apperr.Validationf("%s must be an integer", name)
}

// flexInt accepts both 3 and "3"; legacy clients quote numeric fields.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return err
		}
		*f = flexInt(n)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexInt(n)
	return nil
}

// parseIDList parses the legacy comma-separated id string ("1,2,3").
func parseIDList(s string) ([]int, error) {
	ids := []int{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, apperr.Validationf("invalid id: %s", part)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, apperr.Validation("items is required")
	}
	return ids, nil
}
