package shared

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}

	tests := []struct {
		name    string
		body    string
		want    payload
		wantErr bool
	}{
		{name: "valid json", body: `{"name": "test", "age": 30}`, want: payload{Name: "test", Age: 30}},
		{name: "unknown fields ignored", body: `{"name": "test", "extra": true}`, want: payload{Name: "test"}},
		{name: "trailing comma", body: `{"name": "test", "age": 30,}`, wantErr: true},
		{name: "empty body", body: "", wantErr: true},
		{name: "wrong type", body: `{"age": "thirty"}`, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(tc.body))
			var got payload
			err := DecodeJSON(req, &got)

			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

type selfValidating struct{ ok bool }

func (s selfValidating) Validate() error {
	if !s.ok {
		return errors.New("not ok")
	}
	return nil
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	type request struct {
		Text  string `json:"text"  validate:"required"`
		Count int    `json:"count" validate:"gte=0"`
	}

	assert.NoError(t, ValidateRequest(&request{Text: "hi"}))

	err := ValidateRequest(&request{Count: -1})
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Equal(t, "text", validationErrs[0].Field(), "fields are reported by JSON name")

	assert.NoError(t, ValidateRequest(selfValidating{ok: true}))
	assert.Error(t, ValidateRequest(selfValidating{}))
}
