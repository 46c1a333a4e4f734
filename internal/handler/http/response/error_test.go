package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kauri-hr/payroll-backend-go/internal/domain/employee"
	"github.com/kauri-hr/payroll-backend-go/internal/domain/payroll"
)

func TestHandleErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"entry not found", payroll.ErrEntryNotFound, http.StatusNotFound},
		{"entry already exists", payroll.ErrEntryAlreadyExists, http.StatusConflict},
		{"entry already paid", payroll.ErrEntryAlreadyPaid, http.StatusConflict},
		{"wrapped already paid", fmt.Errorf("marking paid: %w", payroll.ErrEntryAlreadyPaid), http.StatusConflict},
		{"employee not found", employee.ErrEmployeeNotFound, http.StatusNotFound},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.NotEmpty(t, body.Message)
		})
	}
}
