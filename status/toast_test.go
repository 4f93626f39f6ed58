package status

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToastIsAnError(t *testing.T) {
	var err error = WarningStatusBadRequest(WarnInvalidEmail)

	var toast Toast
	require.True(t, errors.As(err, &toast))
	assert.Equal(t, http.StatusBadRequest, toast.StatusCode)
	assert.Equal(t, LevelWarning, toast.Level)
	assert.Equal(t, WarnInvalidEmail.Error(), err.Error())
}

func TestToastRenderEscapesMessage(t *testing.T) {
	var b strings.Builder
	err := ErrorInternalServerError(errors.New(`<script>alert("x")</script>`)).Render(context.Background(), &b)
	require.NoError(t, err)

	got := b.String()
	assert.Contains(t, got, `data-level="error"`)
	assert.Contains(t, got, "&lt;script&gt;")
	assert.NotContains(t, got, "<script>")
}

func TestSuccessToast(t *testing.T) {
	toast := Success("thanks")
	assert.Equal(t, http.StatusOK, toast.StatusCode)
	assert.Equal(t, LevelSuccess, toast.Level)
}

func TestErrorNotFound(t *testing.T) {
	toast := ErrorNotFound(ErrProjectNotFound)
	assert.Equal(t, http.StatusNotFound, toast.StatusCode)
	assert.Equal(t, "project not found", toast.Message)
}
