package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validContactBody() map[string]any {
	return map[string]any{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"subject": "Hi",
		"message": "Enjoyed the research section.",
	}
}

func TestContactSubmit(t *testing.T) {
	e := newEnv()

	w := e.do(t, http.MethodPost, "/api/contact", "", validContactBody())
	require.Equal(t, http.StatusCreated, w.Code)

	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "message sent successfully", body["message"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "new", data["status"])
	assert.NotEmpty(t, data["id"])
}

func TestContactSubmitValidation(t *testing.T) {
	e := newEnv()

	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"missing name", func(b map[string]any) { delete(b, "name") }},
		{"bad email", func(b map[string]any) { b["email"] = "nope" }},
		{"missing message", func(b map[string]any) { delete(b, "message") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := validContactBody()
			tt.mutate(body)
			w := e.do(t, http.MethodPost, "/api/contact", "", body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, false, decode(t, w)["success"])
		})
	}
}

func TestContactAdminRoutesRequireToken(t *testing.T) {
	e := newEnv()

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/contact"},
		{http.MethodGet, "/api/contact/64b5f0a1c2d3e4f5a6b7c8d9"},
		{http.MethodDelete, "/api/contact/64b5f0a1c2d3e4f5a6b7c8d9"},
	} {
		w := e.do(t, route.method, route.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}

	// A garbage token is rejected the same way.
	w := e.do(t, http.MethodGet, "/api/contact", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestContactListAndStatusFlow(t *testing.T) {
	e := newEnv()
	token := e.token(t)

	submit := e.do(t, http.MethodPost, "/api/contact", "", validContactBody())
	require.Equal(t, http.StatusCreated, submit.Code)
	id := decode(t, submit)["data"].(map[string]any)["id"].(string)

	list := e.do(t, http.MethodGet, "/api/contact?status=new", token, nil)
	require.Equal(t, http.StatusOK, list.Code)
	body := decode(t, list)
	assert.Len(t, body["data"].([]any), 1)
	assert.Equal(t, float64(1), body["meta"].(map[string]any)["count"])

	patch := e.do(t, http.MethodPatch, "/api/contact/"+id+"/status", token, map[string]any{"status": "read"})
	require.Equal(t, http.StatusOK, patch.Code)
	assert.Equal(t, "read", decode(t, patch)["data"].(map[string]any)["status"])

	// Enum is enforced at the binding layer.
	bad := e.do(t, http.MethodPatch, "/api/contact/"+id+"/status", token, map[string]any{"status": "spam"})
	assert.Equal(t, http.StatusBadRequest, bad.Code)

	missing := e.do(t, http.MethodPatch, "/api/contact/64b5f0a1c2d3e4f5a6b7c8d9/status", token, map[string]any{"status": "read"})
	assert.Equal(t, http.StatusNotFound, missing.Code)

	del := e.do(t, http.MethodDelete, "/api/contact/"+id, token, nil)
	require.Equal(t, http.StatusOK, del.Code)

	gone := e.do(t, http.MethodGet, "/api/contact/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, gone.Code)
}
