package petdirectory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newClient(t *testing.T, handler http.HandlerFunc) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, time.Second, nopLogger{})
}

func TestClient_GetPet(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/customers/5/pets/7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7,"customer_id":5,"name":"Bello","species":"dog"}`))
	})

	pet, err := client.GetPet(context.Background(), 5, 7)

	require.NoError(t, err)
	assert.Equal(t, "Bello", pet.Name)
	assert.Equal(t, "dog", pet.Species)
}

func TestClient_GetPet_NotFound(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetPet(context.Background(), 5, 7)

	assert.ErrorIs(t, err, ErrPetNotFound)
}

func TestClient_GetPet_OtherOwner(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":7,"customer_id":6,"name":"Bello"}`))
	})

	_, err := client.GetPet(context.Background(), 5, 7)

	assert.ErrorIs(t, err, ErrPetNotFound)
}

func TestClient_GetPetWithGracefulDegradation(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.GetPetWithGracefulDegradation(context.Background(), 5, 7)

	assert.ErrorIs(t, err, ErrServiceDegraded)
}

func TestClient_GetPetWithGracefulDegradation_KeepsNotFound(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetPetWithGracefulDegradation(context.Background(), 5, 7)

	assert.ErrorIs(t, err, ErrPetNotFound)
	assert.NotErrorIs(t, err, ErrServiceDegraded)
}
