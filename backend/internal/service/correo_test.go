package service

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/itchan-dev/mailadmin/backend/internal/utils"
	"github.com/itchan-dev/mailadmin/shared/domain"
	internal_errors "github.com/itchan-dev/mailadmin/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestCorreo(storage *MockCorreoStorage, areas *MockAreaStorage, dominios *MockDominioStorage) *Correo {
	c := NewCorreo(storage, areas, dominios, &MockNameValidator{})
	c.hashCost = bcrypt.MinCost
	return c
}

func TestCorreoCreate(t *testing.T) {
	ctx := context.Background()
	input := CorreoInput{LocalPart: "ventas1", Password: "secreto", AreaId: 2, DominioId: 5}

	t.Run("hashes password", func(t *testing.T) {
		storage := &MockCorreoStorage{
			createCorreoFunc: func(ctx context.Context, data domain.CorreoCreationData) (domain.Correo, error) {
				assert.NotEqual(t, "secreto", data.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(data.PasswordHash), []byte("secreto")))
				return domain.Correo{Id: 1, LocalPart: data.LocalPart, Email: domain.BuildEmail(data.LocalPart, "acme.com")}, nil
			},
		}
		c, err := newTestCorreo(storage, &MockAreaStorage{}, &MockDominioStorage{}).Create(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "ventas1@acme.com", c.Email)
	})

	t.Run("trims local part before the length check", func(t *testing.T) {
		localPart := strings.Repeat("a", 64)
		storage := &MockCorreoStorage{
			createCorreoFunc: func(ctx context.Context, data domain.CorreoCreationData) (domain.Correo, error) {
				assert.Equal(t, localPart, data.LocalPart)
				return domain.Correo{Id: 1, LocalPart: data.LocalPart}, nil
			},
		}
		svc := NewCorreo(storage, &MockAreaStorage{}, &MockDominioStorage{}, &utils.LocalPartValidator{})
		svc.hashCost = bcrypt.MinCost
		padded := input
		padded.LocalPart = "  " + localPart + "  "
		_, err := svc.Create(ctx, padded)
		require.NoError(t, err)
	})

	testCases := []struct {
		name         string
		areas        *MockAreaStorage
		dominios     *MockDominioStorage
		input        CorreoInput
		expectStatus int
		expectMsg    string
	}{
		{
			name: "Missing Area",
			areas: &MockAreaStorage{areaExistsFunc: func(ctx context.Context, id domain.AreaId) (bool, error) {
				return false, nil
			}},
			dominios:     &MockDominioStorage{},
			input:        input,
			expectStatus: http.StatusBadRequest,
			expectMsg:    msgAreaMissing,
		},
		{
			name:  "Missing Dominio",
			areas: &MockAreaStorage{},
			dominios: &MockDominioStorage{getDominioFunc: func(ctx context.Context, id domain.DominioId) (domain.Dominio, error) {
				return domain.Dominio{}, internal_errors.NotFound("Dominio no encontrado")
			}},
			input:        input,
			expectStatus: http.StatusBadRequest,
			expectMsg:    msgDominioMissing,
		},
		{
			name:  "Inactive Dominio",
			areas: &MockAreaStorage{},
			dominios: &MockDominioStorage{getDominioFunc: func(ctx context.Context, id domain.DominioId) (domain.Dominio, error) {
				return domain.Dominio{Id: id, IsActive: false}, nil
			}},
			input:        input,
			expectStatus: http.StatusBadRequest,
			expectMsg:    msgDominioInactive,
		},
		{
			name:         "Empty Password",
			areas:        &MockAreaStorage{},
			dominios:     &MockDominioStorage{},
			input:        CorreoInput{LocalPart: "x", AreaId: 2, DominioId: 5},
			expectStatus: http.StatusBadRequest,
		},
		{
			name:         "Password Too Long",
			areas:        &MockAreaStorage{},
			dominios:     &MockDominioStorage{},
			input:        CorreoInput{LocalPart: "x", Password: strings.Repeat("p", 73), AreaId: 2, DominioId: 5},
			expectStatus: http.StatusBadRequest,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			storage := &MockCorreoStorage{
				createCorreoFunc: func(ctx context.Context, data domain.CorreoCreationData) (domain.Correo, error) {
					t.Fatal("storage must not be called")
					return domain.Correo{}, nil
				},
			}
			_, err := newTestCorreo(storage, tc.areas, tc.dominios).Create(ctx, tc.input)
			require.Error(t, err)
			assert.Equal(t, tc.expectStatus, internal_errors.StatusCode(err))
			if tc.expectMsg != "" {
				assert.Equal(t, tc.expectMsg, err.Error())
			}
		})
	}
}

func TestCorreoUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("password only keeps address", func(t *testing.T) {
		existing := domain.Correo{Id: 9, LocalPart: "ventas1", DominioId: 5, Email: "ventas1@acme.com"}
		storage := &MockCorreoStorage{
			getCorreoFunc: func(ctx context.Context, id domain.CorreoId) (domain.Correo, error) {
				return existing, nil
			},
			updateCorreoFunc: func(ctx context.Context, id domain.CorreoId, data domain.CorreoUpdateData) (domain.Correo, error) {
				assert.Nil(t, data.LocalPart)
				assert.Nil(t, data.DominioId)
				assert.Nil(t, data.AreaId)
				require.NotNil(t, data.PasswordHash)
				return existing, nil
			},
		}
		dominios := &MockDominioStorage{getDominioFunc: func(ctx context.Context, id domain.DominioId) (domain.Dominio, error) {
			t.Fatal("dominio must not be checked")
			return domain.Dominio{}, nil
		}}
		password := "x"
		c, err := newTestCorreo(storage, &MockAreaStorage{}, dominios).Update(ctx, 9, CorreoPatch{Password: &password})
		require.NoError(t, err)
		assert.Equal(t, "ventas1@acme.com", c.Email)
	})

	t.Run("empty patch", func(t *testing.T) {
		storage := &MockCorreoStorage{
			getCorreoFunc: func(ctx context.Context, id domain.CorreoId) (domain.Correo, error) {
				t.Fatal("storage must not be called")
				return domain.Correo{}, nil
			},
		}
		_, err := newTestCorreo(storage, &MockAreaStorage{}, &MockDominioStorage{}).Update(ctx, 9, CorreoPatch{})
		assert.Equal(t, http.StatusBadRequest, internal_errors.StatusCode(err))
	})

	t.Run("missing correo", func(t *testing.T) {
		storage := &MockCorreoStorage{
			getCorreoFunc: func(ctx context.Context, id domain.CorreoId) (domain.Correo, error) {
				return domain.Correo{}, internal_errors.NotFound("Correo no encontrado")
			},
		}
		lp := "ventas2"
		_, err := newTestCorreo(storage, &MockAreaStorage{}, &MockDominioStorage{}).Update(ctx, 9, CorreoPatch{LocalPart: &lp})
		assert.True(t, internal_errors.IsNotFound(err))
	})

	t.Run("inactive target dominio", func(t *testing.T) {
		dominios := &MockDominioStorage{getDominioFunc: func(ctx context.Context, id domain.DominioId) (domain.Dominio, error) {
			return domain.Dominio{Id: id, IsActive: false}, nil
		}}
		storage := &MockCorreoStorage{
			updateCorreoFunc: func(ctx context.Context, id domain.CorreoId, data domain.CorreoUpdateData) (domain.Correo, error) {
				t.Fatal("storage must not be called")
				return domain.Correo{}, nil
			},
		}
		target := domain.DominioId(6)
		_, err := newTestCorreo(storage, &MockAreaStorage{}, dominios).Update(ctx, 9, CorreoPatch{DominioId: &target})
		require.Error(t, err)
		assert.Equal(t, msgDominioInactive, err.Error())
	})
}

func TestCorreoDeleteNotFound(t *testing.T) {
	storage := &MockCorreoStorage{
		deleteCorreoFunc: func(ctx context.Context, id domain.CorreoId) error {
			return internal_errors.NotFound("Correo no encontrado")
		},
	}
	err := newTestCorreo(storage, &MockAreaStorage{}, &MockDominioStorage{}).Delete(context.Background(), 99)
	assert.Equal(t, http.StatusNotFound, internal_errors.StatusCode(err))
}
