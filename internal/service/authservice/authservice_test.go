package authservice

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base32"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/nsdBRoficial/stellar-stake-house/internal/domain"
	"github.com/nsdBRoficial/stellar-stake-house/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)
	return New(repo, jwtService), repo, jwtService
}

// encodeAddress builds the strkey account ID for an ed25519 public key.
func encodeAddress(t *testing.T, publicKey ed25519.PublicKey) string {
	t.Helper()
	payload := make([]byte, 0, 35)
	payload = append(payload, 0x30)
	payload = append(payload, publicKey...)
	crc := crc16(payload)
	payload = append(payload, byte(crc), byte(crc>>8))
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(payload)
}

func crc16(data []byte) uint16 {
	var crc uint16
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

func signedChallenge(t *testing.T) (address, signature, message string) {
	t.Helper()
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	message = "stake-house-login:1756598400"
	raw := ed25519.Sign(privateKey, []byte(message))
	return encodeAddress(t, publicKey), base64.StdEncoding.EncodeToString(raw), message
}

func TestVerify(t *testing.T) {
	t.Run("existing user logs in", func(t *testing.T) {
		service, repo, _ := NewMock(t)
		address, signature, message := signedChallenge(t)

		repo.EXPECT().FindByAddress(gomock.Any(), address).Return(&domain.User{ID: 7, StellarAddress: address}, nil)

		user, err := service.Verify(context.Background(), address, signature, message)

		assert.NoError(t, err)
		assert.Equal(t, 7, user.ID)
	})

	t.Run("first login creates the user", func(t *testing.T) {
		service, repo, _ := NewMock(t)
		address, signature, message := signedChallenge(t)

		repo.EXPECT().FindByAddress(gomock.Any(), address).Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
				assert.Equal(t, address, user.StellarAddress)
				user.ID = 8
				return user, nil
			})

		user, err := service.Verify(context.Background(), address, signature, message)

		assert.NoError(t, err)
		assert.Equal(t, 8, user.ID)
	})

	t.Run("signature over a different message is rejected", func(t *testing.T) {
		service, _, _ := NewMock(t)
		address, signature, _ := signedChallenge(t)

		_, err := service.Verify(context.Background(), address, signature, "another message")

		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("malformed address is rejected", func(t *testing.T) {
		service, _, _ := NewMock(t)
		_, signature, message := signedChallenge(t)

		_, err := service.Verify(context.Background(), "not-an-address", signature, message)

		assert.ErrorIs(t, err, ErrInvalidAddress)
	})

	t.Run("signature that is not base64", func(t *testing.T) {
		service, _, _ := NewMock(t)
		address, _, message := signedChallenge(t)

		_, err := service.Verify(context.Background(), address, "%%%", message)

		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("repo failure", func(t *testing.T) {
		service, repo, _ := NewMock(t)
		address, signature, message := signedChallenge(t)

		repo.EXPECT().FindByAddress(gomock.Any(), address).Return(nil, errors.New("db error"))

		_, err := service.Verify(context.Background(), address, signature, message)

		assert.Error(t, err)
	})
}

func TestGenerateToken(t *testing.T) {
	t.Run("delegates to the jwt service", func(t *testing.T) {
		service, _, jwtService := NewMock(t)

		jwtService.EXPECT().GenerateJWT(7, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ int, _ string, expirationTime time.Time) (string, error) {
				assert.WithinDuration(t, time.Now().Add(24*time.Hour), expirationTime, time.Minute)
				return "token", nil
			})

		token, err := service.GenerateToken(7, "GXXX")

		assert.NoError(t, err)
		assert.Equal(t, "token", token)
	})

	t.Run("propagates jwt errors", func(t *testing.T) {
		service, _, jwtService := NewMock(t)

		jwtService.EXPECT().GenerateJWT(7, gomock.Any(), gomock.Any()).Return("", errors.New("sign error"))

		_, err := service.GenerateToken(7, "GXXX")

		assert.Error(t, err)
	})
}
