package authservice

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/nsdBRoficial/stellar-stake-house/internal/domain"
	"github.com/nsdBRoficial/stellar-stake-house/pkg/auth"
	"github.com/nsdBRoficial/stellar-stake-house/pkg/validate"
)

const tokenTTL = 24 * time.Hour

type Repo interface {
	FindByAddress(ctx context.Context, address string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

var (
	ErrInvalidAddress   = errors.New("invalid stellar address")
	ErrInvalidSignature = errors.New("signature verification failed")
)

type Service struct {
	userRepo   Repo
	jwtService auth.JWTServiceInterface
}

func New(repo Repo, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:   repo,
		jwtService: jwtService,
	}
}

// Verify checks that the signature over message was produced by the key
// behind the stellar address, creating a user record on first login.
func (s *Service) Verify(ctx context.Context, address, signature, message string) (*domain.User, error) {
	publicKey, err := validate.DecodeAddress(address)
	if err != nil {
		zap.L().Info("rejected malformed address", zap.String("address", address))
		return nil, ErrInvalidAddress
	}

	rawSignature, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return nil, ErrInvalidSignature
	}
	if !ed25519.Verify(ed25519.PublicKey(publicKey), []byte(message), rawSignature) {
		zap.L().Info("signature verification failed", zap.String("address", address))
		return nil, ErrInvalidSignature
	}

	user, err := s.userRepo.FindByAddress(ctx, address)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if user == nil {
		user, err = s.userRepo.Create(ctx, &domain.User{StellarAddress: address})
		if err != nil {
			zap.L().Error("can't create user: ", zap.Error(err))
			return nil, err
		}
		zap.L().Info("user registered", zap.String("address", address))
	}

	return user, nil
}

func (s *Service) GenerateToken(userID int, address string) (string, error) {
	expirationTime := time.Now().Add(tokenTTL)

	token, err := s.jwtService.GenerateJWT(userID, address, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
