package auth

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/gigpay/internal/domain"
	"github.com/GlebRadaev/gigpay/pkg/utils"
)

//go:generate mockgen -source=middleware.go -destination=mock_middleware.go -package=auth

type TokenValidator interface {
	ValidateToken(tokenString string) (*Claims, error)
}

type ProfileResolver interface {
	GetProfile(ctx context.Context, id int) (*domain.Profile, error)
}

type ContextKey string

const ProfileKey ContextKey = "profile"

// ProfileMiddleware resolves the bearer token into a profile and stores it in the request context.
func ProfileMiddleware(tokens TokenValidator, resolver ProfileResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, err := tokens.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			profile, err := resolver.GetProfile(r.Context(), claims.ProfileID)
			if err != nil {
				zap.L().Info("can't resolve caller profile", zap.Int("profileID", claims.ProfileID), zap.Error(err))
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := WithProfile(r.Context(), profile)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func WithProfile(ctx context.Context, profile *domain.Profile) context.Context {
	return context.WithValue(ctx, ProfileKey, profile)
}

func ProfileFromContext(ctx context.Context) (*domain.Profile, bool) {
	profile, ok := ctx.Value(ProfileKey).(*domain.Profile)
	return profile, ok && profile != nil
}
