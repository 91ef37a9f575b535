package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/fsdevblog/groph-vps/internal/domain"
	"github.com/fsdevblog/groph-vps/internal/service/tokens"
	"github.com/gin-gonic/gin"
)

const CurrentActorKey = "currentActor"

// AuthRequired проверяет bearer токен владельца и кладет в контекст domain.Actor.
func AuthRequired(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, err := checkAuthorization(c, jwtSecret)
		if err != nil {
			_ = c.AbortWithError(http.StatusUnauthorized, err).SetType(gin.ErrorTypePrivate)
			return
		}
		c.Set(CurrentActorKey, actor)
		c.Next()
	}
}

// AdminRequired пропускает только администраторов. Ставится после AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentActor(c).Admin {
			_ = c.AbortWithError(http.StatusForbidden, domain.ErrForbidden).SetType(gin.ErrorTypePrivate)
			return
		}
		c.Next()
	}
}

// CurrentActor берет из контекста gin текущего владельца. Если значения нет, вернется пустой Actor,
// которому ничего не разрешено.
func CurrentActor(c *gin.Context) domain.Actor {
	v, exist := c.Get(CurrentActorKey)
	if !exist {
		return domain.Actor{}
	}
	actor, ok := v.(domain.Actor)
	if !ok {
		return domain.Actor{}
	}
	return actor
}

func checkAuthorization(c *gin.Context, jwtSecret []byte) (domain.Actor, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return domain.Actor{}, errors.New("authorization header is empty")
	}

	tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || tokenString == "" {
		return domain.Actor{}, errors.New("authorization header must be a bearer token")
	}

	claims, err := tokens.ValidateOwnerJWT(tokenString, jwtSecret)
	if err != nil {
		return domain.Actor{}, err //nolint:wrapcheck
	}
	return domain.Actor{OwnerID: claims.ID, Email: claims.Email, Admin: claims.Admin}, nil
}
