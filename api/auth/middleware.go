package auth

import (
	"github.com/codetrail/codetrail/apperr"
	"github.com/codetrail/codetrail/database"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// RequireAuth resolves the session user and stores it in the gin context.
func (p *Provider) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID, ok := session.Get("user_id").(uint)
		if !ok {
			abort(c, apperr.Unauthenticated())
			return
		}

		user, err := p.db.GetUser(c.Request.Context(), userID)
		if err != nil {
			// the user behind the session was deleted, drop the session
			session.Clear()
			session.Save() //nolint:errcheck
			abort(c, apperr.Unauthenticated())
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func (p *Provider) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := c.MustGet("user").(*database.User)
		if !ok || !user.IsAdmin {
			abort(c, apperr.Forbidden("Admin access required"))
			return
		}
		c.Next()
	}
}

// RequireSuperAdmin must run after RequireAuth.
func (p *Provider) RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := c.MustGet("user").(*database.User)
		if !ok || !user.IsSuperAdmin {
			abort(c, apperr.Forbidden("SuperAdmin access required"))
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user set by RequireAuth.
func CurrentUser(c *gin.Context) *database.User {
	return c.MustGet("user").(*database.User)
}

func abort(c *gin.Context, err *apperr.Error) {
	c.AbortWithStatusJSON(err.Status(), gin.H{
		"error":        true,
		"errorMessage": err.Message,
	})
}
