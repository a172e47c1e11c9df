package auth

import (
	"net/http"

	"blog/models"

	"github.com/gin-gonic/gin"
)

// User is authenticated (and an admin where required)
type HandlerFunc func(c *gin.Context, user *models.User)

// Router is a wrapper class that adds auth checks + User pre-loading
type Router struct {
	Base *gin.Engine
}

func (cr *Router) baseExec(c *gin.Context, handler HandlerFunc, adminOnly bool) {
	session := LoadSession(c)
	user := session.User()
	if user.ID == 0 || (adminOnly && !user.Admin) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "access denied"})
		return
	}
	handler(c, &user)
}

func (cr *Router) POST(path string, handler HandlerFunc) {
	cr.Base.POST(path, func(c *gin.Context) {
		cr.baseExec(c, handler, false)
	})
}

func (cr *Router) GET(path string, handler HandlerFunc) {
	cr.Base.GET(path, func(c *gin.Context) {
		cr.baseExec(c, handler, false)
	})
}

// AdminPOST is like POST but also requires the admin flag
func (cr *Router) AdminPOST(path string, handler HandlerFunc) {
	cr.Base.POST(path, func(c *gin.Context) {
		cr.baseExec(c, handler, true)
	})
}
