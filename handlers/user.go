package handlers

import (
	"net/http"

	"blog/auth"
	"blog/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type UserCreateRequest struct {
	Username string `form:"username" binding:"required"`
	Name     string `form:"name"`
	Password string `form:"password" binding:"required"`
}

type UserLoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type UserDeleteRequest struct {
	Username string `form:"username"`
}

func UserCreate(c *gin.Context) {
	postReq := UserCreateRequest{}
	err := c.ShouldBindWith(&postReq, binding.Form)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := models.UserCreate(postReq.Username, postReq.Name, postReq.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	session := auth.LoadSession(c)
	session.LoginUser(user.ID)
	c.JSON(http.StatusOK, gin.H{"error": "", "username": user.Username})
}

func UserLogin(c *gin.Context) {
	postReq := UserLoginRequest{}
	err := c.ShouldBindWith(&postReq, binding.Form)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, success := models.UserLogin(postReq.Username, postReq.Password)
	if !success {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	session := auth.LoadSession(c)
	session.LoginUser(user.ID)
	c.JSON(http.StatusOK, gin.H{"error": "", "username": user.Username, "admin": user.Admin})
}

func UserLogout(c *gin.Context, user *models.User) {
	auth.LoadSession(c).LogoutUser()
	c.JSON(http.StatusOK, OKResponse)
}

// UserDelete removes the given account (admins) or the caller's own one.
// Posts, comments and follow relations go with it.
func UserDelete(c *gin.Context, user *models.User) {
	postReq := UserDeleteRequest{}
	_ = c.ShouldBindWith(&postReq, binding.Form)

	target := *user
	if postReq.Username != "" && postReq.Username != user.Username {
		if !user.Admin {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "access denied"})
			return
		}
		var err error
		target, err = models.UserByUsername(postReq.Username)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "no such user"})
			return
		}
	}
	if err := target.Delete(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if target.ID == user.ID {
		auth.LoadSession(c).LogoutUser()
	}
	c.JSON(http.StatusOK, OKResponse)
}
