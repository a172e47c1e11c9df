package main

import (
	"log"
	"strings"
	"time"

	"blog/auth"
	"blog/config"
	"blog/db"
	"blog/handlers"
	"blog/models"
	"blog/storage"
	"blog/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
)

const (
	sessionCookieName     = "token"
	sessionExpirationTime = 30 * 86400 // 30 days
)

func main() {
	db.Init(config.MYSQL_DSN, config.SQLITE_FILE)
	models.Init()
	storage.Init()

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))

	cookieStore := gormsessions.NewStore(db.Instance, true, []byte(config.SESSION_KEY))
	cookieStore.Options(sessions.Options{MaxAge: sessionExpirationTime})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/posts/"})))
	}
	router.Use((&utils.CacheRouter{CacheTime: utils.CacheNoCache}).Handler()) // No cache by default, individual end-points can override that

	authRouter := &auth.Router{Base: router}
	// User handlers
	router.POST("/user/create", handlers.UserCreate)
	router.POST("/user/login", handlers.UserLogin)
	authRouter.POST("/user/logout", handlers.UserLogout)
	authRouter.POST("/user/delete", handlers.UserDelete) // own account, or any account for admins
	// Feeds
	router.GET("/posts", handlers.HomeFeed)
	router.GET("/group/:slug", handlers.GroupFeed)
	router.GET("/profile/:username", handlers.ProfileFeed)
	authRouter.GET("/feed", handlers.FollowFeed)
	// Posts and comments
	router.GET("/posts/:id", handlers.PostDetail)
	router.GET("/posts/:id/image", handlers.PostImage)
	router.GET("/posts/:id/thumb", handlers.PostThumb)
	authRouter.POST("/posts", handlers.PostCreate)
	authRouter.POST("/posts/:id/edit", handlers.PostEdit)     // author only (checked in handler)
	authRouter.POST("/posts/:id/delete", handlers.PostDelete) // author or admin
	authRouter.POST("/posts/:id/comment", handlers.CommentAdd)
	// Follow toggles
	authRouter.POST("/profile/:username/follow", handlers.ProfileFollow)
	authRouter.POST("/profile/:username/unfollow", handlers.ProfileUnfollow)
	// Administration
	authRouter.AdminPOST("/groups", handlers.GroupCreate)
	authRouter.AdminPOST("/group/:slug/delete", handlers.GroupDelete)
	authRouter.AdminPOST("/cache/clear", handlers.CacheClear)

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}
