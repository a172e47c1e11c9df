package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"blog/auth"
	"blog/cache"
	"blog/db"
	"blog/models"

	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := "file:handlers_" + name + "?mode=memory&cache=shared&_fk=1"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.Instance = conn
	models.Init()
	HomeCache = cache.New(time.Minute)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	store := gormsessions.NewStore(db.Instance, true, []byte("test key"))
	router.Use(sessions.Sessions("token", store))
	authRouter := &auth.Router{Base: router}
	router.POST("/user/login", UserLogin)
	router.GET("/posts", HomeFeed)
	router.GET("/posts/:id", PostDetail)
	authRouter.POST("/posts", PostCreate)
	authRouter.POST("/posts/:id/edit", PostEdit)
	authRouter.POST("/posts/:id/comment", CommentAdd)
	authRouter.GET("/feed", FollowFeed)
	authRouter.POST("/profile/:username/follow", ProfileFollow)
	authRouter.POST("/profile/:username/unfollow", ProfileUnfollow)
	return router
}

func do(router *gin.Engine, method, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func mustCreateUser(t *testing.T, username string) models.User {
	t.Helper()
	u, err := models.UserCreate(username, username, "secret")
	if err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return u
}

func login(t *testing.T, router *gin.Engine, username string) []*http.Cookie {
	t.Helper()
	w := do(router, "POST", "/user/login", url.Values{
		"username": {username},
		"password": {"secret"},
	}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: status %d, body %s", username, w.Code, w.Body.String())
	}
	return w.Result().Cookies()
}
