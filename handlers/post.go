package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"blog/cache"
	"blog/config"
	"blog/feed"
	"blog/models"
	"blog/pagination"
	"blog/storage"
	"blog/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const thumbSize = 1280

// HomeCache holds rendered home feed snapshots. Underlying post changes do
// not invalidate it, entries only leave through expiry or CacheClear.
var HomeCache = cache.New(time.Duration(config.HOME_CACHE_SECONDS) * time.Second)

type PostRequest struct {
	Text    string  `form:"text" binding:"required"`
	GroupID *uint64 `form:"group_id"`
}

// HomeFeed lists all posts, newest first. The rendered page is served from
// the snapshot cache while it is fresh.
func HomeFeed(c *gin.Context) {
	page := pagination.ParsePageNumber(c.Query("page"))
	key := "home:" + strconv.Itoa(page)
	if body, ok := HomeCache.Get(key); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}
	result, err := feed.Home(page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	body, err := json.Marshal(newFeedResponse(result))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	HomeCache.Set(key, body)
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// CacheClear drops the home feed snapshots so the next read recomputes
func CacheClear(c *gin.Context, user *models.User) {
	HomeCache.Clear()
	c.JSON(http.StatusOK, OKResponse)
}

func PostDetail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	post, err := models.PostByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such post"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	comments, err := models.CommentsForPost(post.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	infos := make([]CommentInfo, 0, len(comments))
	for i := range comments {
		infos = append(infos, newCommentInfo(&comments[i]))
	}
	c.JSON(http.StatusOK, gin.H{"post": newPostInfo(&post), "comments": infos})
}

func PostCreate(c *gin.Context, user *models.User) {
	postReq := PostRequest{}
	if err := c.ShouldBindWith(&postReq, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if postReq.GroupID != nil {
		if _, err := models.GroupByID(*postReq.GroupID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no such group"})
			return
		}
	}
	imagePath, thumbPath, err := saveUploadedImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	post, err := models.PostCreate(user.ID, postReq.Text, postReq.GroupID, imagePath, thumbPath)
	if errors.Is(err, models.ErrEmptyText) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	post.Author = *user
	c.JSON(http.StatusOK, newPostInfo(&post))
}

// PostEdit changes text and group. Only the author may edit their post.
func PostEdit(c *gin.Context, user *models.User) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	post, err := models.PostByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such post"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if post.AuthorID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
		return
	}
	postReq := PostRequest{}
	if err = c.ShouldBindWith(&postReq, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err = post.Update(postReq.Text, postReq.GroupID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, newPostInfo(&post))
}

func PostDelete(c *gin.Context, user *models.User) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	post, err := models.PostByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such post"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if post.AuthorID != user.ID && !user.Admin {
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
		return
	}
	if err = post.Delete(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if post.ImagePath != "" {
		if store, err := storage.Get(); err == nil {
			_ = store.Delete(post.ImagePath)
			_ = store.Delete(post.ThumbPath)
		}
	}
	c.JSON(http.StatusOK, OKResponse)
}

func PostImage(c *gin.Context) {
	servePostFile(c, func(p *models.Post) string { return p.ImagePath })
}

func PostThumb(c *gin.Context) {
	servePostFile(c, func(p *models.Post) string { return p.ThumbPath })
}

func servePostFile(c *gin.Context, pick func(*models.Post) string) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	post, err := models.PostByID(id)
	if err != nil || pick(&post) == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such image"})
		return
	}
	store, err := storage.Get()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	store.Serve(pick(&post), c.Request, c.Writer)
}

// saveUploadedImage stores the optional "image" form file plus a JPEG
// thumbnail and returns both storage paths. No file means empty paths.
func saveUploadedImage(c *gin.Context) (imagePath, thumbPath string, err error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", "", nil // no attachment
	}
	store, err := storage.Get()
	if err != nil {
		return "", "", err
	}
	src, err := file.Open()
	if err != nil {
		return "", "", err
	}
	defer src.Close()
	raw, err := io.ReadAll(src)
	if err != nil {
		return "", "", err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	name := uuid.NewString()
	imagePath = "posts/" + name + ext
	thumbPath = "posts/thumb/" + name + ".jpg"

	thumb := bytes.Buffer{}
	if _, err = utils.CreateThumb(thumbSize, bytes.NewReader(raw), &thumb); err != nil {
		return "", "", err
	}
	if _, err = store.Save(imagePath, bytes.NewReader(raw)); err != nil {
		return "", "", err
	}
	if _, err = store.Save(thumbPath, &thumb); err != nil {
		log.Printf("Error saving thumbnail %s: %v", thumbPath, err)
		_ = store.Delete(imagePath)
		return "", "", err
	}
	return imagePath, thumbPath, nil
}
