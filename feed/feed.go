// Package feed builds the ordered, paginated post lists for the home page,
// group pages, profiles and the personalized follow feed. All four share one
// ordering and one paginator, differing only in the filter.
package feed

import (
	"blog/config"
	"blog/db"
	"blog/models"
	"blog/pagination"

	"gorm.io/gorm"
)

var PerPage = config.POSTS_PER_PAGE

func posts(scopes ...func(*gorm.DB) *gorm.DB) ([]models.Post, error) {
	var result []models.Post
	err := db.Instance.
		Scopes(scopes...).
		Preload("Author").
		Preload("Group").
		Order("pub_date DESC, id DESC").
		Find(&result).Error
	return result, err
}

func paged(page int, scopes ...func(*gorm.DB) *gorm.DB) (pagination.Page[models.Post], error) {
	all, err := posts(scopes...)
	if err != nil {
		return pagination.Page[models.Post]{}, err
	}
	return pagination.Paginate(all, page, PerPage), nil
}

// Home returns one page of all posts.
func Home(page int) (pagination.Page[models.Post], error) {
	return paged(page)
}

// Group resolves the group by slug and returns one page of its posts.
// Unknown slugs surface gorm.ErrRecordNotFound.
func Group(slug string, page int) (models.Group, pagination.Page[models.Post], error) {
	group, err := models.GroupBySlug(slug)
	if err != nil {
		return models.Group{}, pagination.Page[models.Post]{}, err
	}
	p, err := paged(page, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("group_id = ?", group.ID)
	})
	return group, p, err
}

// Profile resolves the author by username and returns one page of their
// posts. The page's TotalItems is the author's post count.
func Profile(username string, page int) (models.User, pagination.Page[models.Post], error) {
	author, err := models.UserByUsername(username)
	if err != nil {
		return models.User{}, pagination.Page[models.Post]{}, err
	}
	p, err := paged(page, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("author_id = ?", author.ID)
	})
	return author, p, err
}

// Following returns one page of posts by the authors the viewer follows.
// A viewer following nobody gets an empty page, not an error.
func Following(viewerID uint64, page int) (pagination.Page[models.Post], error) {
	return paged(page, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("author_id IN (?)",
			db.Instance.Model(&models.Follow{}).Select("author_id").Where("user_id = ?", viewerID))
	})
}
