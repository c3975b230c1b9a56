package repositories

import (
	"backoffice-api/models"

	"gorm.io/gorm"
)

type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id uint) (*models.Post, error)
	GetBySlug(slug string) (*models.Post, error)
	GetList(params models.ListParams, publicOnly bool) ([]models.Post, int64, error)
	Update(post *models.Post) error
	UpdateWithTags(post *models.Post, tags []models.Tag) error
	Delete(id uint) error
	CountByCategory(categoryID uint) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *postRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Author").Preload("Category").Preload("Tags").
		First(&post, id).Error
	return &post, err
}

func (r *postRepository) GetBySlug(slug string) (*models.Post, error) {
	var post models.Post
	err := r.db.Where("slug = ?", slug).First(&post).Error
	return &post, err
}

func (r *postRepository) GetList(params models.ListParams, publicOnly bool) ([]models.Post, int64, error) {
	var posts []models.Post
	var total int64

	query := r.db.Model(&models.Post{}).Preload("Author").Preload("Category").Preload("Tags")

	if publicOnly {
		query = query.Where("posts.status = ?", models.StatusPublished)
	} else if params.Status != "" {
		query = query.Where("posts.status = ?", params.Status)
	}
	if params.AuthorID > 0 {
		query = query.Where("posts.author_id = ?", params.AuthorID)
	}
	if params.Category > 0 {
		query = query.Where("posts.category_id = ?", params.Category)
	}
	if params.TagID > 0 {
		query = query.Joins("JOIN post_tags ON post_tags.post_id = posts.id").
			Where("post_tags.tag_id = ?", params.TagID)
	}
	if params.Search != "" {
		like := "%" + params.Search + "%"
		query = query.Where("posts.title ILIKE ? OR posts.excerpt ILIKE ?", like, like)
	}

	query.Count(&total)

	err := query.Order(orderClause(params, "posts")).
		Offset((params.Page - 1) * params.Limit).
		Limit(params.Limit).
		Find(&posts).Error
	return posts, total, err
}

func (r *postRepository) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

// UpdateWithTags persists the post and replaces its full tag set inside one
// transaction, so a concurrent reader never observes the cleared-but-not-yet
// reinserted intermediate state.
func (r *postRepository) UpdateWithTags(post *models.Post, tags []models.Tag) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Save(post).Error; err != nil {
			return err
		}
		return tx.Model(post).Association("Tags").Replace(&tags)
	})
}

func (r *postRepository) Delete(id uint) error {
	return r.db.Delete(&models.Post{}, id).Error
}

func (r *postRepository) CountByCategory(categoryID uint) (int64, error) {
	var total int64
	err := r.db.Model(&models.Post{}).Where("category_id = ?", categoryID).Count(&total).Error
	return total, err
}
