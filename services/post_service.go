package services

import (
	"errors"
	"time"

	"backoffice-api/apperr"
	"backoffice-api/models"
	"backoffice-api/policy"
	"backoffice-api/repositories"
	"backoffice-api/util"

	"gorm.io/gorm"
)

type PostService interface {
	Create(actor *models.Actor, req *models.CreatePostRequest) (*models.Post, error)
	Update(actor *models.Actor, req *models.UpdatePostRequest) (*models.Post, error)
	Get(id uint) (*models.Post, error)
	GetList(params models.ListParams) ([]models.Post, int64, error)
	GetPublicList(params models.ListParams) ([]models.Post, int64, error)
	Delete(id uint) error
}

type postService struct {
	postRepo     repositories.PostRepository
	categoryRepo repositories.CategoryRepository
	tagRepo      repositories.TagRepository
}

func NewPostService(postRepo repositories.PostRepository, categoryRepo repositories.CategoryRepository, tagRepo repositories.TagRepository) PostService {
	return &postService{postRepo: postRepo, categoryRepo: categoryRepo, tagRepo: tagRepo}
}

func (s *postService) Create(actor *models.Actor, req *models.CreatePostRequest) (*models.Post, error) {
	status, err := s.resolveStatus(actor, req.Status)
	if err != nil {
		return nil, err
	}

	slug := req.Slug
	if slug == "" {
		slug = util.Slugify(req.Title)
	}
	if err := s.checkSlugFree(slug, 0); err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(*req.CategoryID); err != nil {
			return nil, apperr.FromDB(err, "category")
		}
	}

	tags, err := ensureTags(s.tagRepo, req.Tags)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		AuthorID:   actor.ID,
		Title:      req.Title,
		Slug:       slug,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		Status:     status,
		CategoryID: req.CategoryID,
		Tags:       tags,
	}
	if status == models.StatusPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, apperr.FromDB(err, "post")
	}

	created, err := s.postRepo.GetByID(post.ID)
	if err != nil {
		return nil, apperr.FromDB(err, "post")
	}
	return created, nil
}

func (s *postService) Update(actor *models.Actor, req *models.UpdatePostRequest) (*models.Post, error) {
	post, err := s.postRepo.GetByID(req.ID)
	if err != nil {
		return nil, apperr.FromDB(err, "post")
	}

	status, err := s.resolveStatus(actor, req.Status)
	if err != nil {
		return nil, err
	}

	slug := req.Slug
	if slug == "" {
		slug = util.Slugify(req.Title)
	}
	if slug != post.Slug {
		if err := s.checkSlugFree(slug, post.ID); err != nil {
			return nil, err
		}
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(*req.CategoryID); err != nil {
			return nil, apperr.FromDB(err, "category")
		}
	}

	tags, err := ensureTags(s.tagRepo, req.Tags)
	if err != nil {
		return nil, err
	}

	post.Title = req.Title
	post.Slug = slug
	post.Excerpt = req.Excerpt
	post.Content = req.Content
	post.CategoryID = req.CategoryID
	if status == models.StatusPublished && post.Status != models.StatusPublished {
		now := time.Now()
		post.PublishedAt = &now
	}
	post.Status = status

	// The tag set is replaced atomically with the post update: clearing the
	// old associations and inserting the new ones happen in one transaction.
	if err := s.postRepo.UpdateWithTags(post, tags); err != nil {
		return nil, apperr.FromDB(err, "post")
	}

	updated, err := s.postRepo.GetByID(post.ID)
	if err != nil {
		return nil, apperr.FromDB(err, "post")
	}
	return updated, nil
}

func (s *postService) Get(id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, apperr.FromDB(err, "post")
	}
	return post, nil
}

func (s *postService) GetList(params models.ListParams) ([]models.Post, int64, error) {
	params.Normalize()
	posts, total, err := s.postRepo.GetList(params, false)
	if err != nil {
		return nil, 0, apperr.FromDB(err, "posts")
	}
	return posts, total, nil
}

func (s *postService) GetPublicList(params models.ListParams) ([]models.Post, int64, error) {
	params.Normalize()
	posts, total, err := s.postRepo.GetList(params, true)
	if err != nil {
		return nil, 0, apperr.FromDB(err, "posts")
	}
	return posts, total, nil
}

func (s *postService) Delete(id uint) error {
	if _, err := s.postRepo.GetByID(id); err != nil {
		return apperr.FromDB(err, "post")
	}
	if err := s.postRepo.Delete(id); err != nil {
		return apperr.FromDB(err, "post")
	}
	return nil
}

func (s *postService) resolveStatus(actor *models.Actor, requested models.ContentStatus) (models.ContentStatus, error) {
	if requested == "" {
		requested = models.StatusDraft
	}
	if !requested.Valid() {
		return "", apperr.Validation("unknown status")
	}
	return policy.EnforceStatus(actor.Role, requested), nil
}

func (s *postService) checkSlugFree(slug string, selfID uint) error {
	existing, err := s.postRepo.GetBySlug(slug)
	if err == nil {
		if existing.ID == selfID {
			return nil
		}
		return apperr.Conflict("slug %q is already in use", slug)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.FromDB(err, "post")
	}
	return nil
}

// ensureTags resolves tag names to records, creating any that do not exist
// yet. Shared by the post service; tags are matched by their derived slug.
func ensureTags(tagRepo repositories.TagRepository, names []string) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(names))
	seen := make(map[string]bool, len(names))

	for _, name := range names {
		slug := util.Slugify(name)
		if slug == "" || seen[slug] {
			continue
		}
		seen[slug] = true

		tag, err := tagRepo.GetBySlug(slug)
		if err == nil {
			tags = append(tags, *tag)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.FromDB(err, "tag")
		}

		newTag := &models.Tag{Name: name, Slug: slug}
		if err := tagRepo.Create(newTag); err != nil {
			return nil, apperr.FromDB(err, "tag")
		}
		tags = append(tags, *newTag)
	}

	return tags, nil
}
