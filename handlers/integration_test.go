package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"backoffice-api/action"
	"backoffice-api/config"
	"backoffice-api/handlers"
	"backoffice-api/middleware"
	"backoffice-api/models"
	"backoffice-api/repositories"
	"backoffice-api/services"
)

// The suite runs against a real PostgreSQL database and is skipped unless
// TEST_DATABASE_DSN is set, e.g.
//
//	TEST_DATABASE_DSN="host=localhost user=postgres password=postgres dbname=backoffice_test sslmode=disable" go test ./handlers/
type IntegrationTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine

	tokens map[models.Role]string
}

type envelope struct {
	Data             json.RawMessage     `json:"data"`
	ServerError      string              `json:"serverError"`
	ValidationErrors map[string][]string `json:"validationErrors"`
}

func TestIntegrationTestSuite(t *testing.T) {
	if os.Getenv("TEST_DATABASE_DSN") == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}
	suite.Run(t, new(IntegrationTestSuite))
}

func (suite *IntegrationTestSuite) SetupSuite() {
	db, err := gorm.Open(postgres.Open(os.Getenv("TEST_DATABASE_DSN")), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		suite.T().Fatal("failed to connect to test database:", err)
	}
	suite.db = db

	if err := config.Migrate(db); err != nil {
		suite.T().Fatal("failed to migrate test database:", err)
	}
	suite.truncateAll()

	suite.seedUsers()
	suite.setupRouter()

	suite.tokens = map[models.Role]string{}
	for _, role := range []models.Role{models.RoleViewer, models.RoleEditor, models.RoleAdmin, models.RoleSuperAdmin} {
		suite.tokens[role] = suite.login(string(role) + "@example.com")
	}
}

func (suite *IntegrationTestSuite) truncateAll() {
	for _, table := range []string{
		"post_tags", "posts", "categories", "tags", "events", "job_offers",
		"contacts", "partnerships", "media_items", "testimonials", "users",
	} {
		suite.db.Exec("DELETE FROM " + table)
	}
}

func (suite *IntegrationTestSuite) seedUsers() {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	suite.Require().NoError(err)

	for _, role := range []models.Role{models.RoleViewer, models.RoleEditor, models.RoleAdmin, models.RoleSuperAdmin} {
		user := &models.User{
			Name:              string(role),
			Email:             string(role) + "@example.com",
			Password:          string(hashed),
			Role:              role,
			Active:            true,
			PasswordChangedAt: time.Now().Add(-time.Minute),
		}
		suite.Require().NoError(suite.db.Create(user).Error)
	}
}

func (suite *IntegrationTestSuite) setupRouter() {
	gin.SetMode(gin.TestMode)

	userRepo := repositories.NewUserRepository(suite.db)
	postRepo := repositories.NewPostRepository(suite.db)
	categoryRepo := repositories.NewCategoryRepository(suite.db)
	tagRepo := repositories.NewTagRepository(suite.db)
	eventRepo := repositories.NewEventRepository(suite.db)
	jobRepo := repositories.NewJobOfferRepository(suite.db)
	contactRepo := repositories.NewContactRepository(suite.db)

	authService := services.NewAuthService(userRepo, "test-secret", time.Hour)
	userService := services.NewUserService(userRepo)
	postService := services.NewPostService(postRepo, categoryRepo, tagRepo)
	categoryService := services.NewCategoryService(categoryRepo, postRepo)
	tagService := services.NewTagService(tagRepo)
	eventService := services.NewEventService(eventRepo)
	jobService := services.NewJobOfferService(jobRepo)
	contactService := services.NewContactService(contactRepo)

	registry := action.NewRegistry(zerolog.Nop())
	authHandler := handlers.NewAuthHandler(registry, authService)
	userHandler := handlers.NewUserHandler(registry, userService)
	postHandler := handlers.NewPostHandler(registry, postService)
	categoryHandler := handlers.NewCategoryHandler(registry, categoryService)
	tagHandler := handlers.NewTagHandler(registry, tagService)
	eventHandler := handlers.NewEventHandler(registry, eventService)
	jobHandler := handlers.NewJobOfferHandler(registry, jobService)
	contactHandler := handlers.NewContactHandler(registry, contactService)

	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.Use(middleware.Authenticate(authService))
	{
		v1.POST("/auth/login", authHandler.Login)
		v1.GET("/auth/profile", authHandler.Profile)

		v1.GET("/users", userHandler.GetUsers)
		v1.POST("/users", userHandler.CreateUser)

		v1.GET("/posts", postHandler.GetPosts)
		v1.GET("/posts/:id", postHandler.GetPost)
		v1.POST("/posts", postHandler.CreatePost)
		v1.PUT("/posts/:id", postHandler.UpdatePost)
		v1.DELETE("/posts/:id", postHandler.DeletePost)

		v1.GET("/categories", categoryHandler.GetCategories)
		v1.POST("/categories", categoryHandler.CreateCategory)
		v1.DELETE("/categories/:id", categoryHandler.DeleteCategory)

		v1.GET("/tags", tagHandler.GetTags)
		v1.POST("/tags", tagHandler.CreateTag)

		v1.POST("/events", eventHandler.CreateEvent)
		v1.POST("/jobs", jobHandler.CreateJobOffer)

		v1.GET("/public/posts", postHandler.GetPublicPosts)
		v1.POST("/public/contacts", contactHandler.SubmitContact)
	}

	suite.router = router
}

func (suite *IntegrationTestSuite) request(method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	var env envelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func (suite *IntegrationTestSuite) login(email string) string {
	w, env := suite.request("POST", "/api/v1/auth/login", "", gin.H{
		"email":    email,
		"password": "password123",
	})
	suite.Require().Equal(http.StatusOK, w.Code, "login failed for %s: %s", email, env.ServerError)

	var resp models.AuthResponse
	suite.Require().NoError(json.Unmarshal(env.Data, &resp))
	return resp.Token
}

func (suite *IntegrationTestSuite) createPost(token string, body gin.H) (*httptest.ResponseRecorder, envelope, models.Post) {
	w, env := suite.request("POST", "/api/v1/posts", token, body)
	var post models.Post
	if w.Code == http.StatusOK {
		suite.Require().NoError(json.Unmarshal(env.Data, &post))
	}
	return w, env, post
}

func (suite *IntegrationTestSuite) TestProfileReturnsCurrentUser() {
	w, env := suite.request("GET", "/api/v1/auth/profile", suite.tokens[models.RoleEditor], nil)
	suite.Equal(http.StatusOK, w.Code)

	var user models.User
	suite.Require().NoError(json.Unmarshal(env.Data, &user))
	suite.Equal("editor@example.com", user.Email)
	suite.Equal(models.RoleEditor, user.Role)
}

func (suite *IntegrationTestSuite) TestAnonymousCannotListPosts() {
	w, env := suite.request("GET", "/api/v1/posts", "", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("authentication required", env.ServerError)
}

func (suite *IntegrationTestSuite) TestInvalidTokenIsRejected() {
	w, _ := suite.request("GET", "/api/v1/posts", "not-a-token", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *IntegrationTestSuite) TestViewerCanReadButNotWrite() {
	w, _ := suite.request("GET", "/api/v1/posts", suite.tokens[models.RoleViewer], nil)
	suite.Equal(http.StatusOK, w.Code)

	w, _, _ = suite.createPost(suite.tokens[models.RoleViewer], gin.H{
		"title":   "Viewer Post",
		"content": "should not exist",
	})
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *IntegrationTestSuite) TestEditorCannotDelete() {
	w, _, post := suite.createPost(suite.tokens[models.RoleEditor], gin.H{
		"title":   "Editor Delete Target",
		"content": "body",
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	w, env := suite.request("DELETE", fmt.Sprintf("/api/v1/posts/%d", post.ID), suite.tokens[models.RoleEditor], nil)
	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal("access denied", env.ServerError)
}

func (suite *IntegrationTestSuite) TestUsersAreSuperAdminOnly() {
	w, _ := suite.request("GET", "/api/v1/users", suite.tokens[models.RoleAdmin], nil)
	suite.Equal(http.StatusForbidden, w.Code)

	w, _ = suite.request("GET", "/api/v1/users", suite.tokens[models.RoleSuperAdmin], nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *IntegrationTestSuite) TestEditorPostIsForcedToDraft() {
	w, _, post := suite.createPost(suite.tokens[models.RoleEditor], gin.H{
		"title":   "Editor Draft Enforcement",
		"content": "body",
		"status":  "published",
	})
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal(models.StatusDraft, post.Status)
	suite.Nil(post.PublishedAt)

	// The clamp applies on update too.
	w, env := suite.request("PUT", fmt.Sprintf("/api/v1/posts/%d", post.ID), suite.tokens[models.RoleEditor], gin.H{
		"title":   "Editor Draft Enforcement",
		"content": "body",
		"status":  "published",
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	var updated models.Post
	suite.Require().NoError(json.Unmarshal(env.Data, &updated))
	suite.Equal(models.StatusDraft, updated.Status)
}

func (suite *IntegrationTestSuite) TestAdminCanPublish() {
	w, _, post := suite.createPost(suite.tokens[models.RoleAdmin], gin.H{
		"title":   "Admin Publishes Directly",
		"content": "body",
		"status":  "published",
	})
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal(models.StatusPublished, post.Status)
	suite.NotNil(post.PublishedAt)
}

func (suite *IntegrationTestSuite) TestEditorEventIsForcedToDraft() {
	w, env := suite.request("POST", "/api/v1/events", suite.tokens[models.RoleEditor], gin.H{
		"title":     "Editor Event",
		"starts_at": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"status":    "published",
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	var event models.Event
	suite.Require().NoError(json.Unmarshal(env.Data, &event))
	suite.Equal(models.StatusDraft, event.Status)
}

func (suite *IntegrationTestSuite) TestEditorJobOfferIsForcedToDraft() {
	w, env := suite.request("POST", "/api/v1/jobs", suite.tokens[models.RoleEditor], gin.H{
		"title":       "Editor Job",
		"description": "role description",
		"status":      "published",
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	var job models.JobOffer
	suite.Require().NoError(json.Unmarshal(env.Data, &job))
	suite.Equal(models.StatusDraft, job.Status)
}

func (suite *IntegrationTestSuite) TestDuplicateSlugIsRejected() {
	w, _, _ := suite.createPost(suite.tokens[models.RoleAdmin], gin.H{
		"title":   "Slug Holder",
		"slug":    "taken-slug",
		"content": "body",
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	w, _, _ = suite.createPost(suite.tokens[models.RoleAdmin], gin.H{
		"title":   "Slug Contender",
		"slug":    "taken-slug",
		"content": "body",
	})
	suite.Equal(http.StatusConflict, w.Code)

	_, env := suite.request("GET", "/api/v1/posts?search=Slug+Contender", suite.tokens[models.RoleAdmin], nil)
	var page models.Paged
	suite.Require().NoError(json.Unmarshal(env.Data, &page))
	suite.EqualValues(0, page.Total)
}

func (suite *IntegrationTestSuite) TestCategoryDeleteBlockedWhileReferenced() {
	w, env := suite.request("POST", "/api/v1/categories", suite.tokens[models.RoleAdmin], gin.H{
		"name": "Guarded Category",
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	var category models.Category
	suite.Require().NoError(json.Unmarshal(env.Data, &category))

	w, _, post := suite.createPost(suite.tokens[models.RoleAdmin], gin.H{
		"title":       "Categorized Post",
		"content":     "body",
		"category_id": category.ID,
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	w, env = suite.request("DELETE", fmt.Sprintf("/api/v1/categories/%d", category.ID), suite.tokens[models.RoleAdmin], nil)
	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(env.ServerError, "associated posts")

	w, _ = suite.request("DELETE", fmt.Sprintf("/api/v1/posts/%d", post.ID), suite.tokens[models.RoleAdmin], nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	w, _ = suite.request("DELETE", fmt.Sprintf("/api/v1/categories/%d", category.ID), suite.tokens[models.RoleAdmin], nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *IntegrationTestSuite) TestTagReplaceIsAtomic() {
	w, _, post := suite.createPost(suite.tokens[models.RoleAdmin], gin.H{
		"title":   "Tagged Post",
		"content": "body",
		"tags":    []string{"go", "web"},
	})
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Len(post.Tags, 2)

	w, env := suite.request("PUT", fmt.Sprintf("/api/v1/posts/%d", post.ID), suite.tokens[models.RoleAdmin], gin.H{
		"title":   "Tagged Post",
		"content": "body",
		"tags":    []string{"web", "postgres"},
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	var updated models.Post
	suite.Require().NoError(json.Unmarshal(env.Data, &updated))

	names := make([]string, 0, len(updated.Tags))
	for _, tag := range updated.Tags {
		names = append(names, tag.Name)
	}
	suite.ElementsMatch([]string{"web", "postgres"}, names)
}

func (suite *IntegrationTestSuite) TestPublicPostsShowOnlyPublished() {
	w, _, _ := suite.createPost(suite.tokens[models.RoleAdmin], gin.H{
		"title":   "Public Published",
		"content": "body",
		"status":  "published",
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	w, _, _ = suite.createPost(suite.tokens[models.RoleAdmin], gin.H{
		"title":   "Public Hidden Draft",
		"content": "body",
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	w, env := suite.request("GET", "/api/v1/public/posts", "", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var page struct {
		Items []models.Post `json:"items"`
		Total int64         `json:"total"`
	}
	suite.Require().NoError(json.Unmarshal(env.Data, &page))
	suite.NotEmpty(page.Items)
	for _, post := range page.Items {
		suite.Equal(models.StatusPublished, post.Status)
	}
}

func (suite *IntegrationTestSuite) TestContactFormIsPublic() {
	w, env := suite.request("POST", "/api/v1/public/contacts", "", gin.H{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"message": "hello from the website",
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	var contact models.Contact
	suite.Require().NoError(json.Unmarshal(env.Data, &contact))
	suite.Equal(models.ContactNew, contact.Status)
}

func (suite *IntegrationTestSuite) TestValidationRunsAfterRoleCheck() {
	// A viewer sending garbage gets 403, not a validation error: the wrapper
	// rejects before it ever decodes the body.
	w, env, _ := suite.createPost(suite.tokens[models.RoleViewer], gin.H{})
	suite.Equal(http.StatusForbidden, w.Code)
	suite.Empty(env.ValidationErrors)

	w, env, _ = suite.createPost(suite.tokens[models.RoleAdmin], gin.H{})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(env.ValidationErrors, "title")
	suite.Contains(env.ValidationErrors, "content")
}
