package handlers

import (
	"context"

	"backoffice-api/action"
	"backoffice-api/helper"
	"backoffice-api/models"
	"backoffice-api/services"

	"github.com/gin-gonic/gin"
)

type TestimonialHandler struct {
	list   *action.Action
	get    *action.Action
	create *action.Action
	update *action.Action
	remove *action.Action
}

func NewTestimonialHandler(reg *action.Registry, testimonialService services.TestimonialService) *TestimonialHandler {
	h := &TestimonialHandler{}

	h.list = reg.Read(newListInput,
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			params := input.(*models.ListParams)
			params.Normalize()
			testimonials, total, err := testimonialService.GetList(*params)
			if err != nil {
				return nil, err
			}
			return models.Paged{Items: testimonials, Total: total, Page: params.Page, Limit: params.Limit}, nil
		})

	h.get = reg.Read(newIDInput,
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			return testimonialService.Get(input.(*models.IDRequest).ID)
		})

	h.create = reg.Write(func() any { return new(models.CreateTestimonialRequest) },
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			return testimonialService.Create(input.(*models.CreateTestimonialRequest))
		})

	h.update = reg.Write(func() any { return new(models.UpdateTestimonialRequest) },
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			return testimonialService.Update(input.(*models.UpdateTestimonialRequest))
		})

	h.remove = reg.Delete(newIDInput,
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			if err := testimonialService.Delete(input.(*models.IDRequest).ID); err != nil {
				return nil, err
			}
			return gin.H{"message": "testimonial deleted"}, nil
		})

	return h
}

func (h *TestimonialHandler) GetTestimonials(c *gin.Context) {
	helper.Respond(c, h.list.Invoke(c.Request.Context(), helper.ActorFrom(c), c.ShouldBindQuery))
}

func (h *TestimonialHandler) GetTestimonial(c *gin.Context) {
	id, ok := helper.ParseIDParam(c, "id")
	if !ok {
		return
	}
	helper.Respond(c, h.get.Invoke(c.Request.Context(), helper.ActorFrom(c), bindID(id)))
}

func (h *TestimonialHandler) CreateTestimonial(c *gin.Context) {
	helper.Respond(c, h.create.Invoke(c.Request.Context(), helper.ActorFrom(c), c.ShouldBindJSON))
}

func (h *TestimonialHandler) UpdateTestimonial(c *gin.Context) {
	id, ok := helper.ParseIDParam(c, "id")
	if !ok {
		return
	}
	helper.Respond(c, h.update.Invoke(c.Request.Context(), helper.ActorFrom(c), func(dst any) error {
		if err := c.ShouldBindJSON(dst); err != nil {
			return err
		}
		dst.(*models.UpdateTestimonialRequest).ID = id
		return nil
	}))
}

func (h *TestimonialHandler) DeleteTestimonial(c *gin.Context) {
	id, ok := helper.ParseIDParam(c, "id")
	if !ok {
		return
	}
	helper.Respond(c, h.remove.Invoke(c.Request.Context(), helper.ActorFrom(c), bindID(id)))
}
