package handlers

import (
	"context"

	"backoffice-api/action"
	"backoffice-api/helper"
	"backoffice-api/models"
	"backoffice-api/services"

	"github.com/gin-gonic/gin"
)

type JobOfferHandler struct {
	list       *action.Action
	publicList *action.Action
	get        *action.Action
	create     *action.Action
	update     *action.Action
	remove     *action.Action
}

func NewJobOfferHandler(reg *action.Registry, jobService services.JobOfferService) *JobOfferHandler {
	h := &JobOfferHandler{}

	h.list = reg.Read(newListInput,
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			params := input.(*models.ListParams)
			params.Normalize()
			jobs, total, err := jobService.GetList(*params)
			if err != nil {
				return nil, err
			}
			return models.Paged{Items: jobs, Total: total, Page: params.Page, Limit: params.Limit}, nil
		})

	h.publicList = reg.Public(newListInput,
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			params := input.(*models.ListParams)
			params.Normalize()
			jobs, total, err := jobService.GetPublicList(*params)
			if err != nil {
				return nil, err
			}
			return models.Paged{Items: jobs, Total: total, Page: params.Page, Limit: params.Limit}, nil
		})

	h.get = reg.Read(newIDInput,
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			return jobService.Get(input.(*models.IDRequest).ID)
		})

	h.create = reg.Write(func() any { return new(models.CreateJobOfferRequest) },
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			return jobService.Create(actor, input.(*models.CreateJobOfferRequest))
		})

	h.update = reg.Write(func() any { return new(models.UpdateJobOfferRequest) },
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			return jobService.Update(actor, input.(*models.UpdateJobOfferRequest))
		})

	h.remove = reg.Delete(newIDInput,
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			if err := jobService.Delete(input.(*models.IDRequest).ID); err != nil {
				return nil, err
			}
			return gin.H{"message": "job offer deleted"}, nil
		})

	return h
}

func (h *JobOfferHandler) GetJobOffers(c *gin.Context) {
	helper.Respond(c, h.list.Invoke(c.Request.Context(), helper.ActorFrom(c), c.ShouldBindQuery))
}

func (h *JobOfferHandler) GetPublicJobOffers(c *gin.Context) {
	helper.Respond(c, h.publicList.Invoke(c.Request.Context(), helper.ActorFrom(c), c.ShouldBindQuery))
}

func (h *JobOfferHandler) GetJobOffer(c *gin.Context) {
	id, ok := helper.ParseIDParam(c, "id")
	if !ok {
		return
	}
	helper.Respond(c, h.get.Invoke(c.Request.Context(), helper.ActorFrom(c), bindID(id)))
}

func (h *JobOfferHandler) CreateJobOffer(c *gin.Context) {
	helper.Respond(c, h.create.Invoke(c.Request.Context(), helper.ActorFrom(c), c.ShouldBindJSON))
}

func (h *JobOfferHandler) UpdateJobOffer(c *gin.Context) {
	id, ok := helper.ParseIDParam(c, "id")
	if !ok {
		return
	}
	helper.Respond(c, h.update.Invoke(c.Request.Context(), helper.ActorFrom(c), func(dst any) error {
		if err := c.ShouldBindJSON(dst); err != nil {
			return err
		}
		dst.(*models.UpdateJobOfferRequest).ID = id
		return nil
	}))
}

func (h *JobOfferHandler) DeleteJobOffer(c *gin.Context) {
	id, ok := helper.ParseIDParam(c, "id")
	if !ok {
		return
	}
	helper.Respond(c, h.remove.Invoke(c.Request.Context(), helper.ActorFrom(c), bindID(id)))
}
