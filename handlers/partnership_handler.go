package handlers

import (
	"context"

	"backoffice-api/action"
	"backoffice-api/helper"
	"backoffice-api/models"
	"backoffice-api/services"

	"github.com/gin-gonic/gin"
)

type PartnershipHandler struct {
	list   *action.Action
	get    *action.Action
	create *action.Action
	update *action.Action
	remove *action.Action
}

func NewPartnershipHandler(reg *action.Registry, partnershipService services.PartnershipService) *PartnershipHandler {
	h := &PartnershipHandler{}

	h.list = reg.Read(newListInput,
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			params := input.(*models.ListParams)
			params.Normalize()
			partnerships, total, err := partnershipService.GetList(*params)
			if err != nil {
				return nil, err
			}
			return models.Paged{Items: partnerships, Total: total, Page: params.Page, Limit: params.Limit}, nil
		})

	h.get = reg.Read(newIDInput,
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			return partnershipService.Get(input.(*models.IDRequest).ID)
		})

	h.create = reg.Write(func() any { return new(models.CreatePartnershipRequest) },
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			return partnershipService.Create(input.(*models.CreatePartnershipRequest))
		})

	h.update = reg.Write(func() any { return new(models.UpdatePartnershipRequest) },
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			return partnershipService.Update(input.(*models.UpdatePartnershipRequest))
		})

	h.remove = reg.Delete(newIDInput,
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			if err := partnershipService.Delete(input.(*models.IDRequest).ID); err != nil {
				return nil, err
			}
			return gin.H{"message": "partnership deleted"}, nil
		})

	return h
}

func (h *PartnershipHandler) GetPartnerships(c *gin.Context) {
	helper.Respond(c, h.list.Invoke(c.Request.Context(), helper.ActorFrom(c), c.ShouldBindQuery))
}

func (h *PartnershipHandler) GetPartnership(c *gin.Context) {
	id, ok := helper.ParseIDParam(c, "id")
	if !ok {
		return
	}
	helper.Respond(c, h.get.Invoke(c.Request.Context(), helper.ActorFrom(c), bindID(id)))
}

func (h *PartnershipHandler) CreatePartnership(c *gin.Context) {
	helper.Respond(c, h.create.Invoke(c.Request.Context(), helper.ActorFrom(c), c.ShouldBindJSON))
}

func (h *PartnershipHandler) UpdatePartnership(c *gin.Context) {
	id, ok := helper.ParseIDParam(c, "id")
	if !ok {
		return
	}
	helper.Respond(c, h.update.Invoke(c.Request.Context(), helper.ActorFrom(c), func(dst any) error {
		if err := c.ShouldBindJSON(dst); err != nil {
			return err
		}
		dst.(*models.UpdatePartnershipRequest).ID = id
		return nil
	}))
}

func (h *PartnershipHandler) DeletePartnership(c *gin.Context) {
	id, ok := helper.ParseIDParam(c, "id")
	if !ok {
		return
	}
	helper.Respond(c, h.remove.Invoke(c.Request.Context(), helper.ActorFrom(c), bindID(id)))
}
