package handlers

import (
	"context"

	"backoffice-api/action"
	"backoffice-api/helper"
	"backoffice-api/models"
	"backoffice-api/services"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	submit       *action.Action
	list         *action.Action
	get          *action.Action
	updateStatus *action.Action
	remove       *action.Action
}

func NewContactHandler(reg *action.Registry, contactService services.ContactService) *ContactHandler {
	h := &ContactHandler{}

	h.submit = reg.Public(func() any { return new(models.SubmitContactRequest) },
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			return contactService.Submit(input.(*models.SubmitContactRequest))
		})

	h.list = reg.Read(newListInput,
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			params := input.(*models.ListParams)
			params.Normalize()
			contacts, total, err := contactService.GetList(*params)
			if err != nil {
				return nil, err
			}
			return models.Paged{Items: contacts, Total: total, Page: params.Page, Limit: params.Limit}, nil
		})

	h.get = reg.Read(newIDInput,
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			return contactService.Get(input.(*models.IDRequest).ID)
		})

	h.updateStatus = reg.Write(func() any { return new(models.UpdateContactStatusRequest) },
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			return contactService.UpdateStatus(input.(*models.UpdateContactStatusRequest))
		})

	h.remove = reg.Delete(newIDInput,
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			if err := contactService.Delete(input.(*models.IDRequest).ID); err != nil {
				return nil, err
			}
			return gin.H{"message": "contact deleted"}, nil
		})

	return h
}

func (h *ContactHandler) SubmitContact(c *gin.Context) {
	helper.Respond(c, h.submit.Invoke(c.Request.Context(), helper.ActorFrom(c), c.ShouldBindJSON))
}

func (h *ContactHandler) GetContacts(c *gin.Context) {
	helper.Respond(c, h.list.Invoke(c.Request.Context(), helper.ActorFrom(c), c.ShouldBindQuery))
}

func (h *ContactHandler) GetContact(c *gin.Context) {
	id, ok := helper.ParseIDParam(c, "id")
	if !ok {
		return
	}
	helper.Respond(c, h.get.Invoke(c.Request.Context(), helper.ActorFrom(c), bindID(id)))
}

func (h *ContactHandler) UpdateContactStatus(c *gin.Context) {
	id, ok := helper.ParseIDParam(c, "id")
	if !ok {
		return
	}
	helper.Respond(c, h.updateStatus.Invoke(c.Request.Context(), helper.ActorFrom(c), func(dst any) error {
		if err := c.ShouldBindJSON(dst); err != nil {
			return err
		}
		dst.(*models.UpdateContactStatusRequest).ID = id
		return nil
	}))
}

func (h *ContactHandler) DeleteContact(c *gin.Context) {
	id, ok := helper.ParseIDParam(c, "id")
	if !ok {
		return
	}
	helper.Respond(c, h.remove.Invoke(c.Request.Context(), helper.ActorFrom(c), bindID(id)))
}
