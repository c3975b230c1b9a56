package handlers

import (
	"context"

	"backoffice-api/action"
	"backoffice-api/helper"
	"backoffice-api/models"
	"backoffice-api/services"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	list       *action.Action
	publicList *action.Action
	get        *action.Action
	create     *action.Action
	update     *action.Action
	remove     *action.Action
}

func NewEventHandler(reg *action.Registry, eventService services.EventService) *EventHandler {
	h := &EventHandler{}

	h.list = reg.Read(newListInput,
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			params := input.(*models.ListParams)
			params.Normalize()
			events, total, err := eventService.GetList(*params)
			if err != nil {
				return nil, err
			}
			return models.Paged{Items: events, Total: total, Page: params.Page, Limit: params.Limit}, nil
		})

	h.publicList = reg.Public(newListInput,
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			params := input.(*models.ListParams)
			params.Normalize()
			events, total, err := eventService.GetPublicList(*params)
			if err != nil {
				return nil, err
			}
			return models.Paged{Items: events, Total: total, Page: params.Page, Limit: params.Limit}, nil
		})

	h.get = reg.Read(newIDInput,
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			return eventService.Get(input.(*models.IDRequest).ID)
		})

	h.create = reg.Write(func() any { return new(models.CreateEventRequest) },
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			return eventService.Create(actor, input.(*models.CreateEventRequest))
		})

	h.update = reg.Write(func() any { return new(models.UpdateEventRequest) },
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			return eventService.Update(actor, input.(*models.UpdateEventRequest))
		})

	h.remove = reg.Delete(newIDInput,
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			if err := eventService.Delete(input.(*models.IDRequest).ID); err != nil {
				return nil, err
			}
			return gin.H{"message": "event deleted"}, nil
		})

	return h
}

func (h *EventHandler) GetEvents(c *gin.Context) {
	helper.Respond(c, h.list.Invoke(c.Request.Context(), helper.ActorFrom(c), c.ShouldBindQuery))
}

func (h *EventHandler) GetPublicEvents(c *gin.Context) {
	helper.Respond(c, h.publicList.Invoke(c.Request.Context(), helper.ActorFrom(c), c.ShouldBindQuery))
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	id, ok := helper.ParseIDParam(c, "id")
	if !ok {
		return
	}
	helper.Respond(c, h.get.Invoke(c.Request.Context(), helper.ActorFrom(c), bindID(id)))
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	helper.Respond(c, h.create.Invoke(c.Request.Context(), helper.ActorFrom(c), c.ShouldBindJSON))
}

func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, ok := helper.ParseIDParam(c, "id")
	if !ok {
		return
	}
	helper.Respond(c, h.update.Invoke(c.Request.Context(), helper.ActorFrom(c), func(dst any) error {
		if err := c.ShouldBindJSON(dst); err != nil {
			return err
		}
		dst.(*models.UpdateEventRequest).ID = id
		return nil
	}))
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, ok := helper.ParseIDParam(c, "id")
	if !ok {
		return
	}
	helper.Respond(c, h.remove.Invoke(c.Request.Context(), helper.ActorFrom(c), bindID(id)))
}
