package handlers

import (
	"backoffice-api/action"
	"backoffice-api/models"
)

// bindID fills an IDRequest input from an already parsed path parameter.
func bindID(id uint) action.BindFunc {
	return func(dst any) error {
		dst.(*models.IDRequest).ID = id
		return nil
	}
}

func newIDInput() any {
	return new(models.IDRequest)
}

func newListInput() any {
	return new(models.ListParams)
}
