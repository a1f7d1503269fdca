package record

import "recordkeeper/internal/domain/record"

const (
	statusSuccess = "success"
)

type idInput struct {
	ID int `path:"id" example:"1" doc:"ID записи"`
}

type createInput struct {
	Body *recordRequest
}

type updateInput struct {
	ID   int           `path:"id" example:"1" doc:"ID записи"`
	Body *recordRequest
}

// recordRequest is the body of create and update. Both fields are
// optional on the wire; the service decides what is required.
type recordRequest struct {
	_           struct{} `json:"-" additionalProperties:"true"`
	Name        *string  `json:"name,omitempty" example:"Widget" doc:"Название, до 255 символов"`
	Description *string  `json:"description,omitempty" example:"A small widget" doc:"Описание"`
}

// data keeps absent fields absent. A missing body yields empty Data.
func (r *recordRequest) data() record.Data {
	d := make(record.Data, 2)
	if r == nil {
		return d
	}
	if r.Name != nil {
		d[record.FieldName] = *r.Name
	}
	if r.Description != nil {
		d[record.FieldDescription] = *r.Description
	}
	return d
}

type recordOutput struct {
	Status int
	Body   recordResponse
}

type recordResponse struct {
	Status  string         `json:"status" example:"success"`
	Data    *record.Record `json:"data,omitempty"`
	Message string         `json:"message" example:"Data retrieved successfully"`
}
