package request

type CategoryCreateRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description string  `json:"description"`
	ParentID    *string `json:"parentId,omitempty"`
}
