package request

type TransportationRequest struct {
	Title        string `json:"title" validate:"required,min=3,max=255"`
	Description  string `json:"description" validate:"required"`
	Mode         string `json:"mode" validate:"required,oneof=bus train plane taxi shuttle ferry"`
	RouteInfo    string `json:"route_info" validate:"required"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

type TransportationUpdateRequest struct {
	Title        *string `json:"title" validate:"omitempty,min=3,max=255"`
	Description  *string `json:"description"`
	Mode         *string `json:"mode" validate:"omitempty,oneof=bus train plane taxi shuttle ferry"`
	RouteInfo    *string `json:"route_info"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

type TransportationListQuery struct {
	PaginatedRequest
	Search   string
	Mode     *string
	IsActive *bool
	SortBy   string
	SortDesc bool
}
