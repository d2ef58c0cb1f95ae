package entity

type Transportation struct {
	Base
	Title        string `db:"title"`
	Description  string `db:"description"`
	Mode         string `db:"mode"`
	RouteInfo    string `db:"route_info"`
	DisplayOrder int    `db:"display_order"`
	IsActive     bool   `db:"is_active"`
}
