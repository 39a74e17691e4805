package menu

// Item is the single domain entity: one dish on the menu.
// ID is assigned by the repository on create and never changes.
type Item struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Tags        []string `json:"tags"`
	ImageURL    *string  `json:"imageUrl"`
}

// ItemFields carries the caller-supplied fields for create and update.
// ImageURL is nil on create and on updates that should keep the stored value.
type ItemFields struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Tags        []string `json:"tags"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
}
