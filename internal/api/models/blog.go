package models

// Blog represents a blog post in the database.
type Blog struct {
	ID     string `db:"id" json:"id"`
	Title  string `db:"title" json:"title"`
	Author string `db:"author" json:"author"`
	URL    string `db:"url" json:"url"`
	Likes  int    `db:"likes" json:"likes"`
}

// CreateBlogRequest defines the structure for a blog creation request.
// Likes is a pointer so that an absent field can be told apart from an
// explicit zero; absent defaults to 0.
type CreateBlogRequest struct {
	Title  string `json:"title" validate:"required"`
	Author string `json:"author"`
	URL    string `json:"url" validate:"required"`
	Likes  *int   `json:"likes"`
}

// UpdateBlogRequest defines the structure for a blog update request.
// Updates are a full replace of the mutable fields.
type UpdateBlogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
}
