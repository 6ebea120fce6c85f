package handler

// Request types owned by the transport layer. Only option membership is
// checked here, through the category, city and role tags registered in
// NewValidator; free-text fields are accepted as sent.

type reportRequest struct {
	Description string `form:"description"`
	Category    string `form:"category"    validate:"omitempty,category"`
	// Attachment is the file control's value. With a URL-encoded form this is
	// at most a file name; the file itself never reaches the server.
	Attachment string `form:"attachment"`
}

type registerRequest struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	Password string `form:"password"`
	Role     string `form:"role"     validate:"omitempty,role"`
}

type roleQuery struct {
	Role string `query:"role" validate:"omitempty,role"`
}

type cityQuery struct {
	City string `query:"city" validate:"omitempty,city"`
}
