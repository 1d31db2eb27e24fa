package feedback

type CreateFeedbackRequest struct {
	EmployeeID   string  `json:"employee_id" binding:"required,uuid"`
	Title        string  `json:"title" binding:"required,max=200"`
	Content      string  `json:"content" binding:"required"`
	FeedbackType string  `json:"feedback_type" binding:"required"`
	Rating       *int    `json:"rating"`
	Category     *string `json:"category"`
	Tags         *string `json:"tags"`
	IsPublic     bool    `json:"is_public"`
	IsAnonymous  bool    `json:"is_anonymous"`

	// When set, the content is run through the enhancement service before
	// the record is stored.
	Enhance bool `json:"enhance"`
}

type UpdateFeedbackRequest struct {
	Title        string  `json:"title" binding:"required,max=200"`
	Content      string  `json:"content" binding:"required"`
	FeedbackType string  `json:"feedback_type" binding:"required"`
	Rating       *int    `json:"rating"`
	Category     *string `json:"category"`
	Tags         *string `json:"tags"`
	IsPublic     bool    `json:"is_public"`
	IsAnonymous  bool    `json:"is_anonymous"`
}

type FeedbackResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	GiverID         *string `json:"giver_id,omitempty"`
	Title           string  `json:"title"`
	Content         string  `json:"content"`
	EnhancedContent *string `json:"enhanced_content,omitempty"`
	FeedbackType    string  `json:"feedback_type"`
	Rating          *int    `json:"rating,omitempty"`
	Category        *string `json:"category,omitempty"`
	Tags            *string `json:"tags,omitempty"`
	IsPublic        bool    `json:"is_public"`
	IsAnonymous     bool    `json:"is_anonymous"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}
