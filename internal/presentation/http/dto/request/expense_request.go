package request

// CreateExpenseRequest records a new expense
type CreateExpenseRequest struct {
	Date          string  `json:"date" binding:"required,datetime=2006-01-02"`
	Category      string  `json:"category" binding:"required,min=1,max=255"`
	Description   string  `json:"description" binding:"required,min=1"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaidTo        *string `json:"paid_to,omitempty" binding:"omitempty,max=255"`
	PaymentMethod string  `json:"payment_method" binding:"omitempty,oneof=cash card mobile"`
	ReceiptImage  *string `json:"receipt_image,omitempty" binding:"omitempty,max=255"`
}

// UpdateExpenseRequest updates an expense. Absent fields are left unchanged.
type UpdateExpenseRequest struct {
	Date          *string  `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Category      *string  `json:"category,omitempty" binding:"omitempty,min=1,max=255"`
	Description   *string  `json:"description,omitempty" binding:"omitempty,min=1"`
	Amount        *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	PaidTo        *string  `json:"paid_to,omitempty" binding:"omitempty,max=255"`
	PaymentMethod *string  `json:"payment_method,omitempty" binding:"omitempty,oneof=cash card mobile"`
	ReceiptImage  *string  `json:"receipt_image,omitempty" binding:"omitempty,max=255"`
}

// CreateExpenseCategoryRequest creates an expense category
type CreateExpenseCategoryRequest struct {
	CategoryName string `json:"category_name" binding:"required,min=1,max=255"`
	CategoryType string `json:"category_type" binding:"omitempty,max=50"`
}
