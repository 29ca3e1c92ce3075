package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type UpdateProfileRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=2,max=50"`
	ProfilePhoto *string `json:"profile_photo" binding:"omitempty,url"`
}

type UpdatePreferencesRequest struct {
	Language    *string  `json:"language" binding:"omitempty,oneof=en es fr de it pt ja ko zh"`
	Currency    *string  `json:"currency" binding:"omitempty,oneof=USD EUR GBP JPY CAD AUD CHF CNY INR"`
	BudgetRange *string  `json:"budget_range" binding:"omitempty,oneof=budget mid-range luxury mixed"`
	TravelStyle []string `json:"travel_style" binding:"omitempty,max=20,dive,min=1,max=40"`
}

type SaveDestinationRequest struct {
	CityID string `json:"city_id" binding:"required,uuid"`
}
