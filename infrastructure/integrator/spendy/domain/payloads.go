package spendydomain

// LoginRequest é o corpo de POST /Auth/auth/login
type LoginRequest struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// LoginResponse carrega o JWT emitido pelo backend
type LoginResponse struct {
	Token string `json:"token"`
}

// RegisterRequest é o corpo de POST /Auth/auth/register
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
}

// LinkHouseRequest é o corpo de POST /Auth/auth/external/link-house
type LinkHouseRequest struct {
	HouseCode string `json:"houseCode"`
}

// DateRangeRequest é o corpo de getExpenseByDate.
// As datas vão no formato "YYYY-MM-DD HH:MM:SS".
type DateRangeRequest struct {
	StartedDate   string `json:"startedDate"`
	CompletedDate string `json:"completedDate"`
}

// MonthRequest é o corpo de getExpenseByMonth
type MonthRequest struct {
	Month string `json:"month"`
	Year  string `json:"year"`
}

// YearRequest é o corpo de getMonthlyAmountOfYear
type YearRequest struct {
	Year string `json:"year"`
}
