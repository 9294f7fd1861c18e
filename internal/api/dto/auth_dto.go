package dto

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username    string `json:"username" binding:"required,min=1,max=255"`
	Password    string `json:"password" binding:"required,min=6,max=255"`
	KnownAs     string `json:"known_as" binding:"required,min=1,max=255"`
	Gender      string `json:"gender" binding:"required,oneof=male female"`
	DateOfBirth string `json:"date_of_birth" binding:"required,datetime=2006-01-02"`
	City        string `json:"city" binding:"omitempty,max=255"`
	Country     string `json:"country" binding:"omitempty,max=255"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required,min=1,max=255"`
	Password string `json:"password" binding:"required,min=6,max=255"`
}

// TokenData 注册/登录成功返回的 Token 信息
type TokenData struct {
	Token     string        `json:"token"`
	TokenType string        `json:"token_type"`
	ExpiresIn int           `json:"expires_in"`
	User      MemberSummary `json:"user"`
}
