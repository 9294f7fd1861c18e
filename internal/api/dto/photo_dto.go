package dto

// PhotoInfo 照片公开信息
type PhotoInfo struct {
	ID     int64  `json:"id"`
	URL    string `json:"url"`
	IsMain bool   `json:"is_main"`
}
