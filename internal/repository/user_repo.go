package repository

import (
	"time"

	"match-go/internal/model"

	"gorm.io/gorm"
)

// OrderBy 目录排序键的闭集。字符串形式只在 API 边界出现，
// 进入查询引擎前已经解析成本类型
type OrderBy string

const (
	OrderByLastActive OrderBy = "last_active"
	OrderByCreated    OrderBy = "created"
)

// Column 返回排序键对应的数据库列
func (o OrderBy) Column() string {
	if o == OrderByCreated {
		return "created_at"
	}
	return "last_active"
}

// DirectoryQuery 目录查询参数，年龄区间已在服务层换算为出生日期窗口
type DirectoryQuery struct {
	CurrentUsername string
	Gender          string
	MinDob          time.Time
	MaxDob          time.Time
	OrderBy         OrderBy
	Page            int
	PageSize        int
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID 根据 ID 查询用户（带照片）
func (r *UserRepository) GetByID(id int64) (*model.User, error) {
	var user model.User
	err := r.db.Preload("Photos").Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername 根据用户名查询用户（带照片）。
// 注册时用户名统一小写入库，所以等值匹配即可
func (r *UserRepository) GetByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.db.Preload("Photos").Where("user_name = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create 创建用户。用户名唯一索引冲突时返回 gorm.ErrDuplicatedKey
func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

// UpdateProfile 更新用户资料字段（传入 map，只更新指定字段）
func (r *UserRepository) UpdateProfile(id int64, updates map[string]interface{}) (*model.User, error) {
	result := r.db.Model(&model.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

// TouchLastActive 刷新最近活跃时间
func (r *UserRepository) TouchLastActive(id int64) error {
	return r.db.Model(&model.User{}).Where("id = ?", id).
		UpdateColumn("last_active", time.Now()).Error
}

// ListDirectory 目录分页查询：排除请求者本人，按性别与出生日期窗口过滤，
// 按排序键降序、ID 降序兜底，保证数据集不变时分页结果可复现
func (r *UserRepository) ListDirectory(q DirectoryQuery) ([]model.User, int64, error) {
	query := r.db.Model(&model.User{}).
		Where("user_name <> ?", q.CurrentUsername).
		Where("gender = ?", q.Gender).
		Where("date_of_birth BETWEEN ? AND ?", q.MinDob, q.MaxDob)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	skip := (q.Page - 1) * q.PageSize

	var users []model.User
	err := query.
		Preload("Photos", "is_main = ?", true).
		Order(q.OrderBy.Column() + " DESC, id DESC").
		Offset(skip).Limit(q.PageSize).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// GetByIDs 批量查询用户（带主照片）
func (r *UserRepository) GetByIDs(ids []int64) ([]model.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []model.User
	err := r.db.Preload("Photos", "is_main = ?", true).
		Where("id IN ?", ids).Find(&users).Error
	return users, err
}

// SearchByKeyword 数据库关键字兜底搜索（ES 不可用时使用）
func (r *UserRepository) SearchByKeyword(keyword string, skip, limit int) ([]model.User, int64, error) {
	pattern := "%" + keyword + "%"
	query := r.db.Model(&model.User{}).
		Where("user_name ILIKE ? OR known_as ILIKE ? OR city ILIKE ? OR country ILIKE ?",
			pattern, pattern, pattern, pattern)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.User
	err := query.
		Preload("Photos", "is_main = ?", true).
		Order("last_active DESC, id DESC").
		Offset(skip).Limit(limit).
		Find(&users).Error
	return users, total, err
}
