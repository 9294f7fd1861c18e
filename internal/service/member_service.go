package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"match-go/internal/api/dto"
	"match-go/internal/cache"
	"match-go/internal/model"
	"match-go/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrInvalidPageRequest = errors.New("分页参数不合法")
	ErrInvalidAgeRange    = errors.New("年龄范围不合法")
)

const (
	defaultMinAge   = 18
	defaultMaxAge   = 150
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 50
)

type MemberService struct {
	userRepo    *repository.UserRepository
	memberCache *cache.MemberCache
}

func NewMemberService(userRepo *repository.UserRepository, memberCache *cache.MemberCache) *MemberService {
	return &MemberService{userRepo: userRepo, memberCache: memberCache}
}

// ListDirectory 会员目录查询：按性别与年龄过滤、排序、分页。
// 未指定性别时默认检索与当前用户相反的性别，结果始终排除本人
func (s *MemberService) ListDirectory(ctx context.Context, currentUserID int64, req *dto.DirectoryQueryRequest) (*dto.MemberPage, error) {
	current, err := s.userRepo.GetByID(currentUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	page, pageSize, err := normalizePage(req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}

	minAge, maxAge := req.MinAge, req.MaxAge
	if minAge == 0 {
		minAge = defaultMinAge
	}
	if maxAge == 0 {
		maxAge = defaultMaxAge
	}
	if minAge < 0 || maxAge < 0 || minAge > maxAge {
		return nil, ErrInvalidAgeRange
	}

	gender := req.Gender
	if gender == "" {
		gender = model.OppositeGender(current.Gender)
	}

	orderBy := repository.OrderByLastActive
	if req.OrderBy == "created" {
		orderBy = repository.OrderByCreated
	}

	// 年龄换算为出生日期区间：最大年龄对应的人可能刚过生日，
	// 下界因此要多放宽一年
	today := time.Now()
	minDob := today.AddDate(-(maxAge + 1), 0, 0)
	maxDob := today.AddDate(-minAge, 0, 0)

	version := s.memberCache.Version(ctx)
	fingerprint := cache.Fingerprint(
		current.UserName, gender, orderBy.Column(),
		strconv.Itoa(minAge), strconv.Itoa(maxAge),
		strconv.Itoa(page), strconv.Itoa(pageSize),
	)
	if cached, ok := s.memberCache.GetPage(ctx, version, fingerprint); ok {
		return cached, nil
	}

	users, total, err := s.userRepo.ListDirectory(repository.DirectoryQuery{
		CurrentUsername: current.UserName,
		Gender:          gender,
		MinDob:          minDob,
		MaxDob:          maxDob,
		OrderBy:         orderBy,
		Page:            page,
		PageSize:        pageSize,
	})
	if err != nil {
		return nil, err
	}

	result := &dto.MemberPage{
		Items: toMemberSummaries(users),
		Meta:  buildPaginationMeta(page, pageSize, total),
	}

	s.memberCache.SetPage(ctx, version, fingerprint, result)

	return result, nil
}

// GetProfile 按用户名获取会员详情
func (s *MemberService) GetProfile(username string) (*dto.MemberDetail, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toMemberDetail(user), nil
}

// UpdateProfile 更新当前用户的个人资料，仅更新传入的字段
func (s *MemberService) UpdateProfile(ctx context.Context, userID int64, req *dto.ProfileUpdateRequest) (*dto.MemberDetail, error) {
	updates := make(map[string]interface{})
	if req.KnownAs != nil {
		updates["known_as"] = *req.KnownAs
	}
	if req.Introduction != nil {
		updates["introduction"] = *req.Introduction
	}
	if req.LookingFor != nil {
		updates["looking_for"] = *req.LookingFor
	}
	if req.Interests != nil {
		updates["interests"] = *req.Interests
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.Country != nil {
		updates["country"] = *req.Country
	}

	if len(updates) == 0 {
		user, err := s.userRepo.GetByID(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
		return toMemberDetail(user), nil
	}

	user, err := s.userRepo.UpdateProfile(userID, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	s.memberCache.Bump(ctx)
	return toMemberDetail(user), nil
}

// TouchLastActive 刷新用户活跃时间
func (s *MemberService) TouchLastActive(userID int64) error {
	return s.userRepo.TouchLastActive(userID)
}

func normalizePage(page, pageSize int) (int, int, error) {
	if page == 0 {
		page = defaultPage
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if page < 1 || pageSize < 1 {
		return 0, 0, ErrInvalidPageRequest
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize, nil
}

func buildPaginationMeta(page, pageSize int, total int64) dto.PaginationMeta {
	return dto.PaginationMeta{
		CurrentPage: page,
		PageSize:    pageSize,
		TotalCount:  total,
		TotalPages:  (total + int64(pageSize) - 1) / int64(pageSize),
	}
}

func toMemberSummary(user *model.User) *dto.MemberSummary {
	now := time.Now()
	return &dto.MemberSummary{
		ID:         user.ID,
		Username:   user.UserName,
		KnownAs:    user.KnownAs,
		Age:        model.AgeAt(user.DateOfBirth, now),
		Gender:     user.Gender,
		City:       user.City,
		Country:    user.Country,
		PhotoURL:   user.MainPhotoURL(),
		CreatedAt:  user.CreatedAt,
		LastActive: user.LastActive,
	}
}

func toMemberSummaries(users []model.User) []dto.MemberSummary {
	summaries := make([]dto.MemberSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, *toMemberSummary(&users[i]))
	}
	return summaries
}

func toMemberDetail(user *model.User) *dto.MemberDetail {
	detail := &dto.MemberDetail{
		MemberSummary: *toMemberSummary(user),
		Introduction:  user.Introduction,
		LookingFor:    user.LookingFor,
		Interests:     user.Interests,
		Photos:        make([]dto.PhotoInfo, 0, len(user.Photos)),
	}
	for _, photo := range user.Photos {
		detail.Photos = append(detail.Photos, dto.PhotoInfo{
			ID:     photo.ID,
			URL:    photo.URL,
			IsMain: photo.IsMain,
		})
	}
	return detail
}

func strValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
