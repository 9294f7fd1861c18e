package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"match-go/internal/api/dto"
	infraKafka "match-go/internal/infra/kafka"
	"match-go/internal/repository"
	"match-go/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrSelfLike       = errors.New("不能点赞自己")
	ErrTargetNotFound = errors.New("目标用户不存在")
	ErrAlreadyLiked   = errors.New("已经点赞过该用户")
)

// LikeEventPublisher 点赞事件发布函数。事件发布是写库成功后的
// 尽力而为动作，失败只记日志，不影响点赞结果
type LikeEventPublisher func(ctx context.Context, event *infraKafka.LikeEvent) error

type LikeService struct {
	likeRepo *repository.LikeRepository
	userRepo *repository.UserRepository
	publish  LikeEventPublisher
}

func NewLikeService(likeRepo *repository.LikeRepository, userRepo *repository.UserRepository, publish LikeEventPublisher) *LikeService {
	return &LikeService{likeRepo: likeRepo, userRepo: userRepo, publish: publish}
}

// AddLike 当前用户点赞目标用户。自赞与重复点赞都会被拒绝，
// 重复点赞由数据库复合唯一索引在写入点兜底
func (s *LikeService) AddLike(ctx context.Context, sourceUserID int64, targetUsername string) (*dto.LikeResult, error) {
	target, err := s.userRepo.GetByUsername(strings.ToLower(strings.TrimSpace(targetUsername)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTargetNotFound
		}
		return nil, err
	}

	if target.ID == sourceUserID {
		return nil, ErrSelfLike
	}

	like, err := s.likeRepo.Create(sourceUserID, target.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyLiked
		}
		return nil, err
	}

	mutual, err := s.likeRepo.Exists(target.ID, sourceUserID)
	if err != nil {
		logger.Warn("check mutual like failed",
			zap.Int64("source_user_id", sourceUserID),
			zap.Int64("target_user_id", target.ID),
			zap.Error(err))
		mutual = false
	}

	s.publishLikeEvent(ctx, sourceUserID, target.ID, mutual, like.CreatedAt)

	return &dto.LikeResult{
		SourceUserID: sourceUserID,
		TargetUserID: target.ID,
		TargetName:   target.KnownAs,
		Mutual:       mutual,
	}, nil
}

// ListLikes 按谓词分页查询点赞关系：
// liked 为当前用户点赞过的人，likedBy 为点赞过当前用户的人
func (s *LikeService) ListLikes(userID int64, req *dto.LikeListRequest) (*dto.MemberPage, error) {
	page, pageSize, err := normalizePage(req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}

	predicate := req.Predicate
	if predicate == "" {
		predicate = dto.LikePredicateLiked
	}

	skip := (page - 1) * pageSize

	var (
		ids   []int64
		total int64
	)
	switch predicate {
	case dto.LikePredicateLikedBy:
		if ids, err = s.likeRepo.ListLikedByIDs(userID, skip, pageSize); err != nil {
			return nil, err
		}
		if total, err = s.likeRepo.CountLikedBy(userID); err != nil {
			return nil, err
		}
	default:
		if ids, err = s.likeRepo.ListLikedIDs(userID, skip, pageSize); err != nil {
			return nil, err
		}
		if total, err = s.likeRepo.CountLiked(userID); err != nil {
			return nil, err
		}
	}

	users, err := s.userRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}

	// IN 查询不保证顺序，按点赞时间顺序回填
	summaries := make([]dto.MemberSummary, 0, len(ids))
	byID := make(map[int64]*dto.MemberSummary, len(users))
	for i := range users {
		byID[users[i].ID] = toMemberSummary(&users[i])
	}
	for _, id := range ids {
		if summary, ok := byID[id]; ok {
			summaries = append(summaries, *summary)
		}
	}

	return &dto.MemberPage{
		Items: summaries,
		Meta:  buildPaginationMeta(page, pageSize, total),
	}, nil
}

// HasLiked 检查点赞边是否存在
func (s *LikeService) HasLiked(sourceUserID, targetUserID int64) (bool, error) {
	return s.likeRepo.Exists(sourceUserID, targetUserID)
}

func (s *LikeService) publishLikeEvent(ctx context.Context, sourceUserID, targetUserID int64, mutual bool, createdAt time.Time) {
	if s.publish == nil {
		return
	}

	sourceUsername := ""
	if source, err := s.userRepo.GetByID(sourceUserID); err == nil {
		sourceUsername = source.UserName
	}

	event := &infraKafka.LikeEvent{
		SourceUserID:   sourceUserID,
		SourceUsername: sourceUsername,
		TargetUserID:   targetUserID,
		Mutual:         mutual,
		CreatedAt:      createdAt,
	}
	if err := s.publish(ctx, event); err != nil {
		logger.Warn("publish like event failed",
			zap.Int64("source_user_id", sourceUserID),
			zap.Int64("target_user_id", targetUserID),
			zap.Error(err))
	}
}
