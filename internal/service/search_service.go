package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"match-go/internal/api/dto"
	infraES "match-go/internal/infra/elasticsearch"
	"match-go/internal/repository"
	"match-go/pkg/logger"

	"go.uber.org/zap"
)

type SearchService struct {
	userRepo *repository.UserRepository
}

func NewSearchService(userRepo *repository.UserRepository) *SearchService {
	return &SearchService{userRepo: userRepo}
}

// SearchMembers 关键字搜索会员。优先走 Elasticsearch，
// ES 不可用或查询出错时回退到数据库模糊匹配
func (s *SearchService) SearchMembers(ctx context.Context, req *dto.SearchMembersRequest) (*dto.MemberPage, error) {
	page, pageSize, err := normalizePage(req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}

	if infraES.Available() {
		result, err := s.searchByES(ctx, req.Keyword, page, pageSize)
		if err == nil {
			return result, nil
		}
		logger.Warn("es search failed, falling back to database",
			zap.String("keyword", req.Keyword), zap.Error(err))
	}

	skip := (page - 1) * pageSize
	users, total, err := s.userRepo.SearchByKeyword(req.Keyword, skip, pageSize)
	if err != nil {
		return nil, err
	}

	return &dto.MemberPage{
		Items: toMemberSummaries(users),
		Meta:  buildPaginationMeta(page, pageSize, total),
	}, nil
}

func (s *SearchService) searchByES(ctx context.Context, keyword string, page, pageSize int) (*dto.MemberPage, error) {
	query := map[string]interface{}{
		"from": (page - 1) * pageSize,
		"size": pageSize,
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  keyword,
				"fields": []string{"user_name^2", "known_as^2", "city", "country", "introduction", "interests"},
			},
		},
		"sort": []map[string]interface{}{
			{"_score": map[string]interface{}{"order": "desc"}},
			{"last_active": map[string]interface{}{"order": "desc"}},
		},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, err
	}

	res, err := infraES.Search(ctx, infraES.MembersIndexName(), &buf)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("es search returned status %s", res.Status())
	}

	var result struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		id, err := strconv.ParseInt(hit.ID, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	users, err := s.userRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}

	// 按 ES 命中的相关度顺序回填
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
		Meta:  buildPaginationMeta(page, pageSize, result.Hits.Total.Value),
	}, nil
}

// SyncMemberToES 把用户资料同步到 ES 索引。
// 索引失败只记日志，不影响主流程
func (s *SearchService) SyncMemberToES(ctx context.Context, userID int64) {
	if !infraES.Available() {
		return
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		logger.Warn("load user for es sync failed", zap.Int64("user_id", userID), zap.Error(err))
		return
	}

	doc := map[string]interface{}{
		"id":           user.ID,
		"user_name":    user.UserName,
		"known_as":     user.KnownAs,
		"gender":       user.Gender,
		"city":         user.City,
		"country":      user.Country,
		"introduction": strValue(user.Introduction),
		"interests":    strValue(user.Interests),
		"last_active":  user.LastActive,
		"created_at":   user.CreatedAt,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(doc); err != nil {
		logger.Warn("encode es member doc failed", zap.Int64("user_id", userID), zap.Error(err))
		return
	}

	res, err := infraES.Index(ctx, infraES.MembersIndexName(), strconv.FormatInt(user.ID, 10), &buf)
	if err != nil {
		logger.Warn("index member to es failed", zap.Int64("user_id", userID), zap.Error(err))
		return
	}
	defer res.Body.Close()

	if res.IsError() {
		logger.Warn("index member to es returned error",
			zap.Int64("user_id", userID), zap.String("status", res.Status()))
	}
}
