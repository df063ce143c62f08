package es

import (
	"context"
	"errors"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/core/search"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/goccy/go-json"
)

type NoteRepo interface {
	SearchNotes(ctx context.Context, excludeUserID uint64, keyword string, from, size int) ([]*NoteES, error)
	GetLatestNotes(ctx context.Context, excludeUserID uint64, from, size int) ([]*NoteES, error)
	IndexNote(ctx context.Context, note *NoteES) error
	DeleteNote(ctx context.Context, id uint64) error
}

type NoteRepoImpl struct {
	client *elasticsearch.TypedClient
}

func NewNoteRepo(client *elasticsearch.TypedClient) NoteRepo {
	return &NoteRepoImpl{client: client}
}

// SearchNotes 公共笔记库关键词检索，排除检索者自己的笔记
func (s *NoteRepoImpl) SearchNotes(ctx context.Context, excludeUserID uint64, keyword string, from, size int) ([]*NoteES, error) {
	req := s.client.Search().
		Index(NoteIndex).
		Query(&types.Query{
			Bool: &types.BoolQuery{
				Must: []types.Query{
					{
						MultiMatch: &types.MultiMatchQuery{
							Query:  keyword,
							Fields: []string{"title^3", "content", "subject^2"},
						},
					},
				},
				MustNot: []types.Query{
					{
						Term: map[string]types.TermQuery{
							"user_id": {Value: excludeUserID},
						},
					},
				},
			},
		}).
		From(from).
		Size(size)

	return s.executeSearch(ctx, req)
}

func (s *NoteRepoImpl) GetLatestNotes(ctx context.Context, excludeUserID uint64, from, size int) ([]*NoteES, error) {
	req := s.client.Search().
		Index(NoteIndex).
		Query(&types.Query{
			Bool: &types.BoolQuery{
				MustNot: []types.Query{
					{
						Term: map[string]types.TermQuery{
							"user_id": {Value: excludeUserID},
						},
					},
				},
			},
		}).
		Sort(types.SortOptions{SortOptions: map[string]types.FieldSort{
			"created_at": {Order: &sortorder.Desc},
		}}).
		From(from).
		Size(size)

	return s.executeSearch(ctx, req)
}

func (s *NoteRepoImpl) IndexNote(ctx context.Context, note *NoteES) error {
	docID := strconv.FormatUint(note.ID, 10)

	_, err := s.client.Index(NoteIndex).
		Id(docID).
		Document(note).
		Do(ctx)
	return err
}

func (s *NoteRepoImpl) DeleteNote(ctx context.Context, id uint64) error {
	docID := strconv.FormatUint(id, 10)

	_, err := s.client.Delete(NoteIndex, docID).Do(ctx)
	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) {
			if e.Status == NotFoundCode {
				return nil
			}
		}
		return err
	}
	return nil
}

func (s *NoteRepoImpl) executeSearch(ctx context.Context, req *search.Search) ([]*NoteES, error) {
	resp, err := req.Do(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*NoteES, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		if hit.Source_ == nil {
			continue
		}
		var note NoteES
		if err = json.Unmarshal(hit.Source_, &note); err != nil {
			continue
		}
		results = append(results, &note)
	}
	return results, nil
}
