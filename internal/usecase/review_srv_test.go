package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"reviewflow/internal/data/entity"
	"reviewflow/internal/data/repository"
	"reviewflow/internal/dto/request"
	"reviewflow/pkg/sentiment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// --- Fakes ---

type fakeReviewRepo struct {
	nextID    int64
	reviews   map[int64]*entity.Review
	insertErr error
	updateErr error
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[int64]*entity.Review)}
}

func (f *fakeReviewRepo) Insert(ctx context.Context, review *entity.Review) (*entity.Review, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}

	f.nextID++
	stored := *review
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	f.reviews[stored.ID] = &stored

	copied := stored
	return &copied, nil
}

func (f *fakeReviewRepo) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	review, ok := f.reviews[id]
	if !ok {
		return nil, nil
	}
	copied := *review
	return &copied, nil
}

func (f *fakeReviewRepo) FindByMovieID(ctx context.Context, movieID string) ([]*entity.Review, error) {
	result := []*entity.Review{}
	for _, review := range f.reviews {
		if review.MovieID == movieID {
			copied := *review
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeReviewRepo) Update(ctx context.Context, id int64, fields entity.ReviewUpdate) (*entity.Review, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}

	review, ok := f.reviews[id]
	if !ok {
		return nil, repository.ErrReviewNotFound
	}

	if fields.Content != nil {
		review.Content = *fields.Content
	}
	if fields.Rating != nil {
		review.Rating = *fields.Rating
	}
	if fields.Sentiment != nil {
		review.Sentiment = *fields.Sentiment
	}
	now := time.Now()
	review.UpdatedAt = &now

	copied := *review
	return &copied, nil
}

func (f *fakeReviewRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.reviews[id]; !ok {
		return repository.ErrReviewNotFound
	}
	delete(f.reviews, id)
	return nil
}

type fakeClassifier struct {
	label      string
	confidence float64
	calls      []string
}

func (f *fakeClassifier) Classify(ctx context.Context, text string) sentiment.Result {
	f.calls = append(f.calls, text)
	return sentiment.Result{Label: f.label, Confidence: f.confidence}
}

func newTestService(repo *fakeReviewRepo, classifier *fakeClassifier) ReviewService {
	return NewReviewService(
		&repository.Repository{Review: repo},
		classifier,
		NewReviewValidator(testLimits),
		zap.NewNop(),
	)
}

const validContent = "Great movie, loved it!"

// --- Create ---

func TestCreateReviewComputesSentiment(t *testing.T) {
	repo := newFakeReviewRepo()
	classifier := &fakeClassifier{label: "POSITIVE", confidence: 0.97}
	svc := newTestService(repo, classifier)

	resp, err := svc.Create(context.Background(), &request.CreateReviewRequest{
		MovieID: "tt0111161",
		UserID:  "user123",
		Content: validContent,
		Rating:  5,
	})

	require.NoError(t, err)
	assert.Equal(t, "tt0111161", resp.MovieID)
	assert.Equal(t, validContent, resp.Content)
	assert.Equal(t, "POSITIVE", resp.Sentiment)
	assert.NotZero(t, resp.ID)
	assert.False(t, resp.CreatedAt.IsZero())
	assert.Nil(t, resp.UpdatedAt)
	assert.Equal(t, []string{validContent}, classifier.calls)
}

func TestCreateReviewContentTooShortNothingPersisted(t *testing.T) {
	repo := newFakeReviewRepo()
	classifier := &fakeClassifier{label: "POSITIVE"}
	svc := newTestService(repo, classifier)

	_, err := svc.Create(context.Background(), &request.CreateReviewRequest{
		MovieID: "tt0111161",
		UserID:  "user123",
		Content: "short",
		Rating:  5,
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "content", validationErr.Field)

	assert.Empty(t, repo.reviews)
	assert.Empty(t, classifier.calls, "classifier must not run on validation failure")
}

func TestCreateReviewRatingOutOfRangeNothingPersisted(t *testing.T) {
	repo := newFakeReviewRepo()
	classifier := &fakeClassifier{label: "POSITIVE"}
	svc := newTestService(repo, classifier)

	for _, rating := range []int{0, 6} {
		_, err := svc.Create(context.Background(), &request.CreateReviewRequest{
			MovieID: "tt0111161",
			UserID:  "user123",
			Content: validContent,
			Rating:  rating,
		})

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "rating", validationErr.Field)
	}

	assert.Empty(t, repo.reviews)
	assert.Empty(t, classifier.calls)
}

func TestCreateReviewStoresFallbackLabel(t *testing.T) {
	repo := newFakeReviewRepo()
	classifier := &fakeClassifier{label: sentiment.FallbackLabel, confidence: sentiment.FallbackConfidence}
	svc := newTestService(repo, classifier)

	resp, err := svc.Create(context.Background(), &request.CreateReviewRequest{
		MovieID: "tt0111161",
		UserID:  "user123",
		Content: validContent,
		Rating:  3,
	})

	require.NoError(t, err)
	assert.Equal(t, "neutral", resp.Sentiment)
}

func TestCreateReviewPersistenceFailure(t *testing.T) {
	repo := newFakeReviewRepo()
	repo.insertErr = errors.New("connection reset")
	svc := newTestService(repo, &fakeClassifier{label: "POSITIVE"})

	_, err := svc.Create(context.Background(), &request.CreateReviewRequest{
		MovieID: "tt0111161",
		UserID:  "user123",
		Content: validContent,
		Rating:  5,
	})

	require.Error(t, err)
	var validationErr *ValidationError
	assert.False(t, errors.As(err, &validationErr))
}

// --- Read ---

func TestGetMovieReviewsEmptyIsNotAnError(t *testing.T) {
	svc := newTestService(newFakeReviewRepo(), &fakeClassifier{label: "POSITIVE"})

	reviews, err := svc.GetMovieReviews(context.Background(), "tt0111161")

	require.NoError(t, err)
	assert.Empty(t, reviews)
	assert.NotNil(t, reviews)
}

func TestGetMovieReviewsReturnsOnlyThatMovie(t *testing.T) {
	repo := newFakeReviewRepo()
	svc := newTestService(repo, &fakeClassifier{label: "POSITIVE"})

	for _, movieID := range []string{"tt0111161", "tt0111161", "tt0068646"} {
		_, err := svc.Create(context.Background(), &request.CreateReviewRequest{
			MovieID: movieID,
			UserID:  "user123",
			Content: validContent,
			Rating:  4,
		})
		require.NoError(t, err)
	}

	reviews, err := svc.GetMovieReviews(context.Background(), "tt0111161")

	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Less(t, reviews[0].ID, reviews[1].ID, "creation order")
}

// --- Update ---

func createOne(t *testing.T, svc ReviewService) int64 {
	t.Helper()
	resp, err := svc.Create(context.Background(), &request.CreateReviewRequest{
		MovieID: "tt0111161",
		UserID:  "user123",
		Content: validContent,
		Rating:  5,
	})
	require.NoError(t, err)
	return resp.ID
}

func TestUpdateRatingOnlyKeepsContentAndSentiment(t *testing.T) {
	repo := newFakeReviewRepo()
	classifier := &fakeClassifier{label: "POSITIVE"}
	svc := newTestService(repo, classifier)
	id := createOne(t, svc)

	classifier.calls = nil
	rating := 4
	resp, err := svc.Update(context.Background(), id, &request.UpdateReviewRequest{Rating: &rating})

	require.NoError(t, err)
	assert.Equal(t, 4, resp.Rating)
	assert.Equal(t, validContent, resp.Content)
	assert.Equal(t, "POSITIVE", resp.Sentiment)
	assert.NotNil(t, resp.UpdatedAt)
	assert.Empty(t, classifier.calls, "rating-only update must not reclassify")
}

func TestUpdateContentRecomputesSentiment(t *testing.T) {
	repo := newFakeReviewRepo()
	classifier := &fakeClassifier{label: "POSITIVE"}
	svc := newTestService(repo, classifier)
	id := createOne(t, svc)

	classifier.label = "NEGATIVE"
	content := "Updated review, not as good on rewatch"
	resp, err := svc.Update(context.Background(), id, &request.UpdateReviewRequest{Content: &content})

	require.NoError(t, err)
	assert.Equal(t, content, resp.Content)
	assert.Equal(t, "NEGATIVE", resp.Sentiment)
	assert.NotNil(t, resp.UpdatedAt)
	assert.False(t, resp.CreatedAt.After(*resp.UpdatedAt))
}

func TestUpdateValidationIsAllOrNothing(t *testing.T) {
	repo := newFakeReviewRepo()
	classifier := &fakeClassifier{label: "POSITIVE"}
	svc := newTestService(repo, classifier)
	id := createOne(t, svc)

	classifier.calls = nil
	content := strings.Repeat("a", 50) // valid
	rating := 99                       // invalid
	_, err := svc.Update(context.Background(), id, &request.UpdateReviewRequest{
		Content: &content,
		Rating:  &rating,
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "rating", validationErr.Field)

	// Neither field was applied
	stored := repo.reviews[id]
	assert.Equal(t, validContent, stored.Content)
	assert.Equal(t, 5, stored.Rating)
	assert.Nil(t, stored.UpdatedAt)
	assert.Empty(t, classifier.calls)
}

func TestUpdateOmittedFieldsAreNotChecked(t *testing.T) {
	repo := newFakeReviewRepo()
	svc := newTestService(repo, &fakeClassifier{label: "POSITIVE"})
	id := createOne(t, svc)

	// Empty update: no fields supplied, nothing to validate
	resp, err := svc.Update(context.Background(), id, &request.UpdateReviewRequest{})

	require.NoError(t, err)
	assert.Equal(t, validContent, resp.Content)
	assert.Equal(t, 5, resp.Rating)
}

func TestUpdateMissingReviewReturnsNotFound(t *testing.T) {
	repo := newFakeReviewRepo()
	svc := newTestService(repo, &fakeClassifier{label: "POSITIVE"})

	rating := 3
	_, err := svc.Update(context.Background(), 42, &request.UpdateReviewRequest{Rating: &rating})

	assert.ErrorIs(t, err, repository.ErrReviewNotFound)
	assert.Empty(t, repo.reviews)
}

// --- Delete ---

func TestDeleteRemovesReviewFromListing(t *testing.T) {
	repo := newFakeReviewRepo()
	svc := newTestService(repo, &fakeClassifier{label: "POSITIVE"})
	id := createOne(t, svc)

	require.NoError(t, svc.Delete(context.Background(), id))

	reviews, err := svc.GetMovieReviews(context.Background(), "tt0111161")
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestDeleteMissingReviewReturnsNotFound(t *testing.T) {
	svc := newTestService(newFakeReviewRepo(), &fakeClassifier{label: "POSITIVE"})

	err := svc.Delete(context.Background(), 42)

	assert.ErrorIs(t, err, repository.ErrReviewNotFound)
}
