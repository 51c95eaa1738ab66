package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/samuelerdtman/la-palabra-del-dia/internal/models"
	"github.com/samuelerdtman/la-palabra-del-dia/internal/repository"
	mock_repository "github.com/samuelerdtman/la-palabra-del-dia/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newWordsMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_repository.MockStoreI)) *repository.WordsR {
	t.Helper()

	store := mock_repository.NewMockStoreI(ctrl)
	if setupMock != nil {
		setupMock(store)
	}

	return repository.NewWordsRepository(store)
}

func TestWordsR_Create(t *testing.T) {
	t.Parallel()

	id := primitive.NewObjectID()
	word := models.Word{Word: "casa", Translation: "house", Owner: primitive.NewObjectID()}

	tests := []struct {
		name    string
		f       func(*mock_repository.MockStoreI)
		wantErr bool
	}{
		{
			name: "success",
			f: func(msi *mock_repository.MockStoreI) {
				msi.EXPECT().Insert(gomock.Any(), repository.KindWord, word).Return(id, nil)
			},
		},
		{
			name: "store error",
			f: func(msi *mock_repository.MockStoreI) {
				msi.EXPECT().Insert(gomock.Any(), repository.KindWord, word).
					Return(primitive.NilObjectID, errors.New("insert failed"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newWordsMock(t, ctrl, tt.f)

			got, err := repo.Create(context.Background(), word)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, id, got.ID)
			assert.Equal(t, word.Word, got.Word)
			assert.Equal(t, word.Translation, got.Translation)
		})
	}
}

func TestWordsR_ByID_ScopesByOwner(t *testing.T) {
	t.Parallel()

	id := primitive.NewObjectID()
	owner := primitive.NewObjectID()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := newWordsMock(t, ctrl, func(msi *mock_repository.MockStoreI) {
		msi.EXPECT().FindOne(gomock.Any(), repository.KindWord, bson.M{"_id": id, "owner": owner}, gomock.Any()).
			DoAndReturn(func(ctx context.Context, kind repository.Kind, filter bson.M, dest interface{}) error {
				*dest.(*models.Word) = models.Word{ID: id, Owner: owner, Word: "casa"}
				return nil
			})
	})

	got, err := repo.ByID(context.Background(), id, owner)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, owner, got.Owner)
}

func TestWordsR_ByOwner_ClassificationFilter(t *testing.T) {
	t.Parallel()

	owner := primitive.NewObjectID()

	tests := []struct {
		name       string
		known      bool
		wantFilter bson.M
	}{
		{
			name:       "unknown words use lte threshold",
			known:      false,
			wantFilter: bson.M{"owner": owner, "tests": bson.M{"$lte": models.KnownThreshold}},
		},
		{
			name:       "known words use gt threshold",
			known:      true,
			wantFilter: bson.M{"owner": owner, "tests": bson.M{"$gt": models.KnownThreshold}},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newWordsMock(t, ctrl, func(msi *mock_repository.MockStoreI) {
				msi.EXPECT().FindAll(gomock.Any(), repository.KindWord, tt.wantFilter, repository.FindOpts{}, gomock.Any()).
					DoAndReturn(func(ctx context.Context, kind repository.Kind, filter bson.M, opts repository.FindOpts, dest interface{}) error {
						*dest.(*[]models.Word) = []models.Word{{Owner: owner, Word: "casa"}}
						return nil
					})
			})

			got, err := repo.ByOwner(context.Background(), owner, tt.known)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, "casa", got[0].Word)
		})
	}
}

func TestWordsR_CountByOwner(t *testing.T) {
	t.Parallel()

	owner := primitive.NewObjectID()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockStoreI)
		want    int
		wantErr bool
	}{
		{
			name: "counts the fetched sequence",
			f: func(msi *mock_repository.MockStoreI) {
				msi.EXPECT().FindAll(gomock.Any(), repository.KindWord, gomock.Any(), repository.FindOpts{}, gomock.Any()).
					DoAndReturn(func(ctx context.Context, kind repository.Kind, filter bson.M, opts repository.FindOpts, dest interface{}) error {
						*dest.(*[]models.Word) = []models.Word{{}, {}, {}}
						return nil
					})
			},
			want: 3,
		},
		{
			name: "empty sequence counts zero",
			f: func(msi *mock_repository.MockStoreI) {
				msi.EXPECT().FindAll(gomock.Any(), repository.KindWord, gomock.Any(), repository.FindOpts{}, gomock.Any()).
					Return(nil)
			},
			want: 0,
		},
		{
			name: "store error",
			f: func(msi *mock_repository.MockStoreI) {
				msi.EXPECT().FindAll(gomock.Any(), repository.KindWord, gomock.Any(), repository.FindOpts{}, gomock.Any()).
					Return(errors.New("find failed"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newWordsMock(t, ctrl, tt.f)

			got, err := repo.CountByOwner(context.Background(), owner, false)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWordsR_Update(t *testing.T) {
	t.Parallel()

	word := models.Word{ID: primitive.NewObjectID(), Word: "casa", Tests: 4}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := newWordsMock(t, ctrl, func(msi *mock_repository.MockStoreI) {
		msi.EXPECT().Update(gomock.Any(), repository.KindWord, word.ID, word).Return(nil)
	})

	require.NoError(t, repo.Update(context.Background(), word))
}

func TestWordsR_Delete_ScopesByOwner(t *testing.T) {
	t.Parallel()

	id := primitive.NewObjectID()
	owner := primitive.NewObjectID()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := newWordsMock(t, ctrl, func(msi *mock_repository.MockStoreI) {
		msi.EXPECT().Delete(gomock.Any(), repository.KindWord, bson.M{"_id": id, "owner": owner}).Return(nil)
	})

	require.NoError(t, repo.Delete(context.Background(), id, owner))
}
