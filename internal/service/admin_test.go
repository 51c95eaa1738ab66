package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	mock_service "github.com/samuelerdtman/la-palabra-del-dia/internal/service/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAdminS_Reset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_service.MockDropperI)
		wantErr bool
	}{
		{
			name: "success",
			f: func(mdi *mock_service.MockDropperI) {
				mdi.EXPECT().DropAll(gomock.Any()).Return(nil)
			},
		},
		{
			name: "drop failure surfaces",
			f: func(mdi *mock_service.MockDropperI) {
				mdi.EXPECT().DropAll(gomock.Any()).Return(errors.New("drop failed"))
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

			store := mock_service.NewMockDropperI(ctrl)
			tt.f(store)

			svc := NewAdminService(store, zap.NewNop())

			err := svc.Reset(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "drop failed")
				return
			}

			require.NoError(t, err)
		})
	}
}
