package refresher

import (
	"context"
	"testing"
	"time"

	"github.com/NandoXu/ig-reels-analytics/internal/domain"
	pipelinemocks "github.com/NandoXu/ig-reels-analytics/internal/pipeline/mocks"
	recordmocks "github.com/NandoXu/ig-reels-analytics/internal/repositories/record/mocks"
	"github.com/NandoXu/ig-reels-analytics/pkg/config"
	"github.com/NandoXu/ig-reels-analytics/pkg/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRefresher(t *testing.T, cfg *config.Config) (*Refresher, *pipelinemocks.MockClient, *recordmocks.MockRepository) {
	ctrl := gomock.NewController(t)
	p := pipelinemocks.NewMockClient(ctrl)
	r := recordmocks.NewMockRepository(ctrl)
	return New(Opts{
		Pipeline: p,
		Records:  r,
		Config:   cfg,
		Logger:   logger.New(logger.Opts{}),
	}), p, r
}

func TestRefreshAll(t *testing.T) {
	cfg := &config.Config{}
	cfg.Instagram.Username = "alice"
	ref, p, r := newRefresher(t, cfg)

	stored := []*domain.PostResult{
		{URL: "https://www.instagram.com/reel/aaa111/", Shortcode: "aaa111"},
		{URL: "https://www.instagram.com/reel/bbb222/", Shortcode: "bbb222"},
	}
	r.EXPECT().ListAll(gomock.Any()).Return(stored, nil)
	p.EXPECT().Batch(gomock.Any(), []string{
		"https://www.instagram.com/reel/aaa111/",
		"https://www.instagram.com/reel/bbb222/",
	}, "alice").Return(nil, nil)

	require.NoError(t, ref.RefreshAll(context.Background()))
}

func TestRefreshAllEmptyStore(t *testing.T) {
	ref, _, r := newRefresher(t, &config.Config{})
	r.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
	require.NoError(t, ref.RefreshAll(context.Background()))
}

func TestStartDisabledIsNoop(t *testing.T) {
	cfg := &config.Config{}
	cfg.Refresh.Enabled = false
	cfg.Refresh.Interval = time.Hour
	ref, _, _ := newRefresher(t, cfg)

	require.NoError(t, ref.Start(context.Background()))
	require.NoError(t, ref.Stop())
}
