package pipelineimpl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/NandoXu/ig-reels-analytics/internal/domain"
	"github.com/NandoXu/ig-reels-analytics/internal/extract"
	extractmocks "github.com/NandoXu/ig-reels-analytics/internal/extract/mocks"
	"github.com/NandoXu/ig-reels-analytics/internal/instagram"
	igmocks "github.com/NandoXu/ig-reels-analytics/internal/instagram/mocks"
	recordmocks "github.com/NandoXu/ig-reels-analytics/internal/repositories/record/mocks"
	"github.com/NandoXu/ig-reels-analytics/internal/status"
	"github.com/NandoXu/ig-reels-analytics/pkg/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	ig      *igmocks.MockClient
	likes   *extractmocks.MockLikesExtractor
	direct  *extractmocks.MockDirectViewsExtractor
	grid    *extractmocks.MockGridViewsExtractor
	records *recordmocks.MockRepository
	notices *[]string
	p       *PipelineImpl
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		ig:      igmocks.NewMockClient(ctrl),
		likes:   extractmocks.NewMockLikesExtractor(ctrl),
		direct:  extractmocks.NewMockDirectViewsExtractor(ctrl),
		grid:    extractmocks.NewMockGridViewsExtractor(ctrl),
		records: recordmocks.NewMockRepository(ctrl),
		notices: &[]string{},
	}
	f.p = New(Opts{
		Instagram: f.ig,
		Likes:     f.likes,
		Direct:    f.direct,
		Grid:      f.grid,
		Records:   f.records,
		Status:    status.Func(func(msg string) { *f.notices = append(*f.notices, msg) }),
		Logger:    logger.New(logger.Opts{}),
	})
	return f
}

func videoMedia() *instagram.Media {
	return &instagram.Media{
		Shortcode: "abc123",
		Owner:     "alice",
		Likes:     domain.CountOf(240),
		Comments:  domain.CountOf(5),
		TakenAt:   time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		IsVideo:   true,
	}
}

func TestScrapeInvalidIdentifier(t *testing.T) {
	f := newFixture(t)

	rec := f.p.Scrape(context.Background(), "https://www.instagram.com/someprofile/", "")

	require.Empty(t, rec.Shortcode)
	require.Contains(t, rec.Error, "invalid identifier")
	require.False(t, rec.LastRecord.IsZero())
}

func TestScrapeMetadataFailureShortCircuits(t *testing.T) {
	f := newFixture(t)
	f.ig.EXPECT().MediaInfo(gomock.Any(), "abc123").Return(nil, instagram.ErrMediaUnavailable)

	rec := f.p.Scrape(context.Background(), "abc123", "")

	require.Equal(t, domain.Unknown, rec.Owner)
	require.False(t, rec.Likes.Known())
	require.False(t, rec.Comments.Known())
	require.False(t, rec.Views.Known())
	require.Contains(t, rec.Error, "metadata")
	require.False(t, rec.LastRecord.IsZero())
}

func TestScrapeNonVideoSkipsViewExtractors(t *testing.T) {
	f := newFixture(t)
	media := videoMedia()
	media.IsVideo = false
	f.ig.EXPECT().MediaInfo(gomock.Any(), "abc123").Return(media, nil)
	f.likes.EXPECT().PostLikes(gomock.Any(), gomock.Any(), "abc123").Return(int64(240), nil)

	rec := f.p.Scrape(context.Background(), "abc123", "")

	require.True(t, rec.Views.NotApplicable())
	require.False(t, rec.IsVideo)
	require.False(t, rec.Failed())
}

func TestScrapeFullVideoFlow(t *testing.T) {
	f := newFixture(t)
	url := "https://www.instagram.com/reel/abc123/"
	f.ig.EXPECT().MediaInfo(gomock.Any(), "abc123").Return(videoMedia(), nil)
	f.likes.EXPECT().PostLikes(gomock.Any(), url, "abc123").Return(int64(250), nil)
	f.direct.EXPECT().Views(gomock.Any(), url, "abc123").
		Return(int64(0), extract.Failf(extract.KindNoPayload, "window._sharedData not present"))
	f.grid.EXPECT().GridViews(gomock.Any(), "abc123", "alice").Return(int64(10000), nil)

	rec := f.p.Scrape(context.Background(), url, "")

	require.Equal(t, "alice", rec.Owner)
	require.Equal(t, domain.CountOf(250), rec.Likes)
	require.Equal(t, domain.CountOf(5), rec.Comments)
	require.Equal(t, domain.CountOf(10000), rec.Views)
	require.True(t, rec.IsVideo)
	require.Equal(t, domain.RateOf(2.55), rec.EngagementRate)
	require.Contains(t, rec.Error, "no shared data")
	require.NotContains(t, rec.Error, "likes")
}

func TestScrapeLikesFallbackToMetadata(t *testing.T) {
	f := newFixture(t)
	f.ig.EXPECT().MediaInfo(gomock.Any(), "abc123").Return(videoMedia(), nil)
	f.likes.EXPECT().PostLikes(gomock.Any(), gomock.Any(), "abc123").
		Return(int64(0), extract.Failf(extract.KindNotFound, "all likes strategies exhausted"))
	f.direct.EXPECT().Views(gomock.Any(), gomock.Any(), "abc123").Return(int64(9000), nil)

	rec := f.p.Scrape(context.Background(), "abc123", "")

	require.Equal(t, domain.CountOf(240), rec.Likes)
	require.Contains(t, rec.Error, "all likes strategies exhausted")
}

func TestScrapeErrorAccumulation(t *testing.T) {
	f := newFixture(t)
	f.ig.EXPECT().MediaInfo(gomock.Any(), "abc123").Return(videoMedia(), nil)
	f.likes.EXPECT().PostLikes(gomock.Any(), gomock.Any(), "abc123").
		Return(int64(0), extract.Failf(extract.KindInternal, "likes stage blew up"))
	f.direct.EXPECT().Views(gomock.Any(), gomock.Any(), "abc123").
		Return(int64(0), extract.Failf(extract.KindHTTP, "status 429"))
	f.grid.EXPECT().GridViews(gomock.Any(), "abc123", "alice").
		Return(int64(0), extract.Failf(extract.KindNotFound, "tile never appeared"))

	rec := f.p.Scrape(context.Background(), "abc123", "")

	require.Contains(t, rec.Error, "likes stage blew up")
	require.Contains(t, rec.Error, "status 429")
	require.Contains(t, rec.Error, "tile never appeared")
	require.Equal(t, domain.UnknownCountBecause("not found: tile never appeared"), rec.Views)
	require.False(t, rec.EngagementRate.Known())
}

func TestScrapeOwnerUnknownBlocksGrid(t *testing.T) {
	f := newFixture(t)
	media := videoMedia()
	media.Owner = ""
	f.ig.EXPECT().MediaInfo(gomock.Any(), "abc123").Return(media, nil)
	f.likes.EXPECT().PostLikes(gomock.Any(), gomock.Any(), "abc123").Return(int64(250), nil)
	f.direct.EXPECT().Views(gomock.Any(), gomock.Any(), "abc123").
		Return(int64(0), extract.Failf(extract.KindNoPayload, "window._sharedData not present"))

	rec := f.p.Scrape(context.Background(), "abc123", "")

	require.Contains(t, rec.Error, "blocked: owner unknown")
	require.Equal(t, domain.UnknownCountBecause("blocked: owner unknown"), rec.Views)
}

func TestScrapeSessionSoftFailure(t *testing.T) {
	f := newFixture(t)
	f.ig.EXPECT().UseSession("alice").Return(instagram.ErrSessionNotFound)
	f.ig.EXPECT().MediaInfo(gomock.Any(), "abc123").Return(videoMedia(), nil)
	f.likes.EXPECT().PostLikes(gomock.Any(), gomock.Any(), "abc123").Return(int64(250), nil)
	f.direct.EXPECT().Views(gomock.Any(), gomock.Any(), "abc123").Return(int64(10000), nil)

	rec := f.p.Scrape(context.Background(), "abc123", "alice")

	require.False(t, rec.Failed())
	require.Contains(t, *f.notices, "No usable session for alice, continuing anonymously")
}

func TestScrapeAndStoreUpserts(t *testing.T) {
	f := newFixture(t)
	f.ig.EXPECT().MediaInfo(gomock.Any(), "abc123").Return(videoMedia(), nil)
	f.likes.EXPECT().PostLikes(gomock.Any(), gomock.Any(), "abc123").Return(int64(250), nil)
	f.direct.EXPECT().Views(gomock.Any(), gomock.Any(), "abc123").Return(int64(10000), nil)
	f.records.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

	rec, err := f.p.ScrapeAndStore(context.Background(), "abc123", "")
	require.NoError(t, err)
	require.Equal(t, "abc123", rec.Shortcode)
}

func TestBatchSequentialAndStoresEach(t *testing.T) {
	f := newFixture(t)
	for _, sc := range []string{"aaa111", "bbb222"} {
		f.ig.EXPECT().MediaInfo(gomock.Any(), sc).Return(&instagram.Media{
			Shortcode: sc, Owner: "alice", Likes: domain.CountOf(1),
			Comments: domain.CountOf(1), IsVideo: false,
		}, nil)
		f.likes.EXPECT().PostLikes(gomock.Any(), gomock.Any(), sc).Return(int64(10), nil)
	}
	f.records.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	records, err := f.p.Batch(context.Background(), []string{"aaa111", "bbb222"}, "")
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "aaa111", records[0].Shortcode)
	require.Equal(t, "bbb222", records[1].Shortcode)
}

func TestBatchStopsOnCancelledContext(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	records, err := f.p.Batch(ctx, []string{"aaa111"}, "")
	require.Error(t, err)
	require.Empty(t, records)
}

func TestScrapeStatusDistinguishesErrors(t *testing.T) {
	f := newFixture(t)
	f.ig.EXPECT().MediaInfo(gomock.Any(), "abc123").Return(nil, errors.New("boom"))

	f.p.Scrape(context.Background(), "abc123", "")

	require.Contains(t, *f.notices, "Scrape completed with errors for abc123")
}
