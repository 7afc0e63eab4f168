package feedback

import (
	"testing"
	"time"

	myErr "melodia/internal/types/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fb(id string, likes int, at time.Time, resolved bool, parent string) Feedback {
	f := Feedback{
		ID:         id,
		Likes:      likes,
		CreatedAt:  at,
		IsResolved: resolved,
	}
	if parent != "" {
		f.ParentID = &parent
	}
	return f
}

func ids(threads []Thread) []string {
	out := make([]string, 0, len(threads))
	for _, th := range threads {
		out = append(out, th.ID)
	}
	return out
}

func TestBuildView(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	items := []Feedback{
		fb("a", 1, t0.Add(3*time.Minute), false, ""),
		fb("r1", 0, t0.Add(4*time.Minute), false, "b"),
		fb("b", 5, t0.Add(1*time.Minute), true, ""),
		fb("c", 1, t0.Add(2*time.Minute), false, ""),
		fb("r2", 0, t0.Add(5*time.Minute), false, "b"),
		fb("orphan", 0, t0.Add(6*time.Minute), false, "deleted"),
	}

	tests := []struct {
		name string
		opts ViewOptions
		want []string
	}{
		{
			name: "defaults newest first",
			opts: DefaultViewOptions(),
			want: []string{"a", "c", "b"},
		},
		{
			name: "date ascending",
			opts: ViewOptions{SortBy: SortByDate, Direction: Asc, Filter: FilterAll},
			want: []string{"b", "c", "a"},
		},
		{
			name: "likes descending keeps date order on ties",
			opts: ViewOptions{SortBy: SortByLikes, Direction: Desc, Filter: FilterAll},
			want: []string{"b", "a", "c"},
		},
		{
			name: "likes ascending keeps date order on ties",
			opts: ViewOptions{SortBy: SortByLikes, Direction: Asc, Filter: FilterAll},
			want: []string{"a", "c", "b"},
		},
		{
			name: "unresolved only",
			opts: ViewOptions{SortBy: SortByDate, Direction: Desc, Filter: FilterUnresolved},
			want: []string{"a", "c"},
		},
		{
			name: "resolved only",
			opts: ViewOptions{SortBy: SortByDate, Direction: Desc, Filter: FilterResolved},
			want: []string{"b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildView(items, tt.opts)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestBuildView_RepliesInStorageOrder(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	items := []Feedback{
		fb("r-late", 0, t0.Add(10*time.Minute), false, "p"),
		fb("p", 0, t0, false, ""),
		fb("r-early", 0, t0.Add(time.Minute), false, "p"),
		fb("nested", 0, t0.Add(2*time.Minute), false, "r-early"),
	}

	got := BuildView(items, DefaultViewOptions())
	require.Len(t, got, 1)
	assert.Equal(t, "p", got[0].ID)
	require.Len(t, got[0].Replies, 2)
	assert.Equal(t, "r-late", got[0].Replies[0].ID)
	assert.Equal(t, "r-early", got[0].Replies[1].ID)
}

func TestBuildView_StableOnEqualLikes(t *testing.T) {
	t1 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(-time.Hour)

	items := []Feedback{
		fb("1", 2, t1, false, ""),
		fb("2", 2, t2, false, ""),
	}

	for i := 0; i < 10; i++ {
		got := BuildView(items, ViewOptions{SortBy: SortByLikes, Direction: Desc, Filter: FilterAll})
		assert.Equal(t, []string{"1", "2"}, ids(got))
	}
}

func TestBuildView_ReplyUnderNewTopLevel(t *testing.T) {
	now := time.Now()
	ts := 12.5

	first := fb("old", 0, now.Add(-time.Hour), false, "")
	take := fb("take", 0, now, false, "")
	take.Comment = "Good take"
	take.TimestampSeconds = &ts
	reply := fb("reply", 0, now.Add(time.Second), false, "take")

	got := BuildView([]Feedback{reply, take, first}, DefaultViewOptions())
	assert.Equal(t, []string{"take", "old"}, ids(got))
	require.Len(t, got[0].Replies, 1)
	assert.Equal(t, "reply", got[0].Replies[0].ID)
	assert.Empty(t, got[1].Replies)
}

func TestBuildView_Empty(t *testing.T) {
	got := BuildView(nil, DefaultViewOptions())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestParseViewOptions(t *testing.T) {
	opts, err := ParseViewOptions("", "", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultViewOptions(), opts)

	opts, err = ParseViewOptions("likes", "asc", "resolved")
	require.NoError(t, err)
	assert.Equal(t, ViewOptions{SortBy: SortByLikes, Direction: Asc, Filter: FilterResolved}, opts)

	for _, bad := range [][3]string{{"rating", "", ""}, {"", "up", ""}, {"", "", "ok"}} {
		_, err = ParseViewOptions(bad[0], bad[1], bad[2])
		assert.Equal(t, myErr.ErrValidation, err)
	}
}

func TestFeedback_ToggleLike(t *testing.T) {
	f := &Feedback{LikedBy: []string{}}

	assert.True(t, f.ToggleLike("u"))
	assert.False(t, f.ToggleLike("u"))
	assert.True(t, f.ToggleLike("u"))
	assert.Equal(t, []string{"u"}, f.LikedBy)
	assert.Equal(t, len(f.LikedBy), f.Likes)

	dup := &Feedback{LikedBy: []string{"a", "b", "a"}}
	assert.True(t, dup.ToggleLike("c"))
	assert.Equal(t, []string{"a", "b", "c"}, dup.LikedBy)
	assert.Equal(t, 3, dup.Likes)
}
