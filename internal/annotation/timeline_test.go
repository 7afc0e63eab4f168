package annotation

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlayer struct {
	seeks   []float64
	playing bool
	plays   int
	seekErr error
}

func (p *fakePlayer) SeekTo(progress float64) error {
	if p.seekErr != nil {
		return p.seekErr
	}
	p.seeks = append(p.seeks, progress)
	return nil
}

func (p *fakePlayer) Play() error {
	p.plays++
	p.playing = true
	return nil
}

func (p *fakePlayer) IsPlaying() bool { return p.playing }

func TestTimeline_Activate(t *testing.T) {
	t.Run("paused player seeks and starts", func(t *testing.T) {
		player := &fakePlayer{}
		tl := NewTimeline(player, 120)

		require.NoError(t, tl.Activate(Marker{TimestampSeconds: 30}))
		assert.Equal(t, []float64{0.25}, player.seeks)
		assert.Equal(t, 1, player.plays)
		assert.Equal(t, 30.0, tl.Playhead.Current())
	})

	t.Run("playing player only seeks", func(t *testing.T) {
		player := &fakePlayer{playing: true}
		tl := NewTimeline(player, 120)

		require.NoError(t, tl.Activate(Marker{TimestampSeconds: 300}))
		assert.Equal(t, []float64{1}, player.seeks)
		assert.Equal(t, 0, player.plays)
	})

	t.Run("unknown duration is a no-op", func(t *testing.T) {
		player := &fakePlayer{}
		tl := NewTimeline(player, 0)

		require.NoError(t, tl.Activate(Marker{TimestampSeconds: 30}))
		assert.Empty(t, player.seeks)
		assert.Equal(t, 0, player.plays)
	})

	t.Run("seek error", func(t *testing.T) {
		player := &fakePlayer{seekErr: errors.New("not loaded")}
		tl := NewTimeline(player, 60)

		assert.Error(t, tl.Activate(Marker{TimestampSeconds: 30}))
		assert.Equal(t, 0, player.plays)
	})
}

func TestTimeline_Draft(t *testing.T) {
	tl := NewTimeline(&fakePlayer{}, 60)
	tl.Playhead.Set(12.5)

	req := tl.Draft("Good take")
	assert.Equal(t, "Good take", req.Comment)
	require.NotNil(t, req.TimestampSeconds)
	assert.Equal(t, 12.5, *req.TimestampSeconds)

	// the draft keeps its own copy
	tl.Playhead.Set(20)
	assert.Equal(t, 12.5, *req.TimestampSeconds)
}

func TestPlayhead_IndependentPlayers(t *testing.T) {
	a := NewTimeline(&fakePlayer{}, 60)
	b := NewTimeline(&fakePlayer{}, 60)

	a.Playhead.Set(10)
	b.Playhead.Set(40)

	assert.Equal(t, 10.0, a.Playhead.Current())
	assert.Equal(t, 40.0, b.Playhead.Current())
}

func TestPlayhead_Subscribe(t *testing.T) {
	p := NewPlayhead()

	updates, cancel := p.Subscribe()

	p.Set(1)
	p.Set(2)
	p.Set(3)

	select {
	case v := <-updates:
		assert.Equal(t, 3.0, v)
	case <-time.After(time.Second):
		t.Fatal("no update received")
	}

	cancel()
	cancel()

	_, open := <-updates
	assert.False(t, open)

	p.Set(4)
	assert.Equal(t, 4.0, p.Current())
}

func TestPlayhead_ConcurrentSet(t *testing.T) {
	p := NewPlayhead()
	_, cancel := p.Subscribe()
	defer cancel()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(v float64) {
			defer wg.Done()
			p.Set(v)
			_ = p.Current()
		}(float64(i))
	}
	wg.Wait()

	assert.GreaterOrEqual(t, p.Current(), 0.0)
}
