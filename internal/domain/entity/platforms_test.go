package entity

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovingPlatform_ReversesAfterDistance(t *testing.T) {
	p := NewMovingPlatform(0, 16, 24, 8, 2, 6)

	p.Update() // x=2, remaining 4
	p.Update() // x=4, remaining 2
	assert.Equal(t, 2.0, p.Body().DX)

	p.Update() // x=6, remaining 0: reverse
	assert.Equal(t, -2.0, p.Body().DX)
	assert.Equal(t, 6.0, p.Body().X)

	p.Update()
	assert.Equal(t, 4.0, p.Body().X)
}

func TestMovingPlatform_CarriesRider(t *testing.T) {
	p := NewMovingPlatform(0, 16, 24, 8, 0.5, 100)

	rider := newTestEntity(2, 10, 6, 8)
	rider.Body().DY = 2

	p.OnCollision(rider)

	b := rider.Body()
	assert.Equal(t, 8.0, b.Y, "rider snapped on top")
	assert.Equal(t, 2.5, b.X, "rider dragged by the platform's velocity")
	assert.Equal(t, 0.0, b.DY)
	assert.Equal(t, 1, rider.landed, "rider forced grounded")
}

func TestMovingPlatform_SideContactDoesNotCarry(t *testing.T) {
	p := NewMovingPlatform(8, 16, 24, 8, 0.5, 100)

	// Overlapping the platform's left edge while moving right
	rider := newTestEntity(4, 18, 6, 8)
	rider.Body().DX = 2

	p.OnCollision(rider)

	assert.Equal(t, 4.0, rider.Body().X, "detect-only contact never moves the rider")
	assert.Equal(t, 0, rider.landed)
}

func createTestFallingPlatform(fx Spawner) *FallingPlatform {
	return NewFallingPlatform(0, 16, 8, 8, FallingPlatformConfig{
		FallDelayTicks:   4,
		JiggleAmount:     0.5,
		Gravity:          0.2,
		TerminalVelocity: 3,
		KillBelow:        512,
	}, fx)
}

func TestFallingPlatform_CollapsesAfterDelay(t *testing.T) {
	fx := &recordingSpawner{}
	p := createTestFallingPlatform(fx)

	rider := newTestEntity(1, 10, 6, 8)

	for i := 0; i < 3; i++ {
		rider.Body().DY = 2
		p.OnCollision(rider)
		assert.True(t, p.Body().Alive)
	}

	rider.Body().DY = 2
	p.OnCollision(rider)

	assert.False(t, p.Body().Alive, "countdown exhausted while stood on")
	require.Len(t, fx.spawned, 1)
	debris, ok := fx.spawned[0].(*CollidableEffect)
	require.True(t, ok, "collapse leaves collidable debris")
	assert.Equal(t, LookPlatform, debris.Look)
}

func TestFallingPlatform_SteppingOffResetsCountdown(t *testing.T) {
	fx := &recordingSpawner{}
	p := createTestFallingPlatform(fx)

	rider := newTestEntity(1, 10, 6, 8)
	for i := 0; i < 3; i++ {
		rider.Body().DY = 2
		p.OnCollision(rider)
	}

	p.OnCollisionEnd(rider)

	// A fresh ride gets the full delay again
	for i := 0; i < 3; i++ {
		rider.Body().DY = 2
		p.OnCollision(rider)
	}
	assert.True(t, p.Body().Alive)
	assert.Empty(t, fx.spawned)
}

func TestFallingPlatform_RiderSettles(t *testing.T) {
	p := createTestFallingPlatform(&recordingSpawner{})

	rider := newTestEntity(1, 10, 6, 8)
	rider.Body().DY = 2
	p.OnCollision(rider)

	b := rider.Body()
	assert.Equal(t, 8.0, b.Y, "rider snapped on top")
	assert.Equal(t, 1.0, b.DY, "rider dipped slightly into the platform")
	assert.Equal(t, 1, rider.landed)
}

func TestBreakBlock_HitFromBelowChips(t *testing.T) {
	fx := &recordingSpawner{}
	rng := rand.New(rand.NewSource(1))
	b := NewBreakBlock(0, 8, 8, 8, BreakBlockConfig{
		HP:               2,
		Gravity:          0.2,
		TerminalVelocity: 3,
		KillBelow:        512,
	}, fx, rng)

	hitter := newTestEntity(1, 12, 6, 8)
	hitter.Body().DY = -2

	b.OnCollision(hitter)

	assert.True(t, b.Body().Alive, "first hit only chips")
	assert.Equal(t, 2.0, b.HitOffset(), "hit bumps the block visual")
	assert.Equal(t, 16.0, hitter.Body().Y, "hitter pushed back below the block")
	assert.GreaterOrEqual(t, len(fx.spawned), 3, "each hit sprays debris")
	for _, e := range fx.spawned {
		assert.Equal(t, LookDebris, e.(*Effect).Look)
	}

	hitter.Body().Y = 12
	hitter.Body().DY = -2
	b.OnCollision(hitter)
	assert.False(t, b.Body().Alive, "block breaks at zero hit points")
}

func TestBreakBlock_TopContactDoesNotChip(t *testing.T) {
	fx := &recordingSpawner{}
	rng := rand.New(rand.NewSource(1))
	b := NewBreakBlock(0, 16, 8, 8, BreakBlockConfig{HP: 1}, fx, rng)

	rider := newTestEntity(1, 10, 6, 8)
	rider.Body().DY = 2

	b.OnCollision(rider)

	assert.True(t, b.Body().Alive)
	assert.Empty(t, fx.spawned)
	assert.Equal(t, 8.0, rider.Body().Y, "full pushback still rests the rider on top")
	assert.Equal(t, 1, rider.landed)
}

func TestBreakBlock_HitOffsetDecays(t *testing.T) {
	b := NewBreakBlock(0, 8, 8, 8, BreakBlockConfig{HP: 5}, &recordingSpawner{}, rand.New(rand.NewSource(1)))

	hitter := newTestEntity(1, 12, 6, 8)
	hitter.Body().DY = -2
	b.OnCollision(hitter)
	require.Equal(t, 2.0, b.HitOffset())

	b.Update()
	assert.Equal(t, 1.5, b.HitOffset())
	b.Update()
	b.Update()
	b.Update()
	assert.Equal(t, 0.0, b.HitOffset())

	b.Update()
	assert.Equal(t, 0.0, b.HitOffset(), "offset never goes negative")
}
