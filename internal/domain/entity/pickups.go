package entity

import "math/rand"

// Coin is collected on player touch: it reports the pickup, leaves a
// short sparkle and dies.
type Coin struct {
	Base

	effects   Spawner
	onCollect func()
	rng       *rand.Rand
}

// NewCoin creates a coin. onCollect is invoked once when picked up.
func NewCoin(x, y, w, h float64, effects Spawner, onCollect func(), rng *rand.Rand) *Coin {
	return &Coin{
		Base:      NewBase(x, y, w, h),
		effects:   effects,
		onCollect: onCollect,
		rng:       rng,
	}
}

// OnCollision collects the coin
func (c *Coin) OnCollision(Entity) {
	if c.onCollect != nil {
		c.onCollect()
	}
	c.Die()
}

// Die leaves a brief sparkle and clears liveness
func (c *Coin) Die() {
	b := &c.body
	c.effects.SpawnEffect(NewEffect(b.X, b.Y, b.W, b.H, EffectConfig{
		Look:           LookSparkle,
		Lifespan:       6,
		FlipHorizontal: c.rng.Intn(2) == 0,
		FlipVertical:   c.rng.Intn(2) == 0,
		KillBelow:      b.Y + b.H,
	}))
	b.Alive = false
}
